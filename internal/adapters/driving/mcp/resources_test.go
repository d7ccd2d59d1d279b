package mcp

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hovertip/internal/core/domain"
)

func TestExtractElementID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid tooltip URI", "hovertip://tooltips/p1", "p1"},
		{"invalid prefix", "file://tooltips/p1", ""},
		{"missing id", "hovertip://tooltips/", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractElementID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handlePageResource(t *testing.T) {
	ctx := context.Background()
	server, _, _ := newTestServer(t, domain.Options{ElementID: "p1", Content: domain.String("hi")})

	_, _, err := server.handleShow(ctx, nil, PositionInput{ElementID: "p1", X: 1, Y: 2})
	require.NoError(t, err)

	result, err := server.handlePageResource(ctx, makeReadResourceRequest("hovertip://page"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var page PageOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &page))
	assert.Equal(t, "demo", page.Title)
	require.Len(t, page.Elements, 2)
	assert.Equal(t, "a1", page.Elements[1].ID)
	assert.Equal(t, "/next", page.Elements[1].Link)
	assert.Equal(t, 2, page.Elements[1].Y)
	require.Len(t, page.Annotations, 1)
	assert.Equal(t, "hi", page.Annotations[0].Content)
	assert.Equal(t, 17, page.Annotations[0].X)
	assert.Equal(t, 18, page.Annotations[0].Y)
}

func TestServer_handleTooltipResource(t *testing.T) {
	ctx := context.Background()
	server, _, _ := newTestServer(t, domain.Options{ElementID: "p1"})

	t.Run("known tooltip", func(t *testing.T) {
		result, err := server.handleTooltipResource(ctx, makeReadResourceRequest("hovertip://tooltips/p1"))
		require.NoError(t, err)

		var out TooltipOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &out))
		assert.Equal(t, "p1", out.ElementID)
		assert.Equal(t, "hidden", out.State)
	})

	t.Run("unknown tooltip", func(t *testing.T) {
		_, err := server.handleTooltipResource(ctx, makeReadResourceRequest("hovertip://tooltips/a1"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleTooltipResource(ctx, makeReadResourceRequest("hovertip://other"))
		assert.Error(t, err)
	})
}
