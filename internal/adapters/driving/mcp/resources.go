package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hovertip/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for hovertip resources.
	uriScheme = "hovertip://"
)

// PageOutput is the JSON body of the page resource.
type PageOutput struct {
	Title       string             `json:"title"`
	Scroll      ScrollOutput       `json:"scroll"`
	Elements    []ElementOutput    `json:"elements"`
	Annotations []AnnotationOutput `json:"annotations"`
}

// ElementOutput describes a host element.
type ElementOutput struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "page",
		Name:        "page",
		Description: "Elements and attached annotations of the page",
		MIMEType:    "application/json",
	}, s.handlePageResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tooltips/{elementId}",
		Name:        "tooltip",
		Description: "State of the tooltip bound to an element",
		MIMEType:    "application/json",
	}, s.handleTooltipResource)
}

// handlePageResource returns the page layout and its annotations.
func (s *Server) handlePageResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var page PageOutput
	s.do(func() {
		page = s.snapshot()
	})

	return jsonResource(req.Params.URI, page)
}

// handleTooltipResource returns the state of one tooltip.
func (s *Server) handleTooltipResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	elementID := extractElementID(req.Params.URI)
	if elementID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var (
		out   TooltipOutput
		found bool
	)
	s.do(func() {
		tip, ok := s.ports.Tooltips.Get(elementID)
		if ok {
			out, found = s.describe(tip), true
		}
	})
	if !found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, out)
}

// snapshot must run on the loop.
func (s *Server) snapshot() PageOutput {
	doc := s.ports.Document
	page := PageOutput{
		Title:       doc.Title(),
		Elements:    []ElementOutput{},
		Annotations: []AnnotationOutput{},
	}

	scroll := domain.ResolveScroll(doc.ScrollReadings()...)
	page.Scroll = ScrollOutput{X: scroll.X, Y: scroll.Y}

	for _, el := range doc.Elements() {
		b := el.Bounds()
		page.Elements = append(page.Elements, ElementOutput{
			ID: el.ID(), Text: el.Text(), Link: el.Link(),
			X: b.X, Y: b.Y, W: b.W, H: b.H,
		})
	}
	for _, a := range doc.Attached() {
		page.Annotations = append(page.Annotations, annotationOutput(a))
	}
	return page
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractElementID extracts the element ID from a URI like hovertip://tooltips/{elementId}.
func extractElementID(uri string) string {
	const prefix = uriScheme + "tooltips/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
