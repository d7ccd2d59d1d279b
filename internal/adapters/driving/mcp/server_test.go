package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/services"
)

// newTestServer serves a page with p1 on row 0 and a1 on row 2.
func newTestServer(t *testing.T, opts ...domain.Options) (*Server, *dom.Document, *timer.Manual) {
	t.Helper()

	doc := dom.NewDocument("demo")
	_, err := doc.Append("p1", "hello world", "")
	require.NoError(t, err)
	_, err = doc.Append("a1", "a link", "/next")
	require.NoError(t, err)

	clock := timer.NewManual()
	reg := services.NewRegistry(doc, clock)
	for _, o := range opts {
		_, err := reg.Attach(o)
		require.NoError(t, err)
	}

	srv, err := NewServer(&Ports{Document: doc, Tooltips: reg, Loop: &timer.Loop{}})
	require.NoError(t, err)
	return srv, doc, clock
}

func TestNewServer(t *testing.T) {
	t.Run("missing ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDocument)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	doc := dom.NewDocument("")
	reg := services.NewRegistry(doc, nil)

	t.Run("missing document", func(t *testing.T) {
		p := &Ports{Tooltips: reg, Loop: &timer.Loop{}}
		assert.ErrorIs(t, p.Validate(), ErrMissingDocument)
	})

	t.Run("missing tooltips", func(t *testing.T) {
		p := &Ports{Document: doc, Loop: &timer.Loop{}}
		assert.ErrorIs(t, p.Validate(), ErrMissingTooltips)
	})

	t.Run("missing loop", func(t *testing.T) {
		p := &Ports{Document: doc, Tooltips: reg}
		assert.ErrorIs(t, p.Validate(), ErrMissingLoop)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		p := &Ports{Document: doc, Tooltips: reg, Loop: &timer.Loop{}}
		assert.NoError(t, p.Validate())
	})
}
