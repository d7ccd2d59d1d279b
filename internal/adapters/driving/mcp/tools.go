package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
)

// ElementInput names the host element of a tooltip.
type ElementInput struct {
	ElementID string `json:"element_id" jsonschema:"id of the host element"`
}

// PositionInput names a host element and a pointer position.
type PositionInput struct {
	ElementID string `json:"element_id" jsonschema:"id of the host element"`
	X         int    `json:"x" jsonschema:"pointer x in viewport coordinates"`
	Y         int    `json:"y" jsonschema:"pointer y in viewport coordinates"`
}

// PointerInput is a host event delivered to an element.
type PointerInput struct {
	Kind      string `json:"kind" jsonschema:"event kind: enter, leave, move or click"`
	ElementID string `json:"element_id" jsonschema:"id of the element receiving the event"`
	X         int    `json:"x,omitempty" jsonschema:"pointer x in viewport coordinates"`
	Y         int    `json:"y,omitempty" jsonschema:"pointer y in viewport coordinates"`
}

// ScrollInput sets the window scroll offset.
type ScrollInput struct {
	X int `json:"x" jsonschema:"horizontal scroll offset"`
	Y int `json:"y" jsonschema:"vertical scroll offset"`
}

// ListInput takes no arguments.
type ListInput struct{}

// AnnotationOutput describes an attached annotation.
type AnnotationOutput struct {
	ID      string `json:"id"`
	Class   string `json:"class"`
	Content string `json:"content"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Visible bool   `json:"visible"`
}

// TooltipOutput describes one tooltip.
type TooltipOutput struct {
	ElementID  string            `json:"element_id"`
	State      string            `json:"state"`
	Pinned     bool              `json:"pinned"`
	Annotation *AnnotationOutput `json:"annotation,omitempty"`
}

// PointerOutput reports the result of a host event.
type PointerOutput struct {
	DefaultPrevented   bool           `json:"default_prevented"`
	PropagationStopped bool           `json:"propagation_stopped"`
	Tooltip            *TooltipOutput `json:"tooltip,omitempty"`
}

// ScrollOutput reports the resolved page scroll.
type ScrollOutput struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ListOutput lists every tooltip on the page.
type ListOutput struct {
	Tooltips []TooltipOutput `json:"tooltips"`
	Count    int             `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "show",
		Description: "Show a tooltip at a pointer position, replacing any annotation it already shows",
	}, s.handleShow)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hide",
		Description: "Hide a tooltip unless it is pinned",
	}, s.handleHide)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "move",
		Description: "Move a shown tooltip to a pointer position when following is enabled",
	}, s.handleMove)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "toggle_pin",
		Description: "Flip the pinned flag of a tooltip",
	}, s.handleTogglePin)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pointer",
		Description: "Deliver an enter, leave, move or click event to a page element",
	}, s.handlePointer)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scroll",
		Description: "Set the window scroll offset of the page",
	}, s.handleScroll)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "state",
		Description: "Report the state of one tooltip",
	}, s.handleState)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list",
		Description: "List every tooltip on the page",
	}, s.handleList)
}

func (s *Server) handleShow(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PositionInput,
) (*mcp.CallToolResult, TooltipOutput, error) {
	return s.withTooltip(input.ElementID, func(tip driving.Tooltip) {
		tip.Show(dom.NewEvent(input.X, input.Y))
	})
}

func (s *Server) handleHide(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ElementInput,
) (*mcp.CallToolResult, TooltipOutput, error) {
	return s.withTooltip(input.ElementID, func(tip driving.Tooltip) {
		tip.Hide()
	})
}

func (s *Server) handleMove(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PositionInput,
) (*mcp.CallToolResult, TooltipOutput, error) {
	return s.withTooltip(input.ElementID, func(tip driving.Tooltip) {
		tip.Move(dom.NewEvent(input.X, input.Y))
	})
}

func (s *Server) handleTogglePin(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ElementInput,
) (*mcp.CallToolResult, TooltipOutput, error) {
	return s.withTooltip(input.ElementID, func(tip driving.Tooltip) {
		tip.TogglePin(nil)
	})
}

func (s *Server) handleState(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ElementInput,
) (*mcp.CallToolResult, TooltipOutput, error) {
	return s.withTooltip(input.ElementID, func(driving.Tooltip) {})
}

// handlePointer dispatches through the document so only the listeners
// the tooltip wired at construction react.
func (s *Server) handlePointer(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PointerInput,
) (*mcp.CallToolResult, PointerOutput, error) {
	kind, err := domain.ParseEventKind(input.Kind)
	if err != nil {
		return nil, PointerOutput{}, fmt.Errorf("event kind %q: %w", input.Kind, err)
	}

	var output PointerOutput
	s.do(func() {
		ev := dom.NewEvent(input.X, input.Y)
		if err = s.ports.Document.Dispatch(input.ElementID, kind, ev); err != nil {
			return
		}
		output.DefaultPrevented = ev.DefaultPrevented
		output.PropagationStopped = ev.PropagationStopped
		if tip, ok := s.ports.Tooltips.Get(input.ElementID); ok {
			out := s.describe(tip)
			output.Tooltip = &out
		}
	})
	if err != nil {
		return nil, PointerOutput{}, err
	}

	return nil, output, nil
}

func (s *Server) handleScroll(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScrollInput,
) (*mcp.CallToolResult, ScrollOutput, error) {
	var p domain.Point
	s.do(func() {
		s.ports.Document.SetScroll(domain.ScrollWindow, input.X, input.Y)
		p = domain.ResolveScroll(s.ports.Document.ScrollReadings()...)
	})
	return nil, ScrollOutput{X: p.X, Y: p.Y}, nil
}

func (s *Server) handleList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	var output ListOutput
	s.do(func() {
		tips := s.ports.Tooltips.List()
		output.Tooltips = make([]TooltipOutput, 0, len(tips))
		for _, tip := range tips {
			output.Tooltips = append(output.Tooltips, s.describe(tip))
		}
		output.Count = len(tips)
	})
	return nil, output, nil
}

// withTooltip runs op on the tooltip bound to elementID and reports the
// resulting state.
func (s *Server) withTooltip(
	elementID string,
	op func(driving.Tooltip),
) (*mcp.CallToolResult, TooltipOutput, error) {
	var (
		output TooltipOutput
		found  bool
	)
	s.do(func() {
		tip, ok := s.ports.Tooltips.Get(elementID)
		if !ok {
			return
		}
		found = true
		op(tip)
		output = s.describe(tip)
	})
	if !found {
		return nil, TooltipOutput{}, fmt.Errorf("tooltip %q: %w", elementID, domain.ErrNotFound)
	}
	return nil, output, nil
}

// describe must run on the loop.
func (s *Server) describe(tip driving.Tooltip) TooltipOutput {
	out := TooltipOutput{
		ElementID: tip.Config().ElementID,
		State:     tip.State().String(),
		Pinned:    tip.Pinned(),
	}

	id, ok := tip.AnnotationID()
	if !ok {
		return out
	}
	if a, ok := s.ports.Document.Annotation(id); ok {
		ann := annotationOutput(a)
		out.Annotation = &ann
	}
	return out
}

func annotationOutput(a *dom.Annotation) AnnotationOutput {
	p := a.Position()
	return AnnotationOutput{
		ID:      a.ID(),
		Class:   a.Class(),
		Content: a.Content(),
		X:       p.X,
		Y:       p.Y,
		Visible: a.Visible(),
	}
}
