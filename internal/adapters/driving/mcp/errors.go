// Package mcp provides an MCP (Model Context Protocol) server adapter for hovertip.
// It lets AI assistants drive the tooltips of a headless page and inspect
// the annotations they produce.
package mcp

import "errors"

// ErrMissingDocument is returned when the page document is not provided.
var ErrMissingDocument = errors.New("mcp: document is required")

// ErrMissingTooltips is returned when the tooltip registry is not provided.
var ErrMissingTooltips = errors.New("mcp: tooltip registry is required")

// ErrMissingLoop is returned when the serialising loop is not provided.
var ErrMissingLoop = errors.New("mcp: loop is required")
