package tui

import "errors"

// ErrMissingDocument is returned when the page document is not provided.
var ErrMissingDocument = errors.New("tui: document is required")

// ErrMissingTooltips is returned when the tooltip registry is not provided.
var ErrMissingTooltips = errors.New("tui: tooltip registry is required")

// ErrMissingTimers is returned when the timer channel is not provided.
var ErrMissingTimers = errors.New("tui: timer channel is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
