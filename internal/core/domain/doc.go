// Package domain defines the core types of the hovertip tooltip controller.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Config: the resolved, immutable configuration of one tooltip
//   - Options: caller overrides merged against DefaultConfig
//   - State: Hidden, Visible or Pinned
//   - Event: a pointer or click event supplied by the host environment
//   - ScrollReading: one of the page scroll offsets a document reports
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
