// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Document: element lookup, annotation creation, attach/detach and
//     scroll readings of the hosting page
//   - HostElement: registration of event handlers on a host element
//   - Annotation: the transient floating element showing tooltip content
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Scheduler: one-shot deferred callbacks. Without it, auto-dismiss is disabled.
//   - ConfigStore: application settings. Without it, built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
