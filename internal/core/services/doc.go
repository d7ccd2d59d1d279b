// Package services implements the driving port interfaces.
// Services contain the tooltip state machine and orchestrate
// calls to driven ports (document, scheduler).
//
// Services are pure Go with no external dependencies. They are not safe
// for concurrent use: adapters deliver host events and timer callbacks
// on one logical UI thread.
package services
