// Package timer provides driven.Scheduler implementations.
//
// Adapters:
//   - Clock: wall-clock timers backed by clockwork, with callbacks handed
//     to a dispatch function so they run on the caller's UI thread
//   - Manual: a virtual clock advanced explicitly, for scripted runs
//   - Loop: a serialising executor standing in for a UI thread
package timer
