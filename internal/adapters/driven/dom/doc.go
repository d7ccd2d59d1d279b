// Package dom provides an in-memory, headless implementation of the
// driven document ports. It backs the terminal UI, the MCP server and the
// simulate command, and is used directly in tests.
//
// A Document is not safe for concurrent use. Callers serialise access,
// typically through timer.Loop or a bubbletea Update loop.
package dom
