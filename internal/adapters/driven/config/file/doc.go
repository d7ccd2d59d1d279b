// Package file provides file-based implementations of driven port interfaces
// and loaders for page definitions.
//
// Adapters:
//   - ConfigStore: TOML-based application settings
//   - Page: TOML or YAML page definitions (host elements and tooltips)
package file
