// Package application wires a resolved configuration and logger into the
// commands exposed by the CLI. Each command writes to an io.Writer, keeping
// the main package focused on flag parsing and process exit handling.
package application
