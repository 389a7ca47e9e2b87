// Package tui provides an interactive terminal inspector for a
// micromagnetic system.
//
// # Key Bindings
//
//	↑/↓   - Select term or parameter
//	Enter - Open term / edit parameter / apply edit
//	Esc   - Cancel edit or go back
//	D     - Remove the selected term
//	Q     - Quit
//
// Rejected edits are shown inline and leave the parameter unchanged.
package tui
