// Package viz renders terms, sums and constraint tables for the terminal
// using lipgloss styles. Call [DisableColor] for plain output.
package viz
