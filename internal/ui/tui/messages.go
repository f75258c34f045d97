// Package tui provides a Bubble Tea preview of generated Helm values.
package tui

// ContentMsg replaces the previewed values and their lint findings.
type ContentMsg struct {
	Content  string
	Findings []string
}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }
