package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunPreview shows content full screen and reports whether the user chose
// to write it.
func RunPreview(ctx context.Context, title, content string, findings []string) (bool, error) {
	m := NewPreviewModel(title, content, findings)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return false, fm.Err
	}
	return fm.Accepted, nil
}
