package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the number of lines taken by the header and footer.
const chrome = 4

// Model is the Bubble Tea model for the values preview.
type Model struct {
	// Preview info
	Title    string
	Content  string
	Findings []string

	viewport viewport.Model

	// UI state
	Width    int
	Height   int
	Err      error
	Accepted bool
	Done     bool
}

// NewPreviewModel creates a preview of content. findings are shown below
// the values as warnings.
func NewPreviewModel(title, content string, findings []string) Model {
	vp := viewport.New(80, 20)
	vp.SetContent(content)
	return Model{
		Title:    title,
		Content:  content,
		Findings: findings,
		viewport: vp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Done = true
			return m, tea.Quit
		case "enter", "w":
			m.Accepted = true
			m.Done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome-len(m.Findings), 1)

	case ContentMsg:
		m.Content = msg.Content
		m.Findings = msg.Findings
		m.viewport.SetContent(msg.Content)
		m.viewport.GotoTop()
		return m, nil

	case ErrMsg:
		m.Err = msg.Err
		m.Done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
