package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const sample = "global:\n  elasticsearch:\n    enabled: true\n"

func TestRenderView_Header(t *testing.T) {
	m := NewPreviewModel("values.yaml", sample, nil)

	output := renderView(m)

	if !strings.Contains(output, "values.yaml") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "3 lines") {
		t.Error("expected line count in output")
	}
	if !strings.Contains(output, "enabled: true") {
		t.Error("expected content in output")
	}
	if !strings.Contains(output, "no lint findings") {
		t.Error("expected clean lint marker")
	}
}

func TestRenderView_Findings(t *testing.T) {
	m := NewPreviewModel("values.yaml", sample, []string{"global.elasticsearch.url: empty string"})

	output := renderView(m)

	if !strings.Contains(output, "Lint") {
		t.Error("expected lint section")
	}
	if !strings.Contains(output, "global.elasticsearch.url: empty string") {
		t.Error("expected finding in output")
	}
}

func TestModelUpdate_Keys(t *testing.T) {
	tests := []struct {
		key      tea.KeyMsg
		accepted bool
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tt := range tests {
		updated, cmd := NewPreviewModel("t", sample, nil).Update(tt.key)
		m := updated.(Model)
		if !m.Done {
			t.Errorf("%s: expected done", tt.key)
		}
		if m.Accepted != tt.accepted {
			t.Errorf("%s: accepted = %v, want %v", tt.key, m.Accepted, tt.accepted)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", tt.key)
		}
	}
}

func TestModelUpdate_WindowSize(t *testing.T) {
	m := NewPreviewModel("t", sample, []string{"a", "b"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if m.Width != 100 || m.Height != 30 {
		t.Errorf("unexpected size %dx%d", m.Width, m.Height)
	}
	if m.viewport.Height != 30-chrome-2 {
		t.Errorf("viewport height = %d", m.viewport.Height)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	if got := updated.(Model).viewport.Height; got != 1 {
		t.Errorf("expected minimum viewport height 1, got %d", got)
	}
}

func TestModelUpdate_Content(t *testing.T) {
	m := NewPreviewModel("t", sample, nil)
	updated, _ := m.Update(ContentMsg{Content: "zeebe:\n", Findings: []string{"x"}})
	m = updated.(Model)

	if m.Content != "zeebe:\n" || len(m.Findings) != 1 {
		t.Errorf("content not replaced: %q %v", m.Content, m.Findings)
	}
	if !strings.Contains(renderView(m), "zeebe:") {
		t.Error("expected new content in view")
	}
}

func TestModelUpdate_Err(t *testing.T) {
	updated, _ := NewPreviewModel("t", sample, nil).Update(ErrMsg{Err: errors.New("boom")})
	m := updated.(Model)
	if m.Err == nil || !m.Done || m.Accepted {
		t.Errorf("unexpected state after error: %+v", m)
	}
}

func TestPreviewProgram_Accept(t *testing.T) {
	tm := teatest.NewTestModel(t, NewPreviewModel("values.yaml", sample, nil), teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("elasticsearch"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	if !fm.Accepted {
		t.Error("expected preview to be accepted")
	}
}

func TestPreviewProgram_Quit(t *testing.T) {
	tm := teatest.NewTestModel(t, NewPreviewModel("values.yaml", sample, nil), teatest.WithInitialTermSize(80, 24))

	tm.Type("q")

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	if fm.Accepted {
		t.Error("expected preview to be declined")
	}
}
