package tui

import (
	"fmt"
	"strings"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	renderFindings(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render(m.Title))
	lines := strings.Count(m.Content, "\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %d lines", lines)))
	b.WriteString("\n\n")
}

func renderFindings(b *strings.Builder, m Model) {
	if len(m.Findings) == 0 {
		b.WriteString(readyStyle.Render(checkMark + " no lint findings"))
		b.WriteString("\n")
		return
	}
	b.WriteString(sectionStyle.Render("Lint"))
	b.WriteString("\n")
	for _, f := range m.Findings {
		b.WriteString(warningStyle.Render(warnMark + " " + f))
		b.WriteString("\n")
	}
}

func renderFooter(b *strings.Builder, m Model) {
	scroll := dimStyle.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))
	b.WriteString(footerStyle.Render("  up/down: scroll  |  enter: write  |  q: quit  "))
	b.WriteString(scroll)
	b.WriteString("\n")
}
