package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Width(9).
			Foreground(lipgloss.Color("244"))

	activeLabelStyle = labelStyle.
				Foreground(lipgloss.Color("212")).
				Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("212"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// View renders the tester
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rexspan tester"))
	b.WriteString("\n\n")

	b.WriteString(m.label("Pattern", m.focus == FocusPattern))
	b.WriteString(m.pattern.View())
	b.WriteString("\n")
	b.WriteString(m.label("Input", m.focus == FocusInput))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Offset"))
	b.WriteString(fmt.Sprintf("%d", m.offset))
	b.WriteString("\n\n")

	b.WriteString(m.renderResults())

	b.WriteString(helpStyle.Render("tab: switch field • ctrl+←/→: offset • esc: quit"))
	return b.String()
}

func (m *Model) label(name string, active bool) string {
	if active {
		return activeLabelStyle.Render(name)
	}
	return labelStyle.Render(name)
}

func (m *Model) renderResults() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n"
	}

	text := m.input.Value()
	if len(m.spans) == 0 {
		return dimStyle.Render("offset is past the end of the input") + "\n"
	}

	var b strings.Builder
	if m.found {
		b.WriteString(text[:m.best.Begin])
		b.WriteString(highlightStyle.Render(text[m.best.Begin:m.best.End]))
		b.WriteString(text[m.best.End:])
		b.WriteString("\n\n")
	} else {
		b.WriteString(dimStyle.Render("no match"))
		b.WriteString("\n\n")
	}

	for i, s := range m.spans {
		line := fmt.Sprintf("group %-3d %-10s", i, s.String())
		if s.Matched() {
			line += fmt.Sprintf(" %q", s.Text(text))
		}
		if m.found && s == m.best && m.firstBest(i) {
			line = highlightStyle.Render(line)
		} else if !s.Matched() {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// firstBest reports whether group i is the lowest index holding the
// search result, so equal spans highlight once.
func (m *Model) firstBest(i int) bool {
	for j := 0; j < i; j++ {
		if m.spans[j] == m.best {
			return false
		}
	}
	return true
}
