package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	var s string

	switch m.state {
	case StateInput:
		s += titleStyle.Render("hybridrank browser") + "\n\n"
		s += "Enter your query:\n"
		s += "> " + m.query + "█\n\n"
		s += dimStyle.Render("(Press Enter to search, Esc to quit)")

	case StateSearching:
		s += "Searching...\n"

	case StateBrowsing:
		s += fmt.Sprintf("Found %d result(s) for '%s' (press q to search again):\n\n", len(m.results), m.query)

		visible := len(m.results) - m.viewportOffset
		maxRows := m.height - 5
		if maxRows <= 0 {
			maxRows = 10
		}
		if visible > maxRows {
			visible = maxRows
		}

		for i := m.viewportOffset; i < m.viewportOffset+visible; i++ {
			cursor := "  "
			line := fmt.Sprintf("%s  %.2f", m.results[i].Display, m.results[i].Score)
			if i == m.cursor {
				cursor = "> "
				line = selectedStyle.Render(m.results[i].Display) + "  " + scoreStyle.Render(fmt.Sprintf("%.2f", m.results[i].Score))
			}
			s += cursor + line + "\n"
		}

		s += "\n" + dimStyle.Render("(up/down or j/k to navigate, q to go back)")

	case StateError:
		s += fmt.Sprintf("Error: %v\n\nPress q to try again.", m.err)
	}

	return s
}
