package tui

import (
	"github.com/mira-tools/hybridrank/internal/hybridrank"

	tea "github.com/charmbracelet/bubbletea"
)

// performSearch runs ix.Search in the background and wraps the results in
// a resultsMsg for Update to pick up.
func performSearch(ix *hybridrank.Index, query string, threshold float64, limit int) tea.Cmd {
	return func() tea.Msg {
		return resultsMsg(ix.Search(query, threshold, limit))
	}
}

type resultsMsg []hybridrank.Result

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.state {
		case StateInput:
			switch msg.Type {
			case tea.KeyEnter:
				if m.query != "" {
					m.state = StateSearching
					return m, performSearch(m.ix, m.query, m.threshold, m.limit)
				}
			case tea.KeyEsc:
				return m, tea.Quit
			case tea.KeyBackspace:
				if len(m.query) > 0 {
					m.query = m.query[:len(m.query)-1]
				}
			case tea.KeyRunes:
				m.query += string(msg.Runes)
			case tea.KeySpace:
				m.query += " "
			}

		case StateBrowsing:
			switch msg.String() {
			case "q", "esc":
				m.state = StateInput
				m.results = nil
				m.cursor = 0
				m.viewportOffset = 0
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
					if m.cursor < m.viewportOffset {
						m.viewportOffset = m.cursor
					}
				}
			case "down", "j":
				if m.cursor < len(m.results)-1 {
					m.cursor++
					maxRows := m.height - 5
					if maxRows <= 0 {
						maxRows = 10
					}
					if m.cursor >= m.viewportOffset+maxRows {
						m.viewportOffset = m.cursor - maxRows + 1
					}
				}
			}
		}

	case resultsMsg:
		m.results = msg
		m.state = StateBrowsing
		m.cursor = 0
		m.viewportOffset = 0

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}
