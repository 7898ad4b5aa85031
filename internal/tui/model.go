// Package tui is a bubbletea/lipgloss result browser over a
// hybridrank.Index: the user types a query, scrolls through the ranked,
// read-only result list, and presses q or Esc to return to the prompt and
// search again. Each submitted query runs one Index.Search call.
package tui

import (
	"github.com/mira-tools/hybridrank/internal/hybridrank"

	tea "github.com/charmbracelet/bubbletea"
)

// AppState represents the current state of the TUI.
type AppState int

const (
	StateInput AppState = iota
	StateSearching
	StateBrowsing
	StateError
)

// Model holds the browser's state: the index it searches against, the
// current query and result set, and cursor/viewport position.
type Model struct {
	state          AppState
	query          string
	results        []hybridrank.Result
	cursor         int
	viewportOffset int
	err            error
	width          int
	height         int
	ix             *hybridrank.Index
	threshold      float64
	limit          int
}

// NewModel creates a new TUI model bound to ix, with an optional initial
// query that triggers a search as soon as the program starts.
func NewModel(ix *hybridrank.Index, initialQuery string, threshold float64, limit int) Model {
	m := Model{
		state:     StateInput,
		query:     initialQuery,
		ix:        ix,
		threshold: threshold,
		limit:     limit,
	}

	if initialQuery != "" {
		m.state = StateSearching
	}

	return m
}

// Init starts the alt-screen and, if an initial query was given, kicks
// off the first search.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, tea.EnterAltScreen)

	if m.query != "" {
		cmds = append(cmds, performSearch(m.ix, m.query, m.threshold, m.limit))
	}

	return tea.Batch(cmds...)
}
