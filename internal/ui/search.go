package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/legtrack/internal/state"
)

// DefaultSearchDelay is how long typing must pause before the search
// filter is applied.
const DefaultSearchDelay = 300 * time.Millisecond

// searchSettledMsg fires once typing has paused. seq identifies the
// keystroke that scheduled it; only the latest one is applied.
type searchSettledMsg struct {
	seq  int
	text string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "title, summary, provisions or tags"
	ti.Prompt = "/"
	ti.CharLimit = 120
	return ti
}

// startSearch focuses the search input, keeping any existing text.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchKey routes keys while the search input is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Keep the text and apply it now instead of waiting for the delay.
		m.searching = false
		m.search.Blur()
		m.searchSeq++
		m.apply(state.SetSearch{Text: m.search.Value()})
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.searchSeq++
		m.apply(state.SetSearch{Text: ""})
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	settle := m.scheduleSearch(m.search.Value())
	return m, tea.Batch(cmd, settle)
}

// scheduleSearch debounces a change to the search text. Each keystroke
// bumps the sequence so earlier timers become stale.
func (m *Model) scheduleSearch(text string) tea.Cmd {
	m.searchSeq++
	if m.searchDelay <= 0 {
		m.apply(state.SetSearch{Text: text})
		return nil
	}
	seq := m.searchSeq
	return tea.Tick(m.searchDelay, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq, text: text}
	})
}

// handleSearchSettled applies the search text if no newer keystroke has
// arrived since it was scheduled.
func (m *Model) handleSearchSettled(msg searchSettledMsg) {
	if msg.seq != m.searchSeq {
		return
	}
	m.apply(state.SetSearch{Text: msg.text})
}
