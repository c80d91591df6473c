package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/catalog"
	"github.com/five82/legtrack/internal/legislation"
	"github.com/five82/legtrack/internal/prefs"
	"github.com/five82/legtrack/internal/state"
)

// Options configures the UI.
type Options struct {
	Catalog     *legislation.Catalog
	Logger      *zap.Logger
	Prefs       prefs.Prefs
	PrefsPath   string
	SearchDelay time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	logger      *zap.Logger
	prefsPath   string
	prefs       prefs.Prefs
	searchDelay time.Duration
	source      string
	lastUpdated string
	keys        keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  pane

	// Data state
	session state.State
	view    state.Output

	// Table state
	selectedRow int

	// Detail state
	detail    viewport.Model
	detailFor string

	// Search state
	search    textinput.Model
	searching bool
	searchSeq int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	delay := opts.SearchDelay
	if delay < 0 {
		delay = 0
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Default().Theme
	}
	if !slices.Contains(ThemeNames(), p.Theme) {
		logger.Warn("unknown theme, using default", zap.String("theme", p.Theme))
		p.Theme = prefs.Default().Theme
	}
	if p.TableWidth == 0 {
		p.TableWidth = prefs.Default().TableWidth
	}

	session := state.New(opts.Catalog.Records())
	return Model{
		logger:      logger,
		prefsPath:   opts.PrefsPath,
		prefs:       p,
		searchDelay: delay,
		source:      opts.Catalog.Source(),
		lastUpdated: opts.Catalog.LastUpdated(),
		keys:        DefaultKeyMap(),
		theme:       GetTheme(p.Theme),
		session:     session,
		view:        session.Output(),
		detail:      viewport.New(0, 0),
		search:      newSearchInput(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case searchSettledMsg:
		m.handleSearchSettled(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain stacks the chrome lines above the panes.
func (m Model) renderMain() string {
	return m.renderHeader() + "\n" +
		m.renderCommandBar() + "\n" +
		m.renderFilterBar() + "\n" +
		m.renderTagBar() + "\n" +
		m.renderContent()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, k.Tab), key.Matches(msg, k.ShiftTab):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, k.Search):
		cmd := m.startSearch()
		return m, cmd

	case key.Matches(msg, k.NextJurisdiction):
		m.apply(state.SelectJurisdiction{Jurisdiction: catalog.Cycle(catalog.JurisdictionOptions, m.session.Criteria().Jurisdiction, 1)})
		return m, nil

	case key.Matches(msg, k.PrevJurisdiction):
		m.apply(state.SelectJurisdiction{Jurisdiction: catalog.Cycle(catalog.JurisdictionOptions, m.session.Criteria().Jurisdiction, -1)})
		return m, nil

	case key.Matches(msg, k.NextStatus):
		m.apply(state.SelectStatus{Status: catalog.Cycle(catalog.StatusOptions, m.session.Criteria().Status, 1)})
		return m, nil

	case key.Matches(msg, k.PrevStatus):
		m.apply(state.SelectStatus{Status: catalog.Cycle(catalog.StatusOptions, m.session.Criteria().Status, -1)})
		return m, nil

	case key.Matches(msg, k.CycleTag):
		m.cycleTag()
		return m, nil

	case key.Matches(msg, k.TagOption):
		if i, ok := tagIndex(msg.String()); ok && i < len(m.view.TagOptions) {
			m.apply(state.ToggleTag{Tag: m.view.TagOptions[i].Tag})
		}
		return m, nil

	case key.Matches(msg, k.Reset):
		m.search.SetValue("")
		m.searchSeq++
		m.apply(state.Reset{})
		return m, nil

	case key.Matches(msg, k.Narrower):
		m.resizeTable(-tableWidthStep)
		return m, nil

	case key.Matches(msg, k.Wider):
		m.resizeTable(tableWidthStep)
		return m, nil
	}

	if m.focus == paneDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleTableKey(msg)
}

// handleTableKey handles navigation and expansion in the record table.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Toggle):
		if r, ok := m.selectedRecord(); ok {
			m.apply(state.ToggleRow{ID: r.ID})
		}
	case key.Matches(msg, k.Down):
		m.moveSelection(1)
	case key.Matches(msg, k.Up):
		m.moveSelection(-1)
	case key.Matches(msg, k.Top):
		m.selectedRow = 0
	case key.Matches(msg, k.Bottom):
		m.moveSelection(len(m.view.Visible))
	case key.Matches(msg, k.HalfPageDown):
		m.moveSelection(m.halfPage())
	case key.Matches(msg, k.HalfPageUp):
		m.moveSelection(-m.halfPage())
	}
	return m, nil
}

// handleDetailKey scrolls the detail pane.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Toggle):
		// Collapsing from the detail pane returns focus to the table.
		if r, ok := m.session.ExpandedRecord(); ok {
			m.apply(state.ToggleRow{ID: r.ID})
		}
		return m, nil
	case key.Matches(msg, k.Top):
		m.detail.GotoTop()
		return m, nil
	case key.Matches(msg, k.Bottom):
		m.detail.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// apply moves the session to its next state and refreshes derived view
// state. The cursor follows the selected record when it stays visible.
func (m *Model) apply(e state.Event) {
	var selectedID string
	if r, ok := m.selectedRecord(); ok {
		selectedID = r.ID
	}

	m.session = state.Apply(m.session, e)
	m.view = m.session.Output()
	m.keepSelection(selectedID)
	m.updateDetailViewport()

	c := m.session.Criteria()
	m.logger.Debug("state updated",
		zap.String("event", fmt.Sprintf("%T", e)),
		zap.String("jurisdiction", c.Jurisdiction),
		zap.String("status", c.Status),
		zap.String("tag", c.Tag),
		zap.String("search", c.Search),
		zap.Int("visible", m.view.VisibleCount),
		zap.String("expanded", m.view.Expanded),
	)
}

// cycleTag advances the tag filter through the tag options, ending on no
// tag before wrapping to the first.
func (m *Model) cycleTag() {
	opts := m.view.TagOptions
	if len(opts) == 0 {
		return
	}
	current := m.session.Criteria().Tag
	next := opts[0].Tag
	for i, o := range opts {
		if o.Tag != current {
			continue
		}
		if i+1 < len(opts) {
			next = opts[i+1].Tag
		} else {
			next = current // toggling the active tag clears it
		}
		break
	}
	m.apply(state.ToggleTag{Tag: next})
}

// toggleFocus switches between the table and an open detail pane.
func (m *Model) toggleFocus() {
	if _, ok := m.session.ExpandedRecord(); !ok {
		m.focus = paneTable
		return
	}
	if m.focus == paneTable {
		m.focus = paneDetail
	} else {
		m.focus = paneTable
	}
	m.updateDetailViewport()
}

// resizeTable changes the table share of a split layout and saves it.
func (m *Model) resizeTable(delta int) {
	w := m.prefs.TableWidth + delta
	w = max(prefs.MinTableWidth, min(prefs.MaxTableWidth, w))
	if w == m.prefs.TableWidth {
		return
	}
	m.prefs.TableWidth = w
	m.savePrefs()
	m.updateDetailViewport()
}

func (m Model) halfPage() int {
	return max(m.layout().tableHeight/2, 1)
}

// savePrefs persists preferences. Failures are logged and otherwise ignored.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("ui requires a catalog")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
