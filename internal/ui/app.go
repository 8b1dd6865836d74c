package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tailback/internal/prefs"
	"github.com/five82/tailback/internal/render"
	"github.com/five82/tailback/internal/severity"
	"github.com/five82/tailback/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Renderer  render.Renderer
	Threshold severity.Level
	ThemeName string
	PrefsPath string
	Source    string // shown in the header, e.g. "localhost:6750"
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	renderer  render.Renderer
	prefsPath string
	source    string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string // last prefs save failure, if any

	// Data state
	snapshot state.Snapshot

	// Log state
	viewport viewport.Model
	logs     logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	renderer := opts.Renderer
	if renderer.Color {
		renderer.Styles = theme.RenderStyles()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		renderer:  renderer,
		prefsPath: prefsPath,
		source:    opts.Source,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     theme,
		logs:      newLogState(opts.Threshold),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initViewport()
		}
		m.ready = true
		m.resizeViewport()
		m.refreshContent()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.refreshContent()
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.logs.filtering {
		return m.handleFilterKey(msg)
	}

	if level, ok := m.keys.thresholdFor(msg); ok {
		m.setThreshold(level)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.renderer.Color {
			m.renderer.Styles = m.theme.RenderStyles()
		}
		m.savePrefs()
		m.refreshContent()

	case key.Matches(msg, m.keys.ToggleFollow):
		m.logs.follow = !m.logs.follow
		if m.logs.follow {
			m.viewport.GotoBottom()
		}

	case key.Matches(msg, m.keys.Filter):
		m.logs.filterInput.SetValue(m.logs.loggerFilter)
		m.logs.filterInput.CursorEnd()
		m.logs.filtering = true
		return m, m.logs.filterInput.Focus()

	case key.Matches(msg, m.keys.Cancel):
		if m.logs.loggerFilter != "" {
			m.logs.loggerFilter = ""
			m.refreshContent()
		}

	default:
		m.scroll(msg)
	}

	return m, nil
}

// handleFilterKey routes input to the logger filter prompt.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.logs.loggerFilter = m.logs.filterInput.Value()
		m.logs.filtering = false
		m.logs.filterInput.Blur()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.logs.filtering = false
		m.logs.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.logs.filterInput, cmd = m.logs.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) scroll(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.logs.follow = true
		return
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	default:
		return
	}
	// Manual scrolling pauses follow mode until the bottom is reached again.
	m.logs.follow = m.viewport.AtBottom()
}

func (m *Model) setThreshold(level severity.Level) {
	if m.logs.threshold == level {
		return
	}
	m.logs.threshold = level
	m.savePrefs()
	m.refreshContent()
}

func (m *Model) savePrefs() {
	level := m.logs.threshold
	p := prefs.Prefs{Theme: m.theme.Name, Level: &level}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		// Cancellation is a normal shutdown.
		return nil
	}
	return err
}
