package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tailback/internal/record"
	"github.com/five82/tailback/internal/severity"
)

// chrome is the number of rows outside the viewport: header, box borders
// and the status line.
const chrome = 4

// logState holds the filter and scroll state of the record view.
type logState struct {
	threshold    severity.Level
	loggerFilter string
	follow       bool

	filtering   bool
	filterInput textinput.Model

	shown int // records passing the current filter
}

func newLogState(threshold severity.Level) logState {
	input := textinput.New()
	input.Placeholder = "logger substring"
	input.Prompt = "/"
	input.CharLimit = 200
	input.Width = 40

	return logState{
		threshold:   threshold,
		follow:      true,
		filterInput: input,
	}
}

func (s logState) filter() record.Filter {
	return record.Filter{Threshold: s.threshold, Logger: s.loggerFilter}
}

// initViewport initializes the record viewport.
func (m *Model) initViewport() {
	m.viewport = viewport.New(max(m.width-2, 0), max(m.height-chrome, 1))
}

func (m *Model) resizeViewport() {
	m.viewport.Width = max(m.width-2, 0)
	m.viewport.Height = max(m.height-chrome, 1)
}

// refreshContent re-renders the filtered snapshot into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	lines := m.renderRecords()
	m.logs.shown = len(lines)
	if len(lines) == 0 {
		m.viewport.SetContent(m.theme.Styles().MutedText.Render(m.emptyMessage()))
		return
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if m.logs.follow {
		m.viewport.GotoBottom()
	}
}

// renderRecords renders every record that passes the current filter.
func (m *Model) renderRecords() []string {
	visible := m.logs.filter().Apply(m.snapshot.Records)
	lines := make([]string, 0, len(visible))
	for _, rec := range visible {
		lines = append(lines, m.renderer.Render(rec))
	}
	return lines
}

func (m *Model) emptyMessage() string {
	switch {
	case len(m.snapshot.Records) == 0 && m.snapshot.Done:
		return "Source closed without records"
	case len(m.snapshot.Records) == 0:
		return "Waiting for records..."
	default:
		return "No records match the current filter"
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	box := styles.Box
	if m.logs.follow {
		box = box.BorderForeground(lipgloss.Color(m.theme.BorderFocus))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		box.Render(m.viewport.View()),
		m.renderStatus(styles),
	)
}

// renderHeader shows the source and the record counters.
func (m Model) renderHeader(styles Styles) string {
	var parts []string
	parts = append(parts, styles.AccentText.Bold(true).Render("tailback"))
	if m.source != "" {
		parts = append(parts, styles.Text.Render(m.source))
	}

	counts := fmt.Sprintf("%d/%d shown", m.logs.shown, m.snapshot.Total)
	parts = append(parts, styles.MutedText.Render(counts))
	if m.snapshot.Dropped > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d dropped", m.snapshot.Dropped)))
	}
	if m.snapshot.DecodeErrors > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d bad", m.snapshot.DecodeErrors)))
	}
	if m.snapshot.Done {
		parts = append(parts, styles.SuccessText.Render("done"))
	}

	sep := styles.FaintText.Render(" • ")
	return styles.Header.Width(max(m.width, 0)).Render(truncateDisplay(strings.Join(parts, sep), m.width))
}

// renderStatus renders the line below the record box.
func (m Model) renderStatus(styles Styles) string {
	if m.logs.filtering {
		return styles.Footer.Width(max(m.width, 0)).Render(m.logs.filterInput.View())
	}

	var parts []string
	parts = append(parts, styles.Text.Render("level ≥ "+m.logs.threshold.String()))
	if m.logs.loggerFilter != "" {
		parts = append(parts, styles.AccentText.Render("logger ~ "+m.logs.loggerFilter))
	}
	if m.logs.follow {
		parts = append(parts, styles.SuccessText.Render("following"))
	} else {
		parts = append(parts, styles.MutedText.Render("paused"))
	}
	parts = append(parts, styles.MutedText.Render(m.theme.Name))
	if err := m.snapshot.LastError; err != nil {
		parts = append(parts, styles.DangerText.Render(err.Error()))
	}
	if m.notice != "" {
		parts = append(parts, styles.DangerText.Render(m.notice))
	}
	parts = append(parts, styles.FaintText.Render("? help"))

	sep := styles.FaintText.Render(" • ")
	return styles.Footer.Width(max(m.width, 0)).Render(truncateDisplay(strings.Join(parts, sep), m.width))
}
