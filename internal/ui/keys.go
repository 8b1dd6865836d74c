package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tailback/internal/severity"
)

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Threshold
	Trace key.Binding
	Debug key.Binding
	Info  key.Binding
	Warn  key.Binding
	Error key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Logs actions
	ToggleFollow key.Binding
	Filter       key.Binding

	// Filter input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "e", "ctrl+c"),
			key.WithHelp("q/e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Trace and above"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Debug and above"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Info and above"),
		),
		Warn: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Warn and above"),
		),
		Error: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Errors only"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle follow mode"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter by logger"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear filter"),
		),
	}
}

// thresholdFor reports the level bound to msg, if any.
func (k keyMap) thresholdFor(msg tea.KeyMsg) (severity.Level, bool) {
	for _, lb := range k.levelBindings() {
		if key.Matches(msg, lb.binding) {
			return lb.level, true
		}
	}
	return severity.Unknown, false
}

// levelBindings pairs each threshold binding with its level, lowest first.
func (k keyMap) levelBindings() []levelBinding {
	return []levelBinding{
		{k.Trace, severity.Trace},
		{k.Debug, severity.Debug},
		{k.Info, severity.Info},
		{k.Warn, severity.Warn},
		{k.Error, severity.Error},
	}
}

type levelBinding struct {
	binding key.Binding
	level   severity.Level
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Trace, k.Debug, k.Info, k.Warn, k.Error},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		{k.ToggleFollow, k.Filter},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
