// Package render turns decoded records into single display lines.
package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/tailback/internal/ident"
	"github.com/five82/tailback/internal/record"
	"github.com/five82/tailback/internal/severity"
)

const (
	// DefaultLoggerWidth matches the logger column of logback's default
	// console pattern.
	DefaultLoggerWidth = 40

	timeLayout = "2006-01-02 15:04:05.000"
	levelWidth = 5
)

// Styles holds the lipgloss styles applied to each part of a line.
type Styles struct {
	Time   lipgloss.Style
	Logger lipgloss.Style
	Levels map[severity.Level]lipgloss.Style
}

// DefaultStyles dims trace output, bolds info and colours warnings and
// errors.
func DefaultStyles() Styles {
	return Styles{
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Logger: lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		Levels: map[severity.Level]lipgloss.Style{
			severity.Trace: lipgloss.NewStyle().Faint(true),
			severity.Debug: lipgloss.NewStyle(),
			severity.Info:  lipgloss.NewStyle().Bold(true),
			severity.Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
			severity.Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		},
	}
}

// Renderer formats records as
//
//	2024-10-10 14:32:15.042 INFO  u.a.d.d.Loader - message
//
// LoggerWidth <= 0 prints logger names in full without padding.
type Renderer struct {
	LoggerWidth int
	Styles      Styles
	Color       bool
	UTC         bool
}

// New returns a renderer with the default styles.
func New(loggerWidth int, color bool) Renderer {
	return Renderer{LoggerWidth: loggerWidth, Styles: DefaultStyles(), Color: color}
}

// Render formats rec, including any stack trace on following lines.
func (r Renderer) Render(rec record.Record) string {
	ts := rec.Time()
	if r.UTC {
		ts = ts.UTC()
	} else {
		ts = ts.In(time.Local)
	}

	var b strings.Builder
	b.WriteString(r.paint(r.Styles.Time, ts.Format(timeLayout)))
	b.WriteByte(' ')
	b.WriteString(runewidth.FillRight(rec.Level.String(), levelWidth))
	b.WriteByte(' ')
	b.WriteString(r.paint(r.Styles.Logger, r.loggerColumn(rec.LoggerName)))
	b.WriteString(" - ")
	b.WriteString(r.paint(r.levelStyle(rec.Level), rec.Message()))
	b.WriteString(rec.Stack())
	return b.String()
}

func (r Renderer) loggerColumn(name string) string {
	if r.LoggerWidth <= 0 {
		return name
	}
	return runewidth.FillRight(ident.Compress(name, r.LoggerWidth), r.LoggerWidth)
}

func (r Renderer) levelStyle(l severity.Level) lipgloss.Style {
	if style, ok := r.Styles.Levels[l]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// paint styles text line by line. Rendering the whole block at once would
// pad every line to the widest one, and tabs are left as the record sent them.
func (r Renderer) paint(style lipgloss.Style, text string) string {
	if !r.Color || text == "" {
		return text
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
