package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tailback/internal/render"
	"github.com/five82/tailback/internal/severity"
)

// Theme defines the palette used by the viewer chrome and the record lines.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
	}
}

// RenderStyles maps the palette onto record line styles: trace faint, info
// bold, warnings and errors in the warning and danger colors.
func (t Theme) RenderStyles() render.Styles {
	return render.Styles{
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Logger: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		Levels: map[severity.Level]lipgloss.Style{
			severity.Trace:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)).Faint(true),
			severity.Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
			severity.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Bold(true),
			severity.Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
			severity.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
			severity.Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		},
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Box    lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula":  draculaTheme(),
	"Nord":     nordTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Kanagawa"}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Background: "#282a36",
		Surface:    "#343746",

		Border:      "#44475a", // current line
		BorderFocus: "#bd93f9", // purple

		Text:    "#f8f8f2",
		Muted:   "#9ea8c7",
		Faint:   "#6272a4", // comment
		Accent:  "#bd93f9", // purple
		Success: "#50fa7b", // green
		Warning: "#f1fa8c", // yellow
		Danger:  "#ff5555", // red
		Info:    "#8be9fd", // cyan
	}
}

func nordTheme() Theme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Theme{
		Name: "Nord",

		Background: "#2e3440", // nord0
		Surface:    "#3b4252", // nord1

		Border:      "#4c566a", // nord3
		BorderFocus: "#88c0d0", // nord8

		Text:    "#eceff4", // nord6
		Muted:   "#d8dee9", // nord4
		Faint:   "#616e88",
		Accent:  "#88c0d0", // nord8
		Success: "#a3be8c", // nord14
		Warning: "#ebcb8b", // nord13
		Danger:  "#bf616a", // nord11
		Info:    "#81a1c1", // nord9
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#1F1F28", // sumiInk3
		Surface:    "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue
	}
}
