package ui

import "github.com/charmbracelet/x/ansi"

// truncateDisplay shortens styled text so it fits a padded bar of the given
// terminal width, keeping escape sequences intact.
func truncateDisplay(value string, width int) string {
	limit := width - 2 // bar padding
	if limit <= 0 {
		return value
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	return ansi.Truncate(value, limit, "…")
}
