package record

import (
	"strings"

	"github.com/five82/tailback/internal/severity"
)

// Filter selects records for display.
type Filter struct {
	// Threshold is the minimum level shown.
	Threshold severity.Level
	// Logger, when set, keeps only records whose logger name contains it
	// (case-insensitive).
	Logger string
}

// Match reports whether r passes the filter.
func (f Filter) Match(r Record) bool {
	if !r.Level.Enabled(f.Threshold) {
		return false
	}
	needle := strings.TrimSpace(f.Logger)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.LoggerName), strings.ToLower(needle))
}

// Apply returns the records that pass the filter, preserving order.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
