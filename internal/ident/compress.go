// Package ident shortens dot-delimited logger names for fixed-width columns.
package ident

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Compress abbreviates the leading segments of identifier to their first
// character, left to right, until the result fits in width display columns.
// The final segment is never shortened, so the result can still be wider
// than width once every other segment is down to one character.
//
//	Compress("uk.ac.diamond.daq.persistence.jythonshelf", 20) // "u.a.d.d.p.jythonshelf"
func Compress(identifier string, width int) string {
	total := runewidth.StringWidth(identifier)
	if total <= width {
		return identifier
	}

	segments := strings.Split(identifier, ".")
	if len(segments) == 1 {
		return identifier
	}

	cut := 0
	for i, seg := range segments[:len(segments)-1] {
		if total-cut <= width {
			break
		}
		r, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}
		cut += runewidth.StringWidth(seg) - runewidth.RuneWidth(r)
		segments[i] = seg[:size]
	}
	return strings.Join(segments, ".")
}
