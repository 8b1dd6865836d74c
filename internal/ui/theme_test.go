package ui

import (
	"testing"

	"github.com/five82/tailback/internal/severity"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Nord" || names[2] != "Kanagawa" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Nord Kanagawa]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nord" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nord", got)
	}
	if got := NextTheme("Kanagawa"); got != "Dracula" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got)
	}
}

func TestRenderStylesCoverEveryLevel(t *testing.T) {
	styles := GetTheme("Nord").RenderStyles()
	for _, level := range []severity.Level{severity.Trace, severity.Debug, severity.Info, severity.Warn, severity.Error, severity.Unknown} {
		if _, ok := styles.Levels[level]; !ok {
			t.Fatalf("RenderStyles missing %s", level)
		}
	}
	if !styles.Levels[severity.Info].GetBold() {
		t.Fatalf("info style should be bold")
	}
}
