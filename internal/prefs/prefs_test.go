package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/tailback/internal/severity"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "" || p.Level != nil {
		t.Fatalf("Load() = %+v, want empty prefs so config values apply", p)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "tailback")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Nord\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Nord" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Nord")
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "custom.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Nord\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Nord" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Nord")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Theme: "Nord"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Nord" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "Nord")
	}
}

func TestLoad_BlankThemeStaysUnset(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme)
	}
}

func TestLoad_InvalidTOMLIsEmpty(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme)
	}
}

func TestSave_RoundTripsLevel(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	warn := severity.Warn
	if err := Save(prefsFile, Prefs{Theme: "Nord", Level: &warn}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(prefsFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `level = 'warn'`) {
		t.Fatalf("prefs file = %q, want level stored by name", data)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	level, ok := loaded.Threshold()
	if !ok || level != severity.Warn {
		t.Fatalf("Threshold() = %v, %v, want WARN, true", level, ok)
	}
}

func TestSave_OmitsUnsetFields(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(prefsFile, Prefs{}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(prefsFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.TrimSpace(string(data)) != "" {
		t.Fatalf("prefs file = %q, want empty", data)
	}
}

func TestThreshold_Unset(t *testing.T) {
	if _, ok := (Prefs{}).Threshold(); ok {
		t.Fatal("Threshold() ok = true for empty level")
	}
}

func TestLoad_InvalidLevelIsEmpty(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Nord\"\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := p.Threshold(); ok {
		t.Fatal("Threshold() ok = true for invalid level")
	}
}
