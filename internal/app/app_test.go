package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/five82/tailback/internal/config"
	"github.com/five82/tailback/internal/prefs"
	"github.com/five82/tailback/internal/severity"
)

func writeRecords(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "records.jsonl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write records: %v", err)
	}
	return path
}

func baseOptions(t *testing.T, dir string) Options {
	t.Helper()
	width := 10
	return Options{
		ConfigPath:  filepath.Join(dir, "missing.toml"),
		PrefsPath:   filepath.Join(dir, "prefs.toml"),
		LoggerWidth: &width,
		UTC:         true,
		NoColor:     true,
		Logger:      log.New(io.Discard),
	}
}

func TestRun_FileToStdout(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	opts := baseOptions(t, dir)
	opts.File = writeRecords(t, dir, sessionRecords)
	opts.Stdout = &out

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", got, out.String())
	}
	if !strings.HasPrefix(out.String(), "2024-11-30 20:53:20.123 INFO  u.a.d.d.Loader - Loaded 3 of null\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRun_LevelOverride(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	level := severity.Warn
	opts := baseOptions(t, dir)
	opts.File = writeRecords(t, dir, sessionRecords)
	opts.Stdout = &out
	opts.Level = &level

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); !strings.HasSuffix(got, "disk 91% full") || strings.Contains(got, "\n") {
		t.Fatalf("output = %q, want only the warning", got)
	}
}

func TestRun_ConfigLevelApplies(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	opts := baseOptions(t, dir)
	opts.ConfigPath = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(opts.ConfigPath, []byte("level = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts.File = writeRecords(t, dir, sessionRecords)
	opts.Stdout = &out

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out.String(), "cache miss for scan-7") {
		t.Fatalf("debug record missing:\n%s", out.String())
	}
}

func TestRun_TailReplaysLastRecords(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	opts := baseOptions(t, dir)
	opts.File = writeRecords(t, dir, `{"message":"first","level":20000}
{"message":"second","level":20000}
{"message":"third","level":20000}
`)
	opts.Stdout = &out
	opts.Tail = 2

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "first") || !strings.Contains(got, "second") || !strings.Contains(got, "third") {
		t.Fatalf("tail output = %q, want the last two records", got)
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()

	opts := baseOptions(t, dir)
	opts.NoColor = false // file output never carries escape codes
	opts.File = writeRecords(t, dir, sessionRecords)
	opts.Output = filepath.Join(dir, "out", "rendered.log")

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	data, err := os.ReadFile(opts.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Fatalf("output file contains escape codes: %q", data)
	}
	if !strings.Contains(string(data), "session closed") {
		t.Fatalf("output file missing records:\n%s", data)
	}
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(t, dir)
	opts.File = filepath.Join(dir, "nope.jsonl")
	opts.Stdout = io.Discard

	err := Run(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "open record file") {
		t.Fatalf("err = %v, want open record file error", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(t, dir)
	opts.ConfigPath = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(opts.ConfigPath, []byte("level = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts.File = writeRecords(t, dir, sessionRecords)

	err := Run(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("err = %v, want load config error", err)
	}
}

func TestViewerSettings_ConfigThemeWithoutPrefsFile(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(t, dir)
	opts.ConfigPath = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(opts.ConfigPath, []byte("theme = \"Nord\"\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	threshold, theme := viewerSettings(cfg, opts, userPrefs)
	if theme != "Nord" {
		t.Fatalf("theme = %q, want Nord from config", theme)
	}
	if threshold != severity.Debug {
		t.Fatalf("threshold = %s, want DEBUG from config", threshold)
	}
}

func TestViewerSettings_PrefsAndFlagPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "Nord"
	warn := severity.Warn
	userPrefs := prefs.Prefs{Theme: "Dracula", Level: &warn}

	threshold, theme := viewerSettings(cfg, Options{}, userPrefs)
	if theme != "Dracula" || threshold != severity.Warn {
		t.Fatalf("got %s %q, want saved WARN Dracula", threshold, theme)
	}

	flag := severity.Error
	flagOpts := Options{Level: &flag}
	applyOverrides(&cfg, flagOpts)
	threshold, _ = viewerSettings(cfg, flagOpts, userPrefs)
	if threshold != severity.Error {
		t.Fatalf("threshold = %s, want ERROR from --level", threshold)
	}
}
