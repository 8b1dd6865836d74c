package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const records = `{"message":"Loaded {} shelves","arguments":["3"],"loggerName":"uk.ac.diamond.daq.persistence.jythonshelf","level":30000,"timeStamp":1765620672042}
{"message":"ignored","loggerName":"uk.ac.diamond.daq.Scan","level":10000,"timeStamp":1765620672043}
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write records: %v", err)
	}
	return path
}

func TestRun_ExitCodes(t *testing.T) {
	file := writeFile(t, records)
	config := filepath.Join(t.TempDir(), "none.toml")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"ok", []string{"--config", config, "-f", file, "--no-color"}, 0},
		{"bad_level", []string{"--config", config, "-f", file, "--level", "loud"}, 2},
		{"unknown_flag", []string{"--bogus"}, 2},
		{"negative_width", []string{"--config", config, "-f", file, "--width=-3"}, 2},
		{"stray_argument", []string{"--config", config, "extra"}, 2},
		{"missing_file", []string{"--config", config, "-f", filepath.Join(t.TempDir(), "nope")}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(append([]string{"tailback"}, tc.args...), &stdout, &stderr)
			if got != tc.want {
				t.Fatalf("run(%v) = %d, want %d\nstderr: %s", tc.args, got, tc.want, stderr.String())
			}
		})
	}
}

func TestRun_RendersRecords(t *testing.T) {
	file := writeFile(t, records)
	config := filepath.Join(t.TempDir(), "none.toml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"tailback", "--config", config, "-f", file, "-w", "20", "--utc", "--no-color"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	want := "2025-12-13 10:11:12.042 WARN  u.a.d.d.p.jythonshelf - Loaded 3 shelves\n"
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRun_LevelFlagIsCaseInsensitive(t *testing.T) {
	file := writeFile(t, records)
	config := filepath.Join(t.TempDir(), "none.toml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"tailback", "--config", config, "-f", file, "-l", " D ", "--no-color"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "ignored") {
		t.Fatalf("debug record missing at level d:\n%s", stdout.String())
	}
}

func TestRun_BadLevelMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"tailback", "--level", "loud"}, &stdout, &stderr)
	if !strings.Contains(stderr.String(), "unknown log level: loud") {
		t.Fatalf("stderr = %q, want unknown level message", stderr.String())
	}
}
