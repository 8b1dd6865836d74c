// Package output opens the writer rendered lines are sent to.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation bounds the size and age of a file sink. Zero values fall back to
// lumberjack's defaults (100 MB, keep everything).
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// IsTerminal reports whether path selects standard output.
func IsTerminal(path string) bool {
	path = strings.TrimSpace(path)
	return path == "" || path == "-"
}

// Open returns stdout for an empty path or "-", otherwise a rotating file.
func Open(path string, rot Rotation) (io.WriteCloser, error) {
	if IsTerminal(path) {
		return nopCloser{os.Stdout}, nil
	}
	path = strings.TrimSpace(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rot.MaxSizeMB,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAgeDays,
		Compress:   rot.Compress,
		LocalTime:  true,
	}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
