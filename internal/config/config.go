package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tailback/internal/output"
	"github.com/five82/tailback/internal/render"
	"github.com/five82/tailback/internal/severity"
	"github.com/five82/tailback/internal/source"
	"github.com/five82/tailback/internal/state"
)

// Config captures tailback's settings.
type Config struct {
	Host        string
	Port        int
	Level       severity.Level
	LoggerWidth int
	UTC         bool
	Buffer      int
	Theme       string
	Output      Output
}

// Output configures where stream mode writes rendered lines.
type Output struct {
	Path     string
	Rotation output.Rotation
}

const (
	defaultConfigPath = "~/.config/tailback/config.toml"
	defaultTheme      = "Dracula"
	defaultLevel      = severity.Info
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:        source.DefaultHost,
		Port:        source.DefaultPort,
		Level:       defaultLevel,
		LoggerWidth: render.DefaultLoggerWidth,
		Buffer:      state.DefaultCapacity,
		Theme:       defaultTheme,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Host        string `toml:"host"`
		Port        int    `toml:"port"`
		Level       string `toml:"level"`
		LoggerWidth *int   `toml:"logger_width"`
		UTC         bool   `toml:"utc"`
		Buffer      int    `toml:"buffer"`
		Theme       string `toml:"theme"`
		Output      struct {
			Path       string `toml:"path"`
			MaxSizeMB  int    `toml:"max_size_mb"`
			MaxBackups int    `toml:"max_backups"`
			MaxAgeDays int    `toml:"max_age_days"`
			Compress   bool   `toml:"compress"`
		} `toml:"output"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if host := strings.TrimSpace(raw.Host); host != "" {
		cfg.Host = host
	}
	if raw.Port > 0 {
		cfg.Port = raw.Port
	}
	if level := strings.TrimSpace(raw.Level); level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if raw.LoggerWidth != nil {
		cfg.LoggerWidth = *raw.LoggerWidth
	}
	cfg.UTC = raw.UTC
	if raw.Buffer > 0 {
		cfg.Buffer = raw.Buffer
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if out := strings.TrimSpace(raw.Output.Path); out != "" {
		cfg.Output.Path = ResolveOutput(out)
	}
	cfg.Output.Rotation = output.Rotation{
		MaxSizeMB:  raw.Output.MaxSizeMB,
		MaxBackups: raw.Output.MaxBackups,
		MaxAgeDays: raw.Output.MaxAgeDays,
		Compress:   raw.Output.Compress,
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// ResolveOutput expands "~" in an output path and makes it absolute.
// Blank and "-" select stdout and are returned unchanged.
func ResolveOutput(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return path
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
