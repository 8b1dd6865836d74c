package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/tailback/internal/config"
	"github.com/five82/tailback/internal/logtail"
	"github.com/five82/tailback/internal/output"
	"github.com/five82/tailback/internal/prefs"
	"github.com/five82/tailback/internal/record"
	"github.com/five82/tailback/internal/render"
	"github.com/five82/tailback/internal/severity"
	"github.com/five82/tailback/internal/source"
	"github.com/five82/tailback/internal/state"
	"github.com/five82/tailback/internal/ui"
)

const defaultRefresh = 250 * time.Millisecond

// Options configure a tailback run. Zero values defer to the config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/tailback/prefs.toml
	File        string
	Host        string
	Port        int
	Level       *severity.Level
	LoggerWidth *int
	Tail        int // replay only the last N lines of File
	Output      string
	UTC         bool
	NoColor     bool
	Interactive bool
	MaxAttempts uint // socket connect attempts; zero retries forever

	// Stdout replaces os.Stdout when output goes to the terminal.
	Stdout io.Writer
	Logger *log.Logger
}

// Run reads records from the selected source and renders them until the
// source is exhausted, an end marker arrives, or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srcOpts := source.Options{
		File:        opts.File,
		Host:        cfg.Host,
		Port:        cfg.Port,
		MaxAttempts: opts.MaxAttempts,
		Logger:      logger,
	}
	rc, err := openSource(ctx, srcOpts, opts.Tail, logger)
	if err != nil {
		return err
	}
	defer rc.Close()
	// Closing the stream unblocks a pending read once ctx is done.
	stop := context.AfterFunc(ctx, func() { _ = rc.Close() })
	defer stop()

	dec := record.NewDecoder(rc)
	renderer := render.New(cfg.LoggerWidth, !opts.NoColor)
	renderer.UTC = cfg.UTC

	if opts.Interactive {
		return runInteractive(ctx, cancel, cfg, opts, srcOpts, dec, renderer, logger)
	}

	var w io.WriteCloser
	if output.IsTerminal(cfg.Output.Path) && opts.Stdout != nil {
		w = nopWriteCloser{opts.Stdout}
	} else {
		w, err = output.Open(cfg.Output.Path, cfg.Output.Rotation)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
	}
	defer w.Close()
	if !output.IsTerminal(cfg.Output.Path) {
		renderer.Color = false
	}

	stats, err := Stream(ctx, dec, w, record.Filter{Threshold: cfg.Level}, renderer, logger)
	logger.Debug("stream finished", "read", stats.Read, "shown", stats.Shown, "skipped", stats.Errors)
	return err
}

func runInteractive(ctx context.Context, cancel context.CancelFunc, cfg config.Config, opts Options, srcOpts source.Options, dec *record.Decoder, renderer render.Renderer, logger *log.Logger) error {
	userPrefs, _ := prefs.Load(opts.PrefsPath)
	threshold, theme := viewerSettings(cfg, opts, userPrefs)

	store := &state.Store{Capacity: cfg.Buffer}
	done := StartReader(ctx, store, dec, logger)

	err := ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Renderer:  renderer,
		Threshold: threshold,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
		Source:    srcOpts.Describe(),
		PollTick:  defaultRefresh,
	})
	cancel()
	<-done
	return err
}

// viewerSettings picks the viewer's starting threshold and theme. Saved
// preferences win over the config file; an explicit --level wins over both.
func viewerSettings(cfg config.Config, opts Options, userPrefs prefs.Prefs) (severity.Level, string) {
	threshold := cfg.Level
	if opts.Level == nil {
		if remembered, ok := userPrefs.Threshold(); ok {
			threshold = remembered
		}
	}
	theme := cfg.Theme
	if userPrefs.Theme != "" {
		theme = userPrefs.Theme
	}
	return threshold, theme
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}
	if opts.Level != nil {
		cfg.Level = *opts.Level
	}
	if opts.LoggerWidth != nil {
		cfg.LoggerWidth = *opts.LoggerWidth
	}
	if opts.Output != "" {
		cfg.Output.Path = config.ResolveOutput(opts.Output)
	}
	if opts.UTC {
		cfg.UTC = true
	}
}

func openSource(ctx context.Context, opts source.Options, tail int, logger *log.Logger) (io.ReadCloser, error) {
	if tail > 0 {
		if opts.File == "" {
			logger.Warn("--tail only applies to record files; reading the socket from its start")
		} else {
			if _, err := os.Stat(opts.File); err != nil {
				return nil, fmt.Errorf("open record file: %w", err)
			}
			r, err := logtail.Reader(opts.File, tail)
			if err != nil {
				return nil, fmt.Errorf("tail %s: %w", opts.File, err)
			}
			return io.NopCloser(r), nil
		}
	}
	rc, err := source.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return rc, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
