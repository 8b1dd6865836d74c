// tailback renders structured logback records as readable terminal lines.
//
// Usage:
//
//	tailback [options]
//
// Records are read from --file, or from a TCP socket (default
// localhost:6750) that is retried every 200ms until a server accepts.
//
// Exit codes:
//
//	0: success
//	1: runtime failure (missing file, unreadable config, write error)
//	2: usage error (unknown flag, invalid level)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/five82/tailback/internal/app"
	"github.com/five82/tailback/internal/severity"
)

// Version can be overridden with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

// usageError marks errors that map to exit code 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "tailback: %v\n", err)
		var usage *usageError
		if errors.As(err, &usage) {
			return 2
		}
		return 1
	}
	return 0
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "tailback",
		Usage:     "render logback records as readable log lines",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path (default ~/.config/tailback/config.toml)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read records from a file instead of the socket",
			},
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"H"},
				Usage:   "record server host",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "record server port",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "minimum level shown: trace, debug, info, warn or error",
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "logger column width; 0 prints names in full",
			},
			&cli.IntFlag{
				Name:    "tail",
				Aliases: []string{"n"},
				Usage:   "replay only the last N records of --file",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write rendered lines to a rotating file ('-' for stdout)",
			},
			&cli.UintFlag{
				Name:  "attempts",
				Usage: "give up after N connection attempts (0 retries forever)",
			},
			&cli.BoolFlag{
				Name:  "utc",
				Usage: "print timestamps in UTC",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "open the interactive viewer",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable styled output",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log diagnostics at debug level",
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err: err}
		},
		// Exit codes are mapped in run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return &usageError{err: fmt.Errorf("unexpected argument %q", cmd.Args().First())}
			}
			opts, err := optionsFromCommand(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			return app.Run(ctx, opts)
		},
	}
}

func optionsFromCommand(cmd *cli.Command, stdout, stderr io.Writer) (app.Options, error) {
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "tailback"})
	if cmd.Bool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}

	opts := app.Options{
		ConfigPath:  cmd.String("config"),
		File:        cmd.String("file"),
		Host:        cmd.String("host"),
		Port:        int(cmd.Int("port")),
		Tail:        int(cmd.Int("tail")),
		Output:      cmd.String("out"),
		UTC:         cmd.Bool("utc"),
		NoColor:     cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "",
		Interactive: cmd.Bool("interactive"),
		MaxAttempts: uint(cmd.Uint("attempts")),
		Stdout:      stdout,
		Logger:      logger,
	}

	if cmd.IsSet("level") {
		level, err := severity.Parse(cmd.String("level"))
		if err != nil {
			return app.Options{}, &usageError{err: err}
		}
		opts.Level = &level
	}
	if cmd.IsSet("width") {
		width := int(cmd.Int("width"))
		if width < 0 {
			return app.Options{}, &usageError{err: fmt.Errorf("invalid width %d", width)}
		}
		opts.LoggerWidth = &width
	}
	if opts.Tail < 0 {
		return app.Options{}, &usageError{err: fmt.Errorf("invalid tail %d", opts.Tail)}
	}
	return opts, nil
}
