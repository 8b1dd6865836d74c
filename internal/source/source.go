// Package source opens the byte stream that records are decoded from: a
// record file or a TCP socket served by a logback socket appender bridge.
package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/charmbracelet/log"
)

const (
	DefaultHost       = "localhost"
	DefaultPort       = 6750
	DefaultRetryDelay = 200 * time.Millisecond
)

// DialFunc opens a network connection.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options select and tune the record source. File takes precedence over
// Host and Port.
type Options struct {
	File        string
	Host        string
	Port        int
	RetryDelay  time.Duration
	MaxAttempts uint // zero keeps retrying until ctx is done
	Dial        DialFunc
	Logger      *log.Logger
}

// Describe returns a short label for the source, used in status lines.
func (o Options) Describe() string {
	if o.File != "" {
		return o.File
	}
	return o.address()
}

func (o Options) address() string {
	host := o.Host
	if host == "" {
		host = DefaultHost
	}
	port := o.Port
	if port <= 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Open returns the record stream. For sockets it keeps dialling every
// RetryDelay until the server accepts, ctx is cancelled, or MaxAttempts is
// reached.
func Open(ctx context.Context, opts Options) (io.ReadCloser, error) {
	if opts.File != "" {
		file, err := os.Open(opts.File)
		if err != nil {
			return nil, fmt.Errorf("open record file: %w", err)
		}
		return file, nil
	}
	return dial(ctx, opts)
}

func dial(ctx context.Context, opts Options) (io.ReadCloser, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	dialFn := opts.Dial
	if dialFn == nil {
		var d net.Dialer
		dialFn = d.DialContext
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	addr := opts.address()
	retryOpts := []retry.Option{
		retry.Context(ctx),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("waiting for server", "addr", addr, "attempt", n+1, "err", err)
		}),
	}
	if opts.MaxAttempts == 0 {
		retryOpts = append(retryOpts, retry.UntilSucceeded())
	} else {
		retryOpts = append(retryOpts, retry.Attempts(opts.MaxAttempts))
	}

	var conn net.Conn
	err := retry.New(retryOpts...).Do(func() error {
		c, err := dialFn(ctx, "tcp", addr)
		if err != nil {
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	logger.Info("connected to server", "addr", addr)
	return conn, nil
}
