package app

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/tailback/internal/record"
	"github.com/five82/tailback/internal/state"
)

// StartReader launches a goroutine that decodes records into store until
// the stream ends, an end marker arrives, or ctx is cancelled. The returned
// channel is closed once the goroutine has exited.
func StartReader(ctx context.Context, store *state.Store, dec *record.Decoder, logger *log.Logger) <-chan struct{} {
	if logger == nil {
		logger = log.Default()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer store.Finish()

		for ctx.Err() == nil {
			rec, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			var decErr *record.DecodeError
			if errors.As(err, &decErr) {
				store.Fail(err, true)
				logger.Debug("skipping record", "err", err)
				continue
			}
			if err != nil {
				if ctx.Err() == nil {
					store.Fail(err, false)
					logger.Error("read failed", "err", err)
				}
				return
			}
			store.Append(rec)
			if rec.IsEndMarker() {
				logger.Debug("end marker received", "marker", rec.Marker.Name)
				return
			}
		}
	}()
	return done
}
