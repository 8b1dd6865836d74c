package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/tailback/internal/record"
	"github.com/five82/tailback/internal/render"
)

// Stats summarises a stream run.
type Stats struct {
	Read   int // records decoded
	Shown  int // records that passed the filter
	Errors int // malformed lines skipped
}

// Stream decodes records, writes the ones that pass filter to w, and stops
// at end of input, after a record carrying an end marker, or when ctx is
// cancelled. Malformed lines are logged and skipped.
func Stream(ctx context.Context, dec *record.Decoder, w io.Writer, filter record.Filter, r render.Renderer, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.Default()
	}
	var stats Stats
	for ctx.Err() == nil {
		rec, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		var decErr *record.DecodeError
		if errors.As(err, &decErr) {
			stats.Errors++
			logger.Warn("skipping record", "line", decErr.Line, "err", decErr.Err)
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return stats, err
		}

		stats.Read++
		if filter.Match(rec) {
			if _, err := fmt.Fprintln(w, r.Render(rec)); err != nil {
				return stats, fmt.Errorf("write record: %w", err)
			}
			stats.Shown++
		}
		if rec.IsEndMarker() {
			logger.Infof("Read %d messages", stats.Read)
			return stats, nil
		}
	}
	return stats, nil
}
