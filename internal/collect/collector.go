// Package collect retrieves the full record set of a paginated history
// endpoint within a time window.
//
// The cursor protocol: request a page; a short page means the source is
// exhausted; otherwise the last record's identity becomes the next page's
// cursor. A hard page-count ceiling bounds the cost of a misbehaving
// endpoint, and a pacing delay between pages respects rate limits.
package collect

import (
	"context"
	"log/slog"
	"time"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
)

// Default pagination parameters. Pacing defaults to zero here; callers set
// it from configuration when talking to a real endpoint.
const (
	DefaultPageSize = 100
	DefaultMaxPages = 20
)

// PageFunc fetches one page of records for the given cursor.
type PageFunc func(ctx context.Context, cursor string, limit int) ([]bitget.Record, error)

// Options configures a collection run.
type Options struct {
	PageSize int
	MaxPages int
	Pacing   time.Duration
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.Pacing < 0 {
		o.Pacing = 0
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// All follows the cursor until the source is exhausted or the page ceiling
// is reached, deduplicating by record identity. Hitting the ceiling is soft
// termination, not an error; whatever was gathered is returned.
func All(ctx context.Context, fetch PageFunc, opts Options) ([]bitget.Record, error) {
	opts = opts.withDefaults()

	seen := make(map[string]struct{})
	var out []bitget.Record
	cursor := ""

	for page := 0; page < opts.MaxPages; page++ {
		if page > 0 && opts.Pacing > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.Pacing):
			}
		}

		records, err := fetch(ctx, cursor, opts.PageSize)
		if err != nil {
			return nil, err
		}

		for _, r := range records {
			id := Identity(r)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, r)
		}

		if len(records) < opts.PageSize {
			return out, nil
		}

		cursor = Identity(records[len(records)-1])
	}

	opts.Logger.Warn("pagination ceiling reached",
		"max_pages", opts.MaxPages,
		"collected", len(out),
	)
	return out, nil
}
