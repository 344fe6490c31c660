// Package zerolog provides logging decorators for jwnews interfaces.
// The extraction core never logs; callers wrap the collaborators they
// construct.
package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/jwnews"
	"github.com/rs/zerolog"
)

// Ensure LoggingFetcher implements jwnews.Fetcher.
var _ jwnews.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-fetch logging.
type LoggingFetcher struct {
	next   jwnews.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jwnews.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info().
			Str("url", url).
			Int("bytes", len(html)).
			Dur("duration", time.Since(begin)).
			Err(err).
			Msg("fetch")
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
