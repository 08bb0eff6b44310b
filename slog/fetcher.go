// Package slog provides logging decorators for wikiwords interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikiwords"
)

// Ensure LoggingFetcher implements wikiwords.Fetcher at compile time.
var _ wikiwords.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch.
type LoggingFetcher struct {
	next   wikiwords.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikiwords.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome: page,
// duration and a content digest on success, the error code on failure.
func (f *LoggingFetcher) Fetch(ctx context.Context, page string) (string, error) {
	begin := time.Now()
	markup, err := f.next.Fetch(ctx, page)
	if err != nil {
		f.logger.Warn("page fetch failed",
			"page", page,
			"code", wikiwords.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Info("page fetch",
		"page", page,
		"bytes", len(markup),
		"digest", fmt.Sprintf("%016x", xxhash.Sum64String(markup)),
		"duration", time.Since(begin),
	)
	return markup, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
