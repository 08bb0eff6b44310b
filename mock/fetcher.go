package mock

import (
	"context"

	"github.com/fwojciec/wikiwords"
)

var _ wikiwords.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikiwords.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, page string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, page string) (string, error) {
	return f.FetchFn(ctx, page)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
