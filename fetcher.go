package wikiwords

import "context"

// Fetcher retrieves the markup of a named page.
type Fetcher interface {
	// Fetch returns the markup for the page. A page that cannot be
	// retrieved returns EUNAVAILABLE; batch operations skip such pages
	// rather than abort.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, page string) (markup string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
