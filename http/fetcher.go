// Package http provides an HTTP-based implementation of wikiwords.Fetcher
// that downloads pages by name from a wiki.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikiwords"
)

// DefaultBaseURL is the URL prefix page names are appended to.
const DefaultBaseURL = "https://en.wikipedia.org/wiki/"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wikiwords.Fetcher at compile time.
var _ wikiwords.Fetcher = (*Fetcher)(nil)

// Fetcher downloads pages over HTTP by appending the page name to a base
// URL.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the URL prefix page names are appended to.
// Defaults to DefaultBaseURL (the English Wikipedia).
func WithBaseURL(base string) Option {
	return func(f *Fetcher) {
		f.baseURL = base
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch downloads the markup for the named page. Non-200 responses and
// transport failures return EUNAVAILABLE so that callers can skip the page;
// context cancellation is reported as-is.
func (f *Fetcher) Fetch(ctx context.Context, page string) (string, error) {
	u := f.baseURL + url.PathEscape(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", wikiwords.Errorf(wikiwords.EINVALID, "invalid page %q: %v", page, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", wikiwords.Errorf(wikiwords.EUNAVAILABLE, "fetch %s: %v", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wikiwords.Errorf(wikiwords.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, page)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikiwords.Errorf(wikiwords.EUNAVAILABLE, "read %s: %v", page, err)
	}

	return string(body), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
