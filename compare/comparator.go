// Package compare orchestrates fetching, extraction, frequency modeling and
// distance computation to judge similarity between pages.
package compare

import (
	"context"
	"time"

	"github.com/fwojciec/wikiwords"
	"golang.org/x/time/rate"
)

// Event reports progress as pages are processed.
type Event struct {
	Type EventType
	Page string
	Err  error
}

// EventType indicates the type of progress event.
type EventType int

const (
	// EventFetched reports a page whose markup was retrieved.
	EventFetched EventType = iota

	// EventSkipped reports a page skipped because it was unavailable.
	EventSkipped
)

// ProgressFunc is a callback for reporting progress. May be nil.
type ProgressFunc func(event Event)

// Comparator builds frequency profiles for named pages and judges similarity
// between them. Pages are fetched sequentially, in order.
type Comparator struct {
	Fetcher   wikiwords.Fetcher
	Extractor wikiwords.Extractor

	// Scope selects the structural subset of each page to tokenize.
	Scope wikiwords.Scope

	// Wait is the minimum interval between consecutive fetches, so that the
	// source is not hammered. Zero disables pacing.
	Wait time.Duration
}

// Profiles fetches each page and builds its normalized frequency profile.
// Unavailable pages are skipped and reported through progress rather than
// failing the batch; any other error aborts. A fetched page with zero tokens
// under the comparator's scope is EINVALID: its counts cannot be normalized.
func (c *Comparator) Profiles(ctx context.Context, pages []string, progress ProgressFunc) ([]*wikiwords.Profile, error) {
	var limiter *rate.Limiter
	if c.Wait > 0 {
		limiter = rate.NewLimiter(rate.Every(c.Wait), 1)
	}

	profiles := make([]*wikiwords.Profile, 0, len(pages))
	for _, page := range pages {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		markup, err := c.Fetcher.Fetch(ctx, page)
		if err != nil {
			if wikiwords.ErrorCode(err) == wikiwords.EUNAVAILABLE {
				if progress != nil {
					progress(Event{Type: EventSkipped, Page: page, Err: err})
				}
				continue
			}
			return nil, err
		}
		if progress != nil {
			progress(Event{Type: EventFetched, Page: page})
		}

		tokens, err := c.Extractor.Extract(markup, c.Scope)
		if err != nil {
			return nil, err
		}
		dist, err := wikiwords.Count(tokens).Normalize()
		if err != nil {
			return nil, wikiwords.Errorf(wikiwords.EINVALID, "page %s has no words under scope %s", page, c.Scope)
		}

		profiles = append(profiles, &wikiwords.Profile{Name: page, Dist: dist})
	}
	return profiles, nil
}

// Judge fetches the first three named pages and judges which of the second
// and third is closer to the first. Fewer than three pages given, or fewer
// than three fetchable, is EINVALID: a judgment needs all three profiles.
func (c *Comparator) Judge(ctx context.Context, pages []string, progress ProgressFunc) (wikiwords.Judgment, error) {
	if len(pages) < 3 {
		return wikiwords.Judgment{}, wikiwords.Errorf(wikiwords.EINVALID, "judging requires three pages, got %d", len(pages))
	}
	pages = pages[:3]

	profiles, err := c.Profiles(ctx, pages, progress)
	if err != nil {
		return wikiwords.Judgment{}, err
	}
	if len(profiles) < 3 {
		return wikiwords.Judgment{}, wikiwords.Errorf(wikiwords.EINVALID, "judging requires three fetchable pages, got %d", len(profiles))
	}

	return wikiwords.Judge(profiles[0], profiles[1], profiles[2]), nil
}

// ScopeCount pairs a scope with the word counts extracted under it.
type ScopeCount struct {
	Scope wikiwords.Scope
	Dist  *wikiwords.Distribution
}

// CompareScopes fetches a page once and counts its words under each scope,
// in the order given, reusing the same markup across scopes.
func (c *Comparator) CompareScopes(ctx context.Context, page string, scopes []wikiwords.Scope) ([]ScopeCount, error) {
	markup, err := c.Fetcher.Fetch(ctx, page)
	if err != nil {
		return nil, err
	}

	counts := make([]ScopeCount, 0, len(scopes))
	for _, scope := range scopes {
		tokens, err := c.Extractor.Extract(markup, scope)
		if err != nil {
			return nil, err
		}
		counts = append(counts, ScopeCount{Scope: scope, Dist: wikiwords.Count(tokens)})
	}
	return counts, nil
}

// Save fetches a page, counts its words under the comparator's scope, and
// writes the distribution through w. When fractions is true the counts are
// normalized to fractions of the total first.
func (c *Comparator) Save(ctx context.Context, page string, fractions bool, w wikiwords.DistributionWriter) error {
	markup, err := c.Fetcher.Fetch(ctx, page)
	if err != nil {
		return err
	}

	tokens, err := c.Extractor.Extract(markup, c.Scope)
	if err != nil {
		return err
	}

	dist := wikiwords.Count(tokens)
	if fractions {
		if dist, err = dist.Normalize(); err != nil {
			return err
		}
	}

	return w.WriteDistribution(ctx, page, dist)
}
