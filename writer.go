package wikiwords

import "context"

// DistributionWriter persists a page's frequency distribution.
type DistributionWriter interface {
	// WriteDistribution stores dist under the page's name.
	WriteDistribution(ctx context.Context, page string, dist *Distribution) error
}
