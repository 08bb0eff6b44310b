package mock

import (
	"context"

	"github.com/fwojciec/wikiwords"
)

var _ wikiwords.DistributionWriter = (*Writer)(nil)

// Writer is a mock implementation of wikiwords.DistributionWriter.
type Writer struct {
	WriteDistributionFn func(ctx context.Context, page string, dist *wikiwords.Distribution) error
}

func (w *Writer) WriteDistribution(ctx context.Context, page string, dist *wikiwords.Distribution) error {
	return w.WriteDistributionFn(ctx, page, dist)
}
