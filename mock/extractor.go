package mock

import (
	"iter"

	"github.com/fwojciec/wikiwords"
)

var _ wikiwords.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikiwords.Extractor.
type Extractor struct {
	ExtractFn func(markup string, scope wikiwords.Scope) (iter.Seq[string], error)
}

func (e *Extractor) Extract(markup string, scope wikiwords.Scope) (iter.Seq[string], error) {
	return e.ExtractFn(markup, scope)
}
