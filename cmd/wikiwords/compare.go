package main

import (
	"fmt"

	"github.com/fwojciec/wikiwords"
	"github.com/fwojciec/wikiwords/compare"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	scopes := make([]wikiwords.Scope, 0, len(c.Parsers))
	for _, name := range c.Parsers {
		scope, err := wikiwords.ParseScope(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
			return err
		}
		scopes = append(scopes, scope)
	}

	comparator := &compare.Comparator{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
	}

	counts, err := comparator.CompareScopes(deps.Ctx, c.Page, scopes)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
		return err
	}

	for _, sc := range counts {
		fmt.Fprintln(deps.Stdout, wikiwords.FormatTop(sc.Scope.String(), sc.Dist, c.NumWords))
	}
	return nil
}
