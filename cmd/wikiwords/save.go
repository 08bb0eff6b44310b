package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/wikiwords"
	"github.com/fwojciec/wikiwords/compare"
	"github.com/fwojciec/wikiwords/fs"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	scope, err := wikiwords.ParseScope(c.Parse)
	if err != nil {
		return err
	}

	comparator := &compare.Comparator{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Scope:     scope,
	}
	writer := fs.NewWriter(c.Directory)

	if err := comparator.Save(deps.Ctx, c.Page, c.Type == "fraction", writer); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s frequencies for %q to %s\n",
		c.Type, c.Page, filepath.Join(c.Directory, c.Page+".json"))
	return nil
}
