package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/wikiwords"
	"github.com/fwojciec/wikiwords/compare"
)

// Run executes the judge command.
func (c *JudgeCmd) Run(deps *Dependencies) error {
	scope, err := wikiwords.ParseScope(c.Parse)
	if err != nil {
		return err
	}

	pages := c.Pages
	if c.PageFile != "" {
		pages, err = samplePages(c.PageFile, 3)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
			return err
		}
	}
	if len(pages) < 3 {
		err := wikiwords.Errorf(wikiwords.EINVALID, "judging requires three pages, got %d", len(pages))
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
		return err
	}

	comparator := &compare.Comparator{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Scope:     scope,
		Wait:      time.Duration(c.Wait * float64(time.Second)),
	}

	progress := func(event compare.Event) {
		if event.Type == compare.EventSkipped {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Page, wikiwords.ErrorMessage(event.Err))
		}
	}

	judgment, err := comparator.Judge(deps.Ctx, pages, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiwords.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, wikiwords.FormatJudgment(judgment))
	return nil
}

// samplePages reads page names from a file, one per line, and picks n of
// them at random.
func samplePages(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var pages []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if page := strings.TrimSpace(scanner.Text()); page != "" {
			pages = append(pages, page)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pages) < n {
		return nil, wikiwords.Errorf(wikiwords.EINVALID, "page file lists %d pages, need %d", len(pages), n)
	}

	rand.Shuffle(len(pages), func(i, j int) { pages[i], pages[j] = pages[j], pages[i] })
	return pages[:n], nil
}
