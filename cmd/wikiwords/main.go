package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikiwords"
	"github.com/fwojciec/wikiwords/goquery"
	wikihttp "github.com/fwojciec/wikiwords/http"
	wikislog "github.com/fwojciec/wikiwords/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by all commands. Replaceable for end-to-end testing;
	// defaults to the Wikipedia HTTP fetcher wrapped with logging.
	Fetcher wikiwords.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiwords"),
		kong.Description("Inspect similarity between Wikipedia pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Fetcher == nil {
		level := slog.LevelWarn
		if cli.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		m.Fetcher = wikislog.NewLoggingFetcher(wikihttp.NewFetcher(), logger)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   m.Fetcher,
		Extractor: goquery.NewExtractor(),
	}

	return kctx.Run(deps)
}
