package main

import (
	"context"
	"io"

	"github.com/fwojciec/wikiwords"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   wikiwords.Fetcher
	Extractor wikiwords.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Judge   JudgeCmd   `cmd:"" help:"Judge similarity between pages"`
	Save    SaveCmd    `cmd:"" help:"Save a page's word frequencies"`
	Compare CompareCmd `cmd:"" help:"Compare word extraction scopes on a page"`

	Verbose bool `short:"v" help:"Log fetch details"`
}

// JudgeCmd is the "judge" subcommand.
type JudgeCmd struct {
	Parse    string   `default:"body" enum:"raw,document,body,paragraph" help:"Scope to extract words under"`
	Wait     float64  `short:"w" default:"1" help:"Seconds to wait between downloads"`
	PageFile string   `short:"f" type:"existingfile" xor:"source" help:"File listing pages to sample three from"`
	Pages    []string `xor:"source" help:"Three pages to judge; the first is compared to the others"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Page      string `arg:"" help:"Name of page to load (not URL)"`
	Parse     string `default:"body" enum:"raw,document,body,paragraph" help:"Scope to extract words under"`
	Directory string `short:"d" default:"." help:"Directory to save word frequencies in"`
	Type      string `short:"t" default:"fraction" enum:"count,fraction" help:"Type of frequencies to save"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Page     string   `arg:"" help:"Name of page to load (not URL)"`
	Parsers  []string `default:"raw,document,body,paragraph" help:"Scopes to extract words under"`
	NumWords int      `short:"n" default:"20" help:"Number of most frequent words to display"`
}
