// Package fs provides file-based persistence for frequency distributions.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiwords"
)

// Ensure Writer implements wikiwords.DistributionWriter at compile time.
var _ wikiwords.DistributionWriter = (*Writer)(nil)

// Writer writes distributions as indented JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write if it does not exist.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDistribution writes dist to <baseDir>/<page>.json as a flat JSON
// object mapping words to values.
func (w *Writer) WriteDistribution(_ context.Context, page string, dist *wikiwords.Distribution) error {
	if page == "" {
		return wikiwords.Errorf(wikiwords.EINVALID, "page name required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(dist, "", " ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.baseDir, page+".json"), data, 0644)
}
