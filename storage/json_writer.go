package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"redfin-scraper/models"
)

// JSONWriter persists the monthly series as an indented JSON object — the
// run's primary artifact. Intermediate directories are created up front so
// a failure surfaces before any scraping happens.
type JSONWriter struct {
	path string
}

// NewJSONWriter prepares a writer targeting the given path.
func NewJSONWriter(path string) (*JSONWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("json: create output dir: %w", err)
		}
	}
	return &JSONWriter{path: path}, nil
}

// Write marshals the series with 2-space indentation and replaces the file.
func (w *JSONWriter) Write(_ models.LocationQuery, series models.MonthlySeries) error {
	data, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return fmt.Errorf("json: marshal series: %w", err)
	}
	if err := os.WriteFile(w.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", w.path, err)
	}
	return nil
}

// Close is a no-op; the file is written whole in Write.
func (w *JSONWriter) Close() error { return nil }
