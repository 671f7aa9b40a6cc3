package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/usecase"
)

// JSONSource reads a catalog snapshot file: an array of record objects
type JSONSource struct {
	path string
}

// NewJSONSource creates a source for the JSON catalog at path
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Name labels the source with the file's base name
func (s *JSONSource) Name() string {
	return "json:" + filepath.Base(s.path)
}

// Fingerprint changes whenever the file or its location changes
func (s *JSONSource) Fingerprint() (string, error) {
	return fileFingerprint(s.path)
}

// Load reads and decodes the whole file
func (s *JSONSource) Load(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	records, err := usecase.DecodeRawRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

// WriteCatalog encodes normalized items as an indented JSON array
func WriteCatalog(w io.Writer, items []domain.Fragrance) error {
	if items == nil {
		items = []domain.Fragrance{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// WriteCatalogFile writes the catalog to path, replacing it atomically so a
// reader never sees a partially written snapshot.
func WriteCatalogFile(path string, items []domain.Fragrance) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCatalog(tmp, items); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// NewSource picks the catalog source for a configured format
func NewSource(format, path string) (domain.CatalogSource, error) {
	switch format {
	case "", "json":
		return NewJSONSource(path), nil
	case "csv":
		return NewCSVSource(path, 0), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}
