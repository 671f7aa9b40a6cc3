// Package dataset reads raw fragrance records from dataset files and writes
// normalized catalog snapshots.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/textutil"
)

// CSV column names as they appear in the fragrance dataset header
const (
	ColumnPerfume     = "perfume"
	ColumnBrand       = "brand"
	ColumnCountry     = "country"
	ColumnGender      = "gender"
	ColumnRatingValue = "rating value"
	ColumnRatingCount = "rating count"
	ColumnYear        = "year"
	ColumnTop         = "top"
	ColumnMiddle      = "middle"
	ColumnBase        = "base"
	ColumnPerfumer1   = "perfumer1"
	ColumnPerfumer2   = "perfumer2"
)

// CSVSource reads the semicolon separated fragrance dataset
type CSVSource struct {
	path  string
	limit int
}

// NewCSVSource creates a source for the CSV file at path. A positive limit
// caps the number of rows read.
func NewCSVSource(path string, limit int) *CSVSource {
	return &CSVSource{path: path, limit: limit}
}

// Name labels the source with the file's base name
func (s *CSVSource) Name() string {
	return "csv:" + filepath.Base(s.path)
}

// Fingerprint changes whenever the file, its location or the row limit changes
func (s *CSVSource) Fingerprint() (string, error) {
	return fileFingerprint(s.path, "limit", strconv.Itoa(s.limit))
}

// Load opens the file and parses every data row
func (s *CSVSource) Load(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f, s.limit)
}

// ReadCSV parses a semicolon separated dataset with a header row. Header
// names are matched case-insensitively; only the Perfume column is required.
func ReadCSV(ctx context.Context, r io.Reader, limit int) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSV, err)
	}

	columns := indexColumns(header)
	if _, ok := columns[ColumnPerfume]; !ok {
		return nil, fmt.Errorf("%w: missing %q column", domain.ErrInvalidCSV, "Perfume")
	}

	var records []domain.RawRecord
	for line := 2; limit <= 0 || len(records) < limit; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidCSV, line, err)
		}

		record := mapRow(columns, row, len(records))
		if record.Name == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// indexColumns maps lower-cased header names to their positions
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		// Excel exports prefix the first header with a byte order mark
		name = strings.TrimPrefix(name, "\ufeff")
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}
	return columns
}

// mapRow converts one dataset row to a raw record. Identifiers in the dataset
// are hyphenated ("tom-ford"), so names are humanized for display.
func mapRow(columns map[string]int, row []string, index int) domain.RawRecord {
	get := func(column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return domain.RawRecord{
		ID:          domain.ItemID(fmt.Sprint(index + 1)),
		Name:        textutil.Humanize(get(ColumnPerfume)),
		Brand:       textutil.Humanize(get(ColumnBrand)),
		Country:     get(ColumnCountry),
		Gender:      textutil.Title(get(ColumnGender)),
		Rating:      domain.FlexFloat(domain.ParseRating(get(ColumnRatingValue))),
		RatingCount: domain.FlexInt(domain.ParseCount(get(ColumnRatingCount))),
		Year:        domain.FlexString(get(ColumnYear)),
		Top:         get(ColumnTop),
		Middle:      get(ColumnMiddle),
		Base:        get(ColumnBase),
		Perfumer1:   get(ColumnPerfumer1),
		Perfumer2:   get(ColumnPerfumer2),
		MainAccord1: get("mainaccord1"),
		MainAccord2: get("mainaccord2"),
		MainAccord3: get("mainaccord3"),
		MainAccord4: get("mainaccord4"),
		MainAccord5: get("mainaccord5"),
	}
}
