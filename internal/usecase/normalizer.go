package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/textutil"
)

// DecodeRawRecords parses a JSON catalog (an array of record objects).
// Any element that is not an object fails the whole decode with
// domain.ErrInvalidRecordShape.
func DecodeRawRecords(data []byte) ([]domain.RawRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: catalog must be a JSON array: %v", domain.ErrInvalidRecordShape, err)
	}

	records := make([]domain.RawRecord, 0, len(elements))
	for i, element := range elements {
		record, err := DecodeRawRecord(element)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeRawRecord parses a single catalog record object
func DecodeRawRecord(element json.RawMessage) (domain.RawRecord, error) {
	trimmed := bytes.TrimSpace(element)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.RawRecord{}, fmt.Errorf("%w: expected object", domain.ErrInvalidRecordShape)
	}
	var record domain.RawRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return domain.RawRecord{}, fmt.Errorf("%w: %v", domain.ErrInvalidRecordShape, err)
	}
	return record, nil
}

// NormalizeCatalog normalizes every record and makes slugs unique across
// the catalog. Records keep their source order.
func NormalizeCatalog(records []domain.RawRecord) []domain.Fragrance {
	items := make([]domain.Fragrance, len(records))
	for i, record := range records {
		items[i] = NormalizeRecord(record, i)
	}
	dedupeSlugs(items)
	return items
}

// NormalizeRecord fills every missing field of a raw record. Values already
// present on the record always win over inferred ones, so normalizing a
// normalized record is a no-op.
func NormalizeRecord(raw domain.RawRecord, index int) domain.Fragrance {
	id := raw.ID
	if id == "" {
		id = domain.ItemID(strconv.Itoa(index + 1))
	}

	accords := buildAccords(raw)
	name := strings.TrimSpace(raw.Name)

	item := domain.Fragrance{
		ID:            id,
		Slug:          buildSlug(raw.Slug, name, id),
		Name:          orUnknown(name),
		Brand:         orUnknown(raw.Brand),
		Type:          orUnknown(raw.Type),
		Country:       orUnknown(raw.Country),
		ScentFamily:   buildScentFamily(raw.ScentFamily, accords),
		GenderProfile: orUnknown(firstNonEmpty(raw.GenderProfile, raw.Gender)),
		Notes:         buildNotes(raw),
		Accords:       accords,
		Intensity:     InferIntensity(accords, domain.Intensity(strings.TrimSpace(raw.Intensity))),
		Longevity:     InferLongevity(accords, domain.Longevity(strings.TrimSpace(raw.Longevity))),
		Image:         orUnknown(raw.Image),
		PriceRange:    orUnknown(raw.PriceRange),
		Rating:        float64(raw.Rating),
		RatingCount:   int(raw.RatingCount),
		Year:          orUnknown(string(raw.Year)),
		Perfumer:      buildPerfumer(raw),
		Description:   orUnknown(raw.Description),
	}

	if seasons := compact(raw.Season); len(seasons) > 0 {
		item.Season = make([]domain.Season, len(seasons))
		for i, s := range seasons {
			item.Season[i] = domain.Season(s)
		}
	} else {
		item.Season = []domain.Season{InferSeason(accords, "")}
	}

	if occasions := compact(raw.Occasion); len(occasions) > 0 {
		item.Occasion = make([]domain.Occasion, len(occasions))
		for i, o := range occasions {
			item.Occasion[i] = domain.Occasion(o)
		}
	} else {
		item.Occasion = []domain.Occasion{InferOccasion(accords, "")}
	}

	return item
}

// buildAccords prefers an explicit accords array and otherwise collects the
// non-empty positional mainaccord columns.
func buildAccords(raw domain.RawRecord) []string {
	source := raw.Accords
	if source == nil {
		source = raw.MainAccords()
	}
	accords := compact(source)
	if len(accords) > domain.MaxAccords {
		accords = accords[:domain.MaxAccords]
	}
	if accords == nil {
		accords = []string{}
	}
	return accords
}

// buildNotes prefers an explicit notes array and otherwise concatenates the
// top, middle and base lists, keeping the first five.
func buildNotes(raw domain.RawRecord) []string {
	if raw.Notes != nil {
		notes := compact(raw.Notes)
		if notes == nil {
			notes = []string{}
		}
		return notes
	}

	var notes []string
	for _, layer := range []string{raw.Top, raw.Middle, raw.Base} {
		notes = append(notes, compact(strings.Split(layer, ","))...)
	}
	if len(notes) > domain.MaxNotes {
		notes = notes[:domain.MaxNotes]
	}
	if notes == nil {
		notes = []string{}
	}
	return notes
}

func buildSlug(existing, name string, id domain.ItemID) string {
	if slug := strings.TrimSpace(existing); slug != "" {
		return slug
	}
	if slug := textutil.Slugify(name); slug != "" {
		return slug
	}
	return fallbackSlug(id)
}

func fallbackSlug(id domain.ItemID) string {
	if slug := textutil.Slugify(string(id)); slug != "" {
		return "item-" + slug
	}
	return "item"
}

// dedupeSlugs suffixes repeated slugs with the item id so that every slug in
// a snapshot is unique. Already-unique catalogs are left untouched.
func dedupeSlugs(items []domain.Fragrance) {
	seen := make(map[string]bool, len(items))
	for i := range items {
		slug := items[i].Slug
		if !seen[slug] {
			seen[slug] = true
			continue
		}
		candidate := slug + "-" + textutil.Slugify(string(items[i].ID))
		for n := 2; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s-%s-%d", slug, textutil.Slugify(string(items[i].ID)), n)
		}
		items[i].Slug = candidate
		seen[candidate] = true
	}
}

// buildScentFamily keeps a curated family and otherwise promotes the dominant accord
func buildScentFamily(existing string, accords []string) string {
	if family := strings.TrimSpace(existing); family != "" {
		return family
	}
	if len(accords) > 0 {
		return textutil.Title(accords[0])
	}
	return domain.UnknownValue
}

func buildPerfumer(raw domain.RawRecord) string {
	if p := strings.TrimSpace(raw.Perfumer); p != "" {
		return p
	}
	var names []string
	for _, p := range []string{raw.Perfumer1, raw.Perfumer2} {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, "unknown") {
			continue
		}
		names = append(names, textutil.Humanize(p))
	}
	if len(names) == 0 {
		return domain.UnknownValue
	}
	return strings.Join(names, " & ")
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return domain.UnknownValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// compact trims entries and drops empty ones
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
