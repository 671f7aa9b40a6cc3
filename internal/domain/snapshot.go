package domain

import (
	"slices"
	"time"
)

// Snapshot is an immutable, normalized catalog. It is safe to share between
// concurrent readers; callers must not modify the items it hands out.
type Snapshot struct {
	items    []Fragrance
	bySlug   map[string]int
	Source   string
	LoadedAt time.Time
}

// NewSnapshot indexes normalized items in catalog order
func NewSnapshot(source string, items []Fragrance) *Snapshot {
	bySlug := make(map[string]int, len(items))
	for i, item := range items {
		if _, exists := bySlug[item.Slug]; !exists {
			bySlug[item.Slug] = i
		}
	}
	return &Snapshot{
		items:    slices.Clone(items),
		bySlug:   bySlug,
		Source:   source,
		LoadedAt: time.Now(),
	}
}

// Items returns the catalog in original order
func (s *Snapshot) Items() []Fragrance {
	return slices.Clone(s.items)
}

// Len returns the number of items
func (s *Snapshot) Len() int {
	return len(s.items)
}

// BySlug looks up a fragrance by its slug
func (s *Snapshot) BySlug(slug string) (Fragrance, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Fragrance{}, false
	}
	return s.items[i], true
}
