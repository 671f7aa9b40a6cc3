package usecase

import (
	"strings"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/textutil"
)

// NormalizeQuery canonicalizes a search term: trimmed, lower-cased and with
// diacritics removed. Whitespace runs collapse to a single space.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(textutil.Fold(query)), " ")
}

// MatchesQuery reports whether a normalized query is a case-insensitive
// substring of the item's name, brand, scent family, notes, seasons or
// occasions. An empty query matches every item.
func MatchesQuery(query string, item domain.Fragrance) bool {
	if query == "" {
		return true
	}

	for _, field := range []string{item.Name, item.Brand, item.ScentFamily} {
		if containsFolded(field, query) {
			return true
		}
	}
	for _, note := range item.Notes {
		if containsFolded(note, query) {
			return true
		}
	}
	for _, season := range item.Season {
		if containsFolded(string(season), query) {
			return true
		}
	}
	for _, occasion := range item.Occasion {
		if containsFolded(string(occasion), query) {
			return true
		}
	}
	return false
}

// containsFolded folds text the same way queries are folded before the substring test
func containsFolded(text, foldedNeedle string) bool {
	if text == "" {
		return false
	}
	return strings.Contains(NormalizeQuery(text), foldedNeedle)
}
