package usecase

import (
	"slices"
	"strings"

	"github.com/scentlens/backend/internal/domain"
)

// DefaultSuggestionLimit caps the number of slugs SuggestSlugs returns
const DefaultSuggestionLimit = 3

type slugCandidate struct {
	slug     string
	distance int
}

// SuggestSlugs returns slugs close to a slug that matched nothing, closest
// first. A candidate qualifies when its edit distance is small relative to
// the input length or when it contains the input as a phrase. Ties keep
// catalog order.
func SuggestSlugs(items []domain.Fragrance, slug string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	target := slugWords(slug)
	if target == "" {
		return nil
	}
	threshold := max(2, len([]rune(target))/3)

	var candidates []slugCandidate
	for _, item := range items {
		words := slugWords(item.Slug)
		if words == "" || words == target {
			continue
		}

		distance := levenshteinDistance(target, words)
		if distance > threshold && !strings.Contains(words, target) {
			continue
		}
		candidates = append(candidates, slugCandidate{slug: item.Slug, distance: distance})
	}

	slices.SortStableFunc(candidates, func(a, b slugCandidate) int {
		return a.distance - b.distance
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.slug)
	}
	return out
}

// slugWords folds a slug or free text into space separated words
func slugWords(s string) string {
	return NormalizeQuery(strings.NewReplacer("-", " ", "_", " ").Replace(s))
}

// levenshteinDistance is the rune edit distance between two strings, computed
// with two rolling rows.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
