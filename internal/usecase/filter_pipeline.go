package usecase

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scentlens/backend/internal/domain"
)

// FilterService runs the browse pipeline: text search, category filters, sort.
// It holds no per-query state and is safe for concurrent use.
type FilterService struct {
	logger zerolog.Logger
}

// NewFilterService creates a filter service
func NewFilterService(logger zerolog.Logger) *FilterService {
	return &FilterService{logger: logger.With().Str("component", "filter").Logger()}
}

// FilterFragrances returns the catalog items matching the search term and the
// filter state, ordered by state.SortBy. The input slice is never modified.
// An unknown sort option leaves the filtered items in catalog order.
func (s *FilterService) FilterFragrances(catalog []domain.Fragrance, search string, state domain.FilterState) []domain.Fragrance {
	query := NormalizeQuery(search)

	result := make([]domain.Fragrance, 0, len(catalog))
	for _, item := range catalog {
		if !MatchesQuery(query, item) {
			continue
		}
		if !passesFilters(item, state) {
			continue
		}
		result = append(result, item)
	}

	if !sortFragrances(result, state.SortBy) && state.SortBy != "" {
		s.logger.Debug().Str("sortBy", string(state.SortBy)).Msg("unknown sort option, keeping catalog order")
	}

	s.logger.Debug().
		Str("query", query).
		Int("catalog", len(catalog)).
		Int("matched", len(result)).
		Str("sortBy", string(state.SortBy)).
		Msg("filtered catalog")

	return result
}

// passesFilters applies every active category. Categories combine with AND,
// values inside a category combine with OR.
func passesFilters(item domain.Fragrance, state domain.FilterState) bool {
	if len(state.Seasons) > 0 && !anyContains(seasonStrings(item.Season), state.Seasons) {
		return false
	}
	if len(state.Occasions) > 0 && !anyContains(occasionStrings(item.Occasion), state.Occasions) {
		return false
	}
	if len(state.Genders) > 0 && !matchesGender(item, state.Genders) {
		return false
	}
	if len(state.Performance) > 0 && !matchesPerformance(item, state.Performance) {
		return false
	}
	return true
}

// anyContains reports whether some value contains some selection, ignoring case
func anyContains(values, selections []string) bool {
	for _, v := range values {
		v = strings.ToLower(v)
		for _, sel := range selections {
			sel = strings.ToLower(strings.TrimSpace(sel))
			if sel != "" && strings.Contains(v, sel) {
				return true
			}
		}
	}
	return false
}

// matchesGender compares selections against whole gender tokens, so "men"
// does not match "women".
func matchesGender(item domain.Fragrance, selections []string) bool {
	tokens := item.GenderTokens()
	for _, sel := range selections {
		sel = strings.TrimSpace(sel)
		for _, tok := range tokens {
			if sel != "" && strings.EqualFold(tok, sel) {
				return true
			}
		}
	}
	return false
}

// matchesPerformance checks each selection against longevity or intensity
func matchesPerformance(item domain.Fragrance, selections []string) bool {
	longevity := strings.ToLower(string(item.Longevity))
	intensity := strings.ToLower(string(item.Intensity))
	for _, sel := range selections {
		sel = strings.ToLower(strings.TrimSpace(sel))
		if sel == "" {
			continue
		}
		if strings.Contains(longevity, sel) || strings.Contains(intensity, sel) {
			return true
		}
	}
	return false
}

// RelevanceScore weighs the rating by the log of its vote count
func RelevanceScore(item domain.Fragrance) float64 {
	rating := math.Max(item.Rating, 0)
	count := math.Max(float64(item.RatingCount), 0)
	return rating * math.Log1p(count)
}

// sortFragrances orders items in place with a stable sort. It reports false
// when the option is not recognized, leaving items untouched.
func sortFragrances(items []domain.Fragrance, by domain.SortOption) bool {
	var compare func(a, b domain.Fragrance) int

	switch by {
	case domain.SortRelevance:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(RelevanceScore(b), RelevanceScore(a)) }
	case domain.SortNameAsc, domain.SortNameDesc:
		col := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
		if by == domain.SortNameAsc {
			compare = func(a, b domain.Fragrance) int { return col.CompareString(a.Name, b.Name) }
		} else {
			compare = func(a, b domain.Fragrance) int { return col.CompareString(b.Name, a.Name) }
		}
	case domain.SortRatingDesc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortRatingAsc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(a.Rating, b.Rating) }
	case domain.SortPopularityDesc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(b.RatingCount, a.RatingCount) }
	case domain.SortPopularityAsc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(a.RatingCount, b.RatingCount) }
	case domain.SortLongevityDesc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(b.Longevity.Rank(), a.Longevity.Rank()) }
	case domain.SortLongevityAsc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(a.Longevity.Rank(), b.Longevity.Rank()) }
	case domain.SortIntensityDesc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(b.Intensity.Rank(), a.Intensity.Rank()) }
	case domain.SortIntensityAsc:
		compare = func(a, b domain.Fragrance) int { return cmp.Compare(a.Intensity.Rank(), b.Intensity.Rank()) }
	default:
		return false
	}

	slices.SortStableFunc(items, compare)
	return true
}

// Paginate returns the window [offset, offset+limit) of items. A non-positive
// limit returns everything from offset.
func Paginate(items []domain.Fragrance, offset, limit int) []domain.Fragrance {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []domain.Fragrance{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func seasonStrings(seasons []domain.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func occasionStrings(occasions []domain.Occasion) []string {
	out := make([]string, len(occasions))
	for i, o := range occasions {
		out[i] = string(o)
	}
	return out
}
