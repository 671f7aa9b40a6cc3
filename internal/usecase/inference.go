package usecase

import (
	"strings"

	"github.com/scentlens/backend/internal/domain"
)

// keywordRule pairs a category value with the accord keywords that signal it.
// Rule tables are evaluated in slice order; for first-match tables the order
// decides which category wins when keywords overlap ("amber" is both Fall and
// Winter, Fall is checked first).
type keywordRule[T ~string] struct {
	value    T
	keywords []string
}

// occasionRules are scored, not first-match. The enumeration order breaks
// ties between equal non-zero scores: the earliest tied occasion wins and the
// result never falls back to DefaultOccasion. Only a zero score everywhere
// yields the default.
var occasionRules = []keywordRule[domain.Occasion]{
	{domain.OccasionDateNight, []string{"sweet", "vanilla", "amber", "tonka", "chocolate", "caramel", "honey"}},
	{domain.OccasionOffice, []string{"fresh", "citrus", "aquatic", "green", "ozonic", "mint"}},
	{domain.OccasionEvening, []string{"woody", "spicy", "oriental", "leather", "tobacco"}},
	{domain.OccasionEveryday, []string{"floral", "powdery", "fruity", "herbal"}},
}

var seasonRules = []keywordRule[domain.Season]{
	{domain.SeasonSummer, []string{"citrus", "green", "aquatic", "ozonic", "fresh", "mint"}},
	{domain.SeasonFall, []string{"spicy", "amber", "woody", "tobacco", "leather", "resin"}},
	{domain.SeasonWinter, []string{"vanilla", "amber", "resin", "balsamic", "oud", "musk"}},
	{domain.SeasonSpring, []string{"floral", "powdery", "fruity", "herbal"}},
}

var intensityRules = []keywordRule[domain.Intensity]{
	{domain.IntensityStrong, []string{"oud", "amber", "leather", "spicy", "resin", "tobacco"}},
	{domain.IntensityLight, []string{"fresh", "green", "citrus", "aquatic", "ozonic", "mint"}},
	{domain.IntensityModerate, []string{"floral", "powdery", "fruity", "vanilla"}},
}

var longevityRules = []keywordRule[domain.Longevity]{
	{domain.LongevityLongLasting, []string{"amber", "oud", "leather", "tobacco", "resin", "balsamic", "musk"}},
	{domain.LongevityShort, []string{"fresh", "citrus", "green", "aquatic", "ozonic", "mint"}},
	{domain.LongevityModerate, []string{"vanilla", "floral", "fruity", "powdery"}},
}

// Fallbacks used when no accords are known or no rule matches
const (
	DefaultOccasion  = domain.OccasionEveryday
	DefaultSeason    = domain.SeasonAllYear
	DefaultIntensity = domain.IntensityModerate
	DefaultLongevity = domain.LongevityModerate
)

// InferOccasion scores every occasion by the number of its keywords present
// in the accords and returns the highest scorer.
func InferOccasion(accords []string, existing domain.Occasion) domain.Occasion {
	if known(string(existing)) {
		return existing
	}
	blob := accordBlob(accords)
	if blob == "" {
		return DefaultOccasion
	}

	best := DefaultOccasion
	bestScore := 0
	for _, rule := range occasionRules {
		if score := countKeywords(blob, rule.keywords); score > bestScore {
			best = rule.value
			bestScore = score
		}
	}
	return best
}

// InferSeason returns the first season whose keywords appear in the accords
func InferSeason(accords []string, existing domain.Season) domain.Season {
	if known(string(existing)) {
		return existing
	}
	return firstMatch(seasonRules, accordBlob(accords), DefaultSeason)
}

// InferIntensity returns the first intensity whose keywords appear in the accords
func InferIntensity(accords []string, existing domain.Intensity) domain.Intensity {
	if known(string(existing)) {
		return existing
	}
	return firstMatch(intensityRules, accordBlob(accords), DefaultIntensity)
}

// InferLongevity returns the first longevity whose keywords appear in the accords
func InferLongevity(accords []string, existing domain.Longevity) domain.Longevity {
	if known(string(existing)) {
		return existing
	}
	return firstMatch(longevityRules, accordBlob(accords), DefaultLongevity)
}

func firstMatch[T ~string](rules []keywordRule[T], blob string, fallback T) T {
	if blob == "" {
		return fallback
	}
	for _, rule := range rules {
		if countKeywords(blob, rule.keywords) > 0 {
			return rule.value
		}
	}
	return fallback
}

// accordBlob joins the accords into one lower-cased string for substring tests
func accordBlob(accords []string) string {
	return strings.TrimSpace(strings.ToLower(strings.Join(accords, " ")))
}

func countKeywords(blob string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(blob, kw) {
			count++
		}
	}
	return count
}

func known(value string) bool {
	return strings.TrimSpace(value) != ""
}
