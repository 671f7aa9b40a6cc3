package usecase

import (
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scentlens/backend/internal/domain"
)

func newTestRecommendationService(config RecommendationConfig) *RecommendationService {
	return NewRecommendationService(config, zerolog.Nop())
}

func TestGetRecommendedFragrances(t *testing.T) {
	tests := []struct {
		name     string
		answers  domain.QuizAnswerSet
		expected []string
	}{
		{
			name:     "empty answers return the catalog head",
			answers:  domain.QuizAnswerSet{},
			expected: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "fresh for summer",
			answers:  domain.Single(map[string]string{"scentType": "fresh", "season": "summer"}),
			expected: []string{"2", "3", "6", "13", "18"},
		},
		{
			name:     "answers are case-insensitive",
			answers:  domain.Single(map[string]string{"scentType": " FRESH ", "season": "Summer"}),
			expected: []string{"2", "3", "6", "13", "18"},
		},
		{
			name:     "every stage narrows in order",
			answers:  domain.Single(map[string]string{"scentType": "dark", "season": "autumn", "occasion": "office", "intensity": "noticeable"}),
			expected: []string{"1", "11"},
		},
		{
			name:     "occasion matches by containment",
			answers:  domain.Single(map[string]string{"occasion": "date"}),
			expected: []string{"4", "5", "6", "8", "9"},
		},
		{
			name:     "intensity maps subtle to light",
			answers:  domain.Single(map[string]string{"intensity": "subtle"}),
			expected: []string{"2", "3", "10", "13", "20"},
		},
		{
			name:     "notes are free text",
			answers:  domain.Single(map[string]string{"notes": "Vanilla"}),
			expected: []string{"4", "9", "12", "14", "25"},
		},
		{
			name:     "unknown answers are ignored",
			answers:  domain.Single(map[string]string{"scentType": "metallic", "season": "winter", "mood": "happy"}),
			expected: []string{"4", "8", "9", "12", "14"},
		},
		{
			name:     "no survivors falls back to the catalog head",
			answers:  domain.Single(map[string]string{"scentType": "sweet", "season": "summer"}),
			expected: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "unmatched occasion falls back to the catalog head",
			answers:  domain.Single(map[string]string{"occasion": "party"}),
			expected: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "multi-select answers OR their values",
			answers: domain.QuizAnswerSet{
				"scentType": {"fresh", "sweet"},
				"season":    {"winter"},
			},
			expected: []string{"4", "9", "12", "14", "21"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestRecommendationService(RecommendationConfig{})
			result := service.GetRecommendedFragrances(referenceCatalog(), tt.answers)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestGetRecommendedFragrances_FreshSummerProperties(t *testing.T) {
	service := newTestRecommendationService(RecommendationConfig{})
	result := service.GetRecommendedFragrances(referenceCatalog(), domain.Single(map[string]string{
		"scentType": "fresh",
		"season":    "summer",
	}))

	require.NotEmpty(t, result)
	assert.LessOrEqual(t, len(result), 5)

	families := []string{"Fresh", "Aquatic", "Citrus", "Aromatic"}
	positions := make([]int, len(result))
	for i, item := range result {
		assert.Contains(t, families, item.ScentFamily, item.Name)
		assert.Contains(t, item.Season, domain.SeasonSummer, item.Name)
		positions[i] = slices.IndexFunc(referenceCatalog(), func(f domain.Fragrance) bool { return f.ID == item.ID })
	}
	assert.True(t, slices.IsSorted(positions), "results keep catalog order")
}

func TestGetRecommendedFragrances_NeverEmptyAndBounded(t *testing.T) {
	service := newTestRecommendationService(RecommendationConfig{})
	catalog := referenceCatalog()

	scentTypes := []string{"", "fresh", "sweet", "dark", "elegant", "bold", "unknown"}
	seasons := []string{"", "spring", "summer", "autumn", "winter", "all"}
	occasions := []string{"", "everyday", "office", "date", "party", "special"}
	intensities := []string{"", "subtle", "noticeable", "strong"}
	notes := []string{"", "rose", "nothing-like-this"}

	for _, st := range scentTypes {
		for _, se := range seasons {
			for _, oc := range occasions {
				for _, in := range intensities {
					for _, no := range notes {
						answers := domain.Single(map[string]string{
							"scentType": st, "season": se, "occasion": oc, "intensity": in, "notes": no,
						})
						result := service.GetRecommendedFragrances(catalog, answers)
						if len(result) == 0 || len(result) > 5 {
							t.Fatalf("answers %v returned %d items", answers, len(result))
						}
					}
				}
			}
		}
	}
}

func TestGetRecommendedFragrances_SmallCatalog(t *testing.T) {
	service := newTestRecommendationService(RecommendationConfig{})
	catalog := referenceCatalog()[:3]

	result := service.GetRecommendedFragrances(catalog, domain.Single(map[string]string{"scentType": "sweet"}))
	assert.Equal(t, []string{"1", "2", "3"}, ids(result))

	assert.Empty(t, service.GetRecommendedFragrances(nil, domain.QuizAnswerSet{}), "an empty catalog has nothing to fall back to")
}

func TestGetRecommendedFragrances_Limit(t *testing.T) {
	answers := domain.Single(map[string]string{"scentType": "fresh", "season": "summer"})

	three := newTestRecommendationService(RecommendationConfig{Limit: 3})
	assert.Equal(t, []string{"2", "3", "6"}, ids(three.GetRecommendedFragrances(referenceCatalog(), answers)))

	fallback := newTestRecommendationService(RecommendationConfig{Limit: -1})
	assert.Len(t, fallback.GetRecommendedFragrances(referenceCatalog(), answers), DefaultRecommendationLimit)
}

func TestGetRecommendedFragrances_RankByRelevance(t *testing.T) {
	service := newTestRecommendationService(RecommendationConfig{RankByRelevance: true})
	catalog := referenceCatalog()
	before := ids(catalog)

	result := service.GetRecommendedFragrances(catalog, domain.Single(map[string]string{"scentType": "fresh", "season": "summer"}))

	assert.Equal(t, []string{"2", "6", "3", "24", "18"}, ids(result))
	assert.Equal(t, before, ids(catalog), "catalog order is untouched")
}

func TestGetRecommendedFragrances_ScentFamilyIsExact(t *testing.T) {
	catalog := []domain.Fragrance{
		{ID: "1", ScentFamily: "Fresh Spicy"},
		{ID: "2", ScentFamily: "citrus"},
	}
	service := newTestRecommendationService(RecommendationConfig{})

	result := service.GetRecommendedFragrances(catalog, domain.Single(map[string]string{"scentType": "fresh"}))
	assert.Equal(t, []string{"2"}, ids(result))
}

func TestRecommendationTables(t *testing.T) {
	for answer, families := range scentTypeFamilies {
		assert.Len(t, families, 4, answer)
	}
	for _, table := range []map[string]string{seasonAnswers, occasionAnswers, intensityAnswers} {
		for answer := range table {
			assert.Equal(t, strings.ToLower(answer), answer, "answer ids are stored lower-case")
		}
	}
}
