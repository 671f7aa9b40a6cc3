package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scentlens/backend/internal/domain"
)

// DefaultRecommendationLimit is the number of quiz results returned
const DefaultRecommendationLimit = 5

// scentTypeFamilies maps the scentType answer to accepted scent families
var scentTypeFamilies = map[string][]string{
	"fresh":   {"Fresh", "Aquatic", "Citrus", "Aromatic"},
	"sweet":   {"Gourmand", "Vanilla", "Sweet", "Oriental"},
	"dark":    {"Woody", "Leather", "Oriental", "Spicy"},
	"elegant": {"Floral", "Chypre", "Classic", "Amber"},
	"bold":    {"Spicy", "Aromatic", "Powerful", "Leather"},
}

var seasonAnswers = map[string]string{
	"spring": "Spring",
	"summer": "Summer",
	"autumn": "Fall",
	"winter": "Winter",
	"all":    "All Year",
}

var occasionAnswers = map[string]string{
	"everyday": "Everyday",
	"office":   "Office",
	"date":     "Date",
	"party":    "Party",
	"special":  "Special",
}

var intensityAnswers = map[string]string{
	"subtle":     "Light",
	"noticeable": "Moderate",
	"strong":     "Strong",
}

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	Limit int
	// RankByRelevance orders surviving candidates by RelevanceScore before
	// truncation instead of keeping catalog order.
	RankByRelevance bool
}

// RecommendationService narrows a catalog with quiz answers
type RecommendationService struct {
	limit           int
	rankByRelevance bool
	logger          zerolog.Logger
}

// quizStage narrows candidates by one question
type quizStage struct {
	question string
	keep     func(item domain.Fragrance, options []string) bool
	resolve  func(option string) (string, bool)
}

// quizStages run in this fixed order
var quizStages = []quizStage{
	{domain.QuestionScentType, matchesScentFamily, knownScentType},
	{domain.QuestionSeason, matchesSeason, lookup(seasonAnswers)},
	{domain.QuestionOccasion, matchesOccasion, lookup(occasionAnswers)},
	{domain.QuestionIntensity, matchesIntensity, lookup(intensityAnswers)},
	{domain.QuestionNotes, matchesNote, func(option string) (string, bool) { return option, true }},
}

// NewRecommendationService creates a new recommendation service with the given configuration
func NewRecommendationService(config RecommendationConfig, logger zerolog.Logger) *RecommendationService {
	limit := config.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	return &RecommendationService{
		limit:           limit,
		rankByRelevance: config.RankByRelevance,
		logger:          logger.With().Str("component", "recommend").Logger(),
	}
}

// GetRecommendedFragrances applies the quiz answers one stage at a time and
// returns at most limit items. When nothing survives, the first limit items
// of the catalog are returned instead, so a non-empty catalog never yields
// an empty recommendation.
func (s *RecommendationService) GetRecommendedFragrances(catalog []domain.Fragrance, answers domain.QuizAnswerSet) []domain.Fragrance {
	candidates := slices.Clone(catalog)

	for _, stage := range quizStages {
		options := s.resolveOptions(stage, answers.Options(stage.question))
		if len(options) == 0 {
			continue
		}

		kept := make([]domain.Fragrance, 0, len(candidates))
		for _, item := range candidates {
			if stage.keep(item, options) {
				kept = append(kept, item)
			}
		}
		s.logger.Debug().
			Str("question", stage.question).
			Strs("options", options).
			Int("before", len(candidates)).
			Int("after", len(kept)).
			Msg("applied quiz stage")
		candidates = kept
	}

	if len(candidates) == 0 {
		s.logger.Debug().Int("limit", s.limit).Msg("no candidates left, falling back to catalog head")
		return head(catalog, s.limit)
	}

	if s.rankByRelevance {
		slices.SortStableFunc(candidates, func(a, b domain.Fragrance) int {
			return cmp.Compare(RelevanceScore(b), RelevanceScore(a))
		})
	}
	return head(candidates, s.limit)
}

// resolveOptions maps answer ids to attribute values, dropping unknown ids
func (s *RecommendationService) resolveOptions(stage quizStage, options []string) []string {
	var resolved []string
	for _, opt := range options {
		if value, ok := stage.resolve(opt); ok {
			resolved = append(resolved, value)
		} else {
			s.logger.Debug().Str("question", stage.question).Str("option", opt).Msg("ignoring unknown quiz option")
		}
	}
	return resolved
}

func knownScentType(option string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(option))
	_, ok := scentTypeFamilies[key]
	return key, ok
}

func lookup(table map[string]string) func(string) (string, bool) {
	return func(option string) (string, bool) {
		value, ok := table[strings.ToLower(strings.TrimSpace(option))]
		return value, ok
	}
}

func matchesScentFamily(item domain.Fragrance, scentTypes []string) bool {
	for _, scentType := range scentTypes {
		for _, family := range scentTypeFamilies[scentType] {
			if strings.EqualFold(strings.TrimSpace(item.ScentFamily), family) {
				return true
			}
		}
	}
	return false
}

func matchesSeason(item domain.Fragrance, seasons []string) bool {
	return anyContains(seasonStrings(item.Season), seasons)
}

func matchesOccasion(item domain.Fragrance, occasions []string) bool {
	return anyContains(occasionStrings(item.Occasion), occasions)
}

func matchesIntensity(item domain.Fragrance, intensities []string) bool {
	for _, intensity := range intensities {
		if strings.EqualFold(string(item.Intensity), intensity) {
			return true
		}
	}
	return false
}

func matchesNote(item domain.Fragrance, notes []string) bool {
	return anyContains(item.Notes, notes)
}

func head(items []domain.Fragrance, n int) []domain.Fragrance {
	if len(items) > n {
		items = items[:n]
	}
	return slices.Clone(items)
}
