package domain

import (
	"strings"
)

// SortOption selects the ordering applied by the filter pipeline
type SortOption string

const (
	SortRelevance      SortOption = "relevance"
	SortNameAsc        SortOption = "name-asc"
	SortNameDesc       SortOption = "name-desc"
	SortRatingDesc     SortOption = "rating-desc"
	SortRatingAsc      SortOption = "rating-asc"
	SortPopularityDesc SortOption = "popularity-desc"
	SortPopularityAsc  SortOption = "popularity-asc"
	SortLongevityDesc  SortOption = "longevity-desc"
	SortLongevityAsc   SortOption = "longevity-asc"
	SortIntensityDesc  SortOption = "intensity-desc"
	SortIntensityAsc   SortOption = "intensity-asc"
)

// FilterState holds the browse filters selected in the UI. An empty
// category places no constraint on results.
type FilterState struct {
	Seasons     []string   `json:"seasons,omitempty"`
	Occasions   []string   `json:"occasions,omitempty"`
	Genders     []string   `json:"genders,omitempty"`
	Performance []string   `json:"performance,omitempty"`
	SortBy      SortOption `json:"sortBy,omitempty"`
}

// NewFilterState builds a FilterState from loosely keyed categories.
// Unrecognized keys are ignored.
func NewFilterState(categories map[string][]string, sortBy string) FilterState {
	state := FilterState{SortBy: SortOption(strings.ToLower(strings.TrimSpace(sortBy)))}
	for key, values := range categories {
		values = compactValues(values)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "season", "seasons":
			state.Seasons = append(state.Seasons, values...)
		case "occasion", "occasions":
			state.Occasions = append(state.Occasions, values...)
		case "gender", "genders":
			state.Genders = append(state.Genders, values...)
		case "performance":
			state.Performance = append(state.Performance, values...)
		}
	}
	return state
}

// IsEmpty reports whether no category filter is active
func (s FilterState) IsEmpty() bool {
	return len(s.Seasons) == 0 && len(s.Occasions) == 0 && len(s.Genders) == 0 && len(s.Performance) == 0
}

// Quiz question identifiers
const (
	QuestionScentType = "scentType"
	QuestionSeason    = "season"
	QuestionOccasion  = "occasion"
	QuestionIntensity = "intensity"
	QuestionNotes     = "notes"
)

// QuizAnswer holds the option ids picked for one question. Single-select
// questions hold exactly one entry.
type QuizAnswer []string

// QuizAnswerSet maps question ids to the answers given so far
type QuizAnswerSet map[string]QuizAnswer

// Single builds an answer set of single-select answers
func Single(answers map[string]string) QuizAnswerSet {
	set := make(QuizAnswerSet, len(answers))
	for question, option := range answers {
		set[question] = QuizAnswer{option}
	}
	return set
}

// Options returns the trimmed non-empty options chosen for a question
func (s QuizAnswerSet) Options(question string) []string {
	return compactValues(s[question])
}

func compactValues(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
