package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scentlens/backend/internal/domain"
)

var quizQuestions = []string{
	domain.QuestionScentType,
	domain.QuestionSeason,
	domain.QuestionOccasion,
	domain.QuestionIntensity,
	domain.QuestionNotes,
}

func newRecommendCmd(a *app) *cobra.Command {
	var answers []string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Run the fragrance quiz with the given answers",
		Long: `recommend narrows the catalog with quiz answers given as question=option.
Questions: scentType, season, occasion, intensity, notes. Repeat a question
to select several options; they are combined with OR.`,
		Example: `  scentlens recommend --answer scentType=fresh --answer season=summer
  scentlens recommend -a scentType=sweet -a scentType=dark -a notes=Vanilla`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			service, closeCatalog, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCatalog()

			items, err := service.Recommend(ctx, set)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "quiz answer as question=option, repeatable")

	return cmd
}

// parseAnswers turns question=option pairs into an answer set. Question ids
// are matched case-insensitively; repeated questions accumulate options.
func parseAnswers(pairs []string) (domain.QuizAnswerSet, error) {
	set := domain.QuizAnswerSet{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q must look like question=option", pair)
		}

		question, known := canonicalQuestion(key)
		if !known {
			return nil, fmt.Errorf("unknown quiz question %q, expected one of %s", strings.TrimSpace(key), strings.Join(quizQuestions, ", "))
		}

		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		set[question] = append(set[question], value)
	}
	return set, nil
}

func canonicalQuestion(key string) (string, bool) {
	key = strings.TrimSpace(key)
	for _, question := range quizQuestions {
		if strings.EqualFold(key, question) {
			return question, true
		}
	}
	return "", false
}
