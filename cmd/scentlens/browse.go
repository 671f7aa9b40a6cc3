package main

import (
	"github.com/spf13/cobra"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/usecase"
)

// browseResult is the JSON document printed by browse
type browseResult struct {
	Total  int                `json:"total"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit,omitempty"`
	Items  []domain.Fragrance `json:"items"`
}

func newBrowseCmd(a *app) *cobra.Command {
	var (
		search      string
		seasons     []string
		occasions   []string
		genders     []string
		performance []string
		sortBy      string
		offset      int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search, filter and sort the catalog",
		Example: `  scentlens browse --search chanel
  scentlens browse --season Summer --season Spring --sort rating-desc --limit 10
  scentlens browse --gender women --performance "Long Lasting"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closeCatalog, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCatalog()

			state := domain.NewFilterState(map[string][]string{
				"season":      seasons,
				"occasion":    occasions,
				"gender":      genders,
				"performance": performance,
			}, sortBy)

			items, err := service.Browse(ctx, search, state)
			if err != nil {
				return err
			}

			a.logger.Debug().
				Str("search", search).
				Str("sort", string(state.SortBy)).
				Int("matched", len(items)).
				Msg("browse")

			return writeJSON(cmd.OutOrStdout(), browseResult{
				Total:  len(items),
				Offset: offset,
				Limit:  limit,
				Items:  usecase.Paginate(items, offset, limit),
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case and accent insensitive text search")
	cmd.Flags().StringArrayVar(&seasons, "season", nil, "season filter, repeatable")
	cmd.Flags().StringArrayVar(&occasions, "occasion", nil, "occasion filter, repeatable")
	cmd.Flags().StringArrayVar(&genders, "gender", nil, "gender filter, repeatable")
	cmd.Flags().StringArrayVar(&performance, "performance", nil, "intensity or longevity filter, repeatable")
	cmd.Flags().StringVar(&sortBy, "sort", "", "relevance, name-asc, name-desc, rating-desc, rating-asc, popularity-desc, popularity-asc, longevity-desc, longevity-asc, intensity-desc, intensity-asc")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 for all)")

	return cmd
}
