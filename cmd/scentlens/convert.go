package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/infrastructure/dataset"
	"github.com/scentlens/backend/internal/usecase"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		in    string
		out   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a semicolon CSV dataset into a normalized JSON catalog",
		Example: `  scentlens convert --in fra_cleaned.csv --out data/fragrances.json --limit 500
  scentlens convert --in fra_cleaned.csv --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			start := time.Now()
			source := dataset.NewCSVSource(in, limit)
			records, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("%w: %s", domain.ErrCatalogEmpty, in)
			}

			items := usecase.NormalizeCatalog(records)

			if out == "-" {
				return dataset.WriteCatalog(cmd.OutOrStdout(), items)
			}
			if err := dataset.WriteCatalogFile(out, items); err != nil {
				return err
			}

			a.logger.Info().
				Str("in", in).
				Str("out", out).
				Int("items", len(items)).
				Dur("took", time.Since(start)).
				Msg("catalog converted")
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "CSV dataset to read")
	cmd.Flags().StringVar(&out, "out", "", "JSON catalog to write, - for stdout")
	cmd.Flags().IntVar(&limit, "limit", 0, "keep only the first N rows (0 keeps all)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
