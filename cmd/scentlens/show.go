package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <slug>",
		Short:   "Print a single catalog item",
		Example: "  scentlens show bleu-de-chanel",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closeCatalog, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCatalog()

			item, ok, err := service.Lookup(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				suggestions, err := service.Suggest(ctx, args[0])
				if err != nil {
					a.logger.Debug().Err(err).Str("slug", args[0]).Msg("slug suggestions unavailable")
				}
				if len(suggestions) > 0 {
					return fmt.Errorf("no fragrance with slug %q, did you mean: %s", args[0], strings.Join(suggestions, ", "))
				}
				return fmt.Errorf("no fragrance with slug %q", args[0])
			}
			return writeJSON(cmd.OutOrStdout(), item)
		},
	}
}
