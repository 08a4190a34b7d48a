package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"restaurant-bot/internal/matcher"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded catalog",
	}

	var limit int
	search := &cobra.Command{
		Use:   "search <text>",
		Short: "Show the scored catalog matches for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits := a.engine.Matcher.Match(strings.Join(args, " "), limit)
			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tTIER\tITEM")
			for _, h := range hits {
				fmt.Fprintf(tw, "%.0f\t%s\t%s\n", h.Score, h.Tier, a.engine.Catalog.Label(h.Entry))
			}
			return tw.Flush()
		},
	}
	search.Flags().IntVarP(&limit, "limit", "n", matcher.DefaultLimit, "maximum number of matches")

	cmd.AddCommand(search)
	return cmd
}
