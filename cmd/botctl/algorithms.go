package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the loaded classifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algos := a.engine.Router.Algorithms()
			for _, id := range algos.Available {
				marker := " "
				if id == algos.Default {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
			}
			return nil
		},
	}
}
