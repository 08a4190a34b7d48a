package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"restaurant-bot/internal/router"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <text>",
		Short: "Route one message and print the intent, confidence and reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.engine.Router.Route(cmd.Context(), a.clientID, strings.Join(args, " "), a.algo)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.algo, "algo", "", "classifier id for this message")
	return cmd
}

func printResult(w io.Writer, res router.Result) {
	fmt.Fprintf(w, "intent=%s confidence=%.2f algo=%s source=%s\n", res.Intent, res.Confidence, res.Algo, res.Source)
	fmt.Fprintln(w, res.Reply.Text)
}
