package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	cmdQuit  = "/quit"
	cmdReset = "/reset"
	cmdAlgo  = "/algo"
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Hold a conversation on stdin",
		Long:  "Reads one message per line. /algo <id> sets the classifier, /reset forgets the conversation and /quit exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			r := a.engine.Router

			in := bufio.NewScanner(cmd.InOrStdin())
			for fmt.Fprint(out, "> "); in.Scan(); fmt.Fprint(out, "> ") {
				line := strings.TrimSpace(in.Text())
				switch {
				case line == cmdQuit:
					return nil
				case line == cmdReset:
					if err := r.Reset(ctx, a.clientID); err != nil {
						return err
					}
					fmt.Fprintln(out, "conversation reset")
				case strings.HasPrefix(line, cmdAlgo+" "):
					algo, err := r.SetPreferredAlgo(ctx, a.clientID, strings.TrimPrefix(line, cmdAlgo+" "))
					if err != nil {
						fmt.Fprintln(out, err)
						continue
					}
					fmt.Fprintf(out, "using %s\n", algo)
				default:
					res, err := r.Route(ctx, a.clientID, line, "")
					if err != nil {
						return err
					}
					printResult(out, res)
				}
			}
			fmt.Fprintln(out)
			return in.Err()
		},
	}
}
