package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/napalu/kommando/completion"
)

const completeHook = "complete"

// newCompleteCmd is the hook called by the generated shell completion scripts
func newCompleteCmd(a *app) *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:    completeHook + " -- <line>",
		Short:  "Print the completions of a command line for a shell",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}

			suggestions := d.Suggest(strings.Join(args, " "), -1, a.source)
			_, err = io.WriteString(a.out, completion.Candidates(shell, suggestions))
			return err
		},
	}
	cmd.Flags().StringVar(&shell, "shell", "bash", "shell the candidates are printed for")

	return cmd
}
