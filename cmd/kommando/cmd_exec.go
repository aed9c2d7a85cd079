package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command line...]",
		Short: "Execute a command line",
		Long: `Execute the command line formed by the arguments.

Without arguments, every line read from stdin is executed. Empty lines and lines
starting with # are skipped. Separate the command line with -- when it contains
flags, as in: kommando exec -- gamemode creative --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return a.executeLines(d, cmd.InOrStdin())
			}
			if err := a.execute(d, strings.Join(args, " ")); err != nil {
				return errReported
			}
			return nil
		},
	}
}
