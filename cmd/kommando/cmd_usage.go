package main

import (
	"github.com/spf13/cobra"
)

func newUsageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "usage [command]",
		Short: "Show the registered commands or the usage of one command",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return d.Help(a.out, name)
		},
	}
}
