package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSuggestCmd(a *app) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:   "suggest [command line...]",
		Short: "List the completions of a partial command line",
		Long: `List the completions of the command line formed by the arguments, with the
caret at --cursor (a rune offset, the end of the line by default).

Each suggestion is printed as the range of the line it replaces followed by its text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}

			line := strings.Join(args, " ")
			for _, s := range d.Suggest(line, cursor, a.source) {
				text := fmt.Sprintf("%d..%d %s", s.Start, s.End, color.GreenString(s.Text))
				if s.Tooltip != "" {
					text += " " + color.HiBlackString("(%s)", s.Tooltip)
				}
				if _, err := fmt.Fprintln(a.out, text); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", -1, "caret position, defaults to the end of the line")

	return cmd
}
