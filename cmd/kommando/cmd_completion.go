package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/napalu/kommando/completion"
	"github.com/napalu/kommando/errs"
)

func newCompletionCmd(a *app) *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate a shell completion script",
		Long:      "Generate the completion script of bash, zsh, fish or powershell and print it, or install it with --install.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: completion.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if !slices.Contains(completion.Shells, shell) {
				return errs.ErrUnsupportedShell.WithArgs(shell)
			}

			cm, err := completion.NewCompletionManager(shell, os.Args[0])
			if err != nil {
				return err
			}
			cm.Accept(completionData(cmd.Root()))

			if !install {
				_, err = io.WriteString(a.out, cm.Script())
				return err
			}
			if err := cm.SaveCompletion(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "completion script written to %s\n", cm.FilePath())
			return err
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "write the script to the completion directory of the shell")

	return cmd
}

// completionData describes the sub-commands and persistent flags of root. The words after
// exec and suggest are completed by the dispatcher.
func completionData(root *cobra.Command) completion.CompletionData {
	data := completion.CompletionData{
		Dynamic: []string{"exec", "suggest"},
		Hook:    completeHook,
	}
	for _, c := range root.Commands() {
		if c.Hidden || !c.IsAvailableCommand() {
			continue
		}
		data.Commands = append(data.Commands, completion.Entry{Name: c.Name(), Description: c.Short})
	}
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		data.Flags = append(data.Flags, completion.Entry{Name: "--" + f.Name, Description: f.Usage})
		if f.Shorthand != "" {
			data.Flags = append(data.Flags, completion.Entry{Name: "-" + f.Shorthand, Description: f.Usage})
		}
	})

	return data
}
