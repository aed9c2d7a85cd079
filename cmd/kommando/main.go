package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr}
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kommando",
		Short: "Dispatch command lines against command trees",
		Long: `Dispatch single command lines, such as chat commands, against command trees
described in a YAML or TOML document.

Without --spec a built-in demo document is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.configureLogging()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.specPath, "spec", "", "command document (.yaml, .yml or .toml)")
	flags.StringVar(&a.lang, "lang", "", "language of messages, e.g. de")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVar(&a.logPath, "log", "", "write logs to this file instead of stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.source, "source", "console", "source the commands are issued by")

	rootCmd.AddCommand(newExecCmd(a))
	rootCmd.AddCommand(newSuggestCmd(a))
	rootCmd.AddCommand(newUsageCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newCompletionCmd(a))
	rootCmd.AddCommand(newCompleteCmd(a))

	return rootCmd
}
