package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/napalu/kommando"
	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/i18n"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read and execute command lines interactively",
		Long: `Read command lines from the terminal and execute them. TAB completes the
token under the caret. When stdin is not a terminal the lines are executed as read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return a.executeLines(d, cmd.InOrStdin())
			}
			return a.repl(d, fd)
		},
	}
}

func (a *app) repl(d *kommando.Dispatcher, fd int) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, color.BlueString("> "))
	t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}
		return a.complete(t, d, line, pos)
	}

	out, errOut := a.out, a.errOut
	a.out, a.errOut = t, t
	defer func() { a.out, a.errOut = out, errOut }()

	welcome := i18n.Default().T(errs.MsgReplWelcomeKey)
	if a.lang != "" {
		if lang, ok := i18n.Default().Match(a.lang); ok {
			welcome = i18n.Default().TL(lang, errs.MsgReplWelcomeKey)
		}
	}
	fmt.Fprintln(t, welcome)

	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_ = a.execute(d, line)
	}
}

// complete applies the only suggestion for the token under the caret, or their common prefix.
// When the prefix adds nothing the candidates are listed above the prompt.
func (a *app) complete(t *term.Terminal, d *kommando.Dispatcher, line string, pos int) (string, int, bool) {
	cursor := utf8.RuneCountInString(line[:pos])
	suggestions := d.Suggest(line, cursor, a.source)
	switch len(suggestions) {
	case 0:
		return "", 0, false
	case 1:
		return apply(line, suggestions[0], suggestions[0].Text)
	}

	texts := make([]string, len(suggestions))
	for i, s := range suggestions {
		texts[i] = s.Text
	}
	first := suggestions[0]
	prefix := commonPrefix(texts)
	partial := string([]rune(line)[first.Start:first.End])
	if utf8.RuneCountInString(prefix) > utf8.RuneCountInString(partial) && sameRange(suggestions) {
		return apply(line, first, prefix)
	}

	fmt.Fprintln(t, color.HiBlackString(strings.Join(texts, "  ")))
	return "", 0, false
}

// apply replaces the range of s in line with text. The returned position is a byte offset.
func apply(line string, s argument.Suggestion, text string) (string, int, bool) {
	s.Text = text
	replaced := s.Apply(line)
	end := []rune(replaced)[:s.Start+utf8.RuneCountInString(text)]
	return replaced, len(string(end)), true
}

func sameRange(suggestions []argument.Suggestion) bool {
	for _, s := range suggestions[1:] {
		if s.Start != suggestions[0].Start || s.End != suggestions[0].End {
			return false
		}
	}
	return true
}

func commonPrefix(texts []string) string {
	prefix := []rune(texts[0])
	for _, text := range texts[1:] {
		runes := []rune(text)
		n := 0
		for n < len(prefix) && n < len(runes) && prefix[n] == runes[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return string(prefix)
}
