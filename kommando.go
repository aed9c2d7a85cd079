// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package kommando dispatches single lines of text, such as chat commands, to command trees.
//
// A command is a tree of literals and typed arguments built with the tree package. The
// Dispatcher looks up the command named by the first token of a line and resolves the rest
// of the line against its tree:
//
//	b := tree.NewBuilder()
//	amount := tree.Bind(b, "amount", argument.Int())
//	b.Executor(func(ctx *tree.Context) error {
//		fmt.Println(amount.Get(ctx))
//		return nil
//	})
//	d, _ := kommando.NewDispatcher(kommando.WithCommand("give", b.Build()))
//	err := d.Execute("give 5", nil)
//
// Failures are reported as *CommandError carrying the position of the problem, and Suggest
// proposes completions for a partially typed line.
package kommando

import (
	"strings"
	"unicode"

	"github.com/tliron/commonlog"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/cases"

	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/i18n"
	"github.com/napalu/kommando/parse"
	"github.com/napalu/kommando/tree"
)

var log = commonlog.GetLogger("kommando.dispatch")

// NameConversionFunc normalizes command names before they are registered or looked up
type NameConversionFunc func(string) string

// Command is a named command tree
type Command struct {
	Name    string
	Aliases []string
	// Description is shown by Help. DescriptionKey takes precedence when it is set and
	// translated by the bundle of the dispatcher.
	Description    string
	DescriptionKey string
	Root           *tree.Node
}

// Dispatcher routes command lines to the registered commands. A Dispatcher is safe for
// concurrent use once it is configured.
type Dispatcher struct {
	commands      *orderedmap.OrderedMap
	lookup        map[string]string
	prefix        rune
	caseFold      bool
	nameConverter NameConversionFunc
	bundle        *i18n.Bundle
	provider      i18n.MessageProvider
	renderer      Renderer
}

// NewDispatcher returns a dispatcher configured by configs. Configuration stops at the first
// option reporting an error.
func NewDispatcher(configs ...ConfigureDispatcherFunc) (*Dispatcher, error) {
	d := newDispatcher()
	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

func newDispatcher() *Dispatcher {
	bundle := i18n.Default()
	d := &Dispatcher{
		commands: orderedmap.New(),
		lookup:   map[string]string{},
		bundle:   bundle,
		provider: i18n.NewBundleMessageProvider(bundle),
	}
	d.renderer = NewRenderer(d)

	return d
}

// Register adds a command under name and aliases
func (d *Dispatcher) Register(name string, root *tree.Node, aliases ...string) error {
	return d.AddCommand(&Command{Name: name, Aliases: aliases, Root: root})
}

// AddCommand adds c. Names and aliases must be unique and consist of a single token.
func (d *Dispatcher) AddCommand(c *Command) error {
	if c.Root == nil {
		return errs.ErrInvalidCommandName.WithArgs(c.Name)
	}
	keys := make([]string, 0, len(c.Aliases)+1)
	for _, name := range append([]string{c.Name}, c.Aliases...) {
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return errs.ErrInvalidCommandName.WithArgs(name)
		}
		key := d.key(name)
		if _, exists := d.lookup[key]; exists || contains(keys, key) {
			return errs.ErrCommandAlreadyExists.WithArgs(name)
		}
		keys = append(keys, key)
	}

	for _, key := range keys {
		d.lookup[key] = c.Name
	}
	d.commands.Set(c.Name, c)
	log.Debugf("registered command '%s' with aliases %v", c.Name, c.Aliases)

	return nil
}

// Command returns the command registered under name or one of its aliases
func (d *Dispatcher) Command(name string) (*Command, bool) {
	canonical, ok := d.lookup[d.key(name)]
	if !ok {
		return nil, false
	}
	c, _ := d.commands.Get(canonical)

	return c.(*Command), true
}

// Commands returns the registered commands in registration order
func (d *Dispatcher) Commands() []*Command {
	out := make([]*Command, 0, d.commands.Len())
	for pair := d.commands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.(*Command))
	}

	return out
}

// Invocation is a parsed command line that has not been executed yet
type Invocation struct {
	Command *Command
	Input   string
	match   *tree.Match
}

// Context returns the context the executor receives
func (i *Invocation) Context() *tree.Context {
	return i.match.Context()
}

// Execute runs the executor of the matched path. Errors returned by the executor are
// wrapped in errs.ErrCommandFailed.
func (i *Invocation) Execute() error {
	if err := i.match.Execute(); err != nil {
		return errs.ErrCommandFailed.WithArgs(i.Command.Name).Wrap(err)
	}
	return nil
}

// Parse resolves line without executing it
func (d *Dispatcher) Parse(line string, source any) (*Invocation, error) {
	r := parse.NewReader(line)
	c, err := d.command(r)
	if err != nil {
		return nil, d.fail(line, err)
	}

	m, err := tree.Resolve(c.Root, r, source)
	if err != nil {
		log.Debugf("no path of '%s' matches '%s': %s", c.Name, line, err)
		return nil, d.fail(line, err)
	}

	return &Invocation{Command: c, Input: line, match: m}, nil
}

// Execute parses line and runs the matched executor
func (d *Dispatcher) Execute(line string, source any) error {
	inv, err := d.Parse(line, source)
	if err != nil {
		return err
	}
	return inv.Execute()
}

// Suggest proposes completions for line with the caret at cursor, a rune offset. While the
// first token is typed the names of the commands are proposed.
func (d *Dispatcher) Suggest(line string, cursor int, source any) []argument.Suggestion {
	runes := []rune(line)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	r := parse.NewReader(string(runes[:cursor]))
	d.skipPrefix(r)

	start := r.Cursor()
	name := r.ReadToken()
	if !r.CanRead() {
		r.SetCursor(start)
		return argument.NewContext(r, source, nil).SuggestMatching(d.names()...)
	}

	c, ok := d.Command(name)
	if !ok {
		return nil
	}
	return tree.Suggest(c.Root, r, source)
}

// Usage returns one line per executable path of the command registered under name
func (d *Dispatcher) Usage(name string) ([]string, error) {
	c, ok := d.Command(name)
	if !ok {
		return nil, errs.ErrUnknownCommand.WithArgs(name)
	}

	return d.renderer.CommandUsage(c), nil
}

func (d *Dispatcher) command(r *parse.Reader) (*Command, error) {
	d.skipPrefix(r)
	start := r.Cursor()
	name := r.ReadToken()
	if name == "" {
		return nil, parse.NewError(start, errs.ErrEmptyCommand)
	}

	c, ok := d.Command(name)
	if !ok {
		return nil, parse.NewError(start, errs.ErrUnknownCommand.WithArgs(name))
	}
	log.Debugf("dispatching to '%s'", c.Name)

	return c, nil
}

func (d *Dispatcher) skipPrefix(r *parse.Reader) {
	r.SkipWhitespace()
	if d.prefix == 0 {
		return
	}
	if c, err := r.Peek(); err == nil && c == d.prefix {
		r.Skip()
	}
}

func (d *Dispatcher) key(name string) string {
	if d.nameConverter != nil {
		name = d.nameConverter(name)
	}
	if d.caseFold {
		name = cases.Fold().String(name)
	}
	return name
}

// names lists command names followed by aliases
func (d *Dispatcher) names() []string {
	var names, aliases []string
	for _, c := range d.Commands() {
		names = append(names, c.Name)
		aliases = append(aliases, c.Aliases...)
	}
	return append(names, aliases...)
}

func (d *Dispatcher) fail(line string, err error) error {
	return &CommandError{Input: line, Err: err, provider: d.provider}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
