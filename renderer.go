package kommando

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/tree"
)

// Renderer formats the help of registered commands
type Renderer interface {
	CommandName(c *Command) string
	CommandDescription(c *Command) string
	CommandUsage(c *Command) []string
}

type DefaultRenderer struct {
	dispatcher *Dispatcher
}

func NewRenderer(dispatcher *Dispatcher) *DefaultRenderer {
	return &DefaultRenderer{dispatcher: dispatcher}
}

// CommandName returns the name of the command followed by its aliases in parentheses
func (r *DefaultRenderer) CommandName(c *Command) string {
	if len(c.Aliases) == 0 {
		return c.Name
	}

	return c.Name + " (" + strings.Join(c.Aliases, ", ") + ")"
}

// CommandDescription returns the description of the given command.
// If the command has a DescriptionKey, it uses the dispatcher's message provider
// to translate the key into the appropriate description.
// Otherwise, it returns the command's Description field.
func (r *DefaultRenderer) CommandDescription(c *Command) string {
	if c.DescriptionKey == "" {
		return c.Description
	}

	return r.dispatcher.provider.GetMessage(c.DescriptionKey)
}

// CommandUsage returns one line per executable path of the command, each starting with the
// command name. The bare command is listed when its root executes.
func (r *DefaultRenderer) CommandUsage(c *Command) []string {
	prefix := c.Name
	if r.dispatcher.prefix != 0 {
		prefix = string(r.dispatcher.prefix) + prefix
	}

	var lines []string
	for _, line := range tree.Usage(c.Root) {
		lines = append(lines, strings.TrimSpace(prefix+" "+line))
	}

	return lines
}

// Help writes the help of the command registered under name, or an overview of all commands
// when name is empty
func (d *Dispatcher) Help(w io.Writer, name string) error {
	msg := d.provider.GetMessage
	if name != "" {
		c, ok := d.Command(name)
		if !ok {
			return errs.ErrUnknownCommand.WithArgs(name)
		}
		return d.helpCommand(w, c)
	}

	commands := d.Commands()
	if len(commands) == 0 {
		_, err := fmt.Fprintln(w, msg(errs.MsgNoCommandsKey))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s:\n", msg(errs.MsgCommandsKey)); err != nil {
		return err
	}
	for _, c := range commands {
		line := " " + d.renderer.CommandName(c)
		if description := d.renderer.CommandDescription(c); description != "" {
			line += " \"" + description + "\""
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) helpCommand(w io.Writer, c *Command) error {
	var b strings.Builder
	b.WriteString(d.renderer.CommandName(c))
	if description := d.renderer.CommandDescription(c); description != "" {
		b.WriteString(" \"" + description + "\"")
	}
	b.WriteString("\n")

	b.WriteString(d.provider.GetMessage(errs.MsgUsageKey) + ":\n")
	for _, line := range d.renderer.CommandUsage(c) {
		b.WriteString(" " + line + "\n")
	}
	for _, sub := range tree.Paths(c.Root) {
		b.WriteString(fmt.Sprintf(" %s %s \"%s\"\n", c.Name, sub.Path, sub.Description))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
