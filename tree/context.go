package tree

import (
	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/parse"
)

// Context is handed to executors and converters. It gives access to the source of the
// command, the input line and the values bound on the matched path.
type Context struct {
	*argument.Context
	values *bindings
	node   *Node
}

func newContext(r *parse.Reader, source any) *Context {
	values := newBindings()
	return &Context{Context: argument.NewContext(r, source, values), values: values}
}

// Node returns the node the command line ended at
func (c *Context) Node() *Node {
	return c.node
}

// Values returns every value bound on the matched path in the order it was bound. Flags
// that were left out are not included.
func (c *Context) Values() []Value {
	return c.values.list()
}

// Match is a resolved command line waiting to be executed
type Match struct {
	ctx *Context
}

// Node returns the node the command line ended at
func (m *Match) Node() *Node {
	return m.ctx.node
}

// Context returns the context the executor will receive
func (m *Match) Context() *Context {
	return m.ctx
}

// Execute runs the executor of the matched node
func (m *Match) Execute() error {
	return m.ctx.node.executor(m.ctx)
}
