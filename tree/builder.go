package tree

import (
	"fmt"
	"slices"

	"github.com/napalu/kommando/argument"
)

type boundArgument struct {
	slot   *slot
	parser argument.Parser
}

type subCommand struct {
	path    Path
	builder *Builder
}

// Builder declares a command before it is folded into an immutable Node tree. Arguments are
// matched in declaration order, sub-commands are attached after the last argument and the
// executor runs when the line ends after the last argument.
//
// A Builder is frozen by Build and by being folded into a parent. Mutating a frozen Builder
// panics.
type Builder struct {
	frozen       bool
	description  string
	arguments    []boundArgument
	requirements []Requirement
	sources      []sourceConversion
	flags        []*FlagSpec
	children     []subCommand
	executor     Executor
	converter    func(ctx *Context) (any, error)
	root         *Node
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) mutate() {
	if b.frozen {
		panic("tree: builder is frozen and can no longer be modified")
	}
}

// Description sets the help text of the command
func (b *Builder) Description(text string) *Builder {
	b.mutate()
	b.description = text
	return b
}

// Requirement adds a check of the command source. A failing requirement stops the
// resolution of the whole line.
func (b *Builder) Requirement(r Requirement) *Builder {
	b.mutate()
	b.requirements = append(b.requirements, r)
	return b
}

// Executor sets the function run when the line ends after the last argument
func (b *Builder) Executor(e Executor) *Builder {
	b.mutate()
	b.executor = e
	return b
}

// Literal declares a sub-command reached through path and configured by fn
func (b *Builder) Literal(path Path, fn func(sb *Builder)) *Builder {
	sub := NewBuilder()
	fn(sub)
	return b.Sub(path, sub)
}

// Sub attaches an existing builder as a sub-command reached through path. The same builder
// may be attached several times.
func (b *Builder) Sub(path Path, sub *Builder) *Builder {
	b.mutate()
	if sub == b {
		panic("tree: a builder cannot be its own sub-command")
	}
	b.children = append(b.children, subCommand{path: path, builder: sub})
	return b
}

// Bind declares the next positional argument and returns the handle its value is read
// through
func Bind[T any](b *Builder, name string, a argument.Argument[T]) Handle[T] {
	return Handle[T]{slot: b.bind(name, argument.Erase(a))}
}

// BindParser declares the next positional argument from an untyped parser
func BindParser(b *Builder, name string, p argument.Parser) Handle[any] {
	return Handle[any]{slot: b.bind(name, p)}
}

func (b *Builder) bind(name string, p argument.Parser) *slot {
	b.mutate()
	if name == "" {
		panic("tree: an argument needs a name")
	}
	s := &slot{name: name}
	b.arguments = append(b.arguments, boundArgument{slot: s, parser: p})
	return s
}

// SourceAs converts the source of the command once the command is entered. A failed
// conversion stops the resolution of the whole line.
func SourceAs[T any](b *Builder, convert func(source any) (T, error)) Handle[T] {
	b.mutate()
	s := &slot{name: fmt.Sprintf("source#%d", len(b.sources))}
	b.sources = append(b.sources, sourceConversion{slot: s, convert: func(source any) (any, error) {
		return convert(source)
	}})
	return Handle[T]{slot: s}
}

// Build folds the builder into a tree and freezes it. Building twice returns the same tree.
func (b *Builder) Build() *Node {
	if b.root != nil {
		return b.root
	}

	root := &Node{kind: RootKind}
	b.fold(root)
	arrange(root)
	if leaf := deadEnd(root); leaf != nil {
		panic(fmt.Sprintf("tree: '%s' can neither be executed nor continued", leaf.Name()))
	}
	b.root = root

	return root
}

func (b *Builder) fold(head *Node) {
	b.frozen = true
	head.description = b.description
	head.flags = append(head.flags, b.flags...)
	head.requirements = append(head.requirements, b.requirements...)
	head.sources = append(head.sources, b.sources...)

	tail := head
	for _, a := range b.arguments {
		n := &Node{kind: ArgumentKind, slot: a.slot, parser: a.parser}
		tail.children = append(tail.children, n)
		tail = n
	}
	tail.executor = b.executor
	tail.converter = b.converter

	for _, sc := range b.children {
		before := sc.path.IsBeforeArguments()
		for _, seq := range Expand(sc.path) {
			parent := tail
			if len(seq) == 0 {
				group := &Node{kind: GroupKind}
				parent.children = append(parent.children, group)
				sc.builder.fold(group)
				continue
			}
			for i, lit := range seq {
				var n *Node
				if i < len(seq)-1 {
					n = parent.child(lit, before && i == 0)
				}
				if n == nil {
					n = &Node{kind: LiteralKind, literal: lit, before: before && i == 0}
					parent.children = append(parent.children, n)
				}
				parent = n
			}
			sc.builder.fold(parent)
		}
	}
}

func arrange(n *Node) {
	slices.SortStableFunc(n.children, func(a, b *Node) int { return a.rank() - b.rank() })
	for _, c := range n.children {
		arrange(c)
	}
}

func deadEnd(n *Node) *Node {
	if len(n.children) == 0 && !n.terminal(false) && !n.terminal(true) {
		return n
	}
	for _, c := range n.children {
		if leaf := deadEnd(c); leaf != nil {
			return leaf
		}
	}
	return nil
}

// Handle reads the value bound to one argument, flag or source conversion of a command
type Handle[T any] struct {
	slot *slot
}

// Name returns the binding name
func (h Handle[T]) Name() string {
	return h.slot.name
}

// Get returns the bound value. Reading a value that was not bound on the matched path
// panics.
func (h Handle[T]) Get(ctx *Context) T {
	v, ok := h.Lookup(ctx)
	if !ok {
		panic(fmt.Sprintf("tree: '%s' is not initialized", h.slot.name))
	}
	return v
}

// Lookup returns the bound value and whether it was bound
func (h Handle[T]) Lookup(ctx *Context) (T, bool) {
	var zero T
	v, ok := ctx.values.get(h.slot)
	if !ok {
		return zero, false
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	return zero, true
}

// Present reports whether the value was given on the command line. Flags that were left out
// are not present even though Get returns their default.
func (h Handle[T]) Present(ctx *Context) bool {
	return ctx.values.bound(h.slot)
}
