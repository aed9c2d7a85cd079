package tree

import (
	"github.com/napalu/kommando/argument"
)

// Kind identifies what a Node matches
type Kind int

const (
	// RootKind matches nothing and starts a command
	RootKind Kind = iota
	// LiteralKind matches one exact token
	LiteralKind
	// ArgumentKind binds the value of an argument
	ArgumentKind
	// GroupKind matches nothing. It holds a sub-command attached with Otherwise.
	GroupKind
)

func (k Kind) String() string {
	switch k {
	case RootKind:
		return "root"
	case LiteralKind:
		return "literal"
	case ArgumentKind:
		return "argument"
	default:
		return "group"
	}
}

// Executor runs a command once its whole line was matched
type Executor func(ctx *Context) error

// Requirement checks the source of a command before any of its children is tried
type Requirement func(source any) error

type sourceConversion struct {
	slot    *slot
	convert func(source any) (any, error)
}

// Node is one point of a folded command tree. Nodes are immutable once Build returned
// them and may be shared by concurrent resolutions.
type Node struct {
	kind         Kind
	literal      string
	before       bool
	slot         *slot
	parser       argument.Parser
	description  string
	flags        []*FlagSpec
	requirements []Requirement
	sources      []sourceConversion
	children     []*Node
	executor     Executor
	converter    func(ctx *Context) (any, error)
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Literal returns the token matched by a literal node
func (n *Node) Literal() string {
	return n.literal
}

// Argument returns the parser of an argument node
func (n *Node) Argument() argument.Parser {
	return n.parser
}

// Name returns the literal of a literal node or the binding name of an argument node
func (n *Node) Name() string {
	switch n.kind {
	case LiteralKind:
		return n.literal
	case ArgumentKind:
		return n.slot.name
	default:
		return ""
	}
}

// Usage renders the node's own token for help output
func (n *Node) Usage() string {
	switch n.kind {
	case LiteralKind:
		return n.literal
	case ArgumentKind:
		return n.parser.Usage().String()
	default:
		return ""
	}
}

func (n *Node) Description() string {
	return n.description
}

func (n *Node) Children() []*Node {
	return n.children
}

// Flags returns the flags that come into scope once the node is matched
func (n *Node) Flags() []*FlagSpec {
	return n.flags
}

// Executable reports whether a command line may end at this node
func (n *Node) Executable() bool {
	return n.executor != nil
}

// BeforeArguments reports whether a literal node is tried before its argument siblings
func (n *Node) BeforeArguments() bool {
	return n.before
}

func (n *Node) terminal(built bool) bool {
	if built {
		return n.converter != nil
	}
	return n.executor != nil
}

// rank orders siblings: literals marked BeforeArguments, then argument and group
// nodes, then the remaining literals
func (n *Node) rank() int {
	switch {
	case n.kind == LiteralKind && n.before:
		return 0
	case n.kind == LiteralKind:
		return 2
	default:
		return 1
	}
}

func (n *Node) child(literal string, before bool) *Node {
	for _, c := range n.children {
		if c.kind == LiteralKind && c.literal == literal && c.before == before && !c.owned() {
			return c
		}
	}
	return nil
}

// owned reports whether the node carries a folded builder of its own. Only bare literal
// prefixes may be shared by several sub-commands.
func (n *Node) owned() bool {
	return n.executor != nil || n.converter != nil || len(n.flags) > 0 || len(n.requirements) > 0 ||
		len(n.sources) > 0 || n.description != "" || hasArgumentChild(n)
}

func hasArgumentChild(n *Node) bool {
	for _, c := range n.children {
		if c.kind == ArgumentKind {
			return true
		}
	}
	return false
}
