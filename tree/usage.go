package tree

import (
	"strings"
)

// Walk calls fn for every node below root in declaration order, root included. path holds
// the nodes from root down to the visited node. Returning false from fn skips the children
// of the visited node.
func Walk(root *Node, fn func(path []*Node) bool) {
	walk([]*Node{root}, fn)
}

func walk(path []*Node, fn func(path []*Node) bool) {
	if !fn(path) {
		return
	}
	n := path[len(path)-1]
	for _, c := range n.children {
		walk(append(path[:len(path):len(path)], c), fn)
	}
}

// Usage returns one line for every executable path below root. Literals are printed as is,
// arguments by their usage and flags once the node declaring them is reached.
func Usage(root *Node) []string {
	var lines []string
	Walk(root, func(path []*Node) bool {
		n := path[len(path)-1]
		if n.Executable() {
			lines = append(lines, usageLine(path))
		}
		return true
	})

	return lines
}

func usageLine(path []*Node) string {
	var parts []string
	for _, n := range path {
		if u := n.Usage(); u != "" {
			parts = append(parts, u)
		}
		for _, f := range n.flags {
			parts = append(parts, f.Usage())
		}
	}

	return strings.Join(parts, " ")
}

// Paths returns the literal sequences leading from root to each node that declares a
// sub-command, together with the node's description
func Paths(root *Node) []Described {
	var out []Described
	Walk(root, func(path []*Node) bool {
		n := path[len(path)-1]
		if n.kind != LiteralKind || n.description == "" {
			return true
		}
		var literals []string
		for _, p := range path {
			if p.kind == LiteralKind {
				literals = append(literals, p.literal)
			}
		}
		out = append(out, Described{Path: strings.Join(literals, " "), Description: n.description})
		return true
	})

	return out
}

// Described is a sub-command path with its help text
type Described struct {
	Path        string
	Description string
}
