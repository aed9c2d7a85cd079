package tree

import (
	"strings"
	"unicode"
)

// PathKind identifies the variant of a Path
type PathKind int

const (
	LiteralPath PathKind = iota
	OrPath
	ThenPath
	BeforeArgumentsPath
	OtherwisePath
)

// Path describes the literal tokens leading to a sub-command. Paths are values: combining
// them never modifies the operands.
type Path struct {
	kind    PathKind
	literal string
	parts   []Path
}

// Otherwise matches without consuming a literal. A sub-command attached with Otherwise is
// tried after the literal alternatives of its parent.
var Otherwise = Path{kind: OtherwisePath}

// Lit matches the literal token s
func Lit(s string) Path {
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		panic("tree: a literal must be a single non-empty token, got '" + s + "'")
	}
	return Path{kind: LiteralPath, literal: s}
}

// Or matches any of paths. Nested alternatives are flattened.
func Or(paths ...Path) Path {
	if len(paths) == 1 {
		return paths[0]
	}
	return FlattenOr(Path{kind: OrPath, parts: paths})
}

// Then matches a followed by b
func Then(a, b Path) Path {
	return Path{kind: ThenPath, parts: []Path{a, b}}
}

// BeforeArguments marks p to be tried before the argument alternatives of its parent
func BeforeArguments(p Path) Path {
	return Path{kind: BeforeArgumentsPath, parts: []Path{p}}
}

// Kind returns the variant of p
func (p Path) Kind() PathKind {
	return p.kind
}

// IsBeforeArguments reports whether p was wrapped by BeforeArguments
func (p Path) IsBeforeArguments() bool {
	return p.kind == BeforeArgumentsPath
}

// FlattenOr merges alternatives nested directly inside other alternatives
func FlattenOr(p Path) Path {
	if p.kind != OrPath {
		return p
	}

	var parts []Path
	for _, part := range p.parts {
		part = FlattenOr(part)
		if part.kind == OrPath {
			parts = append(parts, part.parts...)
		} else {
			parts = append(parts, part)
		}
	}

	return Path{kind: OrPath, parts: parts}
}

// Strip removes every BeforeArguments marker from p
func Strip(p Path) Path {
	switch p.kind {
	case BeforeArgumentsPath:
		return Strip(p.parts[0])
	case OrPath, ThenPath:
		parts := make([]Path, len(p.parts))
		for i, part := range p.parts {
			parts[i] = Strip(part)
		}
		return FlattenOr(Path{kind: p.kind, parts: parts})
	default:
		return p
	}
}

// Expand returns every sequence of literals matched by p. Otherwise expands to a single
// empty sequence.
func Expand(p Path) [][]string {
	switch p.kind {
	case LiteralPath:
		return [][]string{{p.literal}}
	case OtherwisePath:
		return [][]string{{}}
	case BeforeArgumentsPath:
		return Expand(p.parts[0])
	case OrPath:
		var out [][]string
		for _, part := range p.parts {
			out = append(out, Expand(part)...)
		}
		return out
	default:
		var out [][]string
		for _, head := range Expand(p.parts[0]) {
			for _, tail := range Expand(p.parts[1]) {
				seq := make([]string, 0, len(head)+len(tail))
				seq = append(append(seq, head...), tail...)
				out = append(out, seq)
			}
		}
		return out
	}
}

func (p Path) String() string {
	switch p.kind {
	case LiteralPath:
		return p.literal
	case OtherwisePath:
		return "*"
	case BeforeArgumentsPath:
		return "!" + p.parts[0].String()
	case OrPath:
		parts := make([]string, len(p.parts))
		for i, part := range p.parts {
			parts[i] = part.String()
		}
		return "(" + strings.Join(parts, "|") + ")"
	default:
		return p.parts[0].String() + " " + p.parts[1].String()
	}
}

// ParsePath reads the textual form of a path: literals separated by whitespace follow each
// other, alternatives are separated by '|' and a single '*' stands for Otherwise.
// "tp|teleport here" is Then(Or(Lit("tp"), Lit("teleport")), Lit("here")).
func ParsePath(s string) Path {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		panic("tree: empty path")
	}

	var out *Path
	for _, field := range fields {
		var step Path
		if field == "*" {
			step = Otherwise
		} else {
			alternatives := strings.Split(field, "|")
			lits := make([]Path, len(alternatives))
			for i, a := range alternatives {
				lits[i] = Lit(a)
			}
			step = Or(lits...)
		}
		if out == nil {
			out = &step
		} else {
			next := Then(*out, step)
			out = &next
		}
	}

	return *out
}

