// Package argument provides composable parsers for the values of a command line.
//
// An Argument reads its value from a Context, describes itself through a Usage and
// proposes completions for partially typed input. Combinators such as Optional, Multiple
// or Pair build larger arguments out of smaller ones.
package argument

// Argument parses values of type T from a command line
type Argument[T any] interface {
	// Parse reads a value starting at the cursor of ctx. A failed Parse may leave the cursor
	// anywhere; callers that need to backtrack save and restore it.
	Parse(ctx *Context) Result[T]
	// Suggest proposes completions for the input at the cursor of ctx
	Suggest(ctx *Context) []Suggestion
	// Usage describes the argument for help output
	Usage() Usage
}

// Parser is an Argument with its value type erased, as stored inside a command tree
type Parser interface {
	ParseAny(ctx *Context) Result[any]
	Suggest(ctx *Context) []Suggestion
	Usage() Usage
}

type erased[T any] struct {
	Argument[T]
}

func (e erased[T]) ParseAny(ctx *Context) Result[any] {
	return MapResult(e.Parse(ctx), func(v T) any { return v })
}

// Erase turns a typed argument into a Parser
func Erase[T any](a Argument[T]) Parser {
	return erased[T]{a}
}

// Unerase turns a Parser back into an argument producing untyped values
func Unerase(p Parser) Argument[any] {
	return &basic[any]{
		parse:   p.ParseAny,
		suggest: p.Suggest,
		usage:   p.Usage(),
	}
}

// basic is an argument assembled from functions
type basic[T any] struct {
	parse   func(ctx *Context) Result[T]
	suggest func(ctx *Context) []Suggestion
	usage   Usage
}

func (b *basic[T]) Parse(ctx *Context) Result[T] {
	return b.parse(ctx)
}

func (b *basic[T]) Suggest(ctx *Context) []Suggestion {
	if b.suggest == nil {
		return nil
	}
	return b.suggest(ctx)
}

func (b *basic[T]) Usage() Usage {
	return b.usage
}

// New creates an argument from a parse function. suggest may be nil.
func New[T any](name string, parse func(ctx *Context) Result[T], suggest func(ctx *Context) []Suggestion) Argument[T] {
	return &basic[T]{parse: parse, suggest: suggest, usage: Required(name)}
}
