package argument

import (
	"errors"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

// OptionalArgument yields nil instead of failing when its argument does not parse
type OptionalArgument[T any] struct {
	Argument Argument[T]
}

// Optional makes a optional. A failed parse restores the cursor and keeps the failure as
// potential error.
func Optional[T any](a Argument[T]) *OptionalArgument[T] {
	return &OptionalArgument[T]{Argument: a}
}

func (o *OptionalArgument[T]) Parse(ctx *Context) Result[*T] {
	r, ok := TryParseOrReset(ctx, o.Argument)
	if !ok {
		return Partial[*T](nil, r.Err())
	}

	v := r.Value()
	return Partial(&v, r.Potential())
}

func (o *OptionalArgument[T]) Suggest(ctx *Context) []Suggestion {
	return o.Argument.Suggest(ctx)
}

func (o *OptionalArgument[T]) Usage() Usage {
	return o.Argument.Usage().AsOptional()
}

// DefaultedArgument replaces an absent optional value
type DefaultedArgument[T any] struct {
	Argument Argument[*T]
	fallback func(ctx *Context) T
}

// Default yields def when a produces nil
func Default[T any](a Argument[*T], def T) *DefaultedArgument[T] {
	return DefaultBy(a, func(*Context) T { return def })
}

// DefaultBy yields fn(ctx) when a produces nil. fn may look up values bound earlier.
func DefaultBy[T any](a Argument[*T], fn func(ctx *Context) T) *DefaultedArgument[T] {
	return &DefaultedArgument[T]{Argument: a, fallback: fn}
}

func (d *DefaultedArgument[T]) Parse(ctx *Context) Result[T] {
	r := d.Argument.Parse(ctx)
	if !r.Ok() {
		return Failure[T](r.Err())
	}
	if r.Value() == nil {
		return Partial(d.fallback(ctx), r.Potential())
	}

	return Partial(*r.Value(), r.Potential())
}

func (d *DefaultedArgument[T]) Suggest(ctx *Context) []Suggestion {
	return d.Argument.Suggest(ctx)
}

func (d *DefaultedArgument[T]) Usage() Usage {
	return d.Argument.Usage()
}

// Convert maps the value of a through fn. An error returned by fn fails the parse at the
// start of the argument.
func Convert[T, U any](a Argument[T], fn func(T) (U, error)) Argument[U] {
	return &basicWith[T, U]{inner: a, parse: func(ctx *Context) Result[U] {
		start := ctx.Cursor()
		r := a.Parse(ctx)
		if !r.Ok() {
			return Failure[U](r.Err())
		}
		u, err := fn(r.Value())
		if err != nil {
			return Failure[U](located(ctx, start, err))
		}
		return Partial(u, r.Potential())
	}}
}

// Map maps the value of a through fn
func Map[T, U any](a Argument[T], fn func(T) U) Argument[U] {
	return Convert(a, func(v T) (U, error) { return fn(v), nil })
}

// Validate fails the parse of a when fn rejects the value
func Validate[T any](a Argument[T], fn func(T) error) Argument[T] {
	return Convert(a, func(v T) (T, error) { return v, fn(v) })
}

func located(ctx *Context, start int, err error) error {
	var pe *parse.Error
	if errors.As(err, &pe) {
		return err
	}

	return ctx.ErrorAt(start, errs.ErrValidationFailed.WithArgs(ctx.Slice(start, ctx.Cursor())).Wrap(err))
}

// basicWith is an argument derived from inner that keeps its suggestions and usage
type basicWith[T, U any] struct {
	inner Argument[T]
	parse func(ctx *Context) Result[U]
}

func (b *basicWith[T, U]) Parse(ctx *Context) Result[U] {
	return b.parse(ctx)
}

func (b *basicWith[T, U]) Suggest(ctx *Context) []Suggestion {
	return b.inner.Suggest(ctx)
}

func (b *basicWith[T, U]) Usage() Usage {
	return b.inner.Usage()
}

// NamedArgument displays its argument under a different name
type NamedArgument[T any] struct {
	Argument Argument[T]
	Name     string
}

// Named renames a in usage output. Renaming a named argument replaces the name.
func Named[T any](a Argument[T], name string) *NamedArgument[T] {
	if n, ok := a.(*NamedArgument[T]); ok {
		return &NamedArgument[T]{Argument: n.Argument, Name: name}
	}
	return &NamedArgument[T]{Argument: a, Name: name}
}

func (n *NamedArgument[T]) Parse(ctx *Context) Result[T] {
	return n.Argument.Parse(ctx)
}

func (n *NamedArgument[T]) Suggest(ctx *Context) []Suggestion {
	return n.Argument.Suggest(ctx)
}

func (n *NamedArgument[T]) Usage() Usage {
	return n.Argument.Usage().Renamed(n.Name)
}

// SuggestBy replaces the suggestions of a with those of fn
func SuggestBy[T any](a Argument[T], fn func(ctx *Context) []Suggestion) Argument[T] {
	return &suggesting[T]{Argument: a, suggest: fn}
}

// SuggestValues makes a suggest the given values
func SuggestValues[T any](a Argument[T], values ...string) Argument[T] {
	return SuggestBy(a, func(ctx *Context) []Suggestion {
		return ctx.SuggestMatching(values...)
	})
}

type suggesting[T any] struct {
	Argument[T]
	suggest func(ctx *Context) []Suggestion
}

func (s *suggesting[T]) Suggest(ctx *Context) []Suggestion {
	return s.suggest(ctx)
}
