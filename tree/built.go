package tree

import (
	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

// ConvertWith makes b yield a value when it is used as a built argument. Every path of the
// argument must end at a builder with a converter.
func ConvertWith[T any](b *Builder, fn func(ctx *Context) (T, error)) {
	b.mutate()
	b.converter = func(ctx *Context) (any, error) {
		return fn(ctx)
	}
}

// BuiltArgument is an argument defined by a command tree. It matches the paths of its tree
// like a command does but stops at the first path whose converter accepts the input, without
// requiring the rest of the line to be consumed.
type BuiltArgument[T any] struct {
	name string
	root *Node
}

// Built folds b into an argument displayed as <name>
func Built[T any](name string, b *Builder) *BuiltArgument[T] {
	return &BuiltArgument[T]{name: name, root: b.Build()}
}

func (a *BuiltArgument[T]) Parse(ctx *argument.Context) argument.Result[T] {
	start := ctx.Cursor()
	inner := newContext(ctx.Reader, ctx.Source())
	res := newResolver(inner, true)
	n, ok := res.visit(a.root)
	if !ok {
		ctx.SetCursor(start)
		return argument.Failure[T](res.failure())
	}
	inner.node = n

	v, err := n.converter(inner)
	if err != nil {
		if parse.PositionOf(err, -1) < 0 {
			err = ctx.ErrorAt(start, errs.ErrValidationFailed.WithArgs(ctx.Slice(start, ctx.Cursor())).Wrap(err))
		}
		return argument.Failure[T](err)
	}
	t, _ := v.(T)

	return argument.Partial(t, res.potential())
}

func (a *BuiltArgument[T]) Suggest(ctx *argument.Context) []argument.Suggestion {
	return suggest(a.root, newContext(ctx.Reader, ctx.Source()))
}

func (a *BuiltArgument[T]) Usage() argument.Usage {
	return argument.Required(a.name)
}
