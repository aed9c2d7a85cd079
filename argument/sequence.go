package argument

import "github.com/napalu/kommando/errs"

// MultipleArgument parses its argument repeatedly
type MultipleArgument[T any] struct {
	Argument Argument[T]
	Min      int
	// Max is negative when unbounded
	Max int
}

// Multiple parses a at least once and as often as possible
func Multiple[T any](a Argument[T]) *MultipleArgument[T] {
	return MultipleN(a, 1, -1)
}

// MultipleN parses a between min and max times. A negative max means unbounded.
func MultipleN[T any](a Argument[T], min, max int) *MultipleArgument[T] {
	if min < 0 {
		panic("argument: the minimum amount of times must not be negative")
	}
	if max == 0 || max > 0 && max < min {
		panic("argument: the maximum amount of times must be positive and not below the minimum")
	}

	return &MultipleArgument[T]{Argument: a, Min: min, Max: max}
}

func (m *MultipleArgument[T]) Parse(ctx *Context) Result[[]T] {
	var (
		values    []T
		potential error
	)
	for i := 0; m.Max < 0 || i < m.Max; i++ {
		mark := ctx.Cursor()
		var r Result[T]
		if i > 0 && ctx.CanRead() && !ctx.AtWhitespace() {
			r = Failure[T](ctx.Error(errs.ErrExpectedSeparator.WithArgs(ctx.PeekToken())))
		} else {
			ctx.SkipWhitespace()
			r = m.Argument.Parse(ctx)
		}

		if !r.Ok() {
			if i < m.Min {
				return Failure[[]T](r.Err())
			}
			ctx.SetCursor(mark)
			potential = r.Err()
			break
		}
		values = append(values, r.Value())
		potential = r.Potential()
		if ctx.Cursor() == mark && i+1 >= m.Min {
			break
		}
	}

	return Partial(values, potential)
}

func (m *MultipleArgument[T]) Suggest(ctx *Context) []Suggestion {
	for i := 0; m.Max < 0 || i < m.Max; i++ {
		if i > 0 {
			if err := ctx.Separate(); err != nil {
				return nil
			}
		}
		if !Completed(ctx, m.Argument) {
			break
		}
	}

	return m.Argument.Suggest(ctx)
}

func (m *MultipleArgument[T]) Usage() Usage {
	return m.Argument.Usage().Repeated(m.Min, m.Max)
}

// Tuple2 holds the values of a Pair
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds the values of a Triple
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairArgument parses two arguments one after the other
type PairArgument[A, B any] struct {
	First  Argument[A]
	Second Argument[B]
}

// Pair parses first and then second
func Pair[A, B any](first Argument[A], second Argument[B]) *PairArgument[A, B] {
	return &PairArgument[A, B]{First: first, Second: second}
}

// PairOf parses a twice
func PairOf[T any](a Argument[T]) *PairArgument[T, T] {
	return Pair(a, a)
}

func (p *PairArgument[A, B]) Parse(ctx *Context) Result[Tuple2[A, B]] {
	a := p.First.Parse(ctx)
	if !a.Ok() {
		return Failure[Tuple2[A, B]](a.Err())
	}
	if err := ctx.Separate(); err != nil {
		return Failure[Tuple2[A, B]](err)
	}
	b := p.Second.Parse(ctx)

	return Merge(a, b, func(a A, b B) Tuple2[A, B] { return Tuple2[A, B]{First: a, Second: b} })
}

func (p *PairArgument[A, B]) Suggest(ctx *Context) []Suggestion {
	if !Completed(ctx, p.First) {
		return p.First.Suggest(ctx)
	}
	if err := ctx.Separate(); err != nil {
		return nil
	}

	return p.Second.Suggest(ctx)
}

func (p *PairArgument[A, B]) Usage() Usage {
	return JoinUsage(" ", p.First.Usage(), p.Second.Usage())
}

// TripleArgument parses three arguments one after the other
type TripleArgument[A, B, C any] struct {
	First  Argument[A]
	Second Argument[B]
	Third  Argument[C]
}

// Triple parses first, second and then third
func Triple[A, B, C any](first Argument[A], second Argument[B], third Argument[C]) *TripleArgument[A, B, C] {
	return &TripleArgument[A, B, C]{First: first, Second: second, Third: third}
}

// TripleOf parses a three times
func TripleOf[T any](a Argument[T]) *TripleArgument[T, T, T] {
	return Triple(a, a, a)
}

func (t *TripleArgument[A, B, C]) Parse(ctx *Context) Result[Tuple3[A, B, C]] {
	ab := Pair(t.First, t.Second).Parse(ctx)
	if !ab.Ok() {
		return Failure[Tuple3[A, B, C]](ab.Err())
	}
	if err := ctx.Separate(); err != nil {
		return Failure[Tuple3[A, B, C]](err)
	}
	c := t.Third.Parse(ctx)

	return Merge(ab, c, func(ab Tuple2[A, B], c C) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{First: ab.First, Second: ab.Second, Third: c}
	})
}

func (t *TripleArgument[A, B, C]) Suggest(ctx *Context) []Suggestion {
	if !Completed(ctx, t.First) {
		return t.First.Suggest(ctx)
	}
	if err := ctx.Separate(); err != nil {
		return nil
	}

	return Pair(t.Second, t.Third).Suggest(ctx)
}

func (t *TripleArgument[A, B, C]) Usage() Usage {
	return JoinUsage(" ", t.First.Usage(), t.Second.Usage(), t.Third.Usage())
}

// Alternative holds the value of an Either. Exactly one of Left and Right is set.
type Alternative[L, R any] struct {
	Left  *L
	Right *R
}

// EitherArgument parses one of two arguments
type EitherArgument[L, R any] struct {
	Left  Argument[L]
	Right Argument[R]
}

// Either tries left and falls back to right at the same position
func Either[L, R any](left Argument[L], right Argument[R]) *EitherArgument[L, R] {
	return &EitherArgument[L, R]{Left: left, Right: right}
}

func (e *EitherArgument[L, R]) Parse(ctx *Context) Result[Alternative[L, R]] {
	if l, ok := TryParseOrReset(ctx, e.Left); ok {
		v := l.Value()
		return Partial(Alternative[L, R]{Left: &v}, l.Potential())
	}

	r := e.Right.Parse(ctx)
	if !r.Ok() {
		return Failure[Alternative[L, R]](r.Err())
	}
	v := r.Value()

	return Partial(Alternative[L, R]{Right: &v}, r.Potential())
}

func (e *EitherArgument[L, R]) Suggest(ctx *Context) []Suggestion {
	start := ctx.Cursor()
	out := e.Left.Suggest(ctx)
	ctx.SetCursor(start)
	out = append(out, e.Right.Suggest(ctx)...)
	ctx.SetCursor(start)

	return out
}

func (e *EitherArgument[L, R]) Usage() Usage {
	return JoinUsage("|", e.Left.Usage(), e.Right.Usage())
}
