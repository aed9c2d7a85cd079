package argument

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/internal/util"
	"github.com/napalu/kommando/parse"
)

// Range is a closed interval of numbers
type Range[T util.Numeric] struct {
	Min T
	Max T
}

// Contains reports whether v lies within the range
func (r Range[T]) Contains(v T) bool {
	return util.Within(v, r.Min, r.Max)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v..%v", r.Min, r.Max)
}

// RangeArgument reads a range written as A..B, A.., ..B, .. or A. Missing bounds default
// to the limits of T.
type RangeArgument[T util.Numeric] struct {
	kind     string
	fraction bool
	parse    func(string) (T, error)
}

// IntRange returns an argument reading a range of 32 bit integers
func IntRange() *RangeArgument[int32] {
	return &RangeArgument[int32]{kind: "int", parse: func(s string) (int32, error) {
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	}}
}

// LongRange returns an argument reading a range of 64 bit integers
func LongRange() *RangeArgument[int64] {
	return &RangeArgument[int64]{kind: "long", parse: func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}}
}

// FloatRange returns an argument reading a range of 32 bit floating point numbers
func FloatRange() *RangeArgument[float32] {
	return &RangeArgument[float32]{kind: "float", fraction: true, parse: func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	}}
}

// DoubleRange returns an argument reading a range of 64 bit floating point numbers
func DoubleRange() *RangeArgument[float64] {
	return &RangeArgument[float64]{kind: "double", fraction: true, parse: func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}}
}

func (a *RangeArgument[T]) Parse(ctx *Context) Result[Range[T]] {
	start := ctx.Cursor()
	value := ctx.ReadUnquotedString()
	fail := func() Result[Range[T]] {
		return Failure[Range[T]](ctx.ErrorAt(start, errs.ErrInvalidRange.WithArgs(a.kind, value)))
	}

	min, max := util.Bounds[T]()
	idx := strings.Index(value, "..")
	if idx == -1 {
		v, err := a.bound(value)
		if err != nil {
			return fail()
		}
		return Success(Range[T]{Min: v, Max: v})
	}

	lo, hi := value[:idx], value[idx+2:]
	var err error
	if lo != "" {
		if min, err = a.bound(lo); err != nil {
			return fail()
		}
	}
	if hi != "" {
		if max, err = a.bound(hi); err != nil {
			return fail()
		}
	}

	return Success(Range[T]{Min: min, Max: max})
}

// bound converts one end of a range. It accepts the characters a number argument of the
// same kind reads, so forms like inf, nan or hex floats are rejected.
func (a *RangeArgument[T]) bound(s string) (T, error) {
	for _, c := range s {
		if !parse.IsNumberChar(c, a.fraction) {
			var zero T
			return zero, strconv.ErrSyntax
		}
	}
	return a.parse(s)
}

func (a *RangeArgument[T]) Suggest(*Context) []Suggestion {
	return nil
}

func (a *RangeArgument[T]) Usage() Usage {
	return Required(a.kind + "-range")
}
