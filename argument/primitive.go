package argument

import (
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/internal/util"
	"github.com/napalu/kommando/parse"
)

// BoolArgument reads true or false
type BoolArgument struct{}

// Bool returns an argument reading true or false
func Bool() *BoolArgument {
	return &BoolArgument{}
}

func (a *BoolArgument) Parse(ctx *Context) Result[bool] {
	v, err := ctx.ReadBoolean()
	if err != nil {
		return Failure[bool](err)
	}
	return Success(v)
}

func (a *BoolArgument) Suggest(ctx *Context) []Suggestion {
	return ctx.SuggestMatching("true", "false")
}

func (a *BoolArgument) Usage() Usage {
	return Required("bool")
}

// NumberArgument reads a number of type T lying within [Min, Max]
type NumberArgument[T util.Numeric] struct {
	Kind string
	Min  T
	Max  T
	read func(*parse.Reader) (T, error)
}

func newNumber[T util.Numeric](kind string, read func(*parse.Reader) (T, error), bounds ...T) *NumberArgument[T] {
	min, max := util.Bounds[T]()
	if len(bounds) == 2 {
		if bounds[0] > bounds[1] {
			panic("argument: minimum must not be greater than maximum")
		}
		min, max = bounds[0], bounds[1]
	}

	return &NumberArgument[T]{Kind: kind, Min: min, Max: max, read: read}
}

// Int returns an argument reading a 32 bit integer
func Int() *NumberArgument[int32] {
	return newNumber("int", (*parse.Reader).ReadInt)
}

// IntIn returns an argument reading a 32 bit integer within [min, max]
func IntIn(min, max int32) *NumberArgument[int32] {
	return newNumber("int", (*parse.Reader).ReadInt, min, max)
}

// Long returns an argument reading a 64 bit integer
func Long() *NumberArgument[int64] {
	return newNumber("long", (*parse.Reader).ReadLong)
}

// LongIn returns an argument reading a 64 bit integer within [min, max]
func LongIn(min, max int64) *NumberArgument[int64] {
	return newNumber("long", (*parse.Reader).ReadLong, min, max)
}

// Float returns an argument reading a 32 bit floating point number
func Float() *NumberArgument[float32] {
	return newNumber("float", (*parse.Reader).ReadFloat)
}

// FloatIn returns an argument reading a 32 bit floating point number within [min, max]
func FloatIn(min, max float32) *NumberArgument[float32] {
	return newNumber("float", (*parse.Reader).ReadFloat, min, max)
}

// Double returns an argument reading a 64 bit floating point number
func Double() *NumberArgument[float64] {
	return newNumber("double", (*parse.Reader).ReadDouble)
}

// DoubleIn returns an argument reading a 64 bit floating point number within [min, max]
func DoubleIn(min, max float64) *NumberArgument[float64] {
	return newNumber("double", (*parse.Reader).ReadDouble, min, max)
}

func (a *NumberArgument[T]) Parse(ctx *Context) Result[T] {
	start := ctx.Cursor()
	v, err := a.read(ctx.Reader)
	if err != nil {
		return Failure[T](err)
	}
	if !util.Within(v, a.Min, a.Max) {
		return Failure[T](ctx.ErrorAt(start, errs.ErrRangeViolation.WithArgs(a.Kind, a.Min, a.Max, v)))
	}

	return Success(v)
}

func (a *NumberArgument[T]) Suggest(*Context) []Suggestion {
	return nil
}

func (a *NumberArgument[T]) Usage() Usage {
	return Required(a.Kind)
}

// StringMode selects how much input a StringArgument consumes
type StringMode int

const (
	// SingleWord reads one unquoted word
	SingleWord StringMode = iota
	// QuotablePhrase reads a quoted string or a single word
	QuotablePhrase
	// GreedyPhrase reads the rest of the input verbatim
	GreedyPhrase
)

// StringArgument reads text
type StringArgument struct {
	Mode StringMode
}

// Word returns an argument reading a single unquoted word
func Word() *StringArgument {
	return &StringArgument{Mode: SingleWord}
}

// String returns an argument reading a single word or a quoted phrase
func String() *StringArgument {
	return &StringArgument{Mode: QuotablePhrase}
}

// RemainingString returns an argument consuming the rest of the input
func RemainingString() *StringArgument {
	return &StringArgument{Mode: GreedyPhrase}
}

func (a *StringArgument) Parse(ctx *Context) Result[string] {
	start := ctx.Cursor()
	var (
		s   string
		err error
	)
	switch a.Mode {
	case SingleWord:
		s = ctx.ReadUnquotedString()
	case GreedyPhrase:
		s = ctx.ReadRemaining()
	default:
		s, err = ctx.ReadString()
	}
	if err != nil {
		return Failure[string](err)
	}
	if ctx.Cursor() == start {
		return Failure[string](ctx.Error(errs.ErrExpectedString.WithArgs(a.name())))
	}

	return Success(s)
}

func (a *StringArgument) Suggest(*Context) []Suggestion {
	return nil
}

func (a *StringArgument) Usage() Usage {
	return Required(a.name())
}

func (a *StringArgument) name() string {
	switch a.Mode {
	case SingleWord:
		return "word"
	case GreedyPhrase:
		return "text"
	default:
		return "string"
	}
}
