package treespec

import (
	"math"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/internal/util"
	"github.com/napalu/kommando/parse"
)

// TypeFunc creates the parser of an argument type. Optional, Default, Times and Suggest are
// applied by the compiler afterwards.
type TypeFunc func(spec ArgumentSpec) (argument.Parser, error)

func builtinTypes() map[string]TypeFunc {
	return map[string]TypeFunc{
		"bool": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[bool](argument.Bool()), nil
		},
		"int": func(s ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[int32](argument.IntIn(bounds[int32](s, math.MinInt32, math.MaxInt32))), nil
		},
		"long": func(s ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[int64](argument.LongIn(bounds[int64](s, math.MinInt64, math.MaxInt64))), nil
		},
		"float": func(s ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[float32](argument.FloatIn(bounds[float32](s, -math.MaxFloat32, math.MaxFloat32))), nil
		},
		"double": func(s ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[float64](argument.DoubleIn(bounds[float64](s, -math.MaxFloat64, math.MaxFloat64))), nil
		},
		"word": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[string](argument.Word()), nil
		},
		"string": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[string](argument.String()), nil
		},
		"greedy": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[string](argument.RemainingString()), nil
		},
		"words": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[[]string](argument.Words()), nil
		},
		"time": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase(argument.Time()), nil
		},
		"uuid": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase(argument.UUID()), nil
		},
		"int_range": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[argument.Range[int32]](argument.IntRange()), nil
		},
		"long_range": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[argument.Range[int64]](argument.LongRange()), nil
		},
		"float_range": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[argument.Range[float32]](argument.FloatRange()), nil
		},
		"double_range": func(ArgumentSpec) (argument.Parser, error) {
			return argument.Erase[argument.Range[float64]](argument.DoubleRange()), nil
		},
		"choice": func(s ArgumentSpec) (argument.Parser, error) {
			if len(s.Choices) == 0 {
				return nil, errs.ErrMissingName.WithArgs("choices")
			}
			return argument.Erase[string](argument.Choice(s.Choices...)), nil
		},
	}
}

// typeName normalizes the spelling of a type, so that intRange, IntRange and int-range all
// name int_range
func typeName(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "word"
	}
	return strcase.ToSnake(t)
}

func bounds[T util.Numeric](s ArgumentSpec, lo, hi T) (T, T) {
	if s.Min != nil {
		lo = T(*s.Min)
	}
	if s.Max != nil {
		hi = T(*s.Max)
	}
	return lo, hi
}

// shape applies the repetition, suggestions and optionality of s to p
func shape(p argument.Parser, s ArgumentSpec) (argument.Parser, error) {
	a := argument.Unerase(p)
	if len(s.Suggest) > 0 {
		a = argument.SuggestValues[any](a, s.Suggest...)
	}
	if s.Times != "" {
		min, max, err := times(s.Times)
		if err != nil {
			return nil, err
		}
		a = argument.Map[[]any, any](argument.MultipleN[any](a, min, max), func(v []any) any { return v })
	}

	if s.Default != "" {
		def, err := parseDefault(a, s)
		if err != nil {
			return nil, err
		}
		return argument.Erase[any](argument.Default[any](argument.Optional[any](a), def)), nil
	}
	if s.Optional {
		return argument.Erase[any](argument.Map[*any, any](argument.Optional[any](a), func(v *any) any {
			if v == nil {
				return nil
			}
			return *v
		})), nil
	}

	return argument.Erase[any](a), nil
}

// times reads a repeat range. An open upper bound repeats without limit.
func times(s string) (int, int, error) {
	r := parse.NewReader(s)
	res := argument.IntRange().Parse(argument.NewContext(r, nil, nil))
	if !res.Ok() || r.CanRead() {
		return 0, 0, errs.ErrInvalidRange.WithArgs("int", s)
	}

	min, max := int(res.Value().Min), int(res.Value().Max)
	if min < 0 {
		min = 0
	}
	if res.Value().Max == math.MaxInt32 {
		max = -1
	}
	if max == 0 || max > 0 && max < min {
		return 0, 0, errs.ErrInvalidRange.WithArgs("int", s)
	}

	return min, max, nil
}

// parseDefault reads the default of s with the argument itself. The whole text must be
// consumed.
func parseDefault(a argument.Argument[any], s ArgumentSpec) (any, error) {
	r := parse.NewReader(s.Default)
	res := a.Parse(argument.NewContext(r, nil, nil))
	if !res.Ok() {
		return nil, errs.ErrInvalidDefault.WithArgs(s.Default, s.Name).Wrap(res.Err())
	}
	if r.CanRead() {
		return nil, errs.ErrInvalidDefault.WithArgs(s.Default, s.Name)
	}

	return res.Value(), nil
}
