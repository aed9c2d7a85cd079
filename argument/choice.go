package argument

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/kommando/errs"
)

// Choices is an ordered table of keys and the values they select
type Choices[V any] struct {
	table *orderedmap.OrderedMap
}

// NewChoices creates an empty table
func NewChoices[V any]() *Choices[V] {
	return &Choices[V]{table: orderedmap.New()}
}

// Add registers value under key. A key added twice keeps its first position and its last value.
func (c *Choices[V]) Add(key string, value V) *Choices[V] {
	c.table.Set(key, value)
	return c
}

// Get returns the value registered under key
func (c *Choices[V]) Get(key string) (V, bool) {
	v, ok := c.table.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Keys returns the keys in insertion order
func (c *Choices[V]) Keys() []string {
	keys := make([]string, 0, c.table.Len())
	for pair := c.table.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}
	return keys
}

// Len returns the number of keys
func (c *Choices[V]) Len() int {
	return c.table.Len()
}

// ChoiceArgument reads one of the keys of a table and yields the value registered under it
type ChoiceArgument[V any] struct {
	choices func(ctx *Context) *Choices[V]
	usage   Usage
}

// Choice returns an argument accepting exactly one of values
func Choice(values ...string) *ChoiceArgument[string] {
	c := NewChoices[string]()
	for _, v := range values {
		c.Add(v, v)
	}
	return ChoiceOf(c)
}

// ChoiceOf returns an argument selecting a value of a fixed table
func ChoiceOf[V any](choices *Choices[V]) *ChoiceArgument[V] {
	if choices.Len() == 0 {
		panic("argument: choices must not be empty")
	}

	return &ChoiceArgument[V]{
		choices: func(*Context) *Choices[V] { return choices },
		usage:   Usage{Text: "<" + strings.Join(choices.Keys(), "|") + ">"},
	}
}

// DynamicChoice returns an argument whose table is computed each time it is parsed or suggested
func DynamicChoice[V any](choices func(ctx *Context) *Choices[V]) *ChoiceArgument[V] {
	return &ChoiceArgument[V]{choices: choices, usage: Required("choice")}
}

func (a *ChoiceArgument[V]) Parse(ctx *Context) Result[V] {
	start := ctx.Cursor()
	key, err := ctx.ReadString()
	if err != nil {
		return Failure[V](err)
	}

	choices := a.choices(ctx)
	if v, ok := choices.Get(key); ok {
		return Success(v)
	}

	return Failure[V](ctx.ErrorAt(start, errs.ErrInvalidChoice.WithArgs(strings.Join(choices.Keys(), ", "), key)))
}

func (a *ChoiceArgument[V]) Suggest(ctx *Context) []Suggestion {
	return ctx.SuggestMatching(a.choices(ctx).Keys()...)
}

func (a *ChoiceArgument[V]) Usage() Usage {
	return a.usage
}

// KeyConverter derives the key of an enum constant from its name
type KeyConverter func(name string) string

var (
	LowerCase KeyConverter = strings.ToLower
	KebabCase KeyConverter = strcase.ToKebab
	SnakeCase KeyConverter = strcase.ToSnake
)

// Enum returns a choice over values keyed by their lower-cased String()
func Enum[V fmt.Stringer](values ...V) *ChoiceArgument[V] {
	return EnumBy(values, func(v V) string { return v.String() }, LowerCase)
}

// EnumBy returns a choice over values keyed by convert(nameOf(value))
func EnumBy[V any](values []V, nameOf func(V) string, convert KeyConverter) *ChoiceArgument[V] {
	c := NewChoices[V]()
	for _, v := range values {
		c.Add(convert(nameOf(v)), v)
	}
	return ChoiceOf(c)
}
