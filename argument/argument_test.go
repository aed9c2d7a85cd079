package argument

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

func newContext(input string) *Context {
	return NewContext(parse.NewReader(input), nil, nil)
}

func parseAll[T any](a Argument[T], input string) (Result[T], *Context) {
	ctx := newContext(input)
	return a.Parse(ctx), ctx
}

type valueMap map[string]any

func (m valueMap) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func TestNumbers(t *testing.T) {
	r, _ := parseAll[int32](Int(), "42")
	assert.True(t, r.Ok())
	assert.Equal(t, int32(42), r.Value())

	r, _ = parseAll[int32](IntIn(1, 10), "11")
	assert.False(t, r.Ok())
	assert.True(t, errors.Is(r.Err(), errs.ErrRangeViolation))
	assert.Equal(t, "int must be between 1 and 10, but found 11", r.Err().Error())

	l, _ := parseAll[int64](LongIn(-5, 5), "-5")
	assert.True(t, l.Ok())

	f, _ := parseAll[float32](FloatIn(0, 1), "0.5")
	assert.Equal(t, float32(0.5), f.Value())

	d, _ := parseAll[float64](Double(), "x")
	assert.True(t, errors.Is(d.Err(), errs.ErrExpectedNumber))

	assert.Panics(t, func() { IntIn(5, 1) })
	assert.Equal(t, "<double>", Double().Usage().String())
}

func TestBool(t *testing.T) {
	r, _ := parseAll[bool](Bool(), "true")
	assert.True(t, r.Value())

	r, _ = parseAll[bool](Bool(), "maybe")
	assert.True(t, errors.Is(r.Err(), errs.ErrInvalidBoolean))

	ctx := newContext("fa")
	s := Bool().Suggest(ctx)
	require.Len(t, s, 1)
	assert.Equal(t, Suggestion{Start: 0, End: 2, Text: "false"}, s[0])
	assert.Equal(t, "false", s[0].Apply("fa"))
}

func TestStrings(t *testing.T) {
	w, ctx := parseAll[string](Word(), "hello world")
	assert.Equal(t, "hello", w.Value())
	assert.Equal(t, " world", ctx.Remaining())

	w, _ = parseAll[string](Word(), "")
	assert.True(t, errors.Is(w.Err(), errs.ErrExpectedString))

	s, _ := parseAll[string](String(), `"hello world" rest`)
	assert.Equal(t, "hello world", s.Value())

	s, _ = parseAll[string](String(), `""`)
	assert.True(t, s.Ok(), "an explicitly quoted empty string is a value")
	assert.Equal(t, "", s.Value())

	g, ctx := parseAll[string](RemainingString(), "all of  this")
	assert.Equal(t, "all of  this", g.Value())
	assert.False(t, ctx.CanRead())
}

func TestWords(t *testing.T) {
	r, _ := parseAll(Words(), `one "two three" four`)
	require.True(t, r.Ok())
	assert.Equal(t, []string{"one", "two three", "four"}, r.Value())

	r, _ = parseAll(Words(), `one "two`)
	assert.True(t, errors.Is(r.Err(), errs.ErrInvalidWords))
}

func TestTimeAndUUID(t *testing.T) {
	r, _ := parseAll(TimeIn(time.UTC), "2024-03-01")
	require.True(t, r.Ok(), "%v", r.Err())
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(r.Value()))

	r, _ = parseAll(TimeIn(time.UTC), `"not a date"`)
	assert.True(t, errors.Is(r.Err(), errs.ErrInvalidTime))

	id := uuid.New()
	u, _ := parseAll(UUID(), id.String())
	assert.Equal(t, id, u.Value())

	u, _ = parseAll(UUID(), "1234")
	assert.True(t, errors.Is(u.Err(), errs.ErrInvalidUUID))
}

type color int

const (
	red color = iota
	darkGreen
)

func (c color) String() string {
	if c == red {
		return "Red"
	}
	return "DarkGreen"
}

func TestChoice(t *testing.T) {
	a := Choice("survival", "creative")
	r, _ := parseAll[string](a, "creative")
	assert.Equal(t, "creative", r.Value())

	r, _ = parseAll[string](a, "adventure")
	assert.True(t, errors.Is(r.Err(), errs.ErrInvalidChoice))
	assert.Equal(t, "choice must be one of [survival, creative], but found 'adventure'", r.Err().Error())
	assert.Equal(t, "<survival|creative>", a.Usage().String())

	s := a.Suggest(newContext("s"))
	require.Len(t, s, 1)
	assert.Equal(t, "survival", s[0].Text)

	e, _ := parseAll[color](Enum(red, darkGreen), "darkgreen")
	assert.Equal(t, darkGreen, e.Value())

	k, _ := parseAll[color](EnumBy([]color{red, darkGreen}, color.String, KebabCase), "dark-green")
	assert.Equal(t, darkGreen, k.Value())

	dynamic := DynamicChoice(func(ctx *Context) *Choices[int] {
		return NewChoices[int]().Add("one", 1).Add("two", 2)
	})
	n, _ := parseAll[int](dynamic, "two")
	assert.Equal(t, 2, n.Value())
	assert.Equal(t, "<choice>", dynamic.Usage().String())

	assert.Panics(t, func() { ChoiceOf(NewChoices[int]()) })
}

func TestRange(t *testing.T) {
	tests := []struct {
		input string
		want  Range[int32]
	}{
		{"5..10", Range[int32]{5, 10}},
		{"..10", Range[int32]{math.MinInt32, 10}},
		{"5..", Range[int32]{5, math.MaxInt32}},
		{"7", Range[int32]{7, 7}},
		{"..", Range[int32]{math.MinInt32, math.MaxInt32}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, _ := parseAll[Range[int32]](IntRange(), tt.input)
			require.True(t, r.Ok(), "%v", r.Err())
			assert.Equal(t, tt.want, r.Value())
		})
	}

	r, _ := parseAll[Range[int32]](IntRange(), "abc")
	assert.True(t, errors.Is(r.Err(), errs.ErrInvalidRange))
	assert.Equal(t, "expected int range, but found 'abc'", r.Err().Error())

	d, _ := parseAll[Range[float64]](DoubleRange(), "1.5..2.5")
	assert.Equal(t, Range[float64]{1.5, 2.5}, d.Value())
	assert.True(t, d.Value().Contains(2))
	assert.Equal(t, "1.5..2.5", d.Value().String())

	for _, input := range []string{"0x1p2..inf", "nan", "..Inf", "1e3..2", "1_000"} {
		d, _ = parseAll[Range[float64]](DoubleRange(), input)
		assert.True(t, errors.Is(d.Err(), errs.ErrInvalidRange), "%s must be rejected", input)
	}
	f, _ := parseAll[Range[float32]](FloatRange(), "-.5..+2")
	require.True(t, f.Ok(), "%v", f.Err())
	assert.Equal(t, Range[float32]{-0.5, 2}, f.Value())
}

func TestOptionalAndDefault(t *testing.T) {
	r, ctx := parseAll[*bool](Optional[bool](Bool()), "6")
	require.True(t, r.Ok())
	assert.Nil(t, r.Value())
	assert.True(t, errors.Is(r.Potential(), errs.ErrInvalidBoolean))
	assert.Equal(t, 0, ctx.Cursor(), "a failed optional must not consume input")

	d, _ := parseAll[bool](Default[bool](Optional[bool](Bool()), true), "")
	assert.True(t, d.Value())

	values := valueMap{"amount": int32(3)}
	by := DefaultBy[int32](Optional[int32](Int()), func(ctx *Context) int32 {
		v, _ := ctx.Value("amount")
		return v.(int32) * 2
	})
	ctx = NewContext(parse.NewReader(""), nil, values)
	assert.Equal(t, int32(6), by.Parse(ctx).Value())

	assert.Equal(t, "[<bool>]", Optional[bool](Bool()).Usage().String())
}

func TestConvertAndValidate(t *testing.T) {
	even := Validate[int32](Int(), func(v int32) error {
		if v%2 != 0 {
			return errors.New("odd")
		}
		return nil
	})
	r, _ := parseAll(even, "4")
	assert.True(t, r.Ok())

	r, _ = parseAll(even, "3")
	assert.True(t, errors.Is(r.Err(), errs.ErrValidationFailed))
	assert.Equal(t, 0, parse.PositionOf(r.Err(), -1))
	assert.Equal(t, "invalid value '3': odd", r.Err().Error())

	doubled := Map[int32, int](Int(), func(v int32) int { return int(v) * 2 })
	m, _ := parseAll(doubled, "21")
	assert.Equal(t, 42, m.Value())
	assert.Equal(t, "<int>", doubled.Usage().String())
}

func TestNamed(t *testing.T) {
	n := Named[int32](Named[int32](Int(), "first"), "second")
	assert.Equal(t, "<second>", n.Usage().String())
	assert.Equal(t, "[<amount>]", Named[*int32](Optional[int32](Int()), "amount").Usage().String())
}

func TestMultiple(t *testing.T) {
	a := MultipleN[int32](Int(), 2, 4)

	r, _ := parseAll[[]int32](a, "1 2")
	require.True(t, r.Ok())
	assert.Equal(t, []int32{1, 2}, r.Value())

	r, _ = parseAll[[]int32](a, "1")
	assert.False(t, r.Ok(), "below the minimum")

	r, ctx := parseAll[[]int32](a, "1 2 3 4 5")
	require.True(t, r.Ok())
	assert.Equal(t, []int32{1, 2, 3, 4}, r.Value())
	assert.Equal(t, " 5", ctx.Remaining())

	r, ctx = parseAll[[]int32](Multiple[int32](Int()), "1 2 x")
	require.True(t, r.Ok())
	assert.Equal(t, []int32{1, 2}, r.Value())
	assert.Equal(t, " x", ctx.Remaining())
	assert.True(t, errors.Is(r.Potential(), errs.ErrExpectedNumber))

	assert.Equal(t, "<int>{2..4}", a.Usage().String())
	assert.Equal(t, "<int>{1..}", Multiple[int32](Int()).Usage().String())
	assert.Equal(t, "<int>{3}", MultipleN[int32](Int(), 3, 3).Usage().String())
	assert.Equal(t, "<int>{..5}", MultipleN[int32](Int(), 0, 5).Usage().String())
	assert.Equal(t, "<int>{..}", MultipleN[int32](Int(), 0, -1).Usage().String())
	assert.Panics(t, func() { MultipleN[int32](Int(), 3, 2) })
}

func TestPairAndTriple(t *testing.T) {
	p := Pair[int32, string](Int(), Word())
	r, _ := parseAll(p, "5 apples")
	require.True(t, r.Ok())
	assert.Equal(t, Tuple2[int32, string]{5, "apples"}, r.Value())

	r, _ = parseAll(p, "5apples")
	assert.True(t, errors.Is(r.Err(), errs.ErrExpectedSeparator))

	first := Optional[int32](Int())
	second := Optional[bool](Bool())
	pp := Pair[*int32, *bool](first, second)
	res, _ := parseAll(pp, "")
	require.True(t, res.Ok())
	assert.True(t, errors.Is(res.Potential(), errs.ErrExpectedBoolean), "the later potential error wins")
	assert.Equal(t, "[<int> <bool>]", pp.Usage().String())
	assert.Equal(t, "<int> [<bool>]", Pair[int32, *bool](Int(), second).Usage().String())

	tr := TripleOf[int32](Int())
	tv, _ := parseAll(tr, "1 2 3")
	assert.Equal(t, Tuple3[int32, int32, int32]{1, 2, 3}, tv.Value())

	s := Pair[int32, bool](Int(), Bool()).Suggest(newContext("5 t"))
	require.Len(t, s, 1)
	assert.Equal(t, Suggestion{Start: 2, End: 3, Text: "true"}, s[0])
}

func TestEither(t *testing.T) {
	e := Either[int32, string](Int(), Word())
	r, _ := parseAll(e, "12")
	require.True(t, r.Ok())
	require.NotNil(t, r.Value().Left)
	assert.Equal(t, int32(12), *r.Value().Left)

	r, _ = parseAll(e, "twelve")
	require.NotNil(t, r.Value().Right)
	assert.Equal(t, "twelve", *r.Value().Right)

	assert.Equal(t, "<int>|<word>", e.Usage().String())

	s := Either[bool, string](Bool(), Choice("tomato")).Suggest(newContext("t"))
	got := make([]string, len(s))
	for i, sg := range s {
		got[i] = sg.Text
	}
	if diff := cmp.Diff([]string{"true", "tomato"}, got); diff != "" {
		t.Errorf("Either suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestErase(t *testing.T) {
	p := Erase[int32](Int())
	r := p.ParseAny(newContext("7"))
	assert.Equal(t, int32(7), r.Value())

	back := Unerase(p)
	assert.Equal(t, "<int>", back.Usage().String())
	assert.Equal(t, int32(7), back.Parse(newContext("7")).Value())
}

func TestSuggestValues(t *testing.T) {
	a := SuggestValues[string](Word(), "alpha", "beta", "Alpine")
	s := a.Suggest(newContext("al"))
	require.Len(t, s, 2)
	assert.Equal(t, "alpha", s[0].Text)
	assert.Equal(t, "Alpine", s[1].Text)
}
