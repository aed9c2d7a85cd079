package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want [][]string
	}{
		{"literal", Lit("tp"), [][]string{{"tp"}}},
		{"or", Or(Lit("tp"), Lit("teleport")), [][]string{{"tp"}, {"teleport"}}},
		{"then", Then(Or(Lit("a"), Lit("b")), Lit("c")), [][]string{{"a", "c"}, {"b", "c"}}},
		{"otherwise", Otherwise, [][]string{{}}},
		{"before", BeforeArguments(Then(Lit("x"), Lit("y"))), [][]string{{"x", "y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.path))
		})
	}
}

func TestOrFlattens(t *testing.T) {
	p := Or(Lit("a"), Or(Lit("b"), Or(Lit("c"), Lit("d"))))
	assert.Equal(t, OrPath, p.Kind())
	assert.Len(t, p.parts, 4)
	assert.Equal(t, "(a|b|c|d)", p.String())
	assert.Equal(t, Lit("a"), Or(Lit("a")))
}

func TestStrip(t *testing.T) {
	p := Or(BeforeArguments(Lit("a")), Then(BeforeArguments(Lit("b")), Lit("c")))
	assert.Equal(t, "(!a|!b c)", p.String())
	stripped := Strip(p)
	assert.Equal(t, "(a|b c)", stripped.String())
	assert.False(t, stripped.IsBeforeArguments())
	assert.True(t, BeforeArguments(Lit("a")).IsBeforeArguments())
}

func TestParsePath(t *testing.T) {
	assert.Equal(t, Then(Or(Lit("tp"), Lit("teleport")), Lit("here")), ParsePath("tp|teleport here"))
	assert.Equal(t, Otherwise, ParsePath("*"))
	assert.Panics(t, func() { ParsePath("  ") })
	assert.Panics(t, func() { Lit("two words") })
	assert.Panics(t, func() { ParsePath("a||b") })
}
