package argument

import (
	"strings"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

// Values gives arguments access to the values bound earlier on the same command line
type Values interface {
	Lookup(name string) (any, bool)
}

// Context is the state shared by all arguments while one command line is parsed: the reader,
// the source that issued the command and the values bound so far.
type Context struct {
	*parse.Reader
	source any
	values Values
}

// NewContext creates a Context reading from r. values may be nil.
func NewContext(r *parse.Reader, source any, values Values) *Context {
	return &Context{Reader: r, source: source, values: values}
}

// Source returns the issuer of the command
func (c *Context) Source() any {
	return c.source
}

// Value looks up a value bound earlier under name
func (c *Context) Value(name string) (any, bool) {
	if c.values == nil {
		return nil, false
	}
	return c.values.Lookup(name)
}

// Error locates err at the cursor
func (c *Context) Error(err error) *parse.Error {
	return parse.NewError(c.Cursor(), err)
}

// ErrorAt locates err at pos
func (c *Context) ErrorAt(pos int, err error) *parse.Error {
	return parse.NewError(pos, err)
}

// AtBoundary reports whether the cursor ends a token
func (c *Context) AtBoundary() bool {
	return !c.CanRead() || c.AtWhitespace()
}

// Separate moves past the whitespace separating two tokens. It fails when the cursor sits in
// the middle of a token.
func (c *Context) Separate() error {
	if !c.CanRead() || c.AfterWhitespace() || c.AtWhitespace() {
		c.SkipWhitespace()
		return nil
	}

	return c.Error(errs.ErrExpectedSeparator.WithArgs(c.PeekToken()))
}

// TryParseOrReset parses a and restores the cursor when it fails
func TryParseOrReset[T any](ctx *Context, a Argument[T]) (Result[T], bool) {
	start := ctx.Cursor()
	r := a.Parse(ctx)
	if !r.Ok() {
		ctx.SetCursor(start)
		return r, false
	}

	return r, true
}

// TryParseAndReset reports whether a parses at the cursor. The cursor is always restored.
func TryParseAndReset[T any](ctx *Context, a Argument[T]) bool {
	start := ctx.Cursor()
	r := a.Parse(ctx)
	ctx.SetCursor(start)
	return r.Ok()
}

// Completed parses a and reports whether it is finished, that is whether it succeeded and
// more input follows. When Completed returns false the cursor is restored, so the caller can
// ask a for suggestions.
func Completed[T any](ctx *Context, a Argument[T]) bool {
	start := ctx.Cursor()
	r := a.Parse(ctx)
	if !r.Ok() || !ctx.CanRead() {
		ctx.SetCursor(start)
		return false
	}

	return true
}

// Suggestion is a proposed replacement of the input between Start and End
type Suggestion struct {
	Start   int
	End     int
	Text    string
	Tooltip string
}

// Apply returns input with the suggestion applied
func (s Suggestion) Apply(input string) string {
	runes := []rune(input)
	if s.Start > len(runes) || s.End > len(runes) || s.Start > s.End {
		return input
	}

	return string(runes[:s.Start]) + s.Text + string(runes[s.End:])
}

// Partial returns the part of the current token typed so far
func (c *Context) Partial() string {
	return c.PeekToken()
}

// Suggestion creates a suggestion replacing the current token with text
func (c *Context) Suggestion(text, tooltip string) Suggestion {
	start := c.Cursor()
	return Suggestion{
		Start:   start,
		End:     start + len([]rune(c.Partial())),
		Text:    text,
		Tooltip: tooltip,
	}
}

// SuggestMatching creates suggestions for the candidates starting with the current token,
// ignoring case
func (c *Context) SuggestMatching(candidates ...string) []Suggestion {
	partial := strings.ToLower(c.Partial())
	var out []Suggestion
	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), partial) {
			out = append(out, c.Suggestion(candidate, ""))
		}
	}

	return out
}
