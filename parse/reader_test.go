package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/kommando/errs"
)

func TestReader_Cursor(t *testing.T) {
	r := NewReader("héllo")
	assert.Equal(t, 5, r.Len())
	assert.True(t, r.CanReadN(5))
	assert.False(t, r.CanReadN(6))

	c, err := r.Read()
	assert.NoError(t, err)
	assert.Equal(t, 'h', c)
	c, err = r.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 'é', c)
	assert.Equal(t, "h", r.Consumed())
	assert.Equal(t, "éllo", r.Remaining())

	r.SetCursor(5)
	assert.False(t, r.CanRead())
	_, err = r.Read()
	assert.True(t, errors.Is(err, errs.ErrEndOfInput))

	assert.Panics(t, func() { r.SetCursor(6) })
	assert.Panics(t, func() { r.SetCursor(-1) })
}

func TestReader_SkipWhitespace(t *testing.T) {
	r := NewReader(" \t  word")
	assert.True(t, r.AfterWhitespace())
	r.SkipWhitespace()
	assert.Equal(t, 4, r.Cursor())
	assert.True(t, r.AfterWhitespace())
	assert.Equal(t, "word", r.PeekToken())
	assert.Equal(t, 4, r.Cursor())
}

func TestReader_ReadUnquotedString(t *testing.T) {
	r := NewReader("hello-world_1.2+3 rest")
	assert.Equal(t, "hello-world_1.2+3", r.ReadUnquotedString())
	assert.Equal(t, " rest", r.Remaining())

	r = NewReader("@x")
	assert.Equal(t, "", r.ReadUnquotedString())
	assert.Equal(t, 0, r.Cursor())
}

func TestReader_ReadQuotedString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		rest    string
		wantErr error
	}{
		{name: "double quotes", input: `"hello world" x`, want: "hello world", rest: " x"},
		{name: "single quotes", input: `'it "works"'`, want: `it "works"`},
		{name: "escaped terminator", input: `"say \"hi\""`, want: `say "hi"`},
		{name: "escaped backslash", input: `"a\\b"`, want: `a\b`},
		{name: "empty", input: `""`, want: ""},
		{name: "unterminated", input: `"hello`, wantErr: errs.ErrUnterminatedQuote},
		{name: "missing quote", input: `hello`, wantErr: errs.ErrMissingQuote},
		{name: "end of input", input: ``, wantErr: errs.ErrEndOfInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := r.ReadQuotedString()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, r.Remaining())
		})
	}
}

func TestReader_ReadString(t *testing.T) {
	r := NewReader("")
	s, err := r.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	r = NewReader(`"quoted text" plain`)
	s, err = r.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, "quoted text", s)
	r.SkipWhitespace()
	s, err = r.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, "plain", s)
}

func TestReader_ReadRemaining(t *testing.T) {
	r := NewReader("say  hello, \"world\"")
	r.SetCursor(4)
	assert.Equal(t, " hello, \"world\"", r.ReadRemaining())
	assert.False(t, r.CanRead())
}

func TestReader_ReadBoolean(t *testing.T) {
	r := NewReader("true false")
	v, err := r.ReadBoolean()
	assert.NoError(t, err)
	assert.True(t, v)
	r.SkipWhitespace()
	v, err = r.ReadBoolean()
	assert.NoError(t, err)
	assert.False(t, v)

	r = NewReader("yes")
	_, err = r.ReadBoolean()
	assert.True(t, errors.Is(err, errs.ErrInvalidBoolean))
	assert.Equal(t, 0, r.Cursor(), "cursor must be restored after an invalid boolean")
	assert.Equal(t, 0, PositionOf(err, -1))

	r = NewReader("")
	_, err = r.ReadBoolean()
	assert.True(t, errors.Is(err, errs.ErrExpectedBoolean))

	r = NewReader(`"" x`)
	_, err = r.ReadBoolean()
	assert.True(t, errors.Is(err, errs.ErrExpectedBoolean))
	assert.Equal(t, 0, r.Cursor(), "cursor must be restored after an empty quoted boolean")
}

func TestReader_ReadNumbers(t *testing.T) {
	r := NewReader("12.36")
	l, err := r.ReadLong()
	assert.NoError(t, err)
	assert.Equal(t, int64(12), l)
	assert.Equal(t, ".36", r.Remaining())

	r = NewReader("-42 rest")
	i, err := r.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(-42), i)

	r = NewReader("2147483648")
	_, err = r.ReadInt()
	assert.True(t, errors.Is(err, errs.ErrInvalidNumber), "int overflow must be rejected")
	l, err = NewReader("2147483648").ReadLong()
	assert.NoError(t, err)
	assert.Equal(t, int64(2147483648), l)

	r = NewReader("abc")
	_, err = r.ReadInt()
	assert.True(t, errors.Is(err, errs.ErrExpectedNumber))
	assert.Equal(t, "expected int", err.Error())

	r = NewReader("1-2")
	_, err = r.ReadInt()
	assert.True(t, errors.Is(err, errs.ErrInvalidNumber))
	assert.Equal(t, "invalid int '1-2'", err.Error())

	f, err := NewReader("1.5").ReadFloat()
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	d, err := NewReader("-.25").ReadDouble()
	assert.NoError(t, err)
	assert.Equal(t, -0.25, d)

	_, err = NewReader("1.2.3").ReadDouble()
	assert.True(t, errors.Is(err, errs.ErrInvalidNumber))
}

func TestTryRead(t *testing.T) {
	r := NewReader("1x")
	_, ok := TryRead(r, func(r *Reader) (int32, error) {
		v, err := r.ReadInt()
		if err != nil {
			return 0, err
		}
		if r.CanRead() && !r.AtWhitespace() {
			return 0, NewError(r.Cursor(), errs.ErrExpectedSeparator)
		}
		return v, nil
	})
	assert.False(t, ok)
	assert.Equal(t, 0, r.Cursor(), "failed attempts must not move the cursor")

	v, ok := r.TryReadInt()
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)
	assert.Equal(t, 1, r.Cursor())

	_, ok = r.TryReadBoolean()
	assert.False(t, ok)
	assert.Equal(t, 1, r.Cursor())

	_, ok = NewReader("nope").TryReadDouble()
	assert.False(t, ok)

	r = NewReader(`'a b' rest`)
	s, ok := r.TryReadQuotedString()
	assert.True(t, ok)
	assert.Equal(t, "a b", s)
	assert.Equal(t, 5, r.Cursor())

	r = NewReader(`"open`)
	_, ok = r.TryReadQuotedString()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Cursor())
	_, ok = NewReader("plain").TryReadQuotedString()
	assert.False(t, ok)

	r = NewReader("word next")
	s, ok = r.TryReadUnquotedString()
	assert.True(t, ok)
	assert.Equal(t, "word", s)
	assert.Equal(t, 4, r.Cursor())

	r = NewReader(" word")
	_, ok = r.TryReadUnquotedString()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Cursor())
}

func FuzzReader(f *testing.F) {
	f.Add(`"quoted \" text" 12 -3.5 true`)
	f.Add(`'unterminated`)
	f.Add("héllo wörld")
	f.Add("++--..")
	f.Add("")
	f.Fuzz(func(t *testing.T, input string) {
		r := NewReader(input)
		for r.CanRead() {
			start := r.Cursor()
			if _, ok := r.TryReadDouble(); ok {
				r.SkipWhitespace()
				continue
			}
			assert.Equal(t, start, r.Cursor())
			if _, ok := r.TryReadString(); !ok {
				assert.Equal(t, start, r.Cursor())
			}
			if r.Cursor() == start {
				r.Skip()
			}
			r.SkipWhitespace()
			assert.LessOrEqual(t, r.Cursor(), r.Len())
		}
	})
}
