package parse

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/napalu/kommando/errs"
)

const (
	doubleQuote = '"'
	singleQuote = '\''
	escape      = '\\'
)

// Reader is a cursor over a single command line. Positions are rune offsets, so the cursor
// can be saved with Cursor and restored with SetCursor at any time.
type Reader struct {
	input  []rune
	cursor int
}

// NewReader creates a Reader positioned at the start of input
func NewReader(input string) *Reader {
	return &Reader{input: []rune(input)}
}

// Input returns the full input
func (r *Reader) Input() string {
	return string(r.input)
}

// Len returns the number of runes in the input
func (r *Reader) Len() int {
	return len(r.input)
}

// Cursor returns the current position
func (r *Reader) Cursor() int {
	return r.cursor
}

// SetCursor moves the cursor to pos. It panics when pos lies outside the input.
func (r *Reader) SetCursor(pos int) {
	if pos < 0 || pos > len(r.input) {
		panic(fmt.Sprintf("parse: cursor %d out of range [0,%d]", pos, len(r.input)))
	}
	r.cursor = pos
}

// Consumed returns the input before the cursor
func (r *Reader) Consumed() string {
	return string(r.input[:r.cursor])
}

// Remaining returns the input from the cursor on
func (r *Reader) Remaining() string {
	return string(r.input[r.cursor:])
}

// Slice returns the input between start and end
func (r *Reader) Slice(start, end int) string {
	return string(r.input[start:end])
}

// CanRead reports whether at least one rune is left
func (r *Reader) CanRead() bool {
	return r.CanReadN(1)
}

// CanReadN reports whether at least n runes are left
func (r *Reader) CanReadN(n int) bool {
	return r.cursor+n <= len(r.input)
}

// Peek returns the rune at the cursor without consuming it
func (r *Reader) Peek() (rune, error) {
	return r.PeekAt(0)
}

// PeekAt returns the rune offset runes after the cursor
func (r *Reader) PeekAt(offset int) (rune, error) {
	pos := r.cursor + offset
	if pos < 0 || pos >= len(r.input) {
		return 0, NewError(pos, errs.ErrEndOfInput)
	}

	return r.input[pos], nil
}

// Read consumes and returns the rune at the cursor
func (r *Reader) Read() (rune, error) {
	c, err := r.Peek()
	if err != nil {
		return 0, err
	}
	r.cursor++

	return c, nil
}

// Skip advances the cursor by one rune
func (r *Reader) Skip() {
	if r.cursor < len(r.input) {
		r.cursor++
	}
}

// SkipWhitespace advances the cursor past any whitespace
func (r *Reader) SkipWhitespace() {
	for r.CanRead() && unicode.IsSpace(r.input[r.cursor]) {
		r.cursor++
	}
}

// AtWhitespace reports whether the rune at the cursor is whitespace
func (r *Reader) AtWhitespace() bool {
	return r.CanRead() && unicode.IsSpace(r.input[r.cursor])
}

// AfterWhitespace reports whether the cursor is at the start of the input or directly after whitespace
func (r *Reader) AfterWhitespace() bool {
	return r.cursor == 0 || unicode.IsSpace(r.input[r.cursor-1])
}

// IsUnquotedChar reports whether c may appear in an unquoted string
func IsUnquotedChar(c rune) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// IsQuote reports whether c starts a quoted string
func IsQuote(c rune) bool {
	return c == doubleQuote || c == singleQuote
}

// ReadToken consumes every rune up to the next whitespace
func (r *Reader) ReadToken() string {
	start := r.cursor
	for r.CanRead() && !unicode.IsSpace(r.input[r.cursor]) {
		r.cursor++
	}

	return string(r.input[start:r.cursor])
}

// PeekToken returns the runes up to the next whitespace without consuming them
func (r *Reader) PeekToken() string {
	start := r.cursor
	token := r.ReadToken()
	r.cursor = start

	return token
}

// ReadUnquotedString consumes the longest run of unquoted characters. It never fails.
func (r *Reader) ReadUnquotedString() string {
	start := r.cursor
	for r.CanRead() && IsUnquotedChar(r.input[r.cursor]) {
		r.cursor++
	}

	return string(r.input[start:r.cursor])
}

// ReadQuotedString consumes a string delimited by matching quotes. Inside the string a
// backslash makes the next rune literal.
func (r *Reader) ReadQuotedString() (string, error) {
	start := r.cursor
	quote, err := r.Peek()
	if err != nil {
		return "", err
	}
	if !IsQuote(quote) {
		return "", NewError(start, errs.ErrMissingQuote)
	}
	r.cursor++

	return r.readStringUntil(start, quote)
}

// ReadString reads a quoted string when the cursor is at a quote, and an unquoted string otherwise.
// At the end of the input it returns the empty string.
func (r *Reader) ReadString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	if IsQuote(r.input[r.cursor]) {
		return r.ReadQuotedString()
	}

	return r.ReadUnquotedString(), nil
}

// ReadRemaining consumes the input from the cursor to its end verbatim
func (r *Reader) ReadRemaining() string {
	s := string(r.input[r.cursor:])
	r.cursor = len(r.input)
	return s
}

func (r *Reader) readStringUntil(start int, terminator rune) (string, error) {
	var out []rune
	escaped := false
	for r.CanRead() {
		c := r.input[r.cursor]
		r.cursor++
		switch {
		case escaped:
			out = append(out, c)
			escaped = false
		case c == escape:
			escaped = true
		case c == terminator:
			return string(out), nil
		default:
			out = append(out, c)
		}
	}

	return "", NewError(start, errs.ErrUnterminatedQuote)
}

// ReadBoolean reads a string and accepts exactly "true" or "false". On an invalid value the
// cursor is restored.
func (r *Reader) ReadBoolean() (bool, error) {
	start := r.cursor
	s, err := r.ReadString()
	if err != nil {
		return false, err
	}

	switch s {
	case "":
		r.cursor = start
		return false, NewError(start, errs.ErrExpectedBoolean)
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		r.cursor = start
		return false, NewError(start, errs.ErrInvalidBoolean.WithArgs(s))
	}
}

// ReadInt reads a 32 bit integer
func (r *Reader) ReadInt() (int32, error) {
	start := r.cursor
	s, err := r.readNumber("int", false)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, NewError(start, errs.ErrInvalidNumber.WithArgs("int", s))
	}

	return int32(v), nil
}

// ReadLong reads a 64 bit integer
func (r *Reader) ReadLong() (int64, error) {
	start := r.cursor
	s, err := r.readNumber("long", false)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewError(start, errs.ErrInvalidNumber.WithArgs("long", s))
	}

	return v, nil
}

// ReadFloat reads a 32 bit floating point number
func (r *Reader) ReadFloat() (float32, error) {
	start := r.cursor
	s, err := r.readNumber("float", true)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, NewError(start, errs.ErrInvalidNumber.WithArgs("float", s))
	}

	return float32(v), nil
}

// ReadDouble reads a 64 bit floating point number
func (r *Reader) ReadDouble() (float64, error) {
	start := r.cursor
	s, err := r.readNumber("double", true)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewError(start, errs.ErrInvalidNumber.WithArgs("double", s))
	}

	return v, nil
}

func (r *Reader) readNumber(kind string, fraction bool) (string, error) {
	start := r.cursor
	for r.CanRead() && IsNumberChar(r.input[r.cursor], fraction) {
		r.cursor++
	}
	if r.cursor == start {
		return "", NewError(start, errs.ErrExpectedNumber.WithArgs(kind))
	}

	return string(r.input[start:r.cursor]), nil
}

// IsNumberChar reports whether c can appear in a number literal. The decimal point only
// counts when fraction is set.
func IsNumberChar(c rune, fraction bool) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+' || fraction && c == '.'
}

// TryRead runs read and reports whether it succeeded. On failure the cursor is restored,
// so any read can be attempted without committing to it.
func TryRead[T any](r *Reader, read func(*Reader) (T, error)) (T, bool) {
	start := r.cursor
	v, err := read(r)
	if err != nil {
		r.cursor = start
		var zero T
		return zero, false
	}

	return v, true
}

// TryReadInt attempts ReadInt, restoring the cursor on failure
func (r *Reader) TryReadInt() (int32, bool) {
	return TryRead(r, (*Reader).ReadInt)
}

// TryReadLong attempts ReadLong, restoring the cursor on failure
func (r *Reader) TryReadLong() (int64, bool) {
	return TryRead(r, (*Reader).ReadLong)
}

// TryReadFloat attempts ReadFloat, restoring the cursor on failure
func (r *Reader) TryReadFloat() (float32, bool) {
	return TryRead(r, (*Reader).ReadFloat)
}

// TryReadDouble attempts ReadDouble, restoring the cursor on failure
func (r *Reader) TryReadDouble() (float64, bool) {
	return TryRead(r, (*Reader).ReadDouble)
}

// TryReadBoolean attempts ReadBoolean, restoring the cursor on failure
func (r *Reader) TryReadBoolean() (bool, bool) {
	return TryRead(r, (*Reader).ReadBoolean)
}

// TryReadQuotedString attempts ReadQuotedString, restoring the cursor on failure
func (r *Reader) TryReadQuotedString() (string, bool) {
	return TryRead(r, (*Reader).ReadQuotedString)
}

// TryReadUnquotedString reads an unquoted string and reports false when there was none
func (r *Reader) TryReadUnquotedString() (string, bool) {
	s := r.ReadUnquotedString()
	return s, s != ""
}

// TryReadString attempts ReadString, restoring the cursor on failure
func (r *Reader) TryReadString() (string, bool) {
	return TryRead(r, (*Reader).ReadString)
}
