package argument

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

// Words returns an argument splitting the rest of the input into words using shell quoting rules
func Words() Argument[[]string] {
	return New("words", func(ctx *Context) Result[[]string] {
		start := ctx.Cursor()
		rest := ctx.ReadRemaining()
		words, err := parse.Split(rest)
		if err != nil {
			return Failure[[]string](ctx.ErrorAt(start, err))
		}
		if len(words) == 0 {
			ctx.SetCursor(start)
			return Failure[[]string](ctx.Error(errs.ErrExpectedString.WithArgs("words")))
		}

		return Success(words)
	}, nil)
}

// Time returns an argument reading a date or time in any layout dateparse understands.
// Values containing spaces must be quoted.
func Time() Argument[time.Time] {
	return TimeIn(time.Local)
}

// TimeIn is like Time but interprets values without a zone in loc
func TimeIn(loc *time.Location) Argument[time.Time] {
	return New("time", func(ctx *Context) Result[time.Time] {
		start := ctx.Cursor()
		s, err := ctx.ReadString()
		if err != nil {
			return Failure[time.Time](err)
		}
		if ctx.Cursor() == start {
			return Failure[time.Time](ctx.Error(errs.ErrExpectedString.WithArgs("time")))
		}
		t, err := dateparse.ParseIn(s, loc)
		if err != nil {
			return Failure[time.Time](ctx.ErrorAt(start, errs.ErrInvalidTime.WithArgs(s).Wrap(err)))
		}

		return Success(t)
	}, nil)
}

// UUID returns an argument reading a UUID
func UUID() Argument[uuid.UUID] {
	return New("uuid", func(ctx *Context) Result[uuid.UUID] {
		start := ctx.Cursor()
		s := ctx.ReadUnquotedString()
		if s == "" {
			return Failure[uuid.UUID](ctx.Error(errs.ErrExpectedString.WithArgs("uuid")))
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return Failure[uuid.UUID](ctx.ErrorAt(start, errs.ErrInvalidUUID.WithArgs(s)))
		}

		return Success(id)
	}, nil)
}
