package tree

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
)

var longFlagPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// FlagSpec describes a flag: a value identified by name rather than position. A flag
// without a parser is a switch.
type FlagSpec struct {
	long   []string
	short  []rune
	parser argument.Parser
	slot   *slot
}

// Flag declares a flag taking a value parsed by a. names are given with their dashes,
// "--count" for a long name and "-c" for a short one. def is returned when the flag is
// absent.
func Flag[T any](b *Builder, names []string, a argument.Argument[T], def T) Handle[T] {
	return Handle[T]{slot: b.flag(names, argument.Erase(a), def)}
}

// FlagParser declares a flag from an untyped parser
func FlagParser(b *Builder, names []string, p argument.Parser, def any) Handle[any] {
	return Handle[any]{slot: b.flag(names, p, def)}
}

// Switch declares a flag that is true when present
func Switch(b *Builder, names ...string) Handle[bool] {
	return Handle[bool]{slot: b.flag(names, nil, false)}
}

func (b *Builder) flag(names []string, p argument.Parser, def any) *slot {
	b.mutate()
	f := &FlagSpec{parser: p}
	for _, name := range names {
		switch {
		case strings.HasPrefix(name, "--") && longFlagPattern.MatchString(name[2:]):
			f.long = append(f.long, name[2:])
		case strings.HasPrefix(name, "-") && utf8.RuneCountInString(name) == 2 && name[1] != '-':
			r, _ := utf8.DecodeRuneInString(name[1:])
			f.short = append(f.short, r)
		default:
			panic(fmt.Sprintf("tree: invalid flag name '%s'", name))
		}
	}
	if len(f.long) == 0 && len(f.short) == 0 {
		panic("tree: a flag needs at least one name")
	}
	for _, other := range b.flags {
		for _, name := range f.Names() {
			if other.matches(name) {
				panic(fmt.Sprintf("tree: flag '%s' is declared twice", name))
			}
		}
	}

	f.slot = &slot{name: f.Name(), fallback: def, hasDefault: true}
	b.flags = append(b.flags, f)

	return f.slot
}

// Name returns the first long name, or the short name when the flag has no long name
func (f *FlagSpec) Name() string {
	if len(f.long) > 0 {
		return f.long[0]
	}
	return string(f.short[0])
}

// Names returns all names of the flag with their dashes, short names first
func (f *FlagSpec) Names() []string {
	names := make([]string, 0, len(f.short)+len(f.long))
	for _, s := range f.short {
		names = append(names, "-"+string(s))
	}
	for _, l := range f.long {
		names = append(names, "--"+l)
	}
	return names
}

// IsSwitch reports whether the flag takes no value
func (f *FlagSpec) IsSwitch() bool {
	return f.parser == nil
}

// Usage renders the flag as [-c|--count <int>]
func (f *FlagSpec) Usage() string {
	usage := strings.Join(f.Names(), "|")
	if f.parser != nil {
		usage += " " + f.parser.Usage().Text
	}
	return "[" + usage + "]"
}

func (f *FlagSpec) matches(name string) bool {
	for _, n := range f.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (f *FlagSpec) hasLong(name string) bool {
	for _, l := range f.long {
		if l == name {
			return true
		}
	}
	return false
}

func (f *FlagSpec) hasShort(r rune) bool {
	for _, s := range f.short {
		if s == r {
			return true
		}
	}
	return false
}

// flags consumes the flags in scope that follow the cursor. A token that merely looks
// like a short flag, such as -5, is left for the positional arguments.
func (r *resolver) flags() error {
	if len(r.scope) == 0 {
		return nil
	}
	for {
		start := r.ctx.Cursor()
		if r.ctx.Separate() != nil {
			r.ctx.SetCursor(start)
			return nil
		}
		consumed, err := r.flag()
		if err != nil {
			return err
		}
		if !consumed {
			r.ctx.SetCursor(start)
			return nil
		}
	}
}

func (r *resolver) flag() (bool, error) {
	start := r.ctx.Cursor()
	token := r.ctx.PeekToken()
	switch {
	case strings.HasPrefix(token, "--"):
		name, _, assigned := strings.Cut(token[2:], "=")
		if !longFlagPattern.MatchString(name) {
			return false, nil
		}
		f := r.lookupLong(name)
		if f == nil {
			return false, r.ctx.ErrorAt(start, errs.ErrUnknownFlag.WithArgs("--"+name))
		}
		r.skip(2 + utf8.RuneCountInString(name))
		if assigned {
			r.ctx.Skip()
		}
		return true, r.flagValue(f, "--"+name, start, assigned)
	case strings.HasPrefix(token, "-") && utf8.RuneCountInString(token) > 1:
		shorts := []rune(token[1:])
		specs := make([]*FlagSpec, len(shorts))
		for i, s := range shorts {
			if specs[i] = r.lookupShort(s); specs[i] == nil {
				return false, nil
			}
		}
		if len(specs) == 1 {
			r.skip(2)
			return true, r.flagValue(specs[0], token, start, false)
		}
		for _, f := range specs {
			if !f.IsSwitch() {
				return false, nil
			}
		}
		r.skip(len(shorts) + 1)
		for i, f := range specs {
			if err := r.bindFlag(f, true, "-"+string(shorts[i]), start); err != nil {
				return true, err
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

func (r *resolver) flagValue(f *FlagSpec, name string, start int, assigned bool) error {
	if f.IsSwitch() && !assigned {
		return r.bindFlag(f, true, name, start)
	}

	parser := f.parser
	if parser == nil {
		parser = switchValue
	}
	if !assigned {
		if err := r.ctx.Separate(); err != nil {
			return err
		}
	}
	res := parser.ParseAny(r.ctx.Context)
	if !res.Ok() {
		return res.Err()
	}
	if !r.ctx.AtBoundary() {
		return r.ctx.Error(errs.ErrExpectedSeparator.WithArgs(r.ctx.PeekToken()))
	}
	r.potentials = append(r.potentials, res.Potential())

	return r.bindFlag(f, res.Value(), name, start)
}

func (r *resolver) bindFlag(f *FlagSpec, v any, name string, start int) error {
	if r.ctx.values.bound(f.slot) {
		return r.ctx.ErrorAt(start, errs.ErrDuplicateFlag.WithArgs(name))
	}
	r.ctx.values.bind(f.slot, v)
	return nil
}

func (r *resolver) skip(n int) {
	r.ctx.SetCursor(r.ctx.Cursor() + n)
}

// lookupLong searches the scope innermost first
func (r *resolver) lookupLong(name string) *FlagSpec {
	for i := len(r.scope) - 1; i >= 0; i-- {
		if r.scope[i].hasLong(name) {
			return r.scope[i]
		}
	}
	return nil
}

func (r *resolver) lookupShort(s rune) *FlagSpec {
	for i := len(r.scope) - 1; i >= 0; i-- {
		if r.scope[i].hasShort(s) {
			return r.scope[i]
		}
	}
	return nil
}

var switchValue = argument.Erase[bool](argument.Bool())
