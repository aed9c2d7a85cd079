package tree

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/parse"
)

// Suggest proposes completions for the input remaining in r, which should end at the caret.
// Every path that stays reachable given the text before the caret contributes its candidates
// for the token under the caret. Candidates keep the order in which the tree declares them;
// duplicates are dropped.
func Suggest(root *Node, r *parse.Reader, source any) []argument.Suggestion {
	return suggest(root, newContext(r, source))
}

func suggest(root *Node, ctx *Context) []argument.Suggestion {
	s := &suggester{resolver: newResolver(ctx, false), seen: map[argument.Suggestion]bool{}}
	m := s.save()
	defer s.restore(m)
	if s.check(root, m.cursor) == nil {
		s.walk(root)
	}

	return s.out
}

type suggester struct {
	*resolver
	out  []argument.Suggestion
	seen map[argument.Suggestion]bool
}

func (s *suggester) add(suggestions ...argument.Suggestion) {
	for _, sg := range suggestions {
		if !s.seen[sg] {
			s.seen[sg] = true
			s.out = append(s.out, sg)
		}
	}
}

// walk suggests for the children of a node that was entered
func (s *suggester) walk(n *Node) {
	s.scope = append(s.scope, n.flags...)
	for _, c := range n.children {
		s.probe(c)
	}

	m := s.save()
	s.skipFlags()
	s.restore(m)
}

func (s *suggester) probe(n *Node) {
	m := s.save()
	defer s.restore(m)

	if n.kind == GroupKind {
		if s.check(n, m.cursor) == nil {
			s.walk(n)
		}
		return
	}
	if s.skipFlags() || s.ctx.Separate() != nil {
		return
	}

	start := s.ctx.Cursor()
	if n.kind == LiteralKind {
		token := s.ctx.ReadToken()
		if token == n.literal && s.ctx.CanRead() {
			if s.check(n, start) == nil {
				s.walk(n)
			}
			return
		}
		s.ctx.SetCursor(start)
		if !s.ctx.CanRead() || s.atCaret() {
			s.add(s.ctx.SuggestMatching(n.literal)...)
		}
		return
	}

	res := n.parser.ParseAny(s.ctx.Context)
	consumed := s.ctx.Cursor() != start
	if !res.Ok() || !consumed || !s.ctx.CanRead() {
		at := s.ctx.Cursor()
		s.ctx.SetCursor(start)
		s.add(n.parser.Suggest(s.ctx.Context)...)
		if !res.Ok() || consumed {
			return
		}
		s.ctx.SetCursor(at)
	}
	if consumed && !s.ctx.AtBoundary() {
		return
	}
	s.ctx.values.bind(n.slot, res.Value())
	s.potentials = append(s.potentials, res.Potential())
	if s.check(n, start) == nil {
		s.walk(n)
	}
}

// atCaret reports whether the token at the cursor runs to the end of the input
func (s *suggester) atCaret() bool {
	return s.ctx.Cursor()+utf8.RuneCountInString(s.ctx.PeekToken()) == s.ctx.Len()
}

// skipFlags consumes the complete flags in front of the cursor. It returns true when the
// caret lies within the value of a flag, which ends the suggestions of the current path.
func (s *suggester) skipFlags() bool {
	if len(s.scope) == 0 {
		return false
	}
	for {
		start := s.ctx.Cursor()
		if s.ctx.Separate() != nil {
			s.ctx.SetCursor(start)
			return false
		}
		token := s.ctx.PeekToken()
		if !strings.HasPrefix(token, "-") {
			s.ctx.SetCursor(start)
			return false
		}
		if s.atCaret() {
			s.add(s.ctx.SuggestMatching(s.flagNames()...)...)
			s.ctx.SetCursor(start)
			return false
		}

		f := s.exactFlag(token)
		if f == nil {
			consumed, err := s.flag()
			if err != nil {
				return true
			}
			if !consumed {
				s.ctx.SetCursor(start)
				return false
			}
			continue
		}

		s.skip(utf8.RuneCountInString(token))
		if f.IsSwitch() {
			if s.bindFlag(f, true, token, start) != nil {
				return true
			}
			continue
		}
		if s.ctx.Separate() != nil {
			return true
		}
		valueStart := s.ctx.Cursor()
		res := f.parser.ParseAny(s.ctx.Context)
		if !res.Ok() || !s.ctx.CanRead() {
			s.ctx.SetCursor(valueStart)
			s.add(f.parser.Suggest(s.ctx.Context)...)
			return true
		}
		if s.bindFlag(f, res.Value(), token, start) != nil {
			return true
		}
	}
}

// exactFlag returns the flag named exactly by token
func (s *suggester) exactFlag(token string) *FlagSpec {
	if name, ok := strings.CutPrefix(token, "--"); ok {
		return s.lookupLong(name)
	}
	if runes := []rune(token); len(runes) == 2 {
		return s.lookupShort(runes[1])
	}
	return nil
}

// flagNames lists the names of the flags in scope that were not given yet
func (s *suggester) flagNames() []string {
	var names []string
	for _, f := range s.scope {
		if !s.ctx.values.bound(f.slot) {
			names = append(names, f.Names()...)
		}
	}
	return names
}
