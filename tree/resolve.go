package tree

import (
	"strings"

	"github.com/tliron/commonlog"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/parse"
)

var log = commonlog.GetLogger("kommando.tree")

// Resolve matches the input remaining in r against the tree below root. The first path
// that consumes the whole input and ends at an executable node wins; siblings are tried in
// declaration order. When no path matches, the error located furthest into the input is
// returned.
func Resolve(root *Node, r *parse.Reader, source any) (*Match, error) {
	res := newResolver(newContext(r, source), false)
	n, ok := res.visit(root)
	if !ok {
		return nil, res.failure()
	}
	res.ctx.node = n

	return &Match{ctx: res.ctx}, nil
}

type mark struct {
	cursor     int
	values     int
	potentials int
	scope      int
}

type resolver struct {
	ctx        *Context
	built      bool
	scope      []*FlagSpec
	potentials []error
	best       error
	bestPos    int
	fatal      error
}

func newResolver(ctx *Context, built bool) *resolver {
	return &resolver{ctx: ctx, built: built}
}

func (r *resolver) save() mark {
	return mark{
		cursor:     r.ctx.Cursor(),
		values:     r.ctx.values.mark(),
		potentials: len(r.potentials),
		scope:      len(r.scope),
	}
}

func (r *resolver) restore(m mark) {
	r.ctx.SetCursor(m.cursor)
	r.ctx.values.rollback(m.values)
	r.potentials = r.potentials[:m.potentials]
	r.scope = r.scope[:m.scope]
}

// record keeps err when it lies further into the input than the best error so far. With
// override set it also replaces an error at the same position.
func (r *resolver) record(err error, override bool) {
	pos := parse.PositionOf(err, r.ctx.Cursor())
	if r.best == nil || pos > r.bestPos || override && pos == r.bestPos {
		r.best, r.bestPos = err, pos
	}
}

func (r *resolver) failure() error {
	if r.fatal != nil {
		return r.fatal
	}
	if r.best != nil {
		return r.best
	}
	return r.ctx.Error(errs.ErrNoMatchingPath)
}

func (r *resolver) potential() error {
	for i := len(r.potentials) - 1; i >= 0; i-- {
		if r.potentials[i] != nil {
			return r.potentials[i]
		}
	}
	return nil
}

func (r *resolver) visit(n *Node) (*Node, bool) {
	m := r.save()
	if err := r.enter(n); err != nil {
		log.Debugf("%s '%s' does not match at %d: %s", n.kind, n.Name(), m.cursor, err)
		r.record(err, false)
		r.restore(m)
		return nil, false
	}
	start := m.cursor
	if n.kind == GroupKind {
		start = r.tokenStart()
	}
	if err := r.check(n, start); err != nil {
		// a group consumes nothing, so the literals after it still get their turn
		if n.kind == GroupKind {
			r.record(err, false)
			r.restore(m)
			return nil, false
		}
		r.fatal = err
		return nil, false
	}
	r.scope = append(r.scope, n.flags...)

	for _, c := range n.children {
		if found, ok := r.visit(c); ok {
			return found, true
		}
		if r.fatal != nil {
			return nil, false
		}
	}

	if n.terminal(r.built) {
		at := r.save()
		err := r.finish()
		if err == nil {
			return n, true
		}
		r.record(err, true)
		r.restore(at)
	}

	r.restore(m)
	return nil, false
}

// enter consumes the node's own token together with any flag in front of it
func (r *resolver) enter(n *Node) error {
	if n.kind == RootKind || n.kind == GroupKind {
		return nil
	}
	if err := r.flags(); err != nil {
		return err
	}
	if err := r.ctx.Separate(); err != nil {
		return err
	}

	start := r.ctx.Cursor()
	if n.kind == LiteralKind {
		if token := r.ctx.ReadToken(); token != n.literal {
			return r.ctx.ErrorAt(start, errs.ErrIncorrectLiteral.WithArgs(n.literal))
		}
		return nil
	}

	res := n.parser.ParseAny(r.ctx.Context)
	if !res.Ok() {
		if parse.PositionOf(res.Err(), -1) < 0 {
			return r.ctx.ErrorAt(start, res.Err())
		}
		return res.Err()
	}
	if r.ctx.Cursor() != start && !r.ctx.AtBoundary() {
		return r.ctx.Error(errs.ErrExpectedSeparator.WithArgs(r.ctx.PeekToken()))
	}
	r.ctx.values.bind(n.slot, res.Value())
	r.potentials = append(r.potentials, res.Potential())

	return nil
}

// tokenStart returns the position of the next token without moving the cursor
func (r *resolver) tokenStart() int {
	at := r.ctx.Cursor()
	r.ctx.SkipWhitespace()
	pos := r.ctx.Cursor()
	r.ctx.SetCursor(at)
	return pos
}

// check runs the requirements and source conversions of a node that was just entered
func (r *resolver) check(n *Node, start int) error {
	if len(n.requirements) == 0 && len(n.sources) == 0 {
		return nil
	}

	command := strings.TrimSpace(r.ctx.Slice(0, r.ctx.Cursor()))
	for _, req := range n.requirements {
		if err := req(r.ctx.Source()); err != nil {
			log.Debugf("requirement of '%s' failed: %s", command, err)
			return r.ctx.ErrorAt(start, errs.ErrRequirementFailed.WithArgs(command).Wrap(err))
		}
	}
	for _, sc := range n.sources {
		v, err := sc.convert(r.ctx.Source())
		if err != nil {
			return r.ctx.ErrorAt(start, errs.ErrInvalidSource.WithArgs(command).Wrap(err))
		}
		r.ctx.values.bind(sc.slot, v)
	}

	return nil
}

// finish accepts the end of a path. A command line must be consumed entirely, a built
// argument only has to end at a token boundary.
func (r *resolver) finish() error {
	if err := r.flags(); err != nil {
		return err
	}
	if r.built {
		if !r.ctx.AtBoundary() {
			return r.ctx.Error(errs.ErrExpectedSeparator.WithArgs(r.ctx.PeekToken()))
		}
		return nil
	}

	r.ctx.SkipWhitespace()
	if r.ctx.CanRead() {
		var err error = errs.ErrTooManyArguments
		if p := r.potential(); p != nil {
			err = errs.ErrTooManyArguments.Wrap(p)
		}
		return r.ctx.Error(err)
	}

	return nil
}
