package tree

import (
	"fmt"

	"github.com/ef-ds/deque"
)

// slot identifies one value slot declared on a builder. Handles compare by slot pointer,
// so two arguments may share a name in different branches.
type slot struct {
	name string
	// fallback holds the value of a flag that is absent from the command line
	fallback   any
	hasDefault bool
}

// Value is a bound slot as seen by an executor
type Value struct {
	Name  string
	Value any
}

// bindings holds the values bound during one resolution. Every bind is journaled so that
// backtracking can undo it.
type bindings struct {
	values  map[*slot]any
	names   map[string][]*slot
	journal *deque.Deque
}

func newBindings() *bindings {
	return &bindings{
		values:  map[*slot]any{},
		names:   map[string][]*slot{},
		journal: deque.New(),
	}
}

func (b *bindings) bind(s *slot, v any) {
	if _, ok := b.values[s]; ok {
		panic(fmt.Sprintf("tree: '%s' is already initialized", s.name))
	}
	b.values[s] = v
	b.names[s.name] = append(b.names[s.name], s)
	b.journal.PushBack(s)
}

func (b *bindings) bound(s *slot) bool {
	_, ok := b.values[s]
	return ok
}

func (b *bindings) get(s *slot) (any, bool) {
	v, ok := b.values[s]
	if !ok && s.hasDefault {
		return s.fallback, true
	}
	return v, ok
}

func (b *bindings) mark() int {
	return b.journal.Len()
}

func (b *bindings) rollback(mark int) {
	for b.journal.Len() > mark {
		v, _ := b.journal.PopBack()
		s := v.(*slot)
		delete(b.values, s)
		if stack := b.names[s.name]; len(stack) > 1 {
			b.names[s.name] = stack[:len(stack)-1]
		} else {
			delete(b.names, s.name)
		}
	}
}

// Lookup returns the value most recently bound under name
func (b *bindings) Lookup(name string) (any, bool) {
	stack, ok := b.names[name]
	if !ok {
		return nil, false
	}
	return b.values[stack[len(stack)-1]], true
}

// list returns the bound values in the order they were bound
func (b *bindings) list() []Value {
	n := b.journal.Len()
	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, _ := b.journal.PopFront()
		s := v.(*slot)
		out = append(out, Value{Name: s.name, Value: b.values[s]})
		b.journal.PushBack(s)
	}

	return out
}
