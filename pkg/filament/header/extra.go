package header

import "iter"

// link is a handle to a node of the extra-value region. It stores the node
// index plus one, so the zero link means "no node" and zero slots are valid.
// Links are indexes rather than pointers: growing the region moves nodes
// without invalidating any link.
type link uint32

const noLink link = 0

func linkTo(i int) link {
	return link(i + 1)
}

func (l link) index() int {
	return int(l) - 1
}

// extraValue is a node holding the second and later values of a name.
type extraValue struct {
	value Value
	next  link
}

// allocExtra stores v in a recycled node if one is free, else in a new one.
func (m *Map) allocExtra(v Value) link {
	if m.free != noLink {
		l := m.free
		e := &m.extra[l.index()]
		m.free = e.next
		e.value = v
		e.next = noLink
		return l
	}
	m.extra = append(m.extra, extraValue{value: v})
	return linkTo(len(m.extra) - 1)
}

// freeExtra releases the node l and returns the value it held.
func (m *Map) freeExtra(l link) Value {
	e := &m.extra[l.index()]
	v := e.value
	e.value = Value{}
	e.next = m.free
	m.free = l
	return v
}

// resetExtra drops the whole region. Only valid when no slot links into it.
func (m *Map) resetExtra() {
	clear(m.extra)
	m.extra = m.extra[:0]
	m.free = noLink
}

// pushValue appends v to the chain of the entry at idx.
func (m *Map) pushValue(idx int, v Value) error {
	if m.values >= m.config().MaxValues {
		return ErrCapacityExceeded
	}
	l := m.allocExtra(v)
	s := &m.slots[idx]
	if s.tail == noLink {
		s.head = l
	} else {
		m.extra[s.tail.index()].next = l
	}
	s.tail = l
	s.n++
	m.values++
	return nil
}

// takeValues moves every value out of s, first value included, and frees its
// chain. s keeps its name and position; the caller either vacates it or
// stores a new first value.
func (m *Map) takeValues(s *slot) []Value {
	vals := make([]Value, 0, s.n)
	vals = append(vals, s.value)
	for l := s.head; l != noLink; {
		next := m.extra[l.index()].next
		vals = append(vals, m.freeExtra(l))
		l = next
	}
	m.values -= int(s.n)
	s.value = Value{}
	s.head, s.tail = noLink, noLink
	s.n = 0
	return vals
}

// replaceValues makes v the only value of the entry at idx and returns the
// previous values in order.
func (m *Map) replaceValues(idx int, v Value) []Value {
	s := &m.slots[idx]
	prev := m.takeValues(s)
	s.value = v
	s.n = 1
	m.values++
	return prev
}

// popFirst removes the first value of the entry at idx and promotes the
// chain head into its place. When it was the only value the entry is
// removed, and the second result is false.
func (m *Map) popFirst(idx int) (Value, bool) {
	s := &m.slots[idx]
	if s.head == noLink {
		vals := m.removeEntry(idx)
		return vals[0], false
	}
	first := s.value
	l := s.head
	s.head = m.extra[l.index()].next
	if s.head == noLink {
		s.tail = noLink
	}
	s.value = m.freeExtra(l)
	s.n--
	m.values--
	return first, true
}

// Values is a read-only view of the values of one name, in insertion order.
// The zero Values is empty. A view is only valid until the next mutation of
// the map it came from.
type Values struct {
	m   *Map
	idx int
}

// Len returns the number of values.
func (vs Values) Len() int {
	if vs.m == nil {
		return 0
	}
	return int(vs.m.slots[vs.idx].n)
}

// First returns the first value.
func (vs Values) First() (Value, bool) {
	if vs.m == nil {
		return Value{}, false
	}
	return vs.m.slots[vs.idx].value, true
}

// Last returns the most recently added value.
func (vs Values) Last() (Value, bool) {
	if vs.m == nil {
		return Value{}, false
	}
	s := &vs.m.slots[vs.idx]
	if s.tail == noLink {
		return s.value, true
	}
	return vs.m.extra[s.tail.index()].value, true
}

// All yields the values in order. Each call starts a fresh walk.
func (vs Values) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if vs.m == nil {
			return
		}
		s := &vs.m.slots[vs.idx]
		if !yield(s.value) {
			return
		}
		for l := s.head; l != noLink; l = vs.m.extra[l.index()].next {
			if !yield(vs.m.extra[l.index()].value) {
				return
			}
		}
	}
}

// Slice copies the values into a new slice. Returns nil for an empty view.
func (vs Values) Slice() []Value {
	n := vs.Len()
	if n == 0 {
		return nil
	}
	out := make([]Value, 0, n)
	for v := range vs.All() {
		out = append(out, v)
	}
	return out
}

// Strings returns the values rendered with Value.String.
func (vs Values) Strings() []string {
	n := vs.Len()
	if n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for v := range vs.All() {
		out = append(out, v.String())
	}
	return out
}

func (vs Values) equal(other Values) bool {
	n := vs.Len()
	if n != other.Len() {
		return false
	}
	if n == 0 {
		return true
	}
	a, b := &vs.m.slots[vs.idx], &other.m.slots[other.idx]
	if !a.value.Equal(b.value) {
		return false
	}
	la, lb := a.head, b.head
	for la != noLink && lb != noLink {
		ea, eb := &vs.m.extra[la.index()], &other.m.extra[lb.index()]
		if !ea.value.Equal(eb.value) {
			return false
		}
		la, lb = ea.next, eb.next
	}
	return la == noLink && lb == noLink
}
