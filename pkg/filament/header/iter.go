package header

import "iter"

// All yields every name with a view of its values, in slot order.
// The map must not be mutated while the sequence is being ranged over.
func (m *Map) All() iter.Seq2[Name, Values] {
	return func(yield func(Name, Values) bool) {
		if m == nil {
			return
		}
		for i := range m.slots {
			if !m.slots[i].used {
				continue
			}
			if !yield(m.slots[i].name, Values{m: m, idx: i}) {
				return
			}
		}
	}
}

// Names yields every distinct name in slot order.
func (m *Map) Names() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		for name := range m.All() {
			if !yield(name) {
				return
			}
		}
	}
}

// VisitAll calls the visitor for every (name, value) pair: all values of a
// name in order, names in slot order. Iteration stops if visitor returns false.
//
// The visitor may change the sensitivity of a value through the pointer but
// must not otherwise mutate the map.
//
// Allocation behavior: 0 allocs/op
func (m *Map) VisitAll(visitor func(name Name, value *Value) bool) {
	if m == nil {
		return
	}
	for i := range m.slots {
		s := &m.slots[i]
		if !s.used {
			continue
		}
		if !visitor(s.name, &s.value) {
			return
		}
		for l := s.head; l != noLink; l = m.extra[l.index()].next {
			if !visitor(s.name, &m.extra[l.index()].value) {
				return
			}
		}
	}
}

// Drain yields every name with its values moved out of the map, in slot order.
//
// Draining starts when the sequence is ranged over. Each yielded name has
// already been removed; names not yet reached are still in the table but can
// only be reached by continuing the drain, not by lookup. When the loop ends,
// whether exhausted or by break, the map is left empty.
func (m *Map) Drain() iter.Seq2[Name, []Value] {
	return func(yield func(Name, []Value) bool) {
		if m == nil {
			return
		}
		defer m.Clear()
		for i := range m.slots {
			s := &m.slots[i]
			if !s.used {
				continue
			}
			name := s.name
			vals := m.takeValues(s)
			*s = slot{}
			m.entries--
			if !yield(name, vals) {
				return
			}
		}
	}
}
