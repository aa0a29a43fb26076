package header

// Entry is a cursor on the slot of one name, obtained with Map.Entry.
// It is either a *VacantEntry (name absent) or an *OccupiedEntry (name has
// at least one value):
//
//	e, err := m.Entry(header.SetCookie)
//	if err != nil {
//		return err
//	}
//	switch e := e.(type) {
//	case *header.VacantEntry:
//		e.Insert(v)
//	case *header.OccupiedEntry:
//		err = e.Append(v)
//	}
//
// An entry borrows the map: it is invalidated by any other lookup-free
// mutation of the map and must not be used after one.
type Entry interface {
	// Name returns the name the entry was looked up with.
	Name() Name

	// OrInsert returns the first value of the name, inserting v first if the
	// name is absent.
	OrInsert(v Value) *Value

	entry()
}

// Entry locates name and returns a cursor on its slot. The name is hashed
// exactly once; every operation on the returned entry reuses that hash.
//
// If name is absent, Entry first makes room for it (growing the table if
// needed), so VacantEntry.Insert cannot fail. Returns ErrCapacityExceeded,
// leaving the map unchanged, if there is no room.
func (m *Map) Entry(name Name) (Entry, error) {
	if m.slots == nil {
		if _, err := m.reserveOne(); err != nil {
			return nil, err
		}
	}

	h := m.danger.hash(name)
	idx, dist, found := m.probe(name, h)
	if found {
		return &OccupiedEntry{m: m, idx: idx}, nil
	}

	grown, err := m.reserveOne()
	if err != nil {
		return nil, err
	}
	if grown {
		idx, dist, _ = m.probe(name, h)
	}
	return &VacantEntry{m: m, name: name, hash: h, idx: idx, dist: dist}, nil
}

// VacantEntry is an Entry for a name that has no value yet.
type VacantEntry struct {
	m        *Map
	name     Name
	hash     uint64
	idx      int
	dist     uint32
	inserted bool
}

func (*VacantEntry) entry() {}

// Name returns the name the entry was looked up with.
func (e *VacantEntry) Name() Name {
	return e.name
}

// Insert stores v as the single value of the name and returns a pointer to
// it. The pointer is valid until the next mutation of the map.
//
// A VacantEntry can be inserted into once; Insert panics on a second call.
// Look the name up again with Map.Entry to add more values.
func (e *VacantEntry) Insert(v Value) *Value {
	if e.inserted {
		panic("header: VacantEntry.Insert called twice for " + e.name.String())
	}
	e.inserted = true
	idx := e.m.insertVacant(e.idx, e.dist, e.name, e.hash, v)
	return &e.m.slots[idx].value
}

// OrInsert inserts v and returns a pointer to it.
func (e *VacantEntry) OrInsert(v Value) *Value {
	return e.Insert(v)
}

// OccupiedEntry is an Entry for a name holding one or more values.
type OccupiedEntry struct {
	m   *Map
	idx int
}

func (*OccupiedEntry) entry() {}

// Name returns the stored name.
func (e *OccupiedEntry) Name() Name {
	return e.m.slots[e.idx].name
}

// OrInsert returns the first value; v is discarded.
func (e *OccupiedEntry) OrInsert(Value) *Value {
	return e.First()
}

// Len returns the number of values stored under the name.
func (e *OccupiedEntry) Len() int {
	return int(e.m.slots[e.idx].n)
}

// First returns a pointer to the first value. The pointer is valid until the
// next mutation of the map.
func (e *OccupiedEntry) First() *Value {
	return &e.m.slots[e.idx].value
}

// Last returns a pointer to the most recently added value. The pointer is
// valid until the next mutation of the map.
func (e *OccupiedEntry) Last() *Value {
	s := &e.m.slots[e.idx]
	if s.tail == noLink {
		return &s.value
	}
	return &e.m.extra[s.tail.index()].value
}

// Values returns a view of all values in insertion order.
func (e *OccupiedEntry) Values() Values {
	return Values{m: e.m, idx: e.idx}
}

// Append adds v after the existing values. Existing values are untouched.
// Returns ErrCapacityExceeded if the map already holds Config.MaxValues values.
func (e *OccupiedEntry) Append(v Value) error {
	return e.m.pushValue(e.idx, v)
}

// Set replaces every value with v and returns the previous values in order.
func (e *OccupiedEntry) Set(v Value) []Value {
	return e.m.replaceValues(e.idx, v)
}

// RemoveFirst removes and returns the first value; the second value, if any,
// becomes the first. If it was the only value the name is removed from the
// map and the entry must not be used again.
func (e *OccupiedEntry) RemoveFirst() Value {
	v, _ := e.m.popFirst(e.idx)
	return v
}

// Remove deletes the name and returns all its values in order.
// The entry must not be used afterwards.
func (e *OccupiedEntry) Remove() []Value {
	return e.m.removeEntry(e.idx)
}
