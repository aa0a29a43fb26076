package header

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the structural invariants of the table:
// displacement bookkeeping, the Robin Hood ordering, the entry and value
// counters and the shape of every extra-value chain.
func checkInvariants(t testing.TB, m *Map) {
	t.Helper()

	entries, values, chained := 0, 0, 0
	for i := range m.slots {
		s := &m.slots[i]
		if !s.used {
			require.Equal(t, slot{}, *s, "empty slot %d is not zeroed", i)
			continue
		}
		entries++
		values += int(s.n)

		home := int(s.hash) & m.mask
		require.Equal(t, uint32((i-home)&m.mask), s.dist, "slot %d (%s) has a wrong displacement", i, s.name)
		require.Equal(t, m.danger.hash(s.name), s.hash, "slot %d (%s) has a stale hash", i, s.name)

		if s.dist > 0 {
			prev := &m.slots[(i-1)&m.mask]
			require.True(t, prev.used, "slot %d displaced behind an empty slot", i)
			require.GreaterOrEqual(t, prev.dist+1, s.dist, "slot %d breaks the Robin Hood ordering", i)
		}

		require.GreaterOrEqual(t, s.n, uint32(1), "slot %d has no value", i)
		n := 1
		last := noLink
		for l := s.head; l != noLink; l = m.extra[l.index()].next {
			n++
			last = l
			require.LessOrEqual(t, n, len(m.extra)+1, "slot %d chain is cyclic", i)
		}
		require.Equal(t, int(s.n), n, "slot %d value count", i)
		require.Equal(t, s.tail, last, "slot %d tail link", i)
		chained += n - 1
	}
	require.Equal(t, entries, m.entries, "entry counter")
	require.Equal(t, values, m.values, "value counter")

	free := 0
	for l := m.free; l != noLink; l = m.extra[l.index()].next {
		free++
		require.LessOrEqual(t, free, len(m.extra), "free list is cyclic")
	}
	require.Equal(t, len(m.extra), chained+free, "extra nodes leaked")
}

func strs(vals []Value) []string {
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestMapZeroValue(t *testing.T) {
	var m Map
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(Host))
	require.Nil(t, m.Remove(Host))
	require.Equal(t, 0, m.GetAll(Host).Len())

	require.NoError(t, m.Append(Host, StaticValue("example.com")))
	v, ok := m.Get(Host)
	require.True(t, ok)
	require.Equal(t, "example.com", v.String())
	checkInvariants(t, &m)
}

func TestMapSmoke(t *testing.T) {
	m := New()
	require.Equal(t, 0, m.Len())

	name := MustName("hello")

	e, err := m.Entry(name)
	require.NoError(t, err)
	vacant, ok := e.(*VacantEntry)
	require.True(t, ok, "expected a vacant entry, got %T", e)
	require.Equal(t, name, vacant.Name())
	vacant.Insert(StaticValue("world"))
	require.Equal(t, 1, m.Len())

	e, err = m.Entry(name)
	require.NoError(t, err)
	occupied, ok := e.(*OccupiedEntry)
	require.True(t, ok, "expected an occupied entry, got %T", e)
	require.Equal(t, "world", occupied.First().String())
	require.NoError(t, occupied.Append(StaticValue("zomg")))
	require.Equal(t, 2, occupied.Len())
	require.Equal(t, "zomg", occupied.Last().String())
	require.Equal(t, []string{"world", "zomg"}, occupied.Values().Strings())

	prev := occupied.Set(StaticValue("bar"))
	require.Equal(t, []string{"world", "zomg"}, strs(prev))
	require.Equal(t, 1, m.Len())
	require.Equal(t, 1, m.ValuesLen())
	checkInvariants(t, m)

	e, err = m.Entry(name)
	require.NoError(t, err)
	vals := e.(*OccupiedEntry).Remove()
	require.Equal(t, []string{"bar"}, strs(vals))
	require.True(t, m.IsEmpty())
	checkInvariants(t, m)
}

func TestMapEntryOrInsert(t *testing.T) {
	m := New()

	e, err := m.Entry(Accept)
	require.NoError(t, err)
	v := e.OrInsert(StaticValue("text/html"))
	require.Equal(t, "text/html", v.String())

	e, err = m.Entry(Accept)
	require.NoError(t, err)
	v = e.OrInsert(StaticValue("ignored"))
	require.Equal(t, "text/html", v.String())
	require.Equal(t, 1, m.ValuesLen())

	// The returned pointer reaches the stored value.
	v.SetSensitive(true)
	got, _ := m.Get(Accept)
	require.True(t, got.Sensitive())
}

func TestMapVacantEntryInsertOnce(t *testing.T) {
	m := New()

	e, err := m.Entry(Accept)
	require.NoError(t, err)
	vacant := e.(*VacantEntry)
	vacant.Insert(StaticValue("text/html"))

	require.PanicsWithValue(t, "header: VacantEntry.Insert called twice for accept", func() {
		vacant.Insert(StaticValue("text/plain"))
	})
	require.Panics(t, func() { vacant.OrInsert(StaticValue("text/plain")) })

	require.Equal(t, 1, m.Len())
	require.Equal(t, []string{"text/html"}, m.GetAll(Accept).Strings())
	checkInvariants(t, m)
}

func TestMapContentTypeExample(t *testing.T) {
	m := New()

	prev, err := m.Insert(MustName("Content-Type"), StaticValue("text/html"))
	require.NoError(t, err)
	require.Nil(t, prev)

	require.NoError(t, m.Append(MustName("content-type"), StaticValue("text/plain")))
	require.Equal(t, []string{"text/html", "text/plain"}, m.GetAll(ContentType).Strings())

	prev, err = m.Insert(MustName("CONTENT-TYPE"), StaticValue("application/json"))
	require.NoError(t, err)
	require.Equal(t, []string{"text/html", "text/plain"}, strs(prev))
	require.Equal(t, []string{"application/json"}, m.GetAll(ContentType).Strings())

	require.Equal(t, 1, m.Len())
	require.Equal(t, 1, m.ValuesLen())
	checkInvariants(t, m)
}

func TestMapGetAllPreservesOrder(t *testing.T) {
	m := New()
	cookies := []string{"a=1", "b=2", "c=3", "d=4", "e=5"}
	for _, c := range cookies {
		require.NoError(t, m.Append(SetCookie, StaticValue(c)))
	}

	vals := m.GetAll(SetCookie)
	require.Equal(t, len(cookies), vals.Len())
	require.Equal(t, cookies, vals.Strings())

	first, ok := vals.First()
	require.True(t, ok)
	require.Equal(t, "a=1", first.String())
	last, ok := vals.Last()
	require.True(t, ok)
	require.Equal(t, "e=5", last.String())

	// Each call to All restarts the walk.
	var twice []string
	for i := 0; i < 2; i++ {
		for v := range vals.All() {
			twice = append(twice, v.String())
		}
	}
	require.Equal(t, append(slices.Clone(cookies), cookies...), twice)

	require.Equal(t, 1, m.Len())
	require.Equal(t, len(cookies), m.ValuesLen())
	checkInvariants(t, m)
}

func TestMapRemoveFirst(t *testing.T) {
	m := New()
	for _, s := range []string{"one", "two", "three"} {
		require.NoError(t, m.Append(Via, StaticValue(s)))
	}

	for _, want := range []string{"one", "two"} {
		e, err := m.Entry(Via)
		require.NoError(t, err)
		got := e.(*OccupiedEntry).RemoveFirst()
		require.Equal(t, want, got.String())
		checkInvariants(t, m)
	}
	require.Equal(t, []string{"three"}, m.GetAll(Via).Strings())

	e, err := m.Entry(Via)
	require.NoError(t, err)
	got := e.(*OccupiedEntry).RemoveFirst()
	require.Equal(t, "three", got.String())
	require.False(t, m.Contains(Via))
	require.True(t, m.IsEmpty())
	checkInvariants(t, m)
}

func TestMapExtraNodesAreRecycled(t *testing.T) {
	m := New()
	names := []Name{SetCookie, Via, Warning}
	for round := 0; round < 10; round++ {
		for _, n := range names {
			for i := 0; i < 4; i++ {
				require.NoError(t, m.Append(n, StaticValue(fmt.Sprintf("v%d", i))))
			}
		}
		// Keep one name so the region is not reset.
		require.Len(t, m.Remove(Via), 4)
		require.Len(t, m.Remove(Warning), 4)
		checkInvariants(t, m)
		require.NotNil(t, m.Remove(SetCookie))
	}
	require.True(t, m.IsEmpty())
	require.Empty(t, m.extra)
}

func TestMapDrain(t *testing.T) {
	m := New()

	require.NoError(t, m.Append(MustName("hello"), StaticValue("world")))
	require.NoError(t, m.Append(MustName("hello"), StaticValue("world2")))
	require.NoError(t, m.Append(MustName("zomg"), StaticValue("bar")))
	require.NoError(t, m.Append(MustName("x-single"), StaticValue("only")))

	got := map[string][]string{}
	for name, vals := range m.Drain() {
		got[name.String()] = strs(vals)
	}
	require.Equal(t, map[string][]string{
		"hello":    {"world", "world2"},
		"zomg":     {"bar"},
		"x-single": {"only"},
	}, got)

	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, m.ValuesLen())
	require.False(t, m.Contains(MustName("hello")))
	checkInvariants(t, m)

	// The drained map is reusable.
	require.NoError(t, m.Append(Host, StaticValue("example.com")))
	require.Equal(t, 1, m.Len())
	checkInvariants(t, m)
}

func TestMapDrainBreak(t *testing.T) {
	m := New()
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("a")))
		require.NoError(t, m.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("b")))
	}

	seen := 0
	for _, vals := range m.Drain() {
		require.Len(t, vals, 2)
		seen++
		if seen == 5 {
			break
		}
	}
	require.Equal(t, 5, seen)
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.ValuesLen())
	checkInvariants(t, m)
}

func TestMapDrainEntry(t *testing.T) {
	m := New()

	require.NoError(t, m.Append(MustName("hello"), StaticValue("world")))
	require.NoError(t, m.Append(MustName("hello"), StaticValue("world2")))
	require.NoError(t, m.Append(MustName("zomg"), StaticValue("bar")))

	e, err := m.Entry(MustName("hello"))
	require.NoError(t, err)
	vals := e.(*OccupiedEntry).Remove()
	require.Equal(t, []string{"world", "world2"}, strs(vals))

	require.Equal(t, 1, m.Len())
	require.Equal(t, []string{"bar"}, m.GetAll(MustName("zomg")).Strings())
	checkInvariants(t, m)
}

func TestMapEqual(t *testing.T) {
	a := New()
	b := New()
	require.True(t, a.Equal(b))

	require.NoError(t, a.Append(ContentType, StaticValue("text/plain")))
	require.False(t, a.Equal(b))

	require.NoError(t, b.Append(ContentType, StaticValue("text/plain")))
	require.True(t, a.Equal(b))

	// Per-name value order matters.
	require.NoError(t, a.Append(SetCookie, StaticValue("a")))
	require.NoError(t, a.Append(SetCookie, StaticValue("b")))
	require.NoError(t, b.Append(SetCookie, StaticValue("b")))
	require.NoError(t, b.Append(SetCookie, StaticValue("a")))
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))

	// Name order does not.
	c := New()
	d := New()
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("v")))
		require.NoError(t, d.Append(MustName(fmt.Sprintf("x-%d", 9-i)), StaticValue("v")))
	}
	require.True(t, c.Equal(d))

	// Sensitivity is not part of equality.
	v := StaticValue("secret")
	v.SetSensitive(true)
	_, err := c.Insert(Authorization, v)
	require.NoError(t, err)
	_, err = d.Insert(Authorization, StaticValue("secret"))
	require.NoError(t, err)
	require.True(t, c.Equal(d))

	var nilMap *Map
	require.True(t, nilMap.Equal(New()))
	require.False(t, nilMap.Equal(c))
}

func TestMapInsertAllStandardHeaders(t *testing.T) {
	m := New()
	std := StandardNames()

	for i, name := range std {
		_, err := m.Insert(name, StaticValue(name.String()))
		require.NoError(t, err)
		for _, prev := range std[:i+1] {
			v, ok := m.Get(prev)
			require.True(t, ok, "%s missing after inserting %s", prev, name)
			require.Equal(t, prev.String(), v.String())
		}
		checkInvariants(t, m)
	}
	require.Equal(t, len(std), m.Len())
}

func TestMapInsert79CustomHeaders(t *testing.T) {
	m := New()
	names := make([]Name, 79)
	for i := range names {
		names[i] = MustName(fmt.Sprintf("abcd%d", i))
	}

	for i, name := range names {
		_, err := m.Insert(name, StaticValue(name.String()))
		require.NoError(t, err)
		for _, prev := range names[:i+1] {
			v, ok := m.Get(prev)
			require.True(t, ok, "%s missing after inserting %s", prev, name)
			require.Equal(t, prev.String(), v.String())
		}
	}
	checkInvariants(t, m)

	for i, name := range names {
		vals := m.Remove(name)
		require.Equal(t, []string{name.String()}, strs(vals))
		for _, rest := range names[i+1:] {
			require.True(t, m.Contains(rest), "%s lost after removing %s", rest, name)
		}
		checkInvariants(t, m)
	}
	require.True(t, m.IsEmpty())
}

func TestMapGrowthKeepsValues(t *testing.T) {
	m := New()
	capacity := m.Capacity()

	const n = 500
	for i := 0; i < n; i++ {
		name := MustName(fmt.Sprintf("x-grow-%d", i))
		for j := 0; j <= i%3; j++ {
			require.NoError(t, m.Append(name, StaticValue(fmt.Sprintf("%d-%d", i, j))))
		}
	}
	require.Greater(t, m.Capacity(), capacity)
	require.Equal(t, n, m.Len())
	checkInvariants(t, m)

	for i := 0; i < n; i++ {
		name := MustName(fmt.Sprintf("x-grow-%d", i))
		var want []string
		for j := 0; j <= i%3; j++ {
			want = append(want, fmt.Sprintf("%d-%d", i, j))
		}
		require.Equal(t, want, m.GetAll(name).Strings())
	}
}

func TestMapReserve(t *testing.T) {
	m := New()
	require.NoError(t, m.Reserve(100))
	capacity := m.Capacity()
	require.GreaterOrEqual(t, capacity, 100)

	slotsBefore := len(m.slots)
	for i := 0; i < 100; i++ {
		_, err := m.Insert(MustName(fmt.Sprintf("x-%d", i)), StaticValue("v"))
		require.NoError(t, err)
	}
	require.Equal(t, slotsBefore, len(m.slots), "table grew despite Reserve")
	checkInvariants(t, m)

	var zero Map
	require.NoError(t, zero.Reserve(10))
	require.GreaterOrEqual(t, zero.Capacity(), 10)

	require.ErrorIs(t, m.Reserve(DefaultMaxEntries), ErrCapacityExceeded)
}

func TestNewWithCapacity(t *testing.T) {
	m := NewWithCapacity(0)
	require.Equal(t, usable(DefaultCapacity), m.Capacity())

	m = NewWithCapacity(100)
	require.GreaterOrEqual(t, m.Capacity(), 100)
	require.Equal(t, 0, len(m.slots)&(len(m.slots)-1), "capacity is not a power of two")
}

func TestMapCapacityExceeded(t *testing.T) {
	m, err := NewWithConfig(&Config{MaxEntries: 4, MaxValues: 6})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, m.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("v")))
	}

	before := m.Clone()
	extra := MustName("x-extra")

	err = m.Append(extra, StaticValue("v"))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	_, err = m.Insert(extra, StaticValue("v"))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	_, err = m.Entry(extra)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.ErrorIs(t, m.Reserve(1), ErrCapacityExceeded)
	require.True(t, m.Equal(before), "failed insert modified the map")
	require.False(t, m.Contains(extra))

	// Existing names can still take values up to MaxValues.
	require.NoError(t, m.Append(MustName("x-0"), StaticValue("w")))
	require.NoError(t, m.Append(MustName("x-1"), StaticValue("w")))
	require.Equal(t, 6, m.ValuesLen())

	before = m.Clone()
	err = m.Append(MustName("x-2"), StaticValue("w"))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.True(t, m.Equal(before))

	// Replacing never needs room.
	prev, err := m.Insert(MustName("x-0"), StaticValue("z"))
	require.NoError(t, err)
	require.Equal(t, []string{"v", "w"}, strs(prev))
	require.Equal(t, 5, m.ValuesLen())
	checkInvariants(t, m)
}

func TestNewWithConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Negative capacity", Config{InitialCapacity: -1}},
		{"Negative entries", Config{MaxEntries: -1}},
		{"Values below entries", Config{MaxEntries: 100, MaxValues: 10}},
		{"Red below displacement", Config{DisplacementThreshold: 64, RedPressure: 10}},
		{"Negative shift threshold", Config{ForwardShiftThreshold: -1}},
		{"Entries above ceiling", Config{MaxEntries: maxEntriesCeiling + 1, MaxValues: maxEntriesCeiling + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := NewWithConfig(&cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := &Config{InitialCapacity: 1 << 20}
	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultMaxEntries, cfg.MaxEntries)
	require.Equal(t, DefaultMaxValues, cfg.MaxValues)
	require.Equal(t, DefaultDisplacementThreshold, cfg.DisplacementThreshold)
	require.Equal(t, DefaultForwardShiftThreshold, cfg.ForwardShiftThreshold)
	require.Equal(t, DefaultRedPressure, cfg.RedPressure)
	require.Equal(t, DefaultMaxEntries, cfg.InitialCapacity)
	require.NotNil(t, cfg.Logger)
}

func TestMapNilReceiver(t *testing.T) {
	var m *Map
	require.Zero(t, m.Len())
	require.Zero(t, m.ValuesLen())
	require.True(t, m.IsEmpty())
	require.Zero(t, m.Capacity())
	require.Equal(t, Green, m.DangerLevel())

	_, ok := m.Get(Host)
	require.False(t, ok)
	require.Zero(t, m.GetAll(Host).Len())
	require.False(t, m.Contains(Host))
	for range m.All() {
		t.Fatal("nil map yielded a name")
	}
	m.VisitAll(func(Name, *Value) bool {
		t.Fatal("nil map visited a value")
		return false
	})
	require.Equal(t, "{}", m.String())
	require.True(t, m.Equal(New()))
	require.True(t, New().Equal(m))

	require.NotPanics(t, m.Clear)
	require.Nil(t, m.Clone())
}

func TestMapClone(t *testing.T) {
	m := New()
	require.NoError(t, m.Append(SetCookie, StaticValue("a")))
	require.NoError(t, m.Append(SetCookie, StaticValue("b")))
	require.NoError(t, m.Append(Host, StaticValue("example.com")))

	c := m.Clone()
	require.True(t, c.Equal(m))

	require.NoError(t, c.Append(SetCookie, StaticValue("c")))
	_, err := c.Insert(Host, StaticValue("other.example"))
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, m.GetAll(SetCookie).Strings())
	got, _ := m.Get(Host)
	require.Equal(t, "example.com", got.String())
	require.False(t, c.Equal(m))
	checkInvariants(t, m)
	checkInvariants(t, c)
}

func TestMapClear(t *testing.T) {
	m := New()
	for i := 0; i < 50; i++ {
		require.NoError(t, m.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("v")))
		require.NoError(t, m.Append(MustName(fmt.Sprintf("x-%d", i)), StaticValue("w")))
	}
	capacity := m.Capacity()

	m.Clear()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.ValuesLen())
	require.Equal(t, capacity, m.Capacity())
	require.False(t, m.Contains(MustName("x-1")))
	checkInvariants(t, m)
}

func TestMapIteration(t *testing.T) {
	m := New()
	want := map[string][]string{
		"host":       {"example.com"},
		"set-cookie": {"a=1", "b=2"},
		"accept":     {"text/html", "*/*"},
	}
	for k, vals := range want {
		for _, v := range vals {
			require.NoError(t, m.Append(MustName(k), StaticValue(v)))
		}
	}

	got := map[string][]string{}
	for name, vals := range m.All() {
		got[name.String()] = vals.Strings()
	}
	require.Equal(t, want, got)

	var names []string
	for name := range m.Names() {
		names = append(names, name.String())
	}
	require.ElementsMatch(t, []string{"host", "set-cookie", "accept"}, names)

	pairs := 0
	m.VisitAll(func(Name, *Value) bool {
		pairs++
		return true
	})
	require.Equal(t, m.ValuesLen(), pairs)

	pairs = 0
	m.VisitAll(func(Name, *Value) bool {
		pairs++
		return pairs < 2
	})
	require.Equal(t, 2, pairs)
}

func TestMapStringMasksSensitive(t *testing.T) {
	m := New()
	v := StaticValue("Bearer token")
	v.SetSensitive(true)
	_, err := m.Insert(Authorization, v)
	require.NoError(t, err)

	require.Equal(t, "{authorization: [***]}", m.String())
}

// TestMapRandomOperations applies a random sequence of operations to a Map and
// to a plain Go map model, checking both agree after every step.
func TestMapRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := New()
	model := map[Name][]string{}

	names := make([]Name, 64)
	for i := range names {
		names[i] = MustName(fmt.Sprintf("x-rand-%d", i))
	}

	for step := 0; step < 5000; step++ {
		name := names[rng.Intn(len(names))]
		val := fmt.Sprintf("v%d", step)

		switch op := rng.Intn(6); op {
		case 0, 1:
			require.NoError(t, m.Append(name, StaticValue(val)))
			model[name] = append(model[name], val)
		case 2:
			prev, err := m.Insert(name, StaticValue(val))
			require.NoError(t, err)
			require.Equal(t, model[name], strs(prev))
			model[name] = []string{val}
		case 3:
			require.Equal(t, model[name], strs(m.Remove(name)))
			delete(model, name)
		case 4:
			e, err := m.Entry(name)
			require.NoError(t, err)
			if occ, ok := e.(*OccupiedEntry); ok {
				got := occ.RemoveFirst()
				require.Equal(t, model[name][0], got.String())
				model[name] = model[name][1:]
				if len(model[name]) == 0 {
					delete(model, name)
				}
			}
		case 5:
			if rng.Intn(50) == 0 {
				m.Clear()
				clear(model)
			}
		}

		if step%97 == 0 {
			checkInvariants(t, m)
		}
	}
	checkInvariants(t, m)

	require.Equal(t, len(model), m.Len())
	total := 0
	for name, vals := range model {
		total += len(vals)
		require.Equal(t, vals, m.GetAll(name).Strings())
	}
	require.Equal(t, total, m.ValuesLen())
}

func BenchmarkMapAppend(b *testing.B) {
	names := []Name{Host, UserAgent, Accept, AcceptEncoding, AcceptLanguage, Cookie, Connection, CacheControl}
	v := StaticValue("value")
	m := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Clear()
		for _, n := range names {
			_ = m.Append(n, v)
		}
	}
}

func BenchmarkMapGet(b *testing.B) {
	m := New()
	for _, n := range StandardNames()[:20] {
		_ = m.Append(n, StaticValue("value"))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(ContentType)
	}
}
