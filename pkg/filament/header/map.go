package header

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxEntriesCeiling bounds Config.MaxEntries so slot indexes and chain links
// always fit their integer types.
const maxEntriesCeiling = 1 << 24

// Map is a multimap from case-insensitive header names to ordered values.
//
// Storage is an open-addressed table of slots using Robin Hood insertion and
// backward-shift deletion (no tombstones). The first value of every name is
// kept inline in its slot; further values live in a separate region of nodes
// linked by index, so repeated headers such as Set-Cookie cost one node each
// and single-valued headers cost nothing extra.
//
// Iteration order follows the slot array: it is neither insertion order nor
// sorted, and it changes when the table grows. The order of values within
// one name is always the order in which they were added.
//
// The zero Map is empty and ready to use. A nil *Map behaves as an empty
// map for every read-only method and for Clear and Clone; the other
// mutating methods panic on it. A Map is not safe for concurrent use;
// callers sharing one across goroutines must serialize access.
type Map struct {
	slots   []slot
	mask    int
	entries int // distinct names
	values  int // total values

	extra []extraValue
	free  link // head of the recycled extra-value list

	danger danger
	cfg    *Config
}

// slot is one cell of the table. A used slot holds a name, its hash under the
// active function, its first value and the head/tail of its extra-value chain.
type slot struct {
	name  Name
	value Value
	hash  uint64
	dist  uint32 // distance from the ideal index hash&mask
	n     uint32 // number of values, first included
	head  link
	tail  link
	used  bool
}

// New returns an empty map with the default capacity.
func New() *Map {
	m := &Map{}
	m.allocate(DefaultCapacity)
	return m
}

// NewWithCapacity returns an empty map able to hold n names without growing.
// n is a hint; it is clamped to the default MaxEntries.
func NewWithCapacity(n int) *Map {
	if n > DefaultMaxEntries {
		n = DefaultMaxEntries
	}
	m := &Map{}
	m.allocate(capacityFor(n))
	return m
}

// NewWithConfig returns an empty map using cfg. cfg is validated (and its
// unset fields defaulted) in place and must not be modified afterwards.
func NewWithConfig(cfg *Config) (*Map, error) {
	if cfg == nil {
		return New(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Map{cfg: cfg}
	m.allocate(capacityFor(cfg.InitialCapacity))
	return m, nil
}

func (m *Map) config() *Config {
	if m.cfg == nil {
		return defaultConfig
	}
	return m.cfg
}

// Len returns the number of distinct names.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.entries
}

// ValuesLen returns the total number of values across all names.
func (m *Map) ValuesLen() int {
	if m == nil {
		return 0
	}
	return m.values
}

// IsEmpty reports whether the map holds no names.
func (m *Map) IsEmpty() bool {
	return m.Len() == 0
}

// Capacity returns the number of names the map can hold before it grows.
func (m *Map) Capacity() int {
	if m == nil {
		return 0
	}
	return usable(len(m.slots))
}

// DangerLevel returns the current hash-flooding danger level.
func (m *Map) DangerLevel() Level {
	if m == nil {
		return Green
	}
	return m.danger.level
}

// Get returns the first value stored under name.
func (m *Map) Get(name Name) (Value, bool) {
	idx, ok := m.find(name)
	if !ok {
		return Value{}, false
	}
	return m.slots[idx].value, true
}

// GetAll returns a view of every value stored under name, in insertion order.
// The view is empty if name is absent and is only valid until the next
// mutation of the map.
func (m *Map) GetAll(name Name) Values {
	idx, ok := m.find(name)
	if !ok {
		return Values{}
	}
	return Values{m: m, idx: idx}
}

// Contains reports whether name has at least one value.
func (m *Map) Contains(name Name) bool {
	_, ok := m.find(name)
	return ok
}

// Insert stores v as the only value of name (replace semantics).
// It returns the values name held before, in order, or nil if it was absent.
//
// Returns ErrCapacityExceeded, leaving the map unchanged, if name is new and
// the map is full.
func (m *Map) Insert(name Name, v Value) ([]Value, error) {
	e, err := m.Entry(name)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case *OccupiedEntry:
		return e.Set(v), nil
	case *VacantEntry:
		e.Insert(v)
	}
	return nil, nil
}

// Append adds v after the existing values of name, creating name if absent
// (append semantics). Existing values are never displaced.
//
// Returns ErrCapacityExceeded, leaving the map unchanged, if the map is full.
func (m *Map) Append(name Name, v Value) error {
	e, err := m.Entry(name)
	if err != nil {
		return err
	}
	switch e := e.(type) {
	case *OccupiedEntry:
		return e.Append(v)
	case *VacantEntry:
		e.Insert(v)
	}
	return nil
}

// Remove deletes name and returns its values in order, or nil if absent.
func (m *Map) Remove(name Name) []Value {
	idx, ok := m.find(name)
	if !ok {
		return nil
	}
	return m.removeEntry(idx)
}

// Reserve makes room for n more names without further growth.
// Returns ErrCapacityExceeded if that would exceed Config.MaxEntries.
func (m *Map) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	cfg := m.config()
	if n > cfg.MaxEntries-m.entries {
		return ErrCapacityExceeded
	}
	want := capacityFor(m.entries + n)
	if m.slots == nil {
		m.allocate(want)
		return nil
	}
	if want > len(m.slots) {
		m.grow(want)
	}
	return nil
}

// Clear removes every name but keeps the allocated capacity.
// The danger level is not reset.
func (m *Map) Clear() {
	if m == nil {
		return
	}
	clear(m.slots)
	m.entries = 0
	m.values = 0
	m.resetExtra()
}

// Equal reports whether m and other hold the same names and, for each name,
// the same values in the same order. The order of names is irrelevant.
func (m *Map) Equal(other *Map) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	if m.entries != other.entries || m.values != other.values {
		return false
	}
	for i := range m.slots {
		s := &m.slots[i]
		if !s.used {
			continue
		}
		idx, ok := other.find(s.name)
		if !ok {
			return false
		}
		if !(Values{m: m, idx: i}).equal(Values{m: other, idx: idx}) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m. The copy keeps m's configuration, danger
// level and hash seed. Value bytes are shared, as Values are immutable.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	c := &Map{
		mask:    m.mask,
		entries: m.entries,
		values:  m.values,
		free:    m.free,
		danger:  m.danger,
		cfg:     m.cfg,
	}
	if m.slots != nil {
		c.slots = make([]slot, len(m.slots))
		copy(c.slots, m.slots)
	}
	if m.extra != nil {
		c.extra = make([]extraValue, len(m.extra))
		copy(c.extra, m.extra)
	}
	return c
}

// String renders the map as {name: [v1 v2], ...} in iteration order.
// Sensitive values are masked.
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for name, vals := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name.String())
		sb.WriteString(": [")
		j := 0
		for v := range vals.All() {
			if j > 0 {
				sb.WriteByte(' ')
			}
			j++
			if v.Sensitive() {
				sb.WriteString("***")
				continue
			}
			sb.WriteString(v.String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
	return sb.String()
}

// ---- table internals ----

// usable returns the number of names a table of capacity slots may hold
// (load factor 3/4).
func usable(capacity int) int {
	return capacity - capacity/4
}

// capacityFor returns the smallest power-of-two slot count holding n names.
func capacityFor(n int) int {
	c := DefaultCapacity
	for usable(c) < n {
		c <<= 1
	}
	return c
}

func (m *Map) allocate(capacity int) {
	m.slots = make([]slot, capacity)
	m.mask = capacity - 1
}

// find returns the slot index of name.
func (m *Map) find(name Name) (int, bool) {
	if m == nil || m.entries == 0 {
		return 0, false
	}
	idx, _, found := m.probe(name, m.danger.hash(name))
	return idx, found
}

// probe walks the probe sequence of h. It returns the index holding name, or
// the index where name would be inserted together with its distance there.
// The Robin Hood invariant allows stopping at the first slot whose entry is
// closer to home than the walk.
func (m *Map) probe(name Name, h uint64) (idx int, dist uint32, found bool) {
	idx = int(h) & m.mask
	for {
		s := &m.slots[idx]
		if !s.used || s.dist < dist {
			return idx, dist, false
		}
		if s.hash == h && s.name == name {
			return idx, dist, true
		}
		idx = (idx + 1) & m.mask
		dist++
	}
}

// reserveOne makes room for one more name and one more value.
// It reports whether the table was reallocated, which invalidates any probe
// position computed before the call.
func (m *Map) reserveOne() (bool, error) {
	cfg := m.config()
	if m.entries >= cfg.MaxEntries || m.values >= cfg.MaxValues {
		return false, ErrCapacityExceeded
	}
	if m.slots == nil {
		m.allocate(capacityFor(cfg.InitialCapacity))
		return true, nil
	}
	if m.entries < usable(len(m.slots)) {
		return false, nil
	}
	m.grow(len(m.slots) << 1)
	return true, nil
}

// grow moves every entry into a table of the given capacity. Stored hashes are
// reused; names are not hashed again.
func (m *Map) grow(capacity int) {
	old := m.slots
	m.allocate(capacity)
	m.reinsertAll(old)

	cfg := m.config()
	if ce := cfg.Logger.Check(zapcore.DebugLevel, "header map grew"); ce != nil {
		ce.Write(
			zap.Int("from", len(old)),
			zap.Int("to", capacity),
			zap.Int("entries", m.entries),
			zap.Stringer("danger", m.danger.level),
		)
	}
	if cfg.Metrics != nil {
		cfg.Metrics.Growths.Inc()
	}
}

// reinsertAll places every used slot of old into the current table.
func (m *Map) reinsertAll(old []slot) {
	for i := range old {
		if !old[i].used {
			continue
		}
		s := old[i]
		s.dist = 0
		idx := int(s.hash) & m.mask
		for {
			cur := &m.slots[idx]
			if !cur.used {
				*cur = s
				break
			}
			if cur.dist < s.dist {
				*cur, s = s, *cur
			}
			idx = (idx + 1) & m.mask
			s.dist++
		}
	}
}

// insertAt places s at idx, where a probe for s stopped, and shifts the run
// of entries starting there forward by one slot. It returns the number of
// entries shifted.
func (m *Map) insertAt(idx int, s slot) int {
	shift := 0
	for {
		cur := &m.slots[idx]
		if !cur.used {
			*cur = s
			return shift
		}
		*cur, s = s, *cur
		s.dist++
		idx = (idx + 1) & m.mask
		shift++
	}
}

// insertVacant adds a new name whose probe stopped at (idx, dist) and returns
// the slot index it finally occupies.
func (m *Map) insertVacant(idx int, dist uint32, name Name, h uint64, v Value) int {
	shift := m.insertAt(idx, slot{
		name:  name,
		value: v,
		hash:  h,
		dist:  dist,
		n:     1,
		used:  true,
	})
	m.entries++
	m.values++

	if m.observe(int(dist), shift) {
		// The table was rebuilt; locate the new entry again.
		idx, _, _ = m.probe(name, m.danger.hash(name))
	}
	return idx
}

// observe feeds the displacement and forward shift of one insertion to the
// danger tracker, then grows the table or escalates to Red as it decides.
// It reports whether the table was rebuilt.
func (m *Map) observe(disp, shift int) bool {
	cfg := m.config()
	if cfg.Metrics != nil {
		cfg.Metrics.ProbeLength.Observe(float64(disp + shift))
	}

	// Past this size a long probe escalates instead of growing the table.
	sparse := m.entries*sparseLoadDivisor < len(m.slots) ||
		len(m.slots) >= capacityFor(cfg.MaxEntries)<<2

	grow, toYellow, toRed := m.danger.observe(disp, shift, sparse, cfg)
	if grow {
		m.grow(len(m.slots) << 1)
		return true
	}
	if toYellow {
		cfg.Logger.Info("header map under collision pressure",
			zap.Int("displacement", disp),
			zap.Int("shift", shift),
			zap.Int("entries", m.entries),
			zap.Int("capacity", len(m.slots)),
		)
		if cfg.Metrics != nil {
			cfg.Metrics.Escalations.WithLabelValues(Yellow.String()).Inc()
		}
	}
	if !toRed {
		return false
	}
	m.rehashKeyed()
	cfg.Logger.Warn("header map switched to keyed hash",
		zap.Int("pressure", m.danger.pressure),
		zap.Int("entries", m.entries),
		zap.Int("capacity", len(m.slots)),
	)
	if cfg.Metrics != nil {
		cfg.Metrics.Escalations.WithLabelValues(Red.String()).Inc()
		cfg.Metrics.Rehashes.Inc()
	}
	return true
}

// rehashKeyed moves the map to Red and rebuilds the table at the same
// capacity with every name hashed under the new seed.
func (m *Map) rehashKeyed() {
	m.danger.escalate()
	old := m.slots
	for i := range old {
		if old[i].used {
			old[i].hash = m.danger.hash(old[i].name)
		}
	}
	m.allocate(len(old))
	m.reinsertAll(old)
}

// removeEntry deletes the entry at idx and returns its values.
func (m *Map) removeEntry(idx int) []Value {
	vals := m.takeValues(&m.slots[idx])
	m.vacate(idx)
	return vals
}

// vacate empties idx and repairs the probe run after it by shifting each
// following displaced entry one slot back.
func (m *Map) vacate(idx int) {
	for {
		next := (idx + 1) & m.mask
		s := &m.slots[next]
		if !s.used || s.dist == 0 {
			m.slots[idx] = slot{}
			break
		}
		m.slots[idx] = *s
		m.slots[idx].dist--
		idx = next
	}
	m.entries--
	if m.entries == 0 {
		m.resetExtra()
	}
}
