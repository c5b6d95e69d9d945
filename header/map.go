package header

// MaxSize is the default maximum number of values a Map holds.
const MaxSize = 1 << 15

// MaxSizeReached is returned when an insert would grow a Map past its limit.
type MaxSizeReached struct{}

func (MaxSizeReached) Error() string { return "max size reached" }

// Unwrap returns nil; reaching the size limit has no underlying cause.
func (MaxSizeReached) Unwrap() error { return nil }

// Map is a multimap of header names to values with a bounded size. A Map is
// not safe for concurrent mutation.
type Map struct {
	entries map[Name][]Value
	size    int
	max     int
}

// NewMap creates a Map limited to MaxSize values.
func NewMap() *Map {
	return NewMapWithLimit(MaxSize)
}

// NewMapWithLimit creates a Map limited to limit values. A non-positive limit
// falls back to MaxSize.
func NewMapWithLimit(limit int) *Map {
	if limit <= 0 {
		limit = MaxSize
	}
	return &Map{
		entries: make(map[Name][]Value),
		max:     limit,
	}
}

// TryInsert sets name to the single value v, replacing existing values, and
// returns the values it replaced.
func (m *Map) TryInsert(name Name, v Value) ([]Value, error) {
	prev, ok := m.entries[name]
	if !ok && m.size+1 > m.max {
		return nil, MaxSizeReached{}
	}
	m.entries[name] = []Value{v}
	m.size += 1 - len(prev)
	return prev, nil
}

// TryAppend adds v to the values already held for name.
func (m *Map) TryAppend(name Name, v Value) error {
	if m.size+1 > m.max {
		return MaxSizeReached{}
	}
	m.entries[name] = append(m.entries[name], v)
	m.size++
	return nil
}

// Get returns the first value for name.
func (m *Map) Get(name Name) (Value, bool) {
	vs := m.entries[name]
	if len(vs) == 0 {
		return Value{}, false
	}
	return vs[0], true
}

// Values returns all values for name in insertion order.
func (m *Map) Values(name Name) []Value {
	return m.entries[name]
}

// Remove deletes every value for name and returns them.
func (m *Map) Remove(name Name) []Value {
	vs, ok := m.entries[name]
	if !ok {
		return nil
	}
	delete(m.entries, name)
	m.size -= len(vs)
	return vs
}

// Len returns the number of values held.
func (m *Map) Len() int { return m.size }

// KeysLen returns the number of distinct names held.
func (m *Map) KeysLen() int { return len(m.entries) }

// Limit returns the maximum number of values the Map accepts.
func (m *Map) Limit() int { return m.max }
