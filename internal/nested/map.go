package nested

// Value is a node of a nested map: either a Scalar or a *Map.
type Value interface {
	isValue()
}

// Scalar is a leaf value. The text is kept as it appeared in the input.
type Scalar string

func (Scalar) isValue() {}

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value Value
}

// Map is a string-keyed mapping that preserves insertion order.
type Map struct {
	entries []Entry
	index   map[string]int
}

func (*Map) isValue() {}

// New creates an empty Map.
func New() *Map {
	return &Map{index: map[string]int{}}
}

// Set binds key to v. Replacing an existing key keeps its original position.
func (m *Map) Set(key string, v Value) *Map {
	if m.index == nil {
		m.index = map[string]int{}
	}

	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return m
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: v})

	return m
}

// Child returns the nested map bound to key, creating it if the key is
// absent or bound to a scalar. A nil m yields a detached empty map.
func (m *Map) Child(key string) *Map {
	if m == nil {
		return New()
	}

	if v, ok := m.Get(key); ok {
		if child, ok := v.(*Map); ok {
			return child
		}
	}

	child := New()
	m.Set(key, child)

	return child
}

// Get returns the value bound to key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}

	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.entries[i].Value, true
}

// Len returns the number of keys at this level.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Keys returns the keys at this level in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}

	return keys
}

// Entries returns the entries at this level in insertion order.
// The returned slice must not be modified.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}

	return m.entries
}

// CountKeys returns the total number of keys across all nesting levels.
func CountKeys(m *Map) int {
	total := 0

	for _, e := range m.Entries() {
		total++

		if child, ok := e.Value.(*Map); ok {
			total += CountKeys(child)
		}
	}

	return total
}
