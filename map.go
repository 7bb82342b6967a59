package graveyard

// Map is an open-addressed, linearly-probed graveyard hash table mapping
// keys of type K to values of type V. It is the public facade described in
// spec §6, a thin shell over the table core.
type Map[K comparable, V any] struct {
	t *table[K, V]
}

// NewMap constructs an empty Map. With no options it allocates nothing
// until the first insert, the same lazy-allocation behavior
// github.com/cockroachdb/swiss's NewMap documents.
func NewMap[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	c := defaultConfig[K, V]()
	for _, o := range opts {
		o.apply(&c)
	}
	return &Map[K, V]{t: newTable(c)}
}

// Len returns the number of entries, i.e. spec §6's size().
func (m *Map[K, V]) Len() int { return m.t.size }

// Capacity returns bucket_count(): the logical slot count.
func (m *Map[K, V]) Capacity() int { return m.t.capacity() }

// LoadFactor returns size()/capacity(), or 0 for an empty, unallocated map.
func (m *Map[K, V]) LoadFactor() float64 { return m.t.loadFactor() }

// Get reports whether key is present and, if so, its value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, lane, ok := m.t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return p.slot(lane).value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, _, ok := m.t.find(key)
	return ok
}

// Put inserts or overwrites key's value. inserted is false when key was
// already present (its value is overwritten regardless), matching insert's
// "hit returns existing iterator with inserted=false" rule in spec §4.5
// generalized to map semantics (insert_or_assign rather than insert).
func (m *Map[K, V]) Put(key K, value V) (inserted bool) {
	if p, lane, ok := m.t.find(key); ok {
		p.slot(lane).value = value
		return false
	}
	h := m.t.hash(key)
	p, lane := m.t.prepareInsert(h)
	*p.slot(lane) = slotT[K, V]{key: key, value: value}
	return true
}

// Emplace inserts key/value only if key is absent, leaving an existing
// entry untouched. Returns the (possibly pre-existing) value and whether an
// insertion happened, mirroring emplace's "on hit returns existing iterator
// with inserted=false" semantics in spec §4.5.
func (m *Map[K, V]) Emplace(key K, value V) (V, bool) {
	if p, lane, ok := m.t.find(key); ok {
		return p.slot(lane).value, false
	}
	h := m.t.hash(key)
	p, lane := m.t.prepareInsert(h)
	*p.slot(lane) = slotT[K, V]{key: key, value: value}
	return value, true
}

// Delete removes key if present, reporting whether it was.
func (m *Map[K, V]) Delete(key K) bool {
	p, lane, ok := m.t.find(key)
	if !ok {
		return false
	}
	m.t.eraseMetaOnly(p, lane)
	return true
}

// EraseAt removes the element it currently refers to, per spec §6's
// erase(iterator) -> void. it must belong to m and be Valid(); per spec
// §3's ordering guarantees, this (like every erase) invalidates every other
// live iterator over m. An iterator whose slot is already empty (e.g. one
// already passed to EraseAt) is ignored.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) {
	if !it.Valid() || it.bin.control()[it.lane].isEmpty() {
		return
	}
	m.t.eraseMetaOnly(it.bin, it.lane)
}

// EraseRange removes every element in [from, to) and returns an iterator
// positioned where to was, per spec §6's erase(range) -> iterator. Passing
// m.Iterator() end sentinel as to erases through the end of the table.
func (m *Map[K, V]) EraseRange(from, to Iterator[K, V]) Iterator[K, V] {
	it := from
	for it.Valid() && !sameIteratorPosition(it, to) {
		next := it
		next.gen = m.t.generation
		next.Next()
		m.t.eraseMetaOnly(it.bin, it.lane)
		it = next
	}
	it.gen = m.t.generation
	return it
}

// Extract removes key if present and returns it as a NodeHandle, for moving
// into another Map with Insert (which hashes the key again in that Map).
func (m *Map[K, V]) Extract(key K) NodeHandle[K, V] {
	p, lane, ok := m.t.find(key)
	if !ok {
		return NodeHandle[K, V]{}
	}
	return m.t.extractAt(p, lane)
}

// Insert re-inserts a previously-extracted node. Reports whether it was
// inserted (false if key already present or the handle was empty).
func (m *Map[K, V]) Insert(n NodeHandle[K, V]) bool {
	return m.t.insertNode(n)
}

// Merge moves every entry of other into m that m does not already contain,
// by extracting each one from other as a NodeHandle and inserting it into
// m. Entries whose key m already has stay in other.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	var moving []K
	it := other.t.beginIterator()
	for it.Valid() {
		moving = append(moving, it.Key())
		it.Next()
	}
	for _, k := range moving {
		if !m.Contains(k) {
			n := other.Extract(k)
			m.Insert(n)
		}
	}
}

// Reserve ensures capacity for at least n total entries without forcing an
// intermediate rehash, per spec §4.5 reserve(n).
func (m *Map[K, V]) Reserve(n int) { m.t.reserve(n) }

// Rehash implements spec §4.5 rehash(n): n == 0 forces an unconditional
// resize to the current size's target density; otherwise resizes only if n
// exceeds the current capacity.
func (m *Map[K, V]) Rehash(n int) { m.t.rehashTo(n) }

// Clear removes every entry. Per spec §4.5, small tables keep their backing
// allocation; large ones release it.
func (m *Map[K, V]) Clear() { m.t.clear() }

// Swap exchanges the contents of m and other in constant time. Allocator
// exchange follows WithAllocatorPropagation's on-swap flag.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	propagate := m.t.propagateOnSwap && other.t.propagateOnSwap
	allocM, allocO := m.t.allocator, other.t.allocator
	*m.t, *other.t = *other.t, *m.t
	if !propagate {
		m.t.allocator, other.t.allocator = allocM, allocO
	}
}

// Iterator returns an iterator positioned at the first live entry.
func (m *Map[K, V]) Iterator() Iterator[K, V] { return m.t.beginIterator() }

// Range calls fn for every entry in bin/lane order, stopping early if fn
// returns false. Safe to use without generation-tracking overhead; does
// not protect against mutating m from within fn.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	it := m.t.beginIterator()
	for it.Valid() {
		if !fn(it.Key(), it.Value()) {
			return
		}
		it.Next()
	}
}
