package graveyard

// Set is a graveyard hash set of comparable keys, built directly on the
// same table core as Map (V instantiated to struct{}), the way
// github.com/cockroachdb/swiss's Map[K, struct{}] already serves as its own
// set type.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet constructs an empty Set.
func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](opts...)}
}

func (s *Set[K]) Len() int            { return s.m.Len() }
func (s *Set[K]) Capacity() int       { return s.m.Capacity() }
func (s *Set[K]) LoadFactor() float64 { return s.m.LoadFactor() }

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool { return s.m.Contains(key) }

// Add inserts key, reporting whether it was newly added.
func (s *Set[K]) Add(key K) bool {
	_, inserted := s.m.Emplace(key, struct{}{})
	return inserted
}

// Delete removes key, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool { return s.m.Delete(key) }

// EraseAt removes the member it currently refers to, per spec §6's
// erase(iterator) -> void.
func (s *Set[K]) EraseAt(it Iterator[K, struct{}]) { s.m.EraseAt(it) }

// EraseRange removes every member in [from, to) and returns an iterator
// positioned where to was, per spec §6's erase(range) -> iterator.
func (s *Set[K]) EraseRange(from, to Iterator[K, struct{}]) Iterator[K, struct{}] {
	return s.m.EraseRange(from, to)
}

// Extract removes key and returns it as a NodeHandle.
func (s *Set[K]) Extract(key K) NodeHandle[K, struct{}] { return s.m.Extract(key) }

// Insert re-inserts a previously-extracted node.
func (s *Set[K]) Insert(n NodeHandle[K, struct{}]) bool { return s.m.Insert(n) }

// Merge moves every member of other into s that s does not already contain.
func (s *Set[K]) Merge(other *Set[K]) { s.m.Merge(other.m) }

func (s *Set[K]) Reserve(n int) { s.m.Reserve(n) }
func (s *Set[K]) Rehash(n int)  { s.m.Rehash(n) }
func (s *Set[K]) Clear()        { s.m.Clear() }

func (s *Set[K]) Swap(other *Set[K]) { s.m.Swap(other.m) }

func (s *Set[K]) Iterator() Iterator[K, struct{}] { return s.m.Iterator() }

// Range calls fn for every member, stopping early if fn returns false.
func (s *Set[K]) Range(fn func(key K) bool) {
	s.m.Range(func(key K, _ struct{}) bool { return fn(key) })
}
