// Package sparse provides a sparse set of small integers for the matching
// engine's generation buffers.
//
// A sparse set supports O(1) insertion, membership testing, and clearing
// while keeping a dense list of elements for iteration. The matching engine
// uses two of them (current and next generation) to track every pattern
// position a live match thread could be at, deduplicating positions as they
// are inserted. Without deduplication, runs of adjacent wildcard steps would
// spawn duplicate downstream positions and the generation would grow
// combinatorially with segment count.
package sparse

// Set is a set of uint32 values with O(1) insert, contains, and clear.
// It maintains a sparse array (value -> dense index) and a dense array
// (the values themselves, in insertion order).
//
// The universe of values is fixed at construction: for the matching engine
// it is the number of steps in the compiled pattern.
type Set struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // the values, in insertion order
	size   uint32   // current number of elements
}

// New creates a set able to hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. It reports whether the value was added,
// returning false if it was already present or out of range.
func (s *Set) Insert(value uint32) bool {
	if value >= uint32(len(s.sparse)) || s.Contains(value) {
		return false
	}

	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether the value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	// The sparse array is never zeroed, so it may hold a stale index from
	// before the last Clear. The entry is valid only if it points back.
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements in O(1) time, keeping capacity.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Cap returns the capacity the set was created with: values must be in
// [0, Cap()) to be insertable.
func (s *Set) Cap() int {
	return len(s.sparse)
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set contains no elements.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}
