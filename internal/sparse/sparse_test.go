package sparse

import "testing"

func TestSet_Basic(t *testing.T) {
	s := New(100)

	// Empty set
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	// Insert and contain
	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	// Multiple inserts
	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	// Clear
	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(4)
	if s.Cap() != 4 {
		t.Errorf("cap should be 4, got %d", s.Cap())
	}
	if s.Insert(4) {
		t.Error("insert at capacity should return false")
	}
	if s.Contains(4) {
		t.Error("set should not contain out-of-range value")
	}
	if s.Len() != 0 {
		t.Errorf("len should be 0, got %d", s.Len())
	}
}

func TestSet_ClearPreservesCapacity(t *testing.T) {
	s := New(100)
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	s.Clear()

	// Should be able to insert again without issues
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	if s.Len() != 50 {
		t.Errorf("len should be 50, got %d", s.Len())
	}
}

func TestSet_StaleSparseEntries(t *testing.T) {
	// Garbage left in the sparse array after Clear must not cause
	// false positives.
	s := New(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not contain old values")
	}

	s.Insert(3)
	if !s.Contains(3) {
		t.Error("should contain 3")
	}
	if s.Contains(5) {
		t.Error("should not contain 5")
	}
}
