package keyset

import (
	"slices"
	"testing"
)

func sortedOfInts(t *testing.T, keys ...int) Sorted[int] {
	t.Helper()
	s, err := SortedOf(keys...)
	if err != nil {
		t.Fatalf("cannot build sorted fixture %v: %v", keys, err)
	}
	return s
}

func TestIntersectOverlapping(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3)
	b := sortedOfInts(t, 2, 3, 4)
	c := Intersect(a, b)
	if got := c.Keys(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("expected intersection [2 3], got %v", got)
	}
}

func TestIntersectDisjoint(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3)
	b := sortedOfInts(t, 4, 5, 6)
	c := Intersect(a, b)
	if !c.IsVoid() {
		t.Errorf("expected empty intersection, got %v", c.Keys())
	}
}

func TestIntersectIdenticalLists(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3)
	b := sortedOfInts(t, 1, 2, 3)
	c := Intersect(a, b)
	if got := c.Keys(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected intersection [1 2 3], got %v", got)
	}
}

func TestIntersectSubset(t *testing.T) {
	a := sortedOfInts(t, 2, 3)
	b := sortedOfInts(t, 1, 2, 3, 4)
	c := Intersect(a, b)
	if got := c.Keys(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("expected intersection [2 3], got %v", got)
	}
}

func TestIntersectCommutes(t *testing.T) {
	a := sortedOfInts(t, 1, 3, 5, 7, 9)
	b := sortedOfInts(t, 2, 3, 5, 8, 9)
	ab := Intersect(a, b).Keys()
	ba := Intersect(b, a).Keys()
	if !slices.Equal(ab, ba) {
		t.Errorf("intersection not commutative: %v vs %v", ab, ba)
	}
	if !slices.Equal(ab, []int{3, 5, 9}) {
		t.Errorf("expected intersection [3 5 9], got %v", ab)
	}
}

func TestIntersectIdempotent(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3, 5, 8)
	c := Intersect(a, a)
	if got := c.Keys(); !slices.Equal(got, a.Keys()) {
		t.Errorf("expected A ∩ A = A, got %v", got)
	}
}

func TestIntersectWithEmpty(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3)
	var empty Sorted[int] // zero value is the empty set
	if c := Intersect(a, empty); !c.IsVoid() {
		t.Errorf("expected A ∩ ∅ to be empty, got %v", c.Keys())
	}
	if c := Intersect(empty, a); !c.IsVoid() {
		t.Errorf("expected ∅ ∩ A to be empty, got %v", c.Keys())
	}
}

func TestIntersectChained(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := sortedOfInts(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	c := sortedOfInts(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	d := sortedOfInts(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	result := Intersect(a, b, c, d)
	if got := result.Keys(); !slices.Equal(got, a.Keys()) {
		t.Errorf("chained intersection of identical sets changed keys: %v", got)
	}
	narrowed := Intersect(a, sortedOfInts(t, 2, 4, 6, 8), sortedOfInts(t, 4, 8, 16))
	if got := narrowed.Keys(); !slices.Equal(got, []int{4, 8}) {
		t.Errorf("expected chained intersection [4 8], got %v", got)
	}
}

func TestIntersectResultIsSortedByConstruction(t *testing.T) {
	a := sortedOfInts(t, 1, 4, 6, 9, 12, 15)
	b := sortedOfInts(t, 4, 5, 9, 10, 15, 20)
	c := Intersect(a, b)
	// the result must satisfy the invariant without having been re-validated
	if _, err := Validate(c.List(), c.compare); err != nil {
		t.Errorf("intersection result violates sorted invariant: %v", err)
	}
	if got := c.Keys(); !slices.Equal(got, []int{4, 9, 15}) {
		t.Errorf("expected intersection [4 9 15], got %v", got)
	}
}

func TestIntersectLeavesInputsUntouched(t *testing.T) {
	a := sortedOfInts(t, 1, 2, 3)
	b := sortedOfInts(t, 2, 3, 4)
	_ = Intersect(a, b)
	if got := a.Keys(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("intersection modified operand a: %v", got)
	}
	if got := b.Keys(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("intersection modified operand b: %v", got)
	}
}
