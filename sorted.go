package keyset

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/keyset/ordering"
)

// Sorted is a list refined with a proven invariant: every key is strictly
// less than all keys following it. As a consequence all keys of a Sorted are
// pairwise distinct and materialize in strictly ascending order. A Sorted
// is a set.
//
// Sorted values cannot be constructed directly. The only producers are
// Validate, which proves the invariant for a caller-supplied list, and
// Intersect, which re-establishes it by construction. Any Sorted value a
// client holds is therefore trustworthy without re-checking.
//
// The zero value Sorted[K]{} is the valid empty set.
//
// A Sorted remembers the comparator it was validated under; intersecting
// sets that were validated under different orderings of the same key type
// is undefined.
type Sorted[K any] struct {
	list    List[K]
	compare ordering.Func[K]
}

// Validate proves that a list is strictly ascending and duplicate-free
// under the given comparator and wraps it as a Sorted.
//
// Validation walks the chain once and checks each adjacent pair of keys.
// The empty list and single-key lists pass trivially. On the first pair
// that does not compare strictly Less (a descending pair or a duplicate),
// validation stops and returns an OrderViolation; the remainder of the list
// is not scanned. The input is never reordered on the caller's behalf.
//
// No keys are copied: on success the Sorted shares the validated chain.
// Validation is performed once; the result carries the evidence and is
// never re-checked by any operation of this package.
func Validate[K any](list List[K], compare ordering.Func[K]) (Sorted[K], error) {
	if compare == nil {
		return Sorted[K]{}, ErrIllegalArguments
	}
	pos := 1
	for n := list.first; n != nil && n.next != nil; n = n.next {
		if ord := compare(n.key, n.next.key); ord != ordering.Less {
			tracer().Debugf("keyset validation failed at position %d: %v", pos, ord)
			return Sorted[K]{}, &OrderViolation[K]{
				Position: pos,
				Prev:     n.key,
				Key:      n.next.key,
			}
		}
		pos++
	}
	return Sorted[K]{list: list, compare: compare}, nil
}

// SortedOf builds a list from keys and validates it under the natural order
// of the key type. It is a convenience for the common case of plain ordered
// key domains (integer capability codes, string permission names).
func SortedOf[K cmp.Ordered](keys ...K) (Sorted[K], error) {
	return Validate(FromKeys(keys...), ordering.Natural[K]())
}

// List returns the underlying unconstrained view of the set.
func (s Sorted[K]) List() List[K] {
	return s.list
}

// IsVoid reports whether the set has no keys.
func (s Sorted[K]) IsVoid() bool {
	return s.list.IsVoid()
}

// Len returns the number of keys in the set.
func (s Sorted[K]) Len() int {
	return s.list.Len()
}

// All returns an iterator over all keys in ascending order.
//
// The iterator is lazy and restartable.
func (s Sorted[K]) All() iter.Seq[K] {
	return s.list.All()
}

// Keys materializes the set into a slice of keys in ascending order.
func (s Sorted[K]) Keys() []K {
	return s.list.Keys()
}

func (s Sorted[K]) String() string {
	return s.list.String()
}

// OrderViolation reports the first adjacent pair of keys that breaks the
// strict-ascending order of a list. Position is the 0-based position of Key
// within the list; Prev is the key directly before it. Prev and Key are
// equal for duplicates.
//
// OrderViolation matches ErrNotSorted under errors.Is.
type OrderViolation[K any] struct {
	Position int
	Prev     K
	Key      K
}

func (e *OrderViolation[K]) Error() string {
	return fmt.Sprintf("%s: position %d, keys (%v, %v)", ErrNotSorted, e.Position, e.Prev, e.Key)
}

func (e *OrderViolation[K]) Unwrap() error {
	return ErrNotSorted
}
