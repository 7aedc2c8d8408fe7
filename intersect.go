package keyset

import "github.com/npillmayer/keyset/ordering"

// Intersect computes the set of keys common to all given sets and returns
// it as a new Sorted.
//
// The pairwise algorithm is a sorted merge: walk both chains front to back,
// comparing the current heads. Equal heads are emitted once and both chains
// advance; otherwise the smaller head cannot occur in the other chain (all
// its remaining keys are larger) and is dropped. Either chain running empty
// ends the merge.
//
// The merge advances through both inputs monotonically, so each emitted key
// is strictly greater than the one before it: the result satisfies the
// sorted invariant by construction and is not re-validated. Cost is
// O(|a|+|b|) comparisons per pair, which is the point of requiring sorted
// inputs in the first place.
//
// Intersect is total: it cannot fail on any pair of Sorted values. All
// inputs must have been validated under the same ordering.
func Intersect[K any](set Sorted[K], others ...Sorted[K]) Sorted[K] {
	result := set
	for _, other := range others {
		result = intersect2(result, other)
	}
	return result
}

func intersect2[K any](a, b Sorted[K]) Sorted[K] {
	compare := a.compare
	if compare == nil {
		// a is the zero-value empty set; adopt b's ordering
		compare = b.compare
	}
	var first, last *node[K]
	length := 0
	na, nb := a.list.first, b.list.first
	for na != nil && nb != nil {
		switch compare(na.key, nb.key) {
		case ordering.Equal:
			n := &node[K]{key: na.key}
			if last == nil {
				first = n
			} else {
				last.next = n
			}
			last = n
			length++
			na, nb = na.next, nb.next
		case ordering.Less:
			na = na.next
		default: // Greater
			nb = nb.next
		}
	}
	return Sorted[K]{
		list:    List[K]{first: first, length: length},
		compare: compare,
	}
}
