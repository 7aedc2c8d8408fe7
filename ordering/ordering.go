// Package ordering provides the comparison capability for key domains.
//
// Keys held in key lists form a discrete, totally ordered domain. The
// ordering of a domain is expressed as a comparator function; comparators
// for naturally ordered Go types are pre-manufactured, comparators for
// structured key types are derived from a projection.
package ordering

import "cmp"

// Ordering is the result of comparing two keys of a key domain.
type Ordering int

// The three possible comparison results. Any two keys of a valid domain
// compare to exactly one of these (trichotomy).
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (ord Ordering) String() string {
	switch ord {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(invalid)"
}

// Func compares two keys a and b of a key domain.
//
// A comparator must implement a strict total order: comparison is consistent
// (Func(a,b)=Less iff Func(b,a)=Greater), transitive, and Func(a,b)=Equal
// iff a and b are the same key. Comparators are pure and total; there is no
// error case, as any two keys of a valid domain are comparable.
type Func[K any] func(a, b K) Ordering

// Natural returns the comparator for a naturally ordered key type.
func Natural[K cmp.Ordered]() Func[K] {
	return func(a, b K) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// By derives a comparator from a projection onto a naturally ordered
// dimension, e.g. ordering capability keys by their numeric code.
//
// The projection must be injective, otherwise distinct keys would compare
// Equal and violate the domain contract.
func By[K any, D cmp.Ordered](dim func(K) D) Func[K] {
	return func(a, b K) Ordering {
		return Ordering(cmp.Compare(dim(a), dim(b)))
	}
}

// Reversed inverts a comparator.
func Reversed[K any](compare Func[K]) Func[K] {
	return func(a, b K) Ordering {
		return -compare(a, b)
	}
}
