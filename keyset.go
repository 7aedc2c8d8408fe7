package keyset

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// List stores a finite sequence of keys as an immutable chain.
//
// A list created by
//
//	List[K]{}
//
// is a valid object and behaves like the empty sequence. Lists carry no
// ordering constraint by themselves: keys appear in the exact order the
// caller supplied them, duplicates included. A list only gains the sorted
// invariant by passing through Validate.
//
// Lists are immutable after construction and may be shared freely, also
// between goroutines. Node chains are never mutated; derived lists share
// structure where possible.
type List[K any] struct {
	first  *node[K]
	length int
}

// node is one Cons cell of a list chain. A nil *node is the empty list.
type node[K any] struct {
	key  K
	next *node[K]
}

// FromKeys creates a list from keys in the given order.
//
// Input order is preserved exactly; no sorting, no deduplication.
func FromKeys[K any](keys ...K) List[K] {
	return listFromKeys(keys)
}

func listFromKeys[K any](keys []K) List[K] {
	var first *node[K]
	// build back to front so the chain reads in input order
	for i := len(keys) - 1; i >= 0; i-- {
		first = &node[K]{key: keys[i], next: first}
	}
	return List[K]{first: first, length: len(keys)}
}

// IsVoid reports whether the list has no keys.
func (l List[K]) IsVoid() bool {
	return l.first == nil
}

// Len returns the number of keys in the list.
func (l List[K]) Len() int {
	return l.length
}

// All returns an iterator over all keys in sequence order.
//
// The iterator is lazy and restartable: ranging over it again restarts the
// traversal from the first key.
func (l List[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Keys materializes the list into a slice of keys in sequence order.
// It allocates a fresh slice on every call.
func (l List[K]) Keys() []K {
	if l.first == nil {
		return nil
	}
	keys := make([]K, 0, l.length)
	for n := l.first; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// EachKey visits all keys in sequence order.
//
// The callback receives each key and its position. Iteration stops at the
// first callback error and returns that error to the caller.
func (l List[K]) EachKey(f func(key K, pos int) error) error {
	pos := 0
	for n := l.first; n != nil; n = n.next {
		if err := f(n.key, pos); err != nil {
			return err
		}
		pos++
	}
	return nil
}

// String returns the list in a bracketed notation, e.g. "[1 2 3]".
func (l List[K]) String() string {
	var bf strings.Builder
	bf.WriteByte('[')
	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			bf.WriteByte(' ')
		}
		fmt.Fprintf(&bf, "%v", n.key)
	}
	bf.WriteByte(']')
	return bf.String()
}
