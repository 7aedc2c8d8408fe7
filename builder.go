package keyset

// Builder incrementally stages keys and finalizes them into a List.
//
// Builder collects keys at both ends and materializes the list only when
// List() is called. This keeps chain construction in one place; staged keys
// are copied into a fresh chain, so a finalized list never aliases builder
// state.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[K any] struct {
	// front keeps prepended keys in reverse logical order.
	front []K
	// back keeps appended keys in logical order.
	back []K

	done  bool
	dirty bool
	list  List[K]
}

// NewBuilder creates a new and empty list builder.
func NewBuilder[K any]() *Builder[K] {
	return &Builder[K]{}
}

// List returns the list built from all staged keys, in staging order.
//
// It is illegal to continue adding keys after List has been called, but
// List may be called multiple times.
func (b *Builder[K]) List() List[K] {
	if b == nil {
		return List[K]{}
	}
	if b.dirty {
		b.list = listFromKeys(b.orderedKeys())
		b.dirty = false
	}
	b.done = true
	if b.list.IsVoid() {
		tracer().Debugf("list builder: list is void")
	}
	return b.list
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[K]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.list = List[K]{}
}

// Append appends keys to the staged build.
func (b *Builder[K]) Append(keys ...K) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrKeySetCompleted
	}
	b.back = append(b.back, keys...)
	if len(keys) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends keys to the staged build.
func (b *Builder[K]) Prepend(keys ...K) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrKeySetCompleted
	}
	// front is stored in reverse logical order.
	for i := len(keys) - 1; i >= 0; i-- {
		b.front = append(b.front, keys[i])
	}
	if len(keys) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder[K]) orderedKeys() []K {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]K, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
