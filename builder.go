package intmap

// Builder incrementally stages entries and finalizes them into a Map.
//
// Builder collects key-value pairs and materializes the map only when Map()
// is called. This keeps bulk-construction logic in one place and avoids
// building intermediate map versions for every staged entry.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[V any] struct {
	staged  []Pair[V]
	combine func(newval, old V) V

	done  bool
	dirty bool
	m     Map[V]
}

// NewBuilder creates a new and empty map builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// CombineWith sets the collision policy for duplicate staged keys: the final
// entry becomes combine(newval, old), with newval the later staged value.
// Without a policy the later entry replaces the earlier one.
//
// It is illegal to change the policy after Map has been called.
func (b *Builder[V]) CombineWith(combine func(newval, old V) V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrMapCompleted
	}
	b.combine = combine
	b.dirty = true
	return nil
}

// Put stages one entry for the map under construction.
//
// It is illegal to continue adding entries after Map has been called.
func (b *Builder[V]) Put(key int64, value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrMapCompleted
	}
	b.staged = append(b.staged, Pair[V]{Key: key, Value: value})
	b.dirty = true
	return nil
}

// Map returns the map built from all staged entries.
//
// It is illegal to continue adding entries after Map has been called, but
// Map may be called multiple times.
func (b *Builder[V]) Map() Map[V] {
	if b == nil {
		return Map[V]{}
	}
	if b.dirty {
		b.m = b.buildMap()
		b.dirty = false
	}
	b.done = true
	if b.m.IsEmpty() {
		tracer().Debugf("map builder: map is empty")
	}
	return b.m
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[V]) Reset() {
	b.staged = nil
	b.combine = nil
	b.done = false
	b.dirty = false
	b.m = Map[V]{}
}

func (b *Builder[V]) buildMap() Map[V] {
	m := Map[V]{}
	for _, p := range b.staged {
		m = m.InsertWith(p.Key, p.Value, b.combine)
	}
	return m
}
