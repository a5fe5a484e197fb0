package intmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/intmap/patricia"
)

// Map is a persistent map from int64 keys to values of type V.
//
// A map created by
//
//	Map[V]{}
//
// is a valid object and behaves like the empty map. Operations never mutate
// their receiver; they return a new map which shares unmodified subtrees
// with the old version. Old versions stay valid indefinitely.
//
// Because no operation ever writes to an existing node, a map may be read
// from multiple goroutines, and new versions may be derived concurrently
// from a shared ancestor, without any locking.
type Map[V any] struct {
	tree patricia.Tree[V]
}

// Pair is a single key-value entry, used for bulk construction.
type Pair[V any] struct {
	Key   int64
	Value V
}

// Empty returns the empty map.
func Empty[V any]() Map[V] {
	return Map[V]{}
}

// Singleton returns a map holding exactly one entry.
func Singleton[V any](key int64, value V) Map[V] {
	return Map[V]{tree: patricia.Singleton(key, value)}
}

// FromPairs builds a map from a list of entries. When a key occurs multiple
// times, the later entry wins, matching repeated Insert.
func FromPairs[V any](pairs ...Pair[V]) Map[V] {
	m := Map[V]{}
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// IsEmpty reports whether the map has no entries.
func (m Map[V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Size returns the number of entries in the map.
func (m Map[V]) Size() int {
	return m.tree.Size()
}

// Lookup returns the value stored for key. The semantics are equivalent to
// 2-valued lookup on regular Go maps.
func (m Map[V]) Lookup(key int64) (V, bool) {
	return m.tree.Lookup(key)
}

// Insert returns a map with value stored at key, replacing a previous value
// for the same key if one exists.
func (m Map[V]) Insert(key int64, value V) Map[V] {
	return Map[V]{tree: m.tree.Insert(key, value)}
}

// InsertWith returns a map with value stored at key. If the map already held
// old at key, the new entry becomes combine(value, old).
//
// A nil combine replaces, like Insert.
func (m Map[V]) InsertWith(key int64, value V, combine func(newval, old V) V) Map[V] {
	return Map[V]{tree: m.tree.InsertWith(key, value, patricia.CombineFunc[V](combine))}
}

// Remove returns a map without an entry for key. Removing an absent key is
// a no-op and returns the receiver unchanged.
func (m Map[V]) Remove(key int64) Map[V] {
	return Map[V]{tree: m.tree.Remove(key)}
}

// UnionWith merges two maps. A key present in both maps stores
// combine(v1, v2), with v1 taken from m1 and v2 from m2. The argument
// orientation is guaranteed, so non-commutative combine functions are safe.
//
// The merge cost is proportional to the structural difference between the
// maps; disjoint or identical regions are shared, not copied. A nil combine
// is left-biased: collisions keep the value from m1.
func UnionWith[V any](combine func(v1, v2 V) V, m1, m2 Map[V]) Map[V] {
	if combine == nil {
		combine = func(v1, _ V) V { return v1 }
	}
	tracer().Debugf("intmap: union of maps with %d and %d entries", m1.Size(), m2.Size())
	return Map[V]{tree: patricia.Union(patricia.CombineFunc[V](combine), m1.tree, m2.tree)}
}

// Union merges two maps, keeping the value from m1 when a key is present in
// both. Union(m, m) is observationally equal to m.
func Union[V any](m1, m2 Map[V]) Map[V] {
	return UnionWith(nil, m1, m2)
}

// EqualFunc reports whether two maps hold the same keys with values
// considered equal by eq. Subtrees shared between the maps are skipped, so
// maps with common ancestry compare quickly.
func EqualFunc[V any](m1, m2 Map[V], eq func(V, V) bool) bool {
	return patricia.Equal(m1.tree, m2.tree, eq)
}

// Walk performs a pre-order structural walk over the map's trie, calling
// branchFn for every branch with prefix, branching bit and depth, and leafFn
// for every entry with key, value and depth. Either callback may be nil.
//
// Walk exists for debugging and rendering (see Map2Dot and package dump);
// the visit order reflects trie structure and carries no meaning. It is not
// an ordered-iteration API.
func (m Map[V]) Walk(branchFn func(prefix, bit uint64, depth int), leafFn func(key int64, value V, depth int)) {
	m.tree.Walk(branchFn, leafFn)
}

// String returns a debug rendering of the map's entries. The entry order
// reflects trie structure and carries no meaning.
func (m Map[V]) String() string {
	var entries []string
	m.tree.Each(func(key int64, value V) {
		entries = append(entries, fmt.Sprintf("%d ↦ %v", key, value))
	})
	return "{" + strings.Join(entries, ", ") + "}"
}
