package patricia

// Tree is a persistent map from int64 keys to values of type V.
//
// The zero value
//
//	Tree[V]{}
//
// is a valid, empty tree. All operations are non-mutating: they return a new
// tree and leave the receiver untouched, sharing unmodified subtrees between
// the two versions. A tree may therefore be read, and new versions may be
// derived from it, concurrently without synchronization.
type Tree[V any] struct {
	root node[V]
}

// CombineFunc resolves a value collision when the same key arises from two
// sources. The argument orientation is operation-specific and documented at
// each call site; combine functions must be pure.
type CombineFunc[V any] func(a, b V) V

// Singleton returns a tree holding exactly one pair.
func Singleton[V any](key int64, value V) Tree[V] {
	return Tree[V]{root: &leaf[V]{key: keyt(key), value: value}}
}

// IsEmpty reports whether the tree holds no keys.
func (t Tree[V]) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of keys in the tree in O(1), backed by cached
// subtree counts.
func (t Tree[V]) Size() int {
	return size(t.root)
}

// Lookup returns the value stored for key. The semantics mirror 2-valued
// lookup on Go maps. Cost is bounded by the key width (at most 64 steps),
// independent of the number of stored keys.
func (t Tree[V]) Lookup(key int64) (ret V, found bool) {
	k := keyt(key)
	for n := t.root; n != nil; {
		switch cur := n.(type) {
		case *leaf[V]:
			if cur.key == k {
				return cur.value, true
			}
			return ret, false
		case *branch[V]:
			if !matchPrefix(k, cur.prefix, cur.bit) {
				return ret, false
			}
			if zeroBit(k, cur.bit) {
				n = cur.left
			} else {
				n = cur.right
			}
		}
	}
	return ret, false
}

// Insert returns a tree with value stored at key, replacing a previous value
// for the same key if present.
func (t Tree[V]) Insert(key int64, value V) Tree[V] {
	return Tree[V]{root: insert(t.root, keyt(key), value, nil)}
}

// InsertWith returns a tree with value stored at key. A collision with a
// previous value old is resolved by storing combine(value, old).
//
// A nil combine replaces, like Insert.
func (t Tree[V]) InsertWith(key int64, value V, combine CombineFunc[V]) Tree[V] {
	return Tree[V]{root: insert(t.root, keyt(key), value, combine)}
}

// insert is the single-key upsert on nodes. combine receives the value being
// inserted first and the previously stored value second; nil means replace.
func insert[V any](n node[V], key keyt, value V, combine CombineFunc[V]) node[V] {
	switch cur := n.(type) {
	case nil:
		return &leaf[V]{key: key, value: value}
	case *leaf[V]:
		if cur.key == key {
			if combine != nil {
				value = combine(value, cur.value)
			}
			return &leaf[V]{key: key, value: value}
		}
		return join[V](key, &leaf[V]{key: key, value: value}, cur.key, n)
	case *branch[V]:
		if !matchPrefix(key, cur.prefix, cur.bit) {
			return join[V](key, &leaf[V]{key: key, value: value}, cur.prefix, n)
		}
		// No smart constructor needed: the untouched sibling is non-empty
		// and an insert cannot empty the updated child.
		if zeroBit(key, cur.bit) {
			left := insert(cur.left, key, value, combine)
			return &branch[V]{cur.prefix, cur.bit, left, cur.right, size(left) + size(cur.right)}
		}
		right := insert(cur.right, key, value, combine)
		return &branch[V]{cur.prefix, cur.bit, cur.left, right, size(cur.left) + size(right)}
	}
	assert(false, "patricia: unknown node shape in insert")
	return nil
}

// Remove returns a tree without key. Removing an absent key returns the
// input tree unchanged (and reference-equal to it).
func (t Tree[V]) Remove(key int64) Tree[V] {
	return Tree[V]{root: remove(t.root, keyt(key))}
}

func remove[V any](n node[V], key keyt) node[V] {
	switch cur := n.(type) {
	case nil:
		return nil
	case *leaf[V]:
		if cur.key == key {
			return nil
		}
	case *branch[V]:
		if !matchPrefix(key, cur.prefix, cur.bit) {
			return n
		}
		if zeroBit(key, cur.bit) {
			left := remove(cur.left, key)
			if left == cur.left {
				return n
			}
			return br(cur.prefix, cur.bit, left, cur.right)
		}
		right := remove(cur.right, key)
		if right == cur.right {
			return n
		}
		return br(cur.prefix, cur.bit, cur.left, right)
	}
	return n
}

// Equal reports whether two trees hold the same keys with values considered
// equal by eq. Subtrees shared between the operands are skipped by reference
// comparison, so trees with a common ancestry compare quickly.
func Equal[V any](t1, t2 Tree[V], eq func(V, V) bool) bool {
	return equalNodes(t1.root, t2.root, eq)
}

func equalNodes[V any](a, b node[V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch an := a.(type) {
	case *leaf[V]:
		bn, ok := b.(*leaf[V])
		return ok && an.key == bn.key && eq(an.value, bn.value)
	case *branch[V]:
		bn, ok := b.(*branch[V])
		if !ok || an.prefix != bn.prefix || an.bit != bn.bit {
			return false
		}
		return equalNodes(an.left, bn.left, eq) && equalNodes(an.right, bn.right, eq)
	}
	assert(false, "patricia: unknown node shape in equalNodes")
	return false
}

// Each calls visit once for every key/value pair in the tree. The visit
// order is trie structure order and carries no ordering guarantee.
func (t Tree[V]) Each(visit func(key int64, value V)) {
	if t.root == nil {
		return
	}
	t.root.each(func(key keyt, value V) {
		visit(int64(key), value)
	})
}

// Walk performs a pre-order structural walk for debugging and rendering.
//
// branchFn is called for every branch with its prefix, branching bit and
// depth; leafFn for every leaf with key, value and depth. The visit order is
// trie structure order and carries no semantic guarantee; Walk is a debug
// surface, not an iteration API. Either callback may be nil.
func (t Tree[V]) Walk(branchFn func(prefix, bit uint64, depth int), leafFn func(key int64, value V, depth int)) {
	walk(t.root, 0, branchFn, leafFn)
}

func walk[V any](n node[V], depth int, branchFn func(prefix, bit uint64, depth int), leafFn func(key int64, value V, depth int)) {
	switch cur := n.(type) {
	case nil:
	case *leaf[V]:
		if leafFn != nil {
			leafFn(int64(cur.key), cur.value, depth)
		}
	case *branch[V]:
		if branchFn != nil {
			branchFn(cur.prefix, cur.bit, depth)
		}
		walk(cur.left, depth+1, branchFn, leafFn)
		walk(cur.right, depth+1, branchFn, leafFn)
	}
}
