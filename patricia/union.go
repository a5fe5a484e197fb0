package patricia

// Union merges two trees. A key present in both operands stores
// combine(v1, v2), where v1 is the value from t1 and v2 the value from t2;
// this orientation is preserved even for non-commutative combine functions.
//
// The merge exploits shared prefixes: disjoint subtrees are adopted by
// reference through a single O(1) join, and the overall cost is proportional
// to the structural difference between the operands rather than their total
// size. combine must not be nil.
func Union[V any](combine CombineFunc[V], t1, t2 Tree[V]) Tree[V] {
	assert(combine != nil, "patricia: Union requires a combine function")
	return Tree[V]{root: union(t1.root, t2.root, combine)}
}

func union[V any](a, b node[V], combine CombineFunc[V]) node[V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if lf, ok := a.(*leaf[V]); ok {
		// insert applies combine(inserted, existing) = combine(v1, v2).
		return insert(b, lf.key, lf.value, combine)
	}
	if lf, ok := b.(*leaf[V]); ok {
		// The inserted value now stems from t2, so flip the arguments to
		// keep the declared (v1, v2) orientation.
		flipped := func(inserted, existing V) V { return combine(existing, inserted) }
		return insert(a, lf.key, lf.value, flipped)
	}

	s := a.(*branch[V])
	t := b.(*branch[V])
	switch {
	case s.bit == t.bit && s.prefix == t.prefix:
		// Same branching point: merge the corresponding subtrees.
		left := union(s.left, t.left, combine)
		right := union(s.right, t.right, combine)
		return &branch[V]{s.prefix, s.bit, left, right, size(left) + size(right)}

	case s.bit < t.bit && matchPrefix(t.prefix, s.prefix, s.bit):
		// t fits entirely into one half of s; the other half is adopted
		// untouched. The bit comparison is unsigned by construction (keyt),
		// which matters when a branching bit occupies the topmost position.
		if zeroBit(t.prefix, s.bit) {
			left := union(s.left, b, combine)
			return &branch[V]{s.prefix, s.bit, left, s.right, size(left) + size(s.right)}
		}
		right := union(s.right, b, combine)
		return &branch[V]{s.prefix, s.bit, s.left, right, size(s.left) + size(right)}

	case s.bit > t.bit && matchPrefix(s.prefix, t.prefix, t.bit):
		// Symmetric: s fits into one half of t. The operand order of the
		// recursive call keeps t1 values as the first combine argument.
		if zeroBit(s.prefix, t.bit) {
			left := union(a, t.left, combine)
			return &branch[V]{t.prefix, t.bit, left, t.right, size(left) + size(t.right)}
		}
		right := union(a, t.right, combine)
		return &branch[V]{t.prefix, t.bit, t.left, right, size(t.left) + size(right)}
	}

	// The prefixes are incomparable: neither subtree contains the other.
	return join[V](s.prefix, a, t.prefix, b)
}
