package patricia

// node is the sealed interface over the two node shapes of the trie.
// A nil node stands for the empty tree.
//
// each must mention V: with V absent from the method set the compiler cannot
// infer the type argument at call sites constrained only by a node[V] value.
type node[V any] interface {
	items() int
	each(visit func(keyt, V))
}

// leaf holds exactly one key together with its value.
type leaf[V any] struct {
	key   keyt
	value V
}

// branch is a fork whose two subtrees cover disjoint key sets.
//
// prefix holds the bits all keys below this branch agree on (the bits before
// the branching position, everything else cleared); bit has exactly one bit
// set, the position at which left and right keys diverge. Keys in left have
// a zero at that position, keys in right a one.
type branch[V any] struct {
	prefix keyt
	bit    keyt
	left   node[V]
	right  node[V]
	size   int // cached pair count of the subtree
}

func (l *leaf[V]) items() int   { return 1 }
func (b *branch[V]) items() int { return b.size }

func (l *leaf[V]) each(visit func(keyt, V)) { visit(l.key, l.value) }

// Children of a branch are never empty, see br.
func (b *branch[V]) each(visit func(keyt, V)) {
	b.left.each(visit)
	b.right.each(visit)
}

func size[V any](n node[V]) int {
	if n == nil {
		return 0
	}
	return n.items()
}

// br is the smart branch constructor. It collapses empty children, which is
// the sole mechanism upholding the no-empty-child invariant; raw branch
// construction outside this package is impossible.
func br[V any](prefix, bit keyt, left, right node[V]) node[V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return &branch[V]{prefix, bit, left, right, size(left) + size(right)}
}

// join fuses two non-empty trees with diverging prefixes p0 and p1 into a
// single branch. Cost is O(1): the subtrees are adopted as-is, only their
// orientation is computed from the bit at which the prefixes part ways.
//
// Callers must guarantee p0 != p1.
func join[V any](p0 keyt, t0 node[V], p1 keyt, t1 node[V]) node[V] {
	bit := branchingBit(p0, p1)
	prefix := prefixMask(p0, bit)
	sz := size(t0) + size(t1)
	if zeroBit(p0, bit) {
		return &branch[V]{prefix, bit, t0, t1, sz}
	}
	return &branch[V]{prefix, bit, t1, t0, sz}
}
