package patricia

import "fmt"

// Check validates the structural invariants of the tree:
//
//  1. every branch mask has exactly one bit set,
//  2. every branch prefix holds only bits before the branching position,
//  3. keys in the left subtree have a zero at the branching position, keys
//     in the right subtree a one, and all keys match every ancestor prefix,
//  4. no branch has an empty child,
//  5. branching bits strictly increase along any root-to-leaf path, which
//     together with 3 makes all keys pairwise distinct,
//
// plus consistency of the cached subtree sizes.
//
// The checker is strict and meant for tests; regular operations uphold the
// invariants by construction and perform no runtime checks.
func (t Tree[V]) Check() error {
	if t.root == nil {
		return nil
	}
	_, err := checkNode(t.root, func(keyt) error { return nil })
	return err
}

// checkNode validates the subtree rooted at n and returns its pair count.
// within accumulates the membership constraints of all ancestor branches and
// is applied to every key found below them.
func checkNode[V any](n node[V], within func(keyt) error) (int, error) {
	switch cur := n.(type) {
	case *leaf[V]:
		if err := within(cur.key); err != nil {
			return 0, err
		}
		return 1, nil
	case *branch[V]:
		if cur.bit == 0 || cur.bit&(cur.bit-1) != 0 {
			return 0, fmt.Errorf("%w: branch mask %#x is not a single bit", ErrInvalidTree, cur.bit)
		}
		if cur.prefix&^(cur.bit-1) != 0 {
			return 0, fmt.Errorf("%w: branch prefix %#x has bits at or beyond mask %#x",
				ErrInvalidTree, cur.prefix, cur.bit)
		}
		if cur.left == nil || cur.right == nil {
			return 0, fmt.Errorf("%w: branch with mask %#x has an empty child", ErrInvalidTree, cur.bit)
		}
		if err := checkChildOrder(cur.left, cur.bit); err != nil {
			return 0, err
		}
		if err := checkChildOrder(cur.right, cur.bit); err != nil {
			return 0, err
		}
		leftWithin := func(k keyt) error {
			if !zeroBit(k, cur.bit) {
				return fmt.Errorf("%w: key %#x in left subtree has mask bit %#x set",
					ErrInvalidTree, k, cur.bit)
			}
			if !matchPrefix(k, cur.prefix, cur.bit) {
				return fmt.Errorf("%w: key %#x violates branch prefix %#x/%#x",
					ErrInvalidTree, k, cur.prefix, cur.bit)
			}
			return within(k)
		}
		rightWithin := func(k keyt) error {
			if zeroBit(k, cur.bit) {
				return fmt.Errorf("%w: key %#x in right subtree has mask bit %#x clear",
					ErrInvalidTree, k, cur.bit)
			}
			if !matchPrefix(k, cur.prefix, cur.bit) {
				return fmt.Errorf("%w: key %#x violates branch prefix %#x/%#x",
					ErrInvalidTree, k, cur.prefix, cur.bit)
			}
			return within(k)
		}
		nl, err := checkNode(cur.left, leftWithin)
		if err != nil {
			return 0, err
		}
		nr, err := checkNode(cur.right, rightWithin)
		if err != nil {
			return 0, err
		}
		if nl+nr != cur.size {
			return 0, fmt.Errorf("%w: cached size %d != %d actual pairs", ErrInvalidTree, cur.size, nl+nr)
		}
		return cur.size, nil
	}
	return 0, fmt.Errorf("%w: unknown node shape", ErrInvalidTree)
}

// checkChildOrder verifies that a branch child branches on a strictly higher
// bit than its parent. A violation is the signature of the historical defect
// where mask ordering was compared with signed arithmetic.
func checkChildOrder[V any](child node[V], parentBit keyt) error {
	if b, ok := child.(*branch[V]); ok {
		if b.bit <= parentBit {
			return fmt.Errorf("%w: child mask %#x does not exceed parent mask %#x",
				ErrInvalidTree, b.bit, parentBit)
		}
	}
	return nil
}
