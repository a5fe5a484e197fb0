package patricia

// keyt is the unsigned image of a map key. Prefixes and branching bits are
// keyt values as well; keeping them unsigned is what makes mask comparisons
// in the merge algorithm well-defined for keys with the sign bit set.
type keyt = uint64

// zeroBit reports whether key has a zero at the branching position bit.
// It decides left vs. right membership below a branch.
func zeroBit(key, bit keyt) bool {
	return key&bit == 0
}

// branchingBit returns a value with a single bit set at the first position
// (least significant) where p0 and p1 differ.
//
// The result is a nonzero power of two whenever p0 != p1. Callers never
// invoke it with equal arguments.
func branchingBit(p0, p1 keyt) keyt {
	diff := p0 ^ p1
	return diff & -diff
}

// prefixMask reduces key to the bits the trie has already discriminated at a
// branch with branching position bit, i.e. the bits leading up to bit in
// trie order. The branching bit itself and everything beyond it is cleared.
func prefixMask(key, bit keyt) keyt {
	return key & (bit - 1)
}

// matchPrefix reports whether key is consistent with a branch carrying the
// given prefix and branching bit. A failed match means the key cannot occur
// anywhere in that subtree.
func matchPrefix(key, prefix, bit keyt) bool {
	return prefixMask(key, bit) == prefix
}
