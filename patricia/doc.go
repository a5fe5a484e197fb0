/*
Package patricia implements the core tree backing intmap: a persistent,
little-endian Patricia trie over unsigned 64-bit key images.

The package is intentionally not a general-purpose container. It is
specialized for integer keys and for a merge operation whose cost is
proportional to the structural difference between the operands, not to
their combined size. Balanced search trees and hash maps beat it for
plain point access, but none of them can merge in sub-linear time.

Design constraints:
  - nodes are immutable after construction; every operation returns a new
    root and shares untouched subtrees with its inputs,
  - Branch nodes are built exclusively through smart constructors, which
    guarantee that no branch ever holds an empty child,
  - all prefix and mask arithmetic is performed on unsigned integers; no
    code path may compare masks with a signed comparison (a mask with the
    topmost bit set must order as a large value, not a negative one).

Clients should use the intmap facade package instead of this one.
*/
package patricia

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
