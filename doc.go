/*
Package intmap provides persistent maps from 64-bit integer keys to arbitrary
values, with a merge operation that is fast enough to be used casually.

Maps

Maps are immutable: every operation returns a new map and leaves its input
untouched, while unmodified parts of the structure are shared between
versions. This makes maps safe for unsynchronized concurrent reads and for
concurrent derivation of new versions from a common ancestor.

The backing structure is a Patricia trie over the bits of the key (see
package patricia). Compared to balanced trees and hash maps its distinguishing
property is the cost of UnionWith: merging two maps takes time proportional
to the structural difference between them, not to their combined size.
Identical or disjoint subtrees are adopted wholesale instead of being copied
key by key.

	Operation     |  intmap.Map     |  Go map
	--------------+-----------------+---------
	Lookup        |   O(min(n,W))   |   O(1)
	Insert        |   O(min(n,W))   |   O(1)
	Union         |   O(diff)       |   O(n+m)

with W the key width in bits. For workloads that repeatedly combine large
key sets (index merging, reachability analyses, CRDT-style state joins),
the union bound dominates everything else.

Collisions are resolved by caller-supplied combine functions, so maps can act
as counters, multi-maps or last-writer-wins registers without special cases
in the library.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package intmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intmap'
func tracer() tracing.Trace {
	return tracing.Select("intmap")
}

// MapError is an error type for the intmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrMapCompleted signals that a map builder has already completed a map and
// it's illegal to further add entries.
const ErrMapCompleted = MapError("forbidden to add entries; map has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
