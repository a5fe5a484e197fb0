/*
Package dump renders the internal structure of intmap maps for humans.

The package is a debugging aid: it draws the branch/leaf structure of a
map's Patricia trie as an indented listing, optionally colorized when the
output goes to a terminal. For machine-readable structure output see
intmap.Map2Dot.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intmap'
func tracer() tracing.Trace {
	return tracing.Select("intmap")
}
