/*
Package builder folds ordered lists of declarative sub-expressions into
markup nodes.

Overview

Clients describe a markup hierarchy as nested blocks. A block is an ordered
list of expressions, each of which produces one node or one flat sequence of
nodes; the block reduces them, in declaration order, to a single node. Four
reduction rules exist:

  - block-join: concatenate all expression results and wrap them under the
    block's element (or under a transparent fragment),
  - conditional-select: of an if/else pair, evaluate and keep only the
    branch taken,
  - optional-collapse: a bare if with a false condition contributes an empty
    fragment node, so the join step never sees an absent value,
  - array-flatten: a loop over a collection yields node sequences which are
    concatenated, preserving source order.

The rules are uniform: every expression normalizes to "exactly one node" or
"exactly one flat node sequence", never to nothing. This is what keeps the
join step free of null-handling special cases.

Profiles

Builders come in flavors which differ only in their wrapping tag and in
which rules they allow. A Profile captures this configuration; the reduction
engine itself is shared. Tree is the generic flavor (fragment wrap, all
rules), Form wraps blocks in a <form> element, List wraps flattened item
collections in a <ul> element.

Blocks are built in a single synchronous pass. An error from a client
generator aborts the build; no partial node is returned.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.builder'.
func tracer() tracing.Trace {
	return tracing.Select("markup.builder")
}
