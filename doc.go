/*
Package markup provides a declarative way to construct trees of tagged
markup nodes (HTML-like), and to serialize them to markup text.

Status

Working. API is small and should stay stable.

Overview

Markup documents are trees. We represent one element of such a tree as an
immutable Node value: a tag name, an ordered list of attributes, an ordered
list of children, and an optional leaf text. Clients construct nodes
bottom-up and hand the root to Serialize. A node with an empty tag is a
"fragment": a transparent grouping node which never shows up in serialized
output as a markup envelope of its own.

Nodes are pure values. Building a parent never mutates a child, and the
deriving operations (WithAttr, WithText, Append) return modified copies.
This makes trees safe to share between concurrent builds without locking.

Construction of larger trees from conditional and repeated parts is the job
of the builder sub-package, which folds ordered lists of sub-expressions into
single nodes. Sub-package dom lowers node trees to golang.org/x/net/html
documents and supports CSS-selector queries over them; sub-package dbg
renders debugging views of a tree; sub-package css provides typed CSS
dimension values for attribute construction.

A note on escaping: attribute values and text content are serialized
verbatim. This package does not escape markup metacharacters, see Serialize.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.tree'.
func tracer() tracing.Trace {
	return tracing.Select("markup.tree")
}
