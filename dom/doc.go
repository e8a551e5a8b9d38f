/*
Package dom connects markup node trees to golang.org/x/net/html documents.

Overview

The markup package keeps its own minimal node type, which is convenient to
build and serialize but unknown to the wider HTML ecosystem. This package
lowers markup nodes to html.Node trees (and re-imports them), so that
clients can hand built documents to any tool speaking x/net/html — most
prominently CSS-selector matching, for which Query wraps the cascadia
selector engine.

Fragments are transparent here as well: lowering a fragment splices its
children into the enclosing context, a top-level fragment becomes an
html.DocumentNode.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.dom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}
