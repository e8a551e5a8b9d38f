package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/andybalholm/cascadia"
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/markup"
)

// Query matches a CSS selector against a markup node tree and returns all
// matching nodes, in document order. The tree is lowered to x/net/html
// form for matching, matches are re-imported, so the results are detached
// values, not references into the input tree.
//
// Selector syntax is whatever cascadia supports; an invalid selector is
// reported as an error.
func Query(n markup.Node, selector string) ([]markup.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid selector %q", selector)
	}
	root := ToHTML(n)
	matches := sel.MatchAll(root)
	tracer().Debugf("selector %q matched %d nodes", selector, len(matches))
	nodes := make([]markup.Node, 0, len(matches))
	for _, m := range matches {
		nodes = append(nodes, FromHTML(m))
	}
	return nodes, nil
}

// QueryFirst is Query returning only the first match, in document order.
// ok is false if nothing matched.
func QueryFirst(n markup.Node, selector string) (match markup.Node, ok bool, err error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return markup.Node{}, false, errors.Wrapf(err, "invalid selector %q", selector)
	}
	m := sel.MatchFirst(ToHTML(n))
	if m == nil {
		return markup.Node{}, false, nil
	}
	return FromHTML(m), true, nil
}
