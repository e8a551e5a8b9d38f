package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/markup"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML lowers a markup node tree to an x/net/html node tree. Element
// nodes become html.ElementNode's, leaf text becomes a single
// html.TextNode child. A fragment at the top level becomes an
// html.DocumentNode; fragments further down are spliced into their
// enclosing element.
//
// The returned tree is freshly allocated and owned by the caller; the
// markup tree is not referenced by it.
func ToHTML(n markup.Node) *html.Node {
	if n.IsFragment() {
		doc := &html.Node{Type: html.DocumentNode}
		appendLowered(doc, n)
		return doc
	}
	return lowerElement(n)
}

func lowerElement(n markup.Node) *html.Node {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag(),
		DataAtom: atom.Lookup([]byte(n.Tag())),
	}
	for _, a := range n.Attrs() {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	if n.HasText() {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text()})
		return el // text wins, children are not lowered
	}
	for _, ch := range n.Children() {
		appendLowered(el, ch)
	}
	return el
}

func appendLowered(parent *html.Node, n markup.Node) {
	if n.IsFragment() {
		for _, ch := range n.Children() {
			appendLowered(parent, ch)
		}
		return
	}
	parent.AppendChild(lowerElement(n))
}

// FromHTML imports an x/net/html subtree as a markup node. Document nodes
// become fragments, element nodes become element nodes. Text content is
// imported as leaf text where an element carries text only; in mixed
// content the element children win and bare text runs are dropped, since
// the markup node model knows no standalone text node.
//
// Comment and doctype nodes are skipped.
func FromHTML(hn *html.Node) markup.Node {
	if hn == nil {
		return markup.Node{}
	}
	switch hn.Type {
	case html.DocumentNode:
		return markup.Fragment(importChildren(hn)...)
	case html.ElementNode:
		var attrs []markup.Attr
		for _, a := range hn.Attr {
			attrs = append(attrs, markup.A(a.Key, a.Val))
		}
		children := importChildren(hn)
		if len(children) == 0 {
			return markup.NewNode(hn.Data, attrs, nil, textRun(hn))
		}
		return markup.NewNode(hn.Data, attrs, children, "")
	case html.TextNode:
		// no standalone text in the markup model
		tracer().Debugf("dropping standalone text node %q", hn.Data)
		return markup.Node{}
	}
	return markup.Node{}
}

func importChildren(hn *html.Node) []markup.Node {
	var children []markup.Node
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.DocumentNode {
			continue
		}
		children = append(children, FromHTML(c))
	}
	return children
}

// textRun concatenates the direct text children of an element.
func textRun(hn *html.Node) string {
	var sb strings.Builder
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// TextContent returns the concatenated text of a node and all of its
// descendants, in tree order.
func TextContent(n markup.Node) string {
	var sb strings.Builder
	collectText(&sb, n)
	return sb.String()
}

func collectText(sb *strings.Builder, n markup.Node) {
	if n.HasText() {
		sb.WriteString(n.Text())
		return
	}
	for _, ch := range n.Children() {
		collectText(sb, ch)
	}
}
