package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the building block of markup trees. A node carries a tag name, an
// ordered list of attributes, an ordered list of children, and an optional
// leaf text. The zero value is the empty fragment.
//
// Nodes are immutable values with structural equality. Tag names are opaque
// strings: we do not check them for markup-syntax legality, that is the
// caller's business.
type Node struct {
	tag      string
	attrs    attrList
	children []Node
	text     string
}

// NewNode is the general constructor. All parts may be empty. Attributes
// with empty keys are dropped; a duplicate attribute key updates the earlier
// value, keeping the key's first position. The attribute and children slices
// are copied, never aliased.
//
// A node carries leaf text or children, not both: if text is non-empty,
// children are ignored at serialization time.
func NewNode(tag string, attrs []Attr, children []Node, text string) Node {
	var al attrList
	for _, a := range attrs {
		al = al.set(a.Key, a.Value)
	}
	var chs []Node
	if len(children) > 0 {
		chs = make([]Node, len(children))
		copy(chs, children)
	}
	return Node{tag: tag, attrs: al, children: chs, text: text}
}

// El creates an element node with children and no attributes.
func El(tag string, children ...Node) Node {
	return NewNode(tag, nil, children, "")
}

// Leaf creates an element node carrying text, as in
//
//	markup.Leaf("li", "an item")   ⟹   <li>an item</li>
//
func Leaf(tag string, text string, attrs ...Attr) Node {
	return NewNode(tag, attrs, nil, text)
}

// Fragment creates a tag-less grouping node. Fragments are transparent at
// serialization time: their children are emitted without a surrounding
// markup envelope.
func Fragment(children ...Node) Node {
	return NewNode("", nil, children, "")
}

// Tag returns the node's tag name, "" for fragments.
func (n Node) Tag() string {
	return n.tag
}

// IsFragment is true for tag-less grouping nodes.
func (n Node) IsFragment() bool {
	return n.tag == ""
}

// Text returns the node's leaf text, "" if the node carries none.
func (n Node) Text() string {
	return n.text
}

// HasText is true if the node carries leaf text.
func (n Node) HasText() bool {
	return n.text != ""
}

// Attrs returns a copy of the node's attributes, in insertion order.
func (n Node) Attrs() []Attr {
	return n.attrs.clone()
}

// Attr looks up an attribute value by key.
func (n Node) Attr(key string) (string, bool) {
	return n.attrs.get(key)
}

// ChildCount returns the number of children of a node.
func (n Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i'th child of a node.
func (n Node) Child(i int) (Node, bool) {
	if i < 0 || i >= len(n.children) {
		return Node{}, false
	}
	return n.children[i], true
}

// Children returns a copy of the node's children, in declaration order.
func (n Node) Children() []Node {
	if len(n.children) == 0 {
		return nil
	}
	dup := make([]Node, len(n.children))
	copy(dup, n.children)
	return dup
}

// WithAttr derives a node with an attribute set. An existing key is updated
// in place, a new key is appended. The receiver is left untouched.
func (n Node) WithAttr(key, value string) Node {
	n.attrs = n.attrs.set(key, value)
	return n
}

// WithText derives a node with leaf text set. The receiver is left
// untouched.
func (n Node) WithText(text string) Node {
	n.text = text
	return n
}

// Append derives a node with children appended after the existing ones. The
// receiver is left untouched.
func (n Node) Append(children ...Node) Node {
	if len(children) == 0 {
		return n
	}
	chs := make([]Node, len(n.children), len(n.children)+len(children))
	copy(chs, n.children)
	n.children = append(chs, children...)
	return n
}

// Equal compares two nodes structurally: tag, attributes (order-sensitive),
// text, and children, recursively.
func (n Node) Equal(other Node) bool {
	if n.tag != other.tag || n.text != other.text {
		return false
	}
	if !n.attrs.equals(other.attrs) {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, ch := range n.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	if n.IsFragment() {
		return fmt.Sprintf("(Fragment #ch=%d)", len(n.children))
	}
	if n.HasText() {
		return fmt.Sprintf("(Node <%s> %q)", n.tag, n.text)
	}
	return fmt.Sprintf("(Node <%s> #ch=%d)", n.tag, len(n.children))
}
