package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"strings"
)

// Serialize renders a node tree as markup text. It is a total function:
// every node value has a serialization. The rules are:
//
//   - Fragments emit the concatenation of their children's serializations,
//     without an envelope of their own. The empty fragment emits "".
//   - A node with leaf text emits <tag ...>text</tag>; children, if any,
//     are ignored (text wins).
//   - Any other node emits <tag ...>, its children in order, </tag>.
//   - Attributes are emitted in insertion order as key="value".
//
// No whitespace is inserted between siblings and no pretty-printing is done.
//
// Attribute values and text are emitted verbatim. Callers must pre-escape
// values that may contain `"` or `<`. This is deliberate: the serializer is
// a faithful, reversible view of the tree, and escaping policy belongs to
// the producer of the strings. Do not "fix" this here, it would silently
// change output for every client.
func Serialize(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	tracer().Debugf("serialized %v to %d bytes", n, sb.Len())
	return sb.String()
}

// Write renders a node tree as markup text onto w, with the exact same
// output as Serialize. The only possible errors are writer errors.
func Write(w io.Writer, n Node) error {
	sw := stringWriter(w)
	return writeNode(sw, n)
}

func writeNode(w io.StringWriter, n Node) error {
	if n.IsFragment() {
		for _, ch := range n.children {
			if err := writeNode(w, ch); err != nil {
				return err
			}
		}
		return nil
	}
	if _, err := w.WriteString("<" + n.tag); err != nil {
		return err
	}
	for _, a := range n.attrs {
		if _, err := w.WriteString(" " + a.Key + `="` + a.Value + `"`); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}
	if n.HasText() {
		if _, err := w.WriteString(n.text); err != nil {
			return err
		}
	} else {
		for _, ch := range n.children {
			if err := writeNode(w, ch); err != nil {
				return err
			}
		}
	}
	_, err := w.WriteString("</" + n.tag + ">")
	return err
}

// stringWriter upgrades an io.Writer to an io.StringWriter if necessary.
func stringWriter(w io.Writer) io.StringWriter {
	if sw, ok := w.(io.StringWriter); ok {
		return sw
	}
	return plainWriter{w}
}

type plainWriter struct {
	w io.Writer
}

func (pw plainWriter) WriteString(s string) (int, error) {
	return pw.w.Write([]byte(s))
}
