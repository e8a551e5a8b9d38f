package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Attr is a single element attribute. Attributes of a node form an ordered
// list with unique keys; serialization emits them in insertion order.
type Attr struct {
	Key   string
	Value string
}

// A creates an attribute. Convenience constructor for literal attribute
// lists, as in
//
//	markup.El("div", ...).WithAttr("id", "main")
//	markup.NewNode("div", []markup.Attr{markup.A("id", "main")}, nil, "")
//
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// attrList is an ordered attribute set. Keys are unique and never empty;
// setting an existing key updates the value but keeps the key's original
// position.
type attrList []Attr

func (al attrList) set(key, value string) attrList {
	if key == "" {
		return al // attribute keys are never empty, drop silently
	}
	for i, a := range al {
		if a.Key == key {
			dup := al.clone()
			dup[i].Value = value
			return dup
		}
	}
	dup := make(attrList, len(al), len(al)+1)
	copy(dup, al)
	return append(dup, Attr{Key: key, Value: value})
}

func (al attrList) get(key string) (string, bool) {
	for _, a := range al {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (al attrList) clone() attrList {
	if len(al) == 0 {
		return nil
	}
	dup := make(attrList, len(al))
	copy(dup, al)
	return dup
}

func (al attrList) equals(other attrList) bool {
	if len(al) != len(other) {
		return false
	}
	for i, a := range al {
		if other[i] != a {
			return false
		}
	}
	return true
}
