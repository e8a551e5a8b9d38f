/*
Package css provides typed CSS dimension values for markup attribute
construction.

Attribute values in markup trees are plain strings, but sizes are not: a
width may be a fixed length, a percentage, or one of the CSS keywords
auto/inherit/initial. DimenT is an option type covering these cases, with a
pattern-matching API; helpers render a DimenT into width/height/style
attributes for the markup package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates the CSS keyword dimension 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates the CSS keyword dimension 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates the CSS keyword dimension 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// String renders a dimension the way it appears in attribute values.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return fmt.Sprintf("%v", d.d)
	}
	if d.flags&dimenPercent > 0 {
		return fmt.Sprintf("%v", d.percent)
	}
	return ""
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension, as in
//
//	var du dimen.DU
//	switch m := d.Match(); m {
//	case m.Just(&du):        ...
//	case m.IsKind(Auto()):   ...
//	}
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a one-shot pattern matcher for DimenT values.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the matched dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		if (m.dimen.flags & dimenPercent) == (d.flags & dimenPercent) {
			return m
		}
	}
	return nil
}

// Just matches a fixed dimension, binding its value to du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, binding its value to p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Attribute construction ------------------------------------------------

// Width renders a dimension as a width attribute.
func Width(d DimenT) markup.Attr {
	return markup.A("width", d.String())
}

// Height renders a dimension as a height attribute.
func Height(d DimenT) markup.Attr {
	return markup.A("height", d.String())
}

// Declaration is one property of a style attribute.
type Declaration struct {
	Property string
	Value    DimenT
}

// Decl creates a style declaration.
func Decl(property string, value DimenT) Declaration {
	return Declaration{Property: property, Value: value}
}

// Style renders declarations as a style attribute, properties separated by
// ';' in declaration order.
func Style(decls ...Declaration) markup.Attr {
	props := make([]string, 0, len(decls))
	for _, d := range decls {
		props = append(props, d.Property+":"+d.Value.String())
	}
	return markup.A("style", strings.Join(props, ";"))
}
