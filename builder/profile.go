package builder

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/markup"
)

// Rule identifies one of the reduction rules a block may use. Rules are
// combined as a bit set. Joining is not listed: every profile joins.
type Rule uint8

const (
	// Conditionals enables if/else expressions (conditional-select).
	Conditionals Rule = 1 << iota
	// Optionals enables bare if expressions (optional-collapse).
	Optionals
	// Flatten enables loop expressions over collections (array-flatten).
	Flatten

	// AllRules enables everything.
	AllRules = Conditionals | Optionals | Flatten
)

func (r Rule) String() string {
	switch r {
	case Conditionals:
		return "conditional-select"
	case Optionals:
		return "optional-collapse"
	case Flatten:
		return "array-flatten"
	}
	return "join"
}

// ErrRuleNotAllowed is returned by Block when an expression uses a reduction
// rule the profile does not enable.
var ErrRuleNotAllowed = errors.New("expression uses a reduction rule not enabled for this profile")

// Profile is a builder flavor: the tag blocks are wrapped in ("" wraps in a
// transparent fragment) plus the set of enabled reduction rules. Profiles
// are cheap configuration values; the reduction engine is shared.
type Profile struct {
	wrap  string
	rules Rule
}

// New creates a custom profile. An empty wrap tag produces fragment blocks.
func New(wrap string, rules Rule) Profile {
	return Profile{wrap: wrap, rules: rules}
}

// Tree is the generic builder: blocks become fragments, all rules enabled.
func Tree() Profile {
	return New("", AllRules)
}

// Form wraps blocks in a <form> element. Forms are assembled from
// conditional field groups; collection flattening is not part of this
// flavor.
func Form() Profile {
	return New("form", Conditionals|Optionals)
}

// List wraps blocks in a <ul> element. Lists are assembled from flattened
// item collections.
func List() Profile {
	return New("ul", Flatten)
}

// Element derives a profile with the same rules but a different wrap tag.
// This is how a generic Tree builder produces a named enclosing element:
//
//	builder.Tree().Element("div").Block(...)
//
func (p Profile) Element(wrap string) Profile {
	p.wrap = wrap
	return p
}

// WrapTag returns the profile's wrapping tag, "" for fragment wrapping.
func (p Profile) WrapTag() string {
	return p.wrap
}

// Allows reports whether all of the given rules are enabled.
func (p Profile) Allows(rules Rule) bool {
	return p.rules&rules == rules
}

// Block reduces an ordered list of expressions to a single node: every
// expression is evaluated exactly once, in declaration order; the resulting
// node sequences are concatenated and wrapped under the profile's element,
// or grouped in a fragment for a tag-less profile.
//
// The first failing expression aborts the build: no partial node is
// returned. Builds are deterministic, a failing build will fail again on
// the same input.
func (p Profile) Block(exprs ...Expr) (markup.Node, error) {
	return p.BlockAttrs(nil, exprs...)
}

// BlockAttrs is Block with attributes for the wrapping element. Attributes
// are ignored by tag-less profiles, fragments cannot carry them.
func (p Profile) BlockAttrs(attrs []markup.Attr, exprs ...Expr) (markup.Node, error) {
	tracer().Debugf("reducing block of %d expressions, wrap=%q", len(exprs), p.wrap)
	var children []markup.Node
	for i, ex := range exprs {
		if ex.eval == nil {
			continue // zero-value expression contributes nothing
		}
		if !p.Allows(ex.rule) {
			return markup.Node{}, errors.Wrapf(ErrRuleNotAllowed,
				"expression %d (%s)", i, ex.rule)
		}
		nodes, err := ex.eval()
		if err != nil {
			return markup.Node{}, errors.Wrapf(err, "block expression %d", i)
		}
		children = append(children, nodes...)
	}
	if p.wrap == "" {
		return markup.Fragment(children...), nil
	}
	return markup.NewNode(p.wrap, attrs, children, ""), nil
}

// MustBlock is Block for static content known not to fail. It panics on
// error.
func (p Profile) MustBlock(exprs ...Expr) markup.Node {
	n, err := p.Block(exprs...)
	if err != nil {
		panic(errors.Wrap(err, "markup build failed"))
	}
	return n
}
