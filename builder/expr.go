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

// Expr is one sub-expression of a block: a deferred computation producing a
// flat sequence of nodes. Expressions are evaluated exactly once, by the
// enclosing Block call, in declaration order. The zero value is a valid
// expression contributing nothing.
type Expr struct {
	rule Rule
	eval func() ([]markup.Node, error)
}

// Lit lifts a single node into an expression.
func Lit(n markup.Node) Expr {
	return Expr{eval: func() ([]markup.Node, error) {
		return []markup.Node{n}, nil
	}}
}

// Group lifts a node sequence into an expression. The sequence is copied at
// evaluation time, declaration order is preserved.
func Group(nodes ...markup.Node) Expr {
	return Expr{eval: func() ([]markup.Node, error) {
		dup := make([]markup.Node, len(nodes))
		copy(dup, nodes)
		return dup, nil
	}}
}

// Call defers a node computation. The thunk runs once, when the enclosing
// block is reduced.
func Call(thunk func() markup.Node) Expr {
	return Expr{eval: func() ([]markup.Node, error) {
		return []markup.Node{thunk()}, nil
	}}
}

// Seq defers a node-sequence computation, analogous to Call.
func Seq(thunk func() []markup.Node) Expr {
	return Expr{eval: func() ([]markup.Node, error) {
		return thunk(), nil
	}}
}

// Try defers a node computation which may fail. A non-nil error aborts the
// enclosing build.
func Try(thunk func() (markup.Node, error)) Expr {
	return Expr{eval: func() ([]markup.Node, error) {
		n, err := thunk()
		if err != nil {
			return nil, err
		}
		return []markup.Node{n}, nil
	}}
}

// If is the optional-collapse rule: with a true condition the thunk's node
// is produced, otherwise an empty fragment. The expression always produces
// exactly one node; a skipped branch never turns into an absent value (and
// the empty fragment contributes nothing to serialized output).
//
// The thunk is not called when the condition is false.
func If(cond bool, then func() markup.Node) Expr {
	return Expr{rule: Optionals, eval: func() ([]markup.Node, error) {
		if !cond {
			return []markup.Node{markup.Fragment()}, nil
		}
		return []markup.Node{then()}, nil
	}}
}

// IfElse is the conditional-select rule: exactly one of the two thunks is
// evaluated, the other branch never comes into existence. A nil otherwise
// collapses like If.
func IfElse(cond bool, then func() markup.Node, otherwise func() markup.Node) Expr {
	return Expr{rule: Conditionals, eval: func() ([]markup.Node, error) {
		if cond {
			return []markup.Node{then()}, nil
		}
		if otherwise == nil {
			return []markup.Node{markup.Fragment()}, nil
		}
		return []markup.Node{otherwise()}, nil
	}}
}

// Map is the array-flatten rule: f maps every item of a collection to one
// node, and the results form one flat sequence in source order. The
// enclosing block joins them as if they had been written as consecutive
// literals.
func Map[T any](items []T, f func(T) markup.Node) Expr {
	return Expr{rule: Flatten, eval: func() ([]markup.Node, error) {
		nodes := make([]markup.Node, 0, len(items))
		for _, item := range items {
			nodes = append(nodes, f(item))
		}
		return nodes, nil
	}}
}

// TryMap is Map with a fallible generator. The first error aborts the
// enclosing build immediately; items after the failing one are not visited.
func TryMap[T any](items []T, f func(T) (markup.Node, error)) Expr {
	return Expr{rule: Flatten, eval: func() ([]markup.Node, error) {
		nodes := make([]markup.Node, 0, len(items))
		for i, item := range items {
			n, err := f(item)
			if err != nil {
				return nil, errors.Wrapf(err, "generating item %d", i)
			}
			nodes = append(nodes, n)
		}
		return nodes, nil
	}}
}

// MapSeq is array-flatten for generators which yield zero or more nodes per
// item. All yielded sequences are concatenated in source order.
func MapSeq[T any](items []T, f func(T) []markup.Node) Expr {
	return Expr{rule: Flatten, eval: func() ([]markup.Node, error) {
		var nodes []markup.Node
		for _, item := range items {
			nodes = append(nodes, f(item)...)
		}
		return nodes, nil
	}}
}
