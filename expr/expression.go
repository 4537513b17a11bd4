// Package expr defines the polynomial expressions gates are built from:
// constants, cell queries at a row rotation, selector queries, and their
// sums, products and differences.
package expr

import (
	"github.com/consensys/gnark/constraint"
)

// Trace is the tabular context an expression evaluates against. Row indices
// handed to it are already reduced modulo the trace height.
type Trace interface {
	Advice(column, row int) constraint.Element
	Fixed(column, row int) constraint.Element
	SelectorOn(selector, row int) bool
	Height() int
	Field() constraint.Field
}

// QueryKind discriminates the leaf queries of an expression.
type QueryKind int

const (
	QueryAdvice QueryKind = iota
	QueryFixed
	QuerySelector
)

// Query is a leaf reference to a column or selector.
type Query struct {
	Kind QueryKind
	// Index of the referenced column or selector.
	Index int
	// Shift is the row rotation; always 0 for selectors.
	Shift int
}

// Expression is a polynomial over trace cells.
type Expression interface {
	// EvalAt evaluates the expression on row k of a trace.
	EvalAt(k int, tr Trace) constraint.Element
	// Degree returns the degree of the expression as a polynomial in the
	// trace columns; selectors count as degree 1.
	Degree() int
	// Visit calls fn on every leaf query of the expression.
	Visit(fn func(Query))
}

// rotate reduces a shifted row index into the cyclic evaluation domain.
func rotate(k, shift, height int) int {
	r := (k + shift) % height
	if r < 0 {
		r += height
	}
	return r
}

// Constant represents a constant value within an expression.
type Constant struct {
	Value constraint.Element
}

func NewConstant(v constraint.Element) Constant {
	return Constant{Value: v}
}

func (e Constant) EvalAt(k int, tr Trace) constraint.Element {
	return e.Value
}

func (e Constant) Degree() int { return 0 }

func (e Constant) Visit(fn func(Query)) {}

// AdviceQuery reads an advice column at the queried row plus a rotation.
type AdviceQuery struct {
	Column int
	Shift  int
}

func (e AdviceQuery) EvalAt(k int, tr Trace) constraint.Element {
	return tr.Advice(e.Column, rotate(k, e.Shift, tr.Height()))
}

func (e AdviceQuery) Degree() int { return 1 }

func (e AdviceQuery) Visit(fn func(Query)) {
	fn(Query{Kind: QueryAdvice, Index: e.Column, Shift: e.Shift})
}

// FixedQuery reads a fixed column at the queried row plus a rotation.
type FixedQuery struct {
	Column int
	Shift  int
}

func (e FixedQuery) EvalAt(k int, tr Trace) constraint.Element {
	return tr.Fixed(e.Column, rotate(k, e.Shift, tr.Height()))
}

func (e FixedQuery) Degree() int { return 1 }

func (e FixedQuery) Visit(fn func(Query)) {
	fn(Query{Kind: QueryFixed, Index: e.Column, Shift: e.Shift})
}

// SelectorQuery reads a selector, evaluating to 1 on rows where it is
// enabled and to 0 elsewhere.
type SelectorQuery struct {
	Selector int
}

func (e SelectorQuery) EvalAt(k int, tr Trace) constraint.Element {
	if tr.SelectorOn(e.Selector, rotate(k, 0, tr.Height())) {
		return tr.Field().One()
	}
	return constraint.Element{}
}

func (e SelectorQuery) Degree() int { return 1 }

func (e SelectorQuery) Visit(fn func(Query)) {
	fn(Query{Kind: QuerySelector, Index: e.Selector})
}
