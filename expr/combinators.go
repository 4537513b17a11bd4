package expr

import (
	"github.com/consensys/gnark/constraint"
)

// SumExpr is the addition of zero or more expressions.
type SumExpr struct {
	Args []Expression
}

func (e SumExpr) EvalAt(k int, tr Trace) constraint.Element {
	res := constraint.Element{}
	for _, arg := range e.Args {
		res = tr.Field().Add(res, arg.EvalAt(k, tr))
	}
	return res
}

func (e SumExpr) Degree() int {
	res := 0
	for _, arg := range e.Args {
		if d := arg.Degree(); d > res {
			res = d
		}
	}
	return res
}

func (e SumExpr) Visit(fn func(Query)) {
	for _, arg := range e.Args {
		arg.Visit(fn)
	}
}

// ProductExpr is the product of one or more expressions.
type ProductExpr struct {
	Args []Expression
}

func (e ProductExpr) EvalAt(k int, tr Trace) constraint.Element {
	res := tr.Field().One()
	for _, arg := range e.Args {
		res = tr.Field().Mul(res, arg.EvalAt(k, tr))
	}
	return res
}

func (e ProductExpr) Degree() int {
	res := 0
	for _, arg := range e.Args {
		res += arg.Degree()
	}
	return res
}

func (e ProductExpr) Visit(fn func(Query)) {
	for _, arg := range e.Args {
		arg.Visit(fn)
	}
}

// SubExpr is the subtraction of the subsequent expressions from the first.
type SubExpr struct {
	Args []Expression
}

func (e SubExpr) EvalAt(k int, tr Trace) constraint.Element {
	res := e.Args[0].EvalAt(k, tr)
	for _, arg := range e.Args[1:] {
		res = tr.Field().Sub(res, arg.EvalAt(k, tr))
	}
	return res
}

func (e SubExpr) Degree() int {
	res := 0
	for _, arg := range e.Args {
		if d := arg.Degree(); d > res {
			res = d
		}
	}
	return res
}

func (e SubExpr) Visit(fn func(Query)) {
	for _, arg := range e.Args {
		arg.Visit(fn)
	}
}

// ScaledExpr multiplies an expression by a constant coefficient.
type ScaledExpr struct {
	Expr  Expression
	Coeff constraint.Element
}

func (e ScaledExpr) EvalAt(k int, tr Trace) constraint.Element {
	return tr.Field().Mul(e.Expr.EvalAt(k, tr), e.Coeff)
}

func (e ScaledExpr) Degree() int { return e.Expr.Degree() }

func (e ScaledExpr) Visit(fn func(Query)) { e.Expr.Visit(fn) }

// Sum adds zero or more expressions together.
func Sum(args ...Expression) Expression {
	return SumExpr{Args: args}
}

// Product multiplies one or more expressions together.
func Product(args ...Expression) Expression {
	return ProductExpr{Args: args}
}

// Sub subtracts each of rest from first.
func Sub(first Expression, rest ...Expression) Expression {
	return SubExpr{Args: append([]Expression{first}, rest...)}
}

// Scale multiplies e by the constant coeff.
func Scale(e Expression, coeff constraint.Element) Expression {
	return ScaledExpr{Expr: e, Coeff: coeff}
}
