package core

import (
	"strconv"
	"strings"
)

// Expression represents Σ cᵢ·vᵢ + k.
//
// Expressions are immutable values: every method below returns a fresh
// Expression and never mutates its receiver or arguments. Term order is
// insignificant to solver semantics; duplicates and zero coefficients
// are tolerated and collapsed by the solver on ingestion.
type Expression struct {
	Terms    []Term
	Constant float64
}

// NewExpression builds an Expression from a constant and a list of terms.
// The terms slice is copied.
func NewExpression(constant float64, terms ...Term) Expression {
	e := Expression{Constant: constant}
	if len(terms) > 0 {
		e.Terms = make([]Term, len(terms))
		copy(e.Terms, terms)
	}

	return e
}

// FromVariable lifts a single variable into the expression 1·v.
func FromVariable(v Variable) Expression {
	return Expression{Terms: []Term{{Variable: v, Coefficient: 1}}}
}

// FromTerm lifts a single term into an expression.
func FromTerm(t Term) Expression {
	return Expression{Terms: []Term{t}}
}

// FromConstant lifts a constant into a term-free expression.
func FromConstant(k float64) Expression {
	return Expression{Constant: k}
}

// clone returns a deep copy of e (fresh Terms backing array).
func (e Expression) clone() Expression {
	return NewExpression(e.Constant, e.Terms...)
}

// Add returns e + o.
func (e Expression) Add(o Expression) Expression {
	out := Expression{
		Terms:    make([]Term, 0, len(e.Terms)+len(o.Terms)),
		Constant: e.Constant + o.Constant,
	}
	out.Terms = append(out.Terms, e.Terms...)
	out.Terms = append(out.Terms, o.Terms...)

	return out
}

// AddTerm returns e + t.
func (e Expression) AddTerm(t Term) Expression {
	out := e.clone()
	out.Terms = append(out.Terms, t)

	return out
}

// AddConstant returns e + k.
func (e Expression) AddConstant(k float64) Expression {
	out := e.clone()
	out.Constant += k

	return out
}

// Sub returns e - o.
func (e Expression) Sub(o Expression) Expression {
	return e.Add(o.Negate())
}

// MulBy returns k·e.
func (e Expression) MulBy(k float64) Expression {
	out := Expression{
		Terms:    make([]Term, len(e.Terms)),
		Constant: e.Constant * k,
	}
	for i, t := range e.Terms {
		out.Terms[i] = Term{Variable: t.Variable, Coefficient: t.Coefficient * k}
	}

	return out
}

// DivBy returns e / k. k must be non-zero.
func (e Expression) DivBy(k float64) Expression {
	return e.MulBy(1 / k)
}

// Negate returns -e.
func (e Expression) Negate() Expression {
	return e.MulBy(-1)
}

// EqualTo builds the constraint e - o == 0. The optional strength
// defaults to Required.
func (e Expression) EqualTo(o Expression, strength ...Strength) *Constraint {
	return NewConstraint(e.Sub(o), OpEQ, strength...)
}

// LessThanOrEqualTo builds the constraint e - o <= 0. The optional
// strength defaults to Required.
func (e Expression) LessThanOrEqualTo(o Expression, strength ...Strength) *Constraint {
	return NewConstraint(e.Sub(o), OpLE, strength...)
}

// GreaterThanOrEqualTo builds the constraint e - o >= 0. The optional
// strength defaults to Required.
func (e Expression) GreaterThanOrEqualTo(o Expression, strength ...Strength) *Constraint {
	return NewConstraint(e.Sub(o), OpGE, strength...)
}

// String renders the expression as "c1·v1 + c2·v2 + k".
func (e Expression) String() string {
	var b strings.Builder
	for i, t := range e.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(t.String())
	}
	if len(e.Terms) == 0 || e.Constant != 0 {
		if len(e.Terms) > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(e.Constant, 'g', -1, 64))
	}

	return b.String()
}
