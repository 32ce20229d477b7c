package core

import (
	"strconv"
	"sync/atomic"
)

// constraintTick is the process-wide Constraint id source.
var constraintTick uint64

// Constraint is `expression ⟨op⟩ 0` at a given Strength.
//
// A Constraint is an identity, not a value: two Constraints built from
// byte-identical expressions are still distinct, and the solver keys its
// bookkeeping on the id allocated here. Construct once, hold the pointer,
// pass the same pointer to AddConstraint and RemoveConstraint.
type Constraint struct {
	id       uint64
	expr     Expression
	op       RelationalOperator
	strength Strength
}

// NewConstraint builds a constraint from an expression and operator.
// The optional strength defaults to Required and is clipped into the
// legal range. The expression is deep-copied, so mutating the terms you
// built it from cannot reach into a registered constraint.
func NewConstraint(e Expression, op RelationalOperator, strength ...Strength) *Constraint {
	s := Required
	if len(strength) > 0 {
		s = Clip(strength[0])
	}

	return &Constraint{
		id:       atomic.AddUint64(&constraintTick, 1),
		expr:     e.clone(),
		op:       op,
		strength: s,
	}
}

// ID returns the constraint's identity. Ids are process-wide monotone
// and never reused.
func (c *Constraint) ID() uint64 { return c.id }

// Expression returns the constrained expression. Treat it as read-only.
func (c *Constraint) Expression() Expression { return c.expr }

// Operator returns the relational operator.
func (c *Constraint) Operator() RelationalOperator { return c.op }

// Strength returns the constraint's priority.
func (c *Constraint) Strength() Strength { return c.strength }

// String renders "expr <op> 0 [strength]".
func (c *Constraint) String() string {
	return c.expr.String() + " " + c.op.String() + " 0 [" +
		strconv.FormatFloat(float64(c.strength), 'g', -1, 64) + "]"
}
