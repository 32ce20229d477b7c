// Package core defines the algebra the solver consumes: Variable, Term,
// Expression, RelationalOperator, Strength, and Constraint.
//
// 🚀 What lives here?
//
//	The value-style building blocks for linear constraints:
//	  • Variable    — opaque identity, allocated once, compared by id
//	  • Term        — coefficient·variable
//	  • Expression  — Σ terms + constant
//	  • Constraint  — expression ⟨op⟩ 0 at a given Strength
//
// ✨ Key properties:
//
//   - Expressions are immutable values: every arithmetic method returns
//     a fresh Expression, so partially built constraints never alias.
//   - Variables and Constraints are identities. Two Variables are equal
//     iff they came from the same allocation; likewise two Constraints.
//     Ids are allocated atomically, so identities stay distinct across
//     goroutines and across solvers.
//   - Strength arithmetic always clips into [0, Required].
//
// ⚙️ Usage:
//
//	x := core.NewNamedVariable("x")
//	y := core.NewNamedVariable("y")
//
//	// y == 2·x + 1, required
//	c := core.FromVariable(y).EqualTo(
//	    core.FromTerm(core.NewTerm(x, 2)).AddConstant(1),
//	)
//
// The solver package consumes Constraints; it never cares how you built
// the Expression inside.
package core
