// Package solver: sentinel error set.
//
// All sentinels are prefixed "solver:" and matched via errors.Is. User
// and model errors leave the solver usable; internal errors wrap
// ErrInternal and indicate a bug worth reporting.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateConstraint is returned by AddConstraint when the exact
	// constraint (by identity) is already registered.
	ErrDuplicateConstraint = errors.New("solver: constraint already added")

	// ErrUnknownConstraint is returned by RemoveConstraint when the
	// constraint was never added, or was already removed.
	ErrUnknownConstraint = errors.New("solver: constraint not currently in the system")

	// ErrUnsatisfiableConstraint is returned by AddConstraint when a
	// required constraint cannot coexist with the required constraints
	// already in the system. The solver remains usable.
	ErrUnsatisfiableConstraint = errors.New("solver: required constraint is unsatisfiable")

	// ErrDuplicateEditVariable is returned by AddEditVariable when the
	// variable already has an edit constraint.
	ErrDuplicateEditVariable = errors.New("solver: edit variable already added")

	// ErrUnknownEditVariable is returned by RemoveEditVariable and
	// SuggestValue when the variable has no edit constraint.
	ErrUnknownEditVariable = errors.New("solver: edit variable not currently in the system")

	// ErrBadRequiredStrength is returned by AddEditVariable when the
	// requested strength is Required; edits must stay defeasible.
	ErrBadRequiredStrength = errors.New("solver: edit strength must be below required")
)

// ErrInternal is the class sentinel for solver bugs. None of the errors
// below should occur through the public API; match the whole class with
// errors.Is(err, ErrInternal).
var ErrInternal = errors.New("solver: internal error")

var (
	// ErrObjectiveUnbounded reports a primal pivot with no leaving row.
	ErrObjectiveUnbounded = fmt.Errorf("%w: objective is unbounded", ErrInternal)

	// ErrDualOptimizeFailed reports a dual pivot with no entering symbol.
	ErrDualOptimizeFailed = fmt.Errorf("%w: dual optimize found no entering symbol", ErrInternal)

	// ErrFailedToFindLeavingRow reports a constraint removal that could
	// not locate its marker in any row.
	ErrFailedToFindLeavingRow = fmt.Errorf("%w: failed to find leaving row", ErrInternal)

	// ErrEditConstraintNotInSystem reports an edit whose backing
	// constraint vanished from the tableau.
	ErrEditConstraintNotInSystem = fmt.Errorf("%w: edit constraint not in the system", ErrInternal)
)
