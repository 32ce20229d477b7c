package solver

import (
	"math"

	"github.com/katalvlaran/cassowary/core"
)

// This file is the simplex kernel: row creation, subject selection,
// substitution, the primal and dual optimize loops, and the
// artificial-variable phase used when no direct subject exists.
//
// Algorithm outline (AddConstraint path):
//  1. createRow turns the constraint into a tableau row, substituting
//     any basic symbols it mentions, and introduces slack/error/dummy
//     symbols per operator and strength.
//  2. chooseSubject picks the symbol the row will become basic in.
//  3. If no subject qualifies, addWithArtificialVariable runs a
//     phase-1 minimization to pivot the row into the basis.
//  4. optimize restores optimality of the objective.
//
// Determinism: every scan whose result depends on visit order walks
// symbols sorted by id (creation order), realizing the reference
// algorithm's first-encountered tie-breaking.

// createRow converts a constraint into a row and its tag.
//
// The row starts from the constraint's expression with every basic
// symbol substituted out, then gains slack/error/dummy symbols:
//
//	≤ : slack +1; non-required adds error -1 weighted into the objective
//	≥ : slack -1; non-required adds error +1 weighted into the objective
//	== : non-required adds errplus -1 / errminus +1, both weighted;
//	     required adds a single dummy +1
//
// The finished row is sign-normalized to a non-negative constant.
func (s *Solver) createRow(c *core.Constraint) (*row, tag) {
	expr := c.Expression()
	r := newRow(expr.Constant, s.eps)

	for _, term := range expr.Terms {
		if r.nearZero(term.Coefficient) {
			continue
		}
		sym := s.symbolForVariable(term.Variable)
		if basic, ok := s.rows[sym]; ok {
			r.insertRow(basic, term.Coefficient)
		} else {
			r.insertSymbol(sym, term.Coefficient)
		}
	}

	var t tag
	strength := float64(c.Strength())
	switch c.Operator() {
	case core.OpLE, core.OpGE:
		coeff := 1.0
		if c.Operator() == core.OpGE {
			coeff = -1.0
		}
		slack := s.nextSymbol(symbolSlack)
		t.marker = slack
		r.insertSymbol(slack, coeff)
		if c.Strength() < core.Required {
			errSym := s.nextSymbol(symbolError)
			t.other = errSym
			r.insertSymbol(errSym, -coeff)
			s.objective.insertSymbol(errSym, strength)
		}
	default: // core.OpEQ
		if c.Strength() < core.Required {
			errPlus := s.nextSymbol(symbolError)
			errMinus := s.nextSymbol(symbolError)
			t.marker = errPlus
			t.other = errMinus
			r.insertSymbol(errPlus, -1)
			r.insertSymbol(errMinus, 1)
			s.objective.insertSymbol(errPlus, strength)
			s.objective.insertSymbol(errMinus, strength)
		} else {
			dummy := s.nextSymbol(symbolDummy)
			t.marker = dummy
			r.insertSymbol(dummy, 1)
		}
	}

	if r.constant < 0 {
		r.reverseSign()
	}

	return r, t
}

// chooseSubject picks the symbol the new row should be solved for:
// the first External symbol in the row, else the marker or other tag
// symbol when it is a slack/error entering with a negative coefficient.
func (s *Solver) chooseSubject(r *row, t tag) Symbol {
	for _, sym := range r.sortedSymbols() {
		if sym.kind == symbolExternal {
			return sym
		}
	}
	if (t.marker.kind == symbolSlack || t.marker.kind == symbolError) &&
		r.coefficientFor(t.marker) < 0 {
		return t.marker
	}
	if (t.other.kind == symbolSlack || t.other.kind == symbolError) &&
		r.coefficientFor(t.other) < 0 {
		return t.other
	}

	return invalidSymbol
}

// allDummies reports whether every cell of r is a dummy symbol.
func allDummies(r *row) bool {
	for sym := range r.cells {
		if sym.kind != symbolDummy {
			return false
		}
	}

	return true
}

// anyPivotable returns the first slack or error symbol in r, or the
// invalid sentinel.
func anyPivotable(r *row) Symbol {
	for _, sym := range r.sortedSymbols() {
		if sym.kind == symbolSlack || sym.kind == symbolError {
			return sym
		}
	}

	return invalidSymbol
}

// addWithArtificialVariable runs the phase-1 procedure: minimize a
// fresh artificial objective equal to the candidate row. Reports
// whether the row could be satisfied; an error is an internal failure.
func (s *Solver) addWithArtificialVariable(r *row) (bool, error) {
	art := s.nextSymbol(symbolSlack)
	s.rows[art] = r.copy()
	s.artificial = r.copy()

	err := s.optimize(s.artificial)
	if err != nil {
		s.artificial = nil

		return false, err
	}
	success := s.artificial.nearZero(s.artificial.constant)
	s.artificial = nil

	// If the artificial variable is still basic, pivot it out.
	if artRow, ok := s.rows[art]; ok {
		delete(s.rows, art)
		if len(artRow.cells) == 0 {
			return success, nil
		}
		entering := anyPivotable(artRow)
		if !entering.valid() {
			return false, nil // unsatisfiable
		}
		artRow.solveForPair(art, entering)
		s.substitute(entering, artRow)
		s.rows[entering] = artRow
	}

	// Scrub any lingering artificial column.
	for _, remaining := range s.rows {
		remaining.remove(art)
	}
	s.objective.remove(art)

	return success, nil
}

// substitute replaces sym with the given row throughout the tableau,
// the objective, and the artificial objective when present. External
// rows whose constant moves are marked changed; internal rows that turn
// negative join the dual-simplex worklist.
func (s *Solver) substitute(sym Symbol, r *row) {
	for _, otherSym := range s.sortedRowKeys() {
		otherRow := s.rows[otherSym]
		constantChanged := otherRow.substitute(sym, r)
		if otherSym.kind == symbolExternal {
			if constantChanged {
				s.markChanged(otherSym)
			}
		} else if otherRow.constant < 0 {
			s.infeasibleRows = append(s.infeasibleRows, otherSym)
		}
	}
	s.objective.substitute(sym, r)
	if s.artificial != nil {
		s.artificial.substitute(sym, r)
	}
}

// optimize runs the primal simplex on the given objective until no
// improving (negative, non-dummy) symbol remains.
func (s *Solver) optimize(objective *row) error {
	for {
		entering := enteringSymbol(objective)
		if !entering.valid() {
			return nil
		}
		leaving, r, ok := s.leavingRow(entering)
		if !ok {
			return ErrObjectiveUnbounded
		}
		s.log.Debug().
			Stringer("entering", entering).
			Stringer("leaving", leaving).
			Msg("primal pivot")

		r.solveForPair(leaving, entering)
		s.substitute(entering, r)
		if entering.kind == symbolExternal && r.constant != 0 {
			s.markChanged(entering)
		}
		s.rows[entering] = r
	}
}

// dualOptimize drains the infeasible-row worklist, restoring
// feasibility after suggested values shift row constants negative.
func (s *Solver) dualOptimize() error {
	for len(s.infeasibleRows) > 0 {
		leaving := s.infeasibleRows[len(s.infeasibleRows)-1]
		s.infeasibleRows = s.infeasibleRows[:len(s.infeasibleRows)-1]

		r, ok := s.rows[leaving]
		if !ok || r.constant >= 0 {
			continue
		}
		delete(s.rows, leaving)

		entering := s.dualEnteringSymbol(r)
		if !entering.valid() {
			return ErrDualOptimizeFailed
		}
		s.log.Debug().
			Stringer("entering", entering).
			Stringer("leaving", leaving).
			Msg("dual pivot")

		r.solveForPair(leaving, entering)
		s.substitute(entering, r)
		if entering.kind == symbolExternal && r.constant != 0 {
			s.markChanged(entering)
		}
		s.rows[entering] = r
	}

	return nil
}

// enteringSymbol returns the first non-dummy symbol of the objective
// with a negative coefficient, or the invalid sentinel at optimum.
func enteringSymbol(objective *row) Symbol {
	for _, sym := range objective.sortedSymbols() {
		if sym.kind != symbolDummy && objective.cells[sym] < 0 {
			return sym
		}
	}

	return invalidSymbol
}

// leavingRow picks the basic row bounding the entering symbol by the
// minimum-ratio test, takes it out of the tableau, and returns it.
func (s *Solver) leavingRow(entering Symbol) (Symbol, *row, bool) {
	ratio := math.MaxFloat64
	found := invalidSymbol
	for _, sym := range s.sortedRowKeys() {
		if sym.kind == symbolExternal {
			continue
		}
		r := s.rows[sym]
		coeff := r.coefficientFor(entering)
		if coeff >= 0 {
			continue
		}
		if t := -r.constant / coeff; t < ratio {
			ratio = t
			found = sym
		}
	}
	if !found.valid() {
		return invalidSymbol, nil, false
	}
	r := s.rows[found]
	delete(s.rows, found)

	return found, r, true
}

// dualEnteringSymbol picks the non-dummy cell with a positive
// coefficient minimizing objective-coefficient / cell-coefficient.
func (s *Solver) dualEnteringSymbol(r *row) Symbol {
	ratio := math.MaxFloat64
	found := invalidSymbol
	for _, sym := range r.sortedSymbols() {
		if sym.kind == symbolDummy {
			continue
		}
		coeff := r.cells[sym]
		if coeff <= 0 {
			continue
		}
		if t := s.objective.coefficientFor(sym) / coeff; t < ratio {
			ratio = t
			found = sym
		}
	}

	return found
}

// markerLeavingRow locates the row a non-basic marker should leave
// through, with three-tier precedence: restricted rows with a negative
// marker coefficient (min ratio -constant/c), then restricted rows with
// a positive coefficient (min ratio constant/c), then any external row.
// The chosen row is removed from the tableau and returned.
func (s *Solver) markerLeavingRow(marker Symbol) (Symbol, *row, error) {
	r1 := math.MaxFloat64
	r2 := math.MaxFloat64
	first := invalidSymbol
	second := invalidSymbol
	third := invalidSymbol

	for _, sym := range s.sortedRowKeys() {
		r := s.rows[sym]
		coeff := r.coefficientFor(marker)
		if coeff == 0 {
			continue
		}
		switch {
		case sym.kind == symbolExternal:
			third = sym
		case coeff < 0:
			if t := -r.constant / coeff; t < r1 {
				r1 = t
				first = sym
			}
		default:
			if t := r.constant / coeff; t < r2 {
				r2 = t
				second = sym
			}
		}
	}

	leaving := first
	if !leaving.valid() {
		leaving = second
	}
	if !leaving.valid() {
		leaving = third
	}
	if !leaving.valid() {
		return invalidSymbol, nil, ErrFailedToFindLeavingRow
	}

	r := s.rows[leaving]
	if leaving.kind == symbolExternal && r.constant != 0 {
		s.markChanged(leaving)
	}
	delete(s.rows, leaving)

	return leaving, r, nil
}
