package solver

import (
	"math"
	"sort"
)

// row is one sparse linear row of the tableau. A freshly created row
// states 0 = constant + Σ coeffᵢ·symᵢ; once solved for a basic symbol b
// it states b = constant + Σ coeffᵢ·symᵢ.
//
// Invariant: no cell holds a coefficient with |c| < eps. insertSymbol
// enforces it on every insertion, solveFor drops cells its rescaling
// pushes under eps, and reverseSign only flips signs.
type row struct {
	cells    map[Symbol]float64
	constant float64
	eps      float64
}

// newRow builds an empty row with the given constant.
func newRow(constant, eps float64) *row {
	return &row{cells: make(map[Symbol]float64), constant: constant, eps: eps}
}

// copy returns a deep copy of r.
func (r *row) copy() *row {
	out := &row{
		cells:    make(map[Symbol]float64, len(r.cells)),
		constant: r.constant,
		eps:      r.eps,
	}
	for s, c := range r.cells {
		out.cells[s] = c
	}

	return out
}

// nearZero reports |x| < eps.
func (r *row) nearZero(x float64) bool {
	return math.Abs(x) < r.eps
}

// add shifts the constant by delta and returns the new constant.
func (r *row) add(delta float64) float64 {
	r.constant += delta

	return r.constant
}

// insertSymbol adds coefficient to the cell for s, creating it when
// absent. Cells whose magnitude falls under eps are removed.
func (r *row) insertSymbol(s Symbol, coefficient float64) {
	sum := r.cells[s] + coefficient
	if r.nearZero(sum) {
		delete(r.cells, s)

		return
	}
	r.cells[s] = sum
}

// insertRow adds coefficient·other into r, cell by cell. Reports whether
// r's constant actually changed.
func (r *row) insertRow(other *row, coefficient float64) bool {
	diff := other.constant * coefficient
	r.constant += diff
	for s, c := range other.cells {
		r.insertSymbol(s, c*coefficient)
	}

	return diff != 0
}

// remove drops the cell for s, if any.
func (r *row) remove(s Symbol) {
	delete(r.cells, s)
}

// reverseSign negates the constant and every coefficient.
func (r *row) reverseSign() {
	r.constant = -r.constant
	for s, c := range r.cells {
		r.cells[s] = -c
	}
}

// solveFor rearranges the row so that s becomes its basic variable:
// given 0 = constant + Σ cells + c·s, after the call the row reads
// s = constant + Σ cells. s must be present with a non-zero coefficient.
func (r *row) solveFor(s Symbol) {
	coeff := -1.0 / r.cells[s]
	delete(r.cells, s)
	r.constant *= coeff
	for sym, c := range r.cells {
		scaled := c * coeff
		if r.nearZero(scaled) {
			delete(r.cells, sym)

			continue
		}
		r.cells[sym] = scaled
	}
}

// solveForPair makes rhs basic in a row currently basic in lhs:
// insert lhs at -1, then solve for rhs.
func (r *row) solveForPair(lhs, rhs Symbol) {
	r.insertSymbol(lhs, -1)
	r.solveFor(rhs)
}

// coefficientFor returns the coefficient of s, or 0 when absent.
func (r *row) coefficientFor(s Symbol) float64 {
	return r.cells[s]
}

// substitute replaces every occurrence of s with the given row. Reports
// whether r's constant changed.
func (r *row) substitute(s Symbol, other *row) bool {
	c, ok := r.cells[s]
	if !ok {
		return false
	}
	delete(r.cells, s)

	return r.insertRow(other, c)
}

// sortedSymbols returns the row's symbols ordered by (id, kind).
//
// Go map iteration is randomized; every scan whose outcome depends on
// visit order (subject choice, entering selection, pivotable search)
// walks this slice instead, keeping pivoting reproducible across runs.
func (r *row) sortedSymbols() []Symbol {
	syms := make([]Symbol, 0, len(r.cells))
	for s := range r.cells {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].less(syms[j]) })

	return syms
}
