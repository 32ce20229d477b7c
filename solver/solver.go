package solver

import (
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cassowary/core"
	"github.com/katalvlaran/cassowary/logger"
)

// Change is one entry of the FetchChanges report: a variable and the
// value it settled at since the previous fetch.
type Change struct {
	Variable core.Variable
	Value    float64
}

// constraintData is the per-constraint bookkeeping: the user's handle
// plus the marker/other symbols that locate it in the tableau.
type constraintData struct {
	constraint *core.Constraint
	tag        tag
}

// varData is the per-variable bookkeeping. lastValue starts as NaN so
// the very first settled value is reported as a change even when it is 0.
type varData struct {
	lastValue float64
	symbol    Symbol
	refcount  int
}

// editData tracks one edit variable: the synthetic constraint pinning
// it, its tag, and the last suggested value.
type editData struct {
	tag        tag
	constraint *core.Constraint
	constant   float64
}

// Solver is the incremental Cassowary tableau engine.
//
// A Solver is NOT safe for concurrent use: every method requires
// exclusive access and runs to completion synchronously. Variable and
// Constraint identities, by contrast, are allocated atomically in
// package core, so handles stay distinct across solvers and goroutines.
type Solver struct {
	eps   float64
	trace bool
	log   zerolog.Logger

	cns          map[uint64]*constraintData
	vars         map[core.Variable]*varData
	varForSymbol map[Symbol]core.Variable
	rows         map[Symbol]*row
	objective    *row
	artificial   *row

	infeasibleRows []Symbol
	edits          map[core.Variable]*editData

	changed            map[core.Variable]struct{}
	shouldClearChanges bool
	publicChanges      []Change

	idTick uint32
}

// New builds an empty solver. Options are applied left-to-right.
func New(opts ...Option) *Solver {
	s := &Solver{
		eps: DefaultEpsilon,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.trace {
		s.log = logger.Logger().With().Str("component", "solver").Logger()
	}
	s.reinit()

	return s
}

// reinit restores the empty-tableau state shared by New and Reset.
func (s *Solver) reinit() {
	s.cns = make(map[uint64]*constraintData)
	s.vars = make(map[core.Variable]*varData)
	s.varForSymbol = make(map[Symbol]core.Variable)
	s.rows = make(map[Symbol]*row)
	s.objective = newRow(0, s.eps)
	s.artificial = nil
	s.infeasibleRows = s.infeasibleRows[:0]
	s.edits = make(map[core.Variable]*editData)
	s.changed = make(map[core.Variable]struct{})
	s.shouldClearChanges = false
	s.publicChanges = nil
	s.idTick = 1
}

// nearZero reports |x| < eps under the solver's tolerance.
func (s *Solver) nearZero(x float64) bool {
	return math.Abs(x) < s.eps
}

// nextSymbol allocates a fresh Symbol of the given kind.
func (s *Solver) nextSymbol(kind symbolKind) Symbol {
	sym := Symbol{id: s.idTick, kind: kind}
	s.idTick++

	return sym
}

// symbolForVariable returns the External symbol for v, allocating one on
// first sighting. Each call accounts for one referencing term.
func (s *Solver) symbolForVariable(v core.Variable) Symbol {
	if vd, ok := s.vars[v]; ok {
		vd.refcount++

		return vd.symbol
	}
	sym := s.nextSymbol(symbolExternal)
	s.vars[v] = &varData{lastValue: math.NaN(), symbol: sym, refcount: 1}
	s.varForSymbol[sym] = v

	return sym
}

// markChanged records that the variable behind sym moved. The first
// mark after a fetch discards the already-reported accumulation.
func (s *Solver) markChanged(sym Symbol) {
	v, ok := s.varForSymbol[sym]
	if !ok {
		return
	}
	if s.shouldClearChanges {
		clear(s.changed)
		s.shouldClearChanges = false
	}
	s.changed[v] = struct{}{}
}

// sortedRowKeys returns the basic symbols ordered by (id, kind), for
// scans whose outcome depends on visit order.
func (s *Solver) sortedRowKeys() []Symbol {
	keys := make([]Symbol, 0, len(s.rows))
	for sym := range s.rows {
		keys = append(keys, sym)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	return keys
}

// AddConstraint registers c and re-optimizes the tableau.
//
// Errors: ErrDuplicateConstraint if c was already added;
// ErrUnsatisfiableConstraint if c is required and conflicts with the
// required constraints already present (the solver stays usable).
func (s *Solver) AddConstraint(c *core.Constraint) error {
	if _, ok := s.cns[c.ID()]; ok {
		return ErrDuplicateConstraint
	}
	s.log.Debug().Stringer("constraint", c).Msg("add constraint")

	r, t := s.createRow(c)
	subject := s.chooseSubject(r, t)

	// An all-dummy row means the constraint adds no new information:
	// either it is trivially consistent (redundant) or it contradicts
	// the required equalities already in the system.
	if !subject.valid() && allDummies(r) {
		if !r.nearZero(r.constant) {
			return ErrUnsatisfiableConstraint
		}
		subject = t.marker
	}

	if !subject.valid() {
		ok, err := s.addWithArtificialVariable(r)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnsatisfiableConstraint
		}
	} else {
		r.solveFor(subject)
		s.substitute(subject, r)
		if subject.kind == symbolExternal && r.constant != 0 {
			s.markChanged(subject)
		}
		s.rows[subject] = r
	}

	s.cns[c.ID()] = &constraintData{constraint: c, tag: t}

	return s.optimize(s.objective)
}

// RemoveConstraint unregisters c and restores optimality.
//
// Errors: ErrUnknownConstraint if c is not in the system;
// ErrFailedToFindLeavingRow (internal) if the marker cannot be located.
func (s *Solver) RemoveConstraint(c *core.Constraint) error {
	data, ok := s.cns[c.ID()]
	if !ok {
		return ErrUnknownConstraint
	}
	delete(s.cns, c.ID())
	s.log.Debug().Stringer("constraint", c).Msg("remove constraint")

	// Subtract the error-symbol contribution from the objective before
	// pivoting, while rows[marker] still reflects the current basis.
	s.removeConstraintEffects(data)

	t := data.tag
	if _, basic := s.rows[t.marker]; basic {
		delete(s.rows, t.marker)
	} else {
		leaving, r, err := s.markerLeavingRow(t.marker)
		if err != nil {
			return err
		}
		r.solveForPair(leaving, t.marker)
		s.substitute(t.marker, r)
	}

	if err := s.optimize(s.objective); err != nil {
		return err
	}

	s.releaseVariables(data.constraint)

	return nil
}

// removeConstraintEffects backs the constraint's error symbols out of
// the objective, consulting the live tableau for each marker.
func (s *Solver) removeConstraintEffects(data *constraintData) {
	strength := float64(data.constraint.Strength())
	for _, sym := range [2]Symbol{data.tag.marker, data.tag.other} {
		if sym.kind != symbolError {
			continue
		}
		if r, ok := s.rows[sym]; ok {
			s.objective.insertRow(r, -strength)
		} else {
			s.objective.insertSymbol(sym, -strength)
		}
	}
}

// releaseVariables drops one reference per non-zero term of the removed
// constraint, evicting variables nothing references anymore.
func (s *Solver) releaseVariables(c *core.Constraint) {
	for _, term := range c.Expression().Terms {
		if s.nearZero(term.Coefficient) {
			continue
		}
		vd, ok := s.vars[term.Variable]
		if !ok {
			continue
		}
		vd.refcount--
		if vd.refcount <= 0 {
			delete(s.varForSymbol, vd.symbol)
			delete(s.vars, term.Variable)
		}
	}
}

// HasConstraint reports whether c is currently in the system.
func (s *Solver) HasConstraint(c *core.Constraint) bool {
	_, ok := s.cns[c.ID()]

	return ok
}

// AddEditVariable registers v as an edit variable at the given strength,
// pinning it with the soft constraint v == 0 until the first suggestion.
//
// Errors: ErrDuplicateEditVariable, ErrBadRequiredStrength.
func (s *Solver) AddEditVariable(v core.Variable, strength core.Strength) error {
	if _, ok := s.edits[v]; ok {
		return ErrDuplicateEditVariable
	}
	strength = core.Clip(strength)
	if strength == core.Required {
		return ErrBadRequiredStrength
	}

	cn := core.NewConstraint(core.FromVariable(v), core.OpEQ, strength)
	if err := s.AddConstraint(cn); err != nil {
		return err
	}
	s.edits[v] = &editData{
		tag:        s.cns[cn.ID()].tag,
		constraint: cn,
		constant:   0,
	}

	return nil
}

// RemoveEditVariable drops v's edit constraint.
//
// Errors: ErrUnknownEditVariable; ErrEditConstraintNotInSystem
// (internal) if the backing constraint vanished.
func (s *Solver) RemoveEditVariable(v core.Variable) error {
	e, ok := s.edits[v]
	if !ok {
		return ErrUnknownEditVariable
	}
	if err := s.RemoveConstraint(e.constraint); err != nil {
		if errors.Is(err, ErrUnknownConstraint) {
			return ErrEditConstraintNotInSystem
		}

		return err
	}
	delete(s.edits, v)

	return nil
}

// HasEditVariable reports whether v currently has an edit constraint.
func (s *Solver) HasEditVariable(v core.Variable) bool {
	_, ok := s.edits[v]

	return ok
}

// SuggestValue drives edit variable v toward value, then repairs
// feasibility with the dual simplex.
//
// Errors: ErrUnknownEditVariable; ErrDualOptimizeFailed (internal).
func (s *Solver) SuggestValue(v core.Variable, value float64) error {
	e, ok := s.edits[v]
	if !ok {
		return ErrUnknownEditVariable
	}
	s.log.Debug().Stringer("variable", v).Float64("value", value).Msg("suggest value")

	delta := value - e.constant
	e.constant = value
	s.applySuggestion(e.tag, delta)

	return s.dualOptimize()
}

// applySuggestion shifts the tableau by delta along the edit's marker.
func (s *Solver) applySuggestion(t tag, delta float64) {
	// Case 1: the marker is basic, shift its row directly.
	if r, ok := s.rows[t.marker]; ok {
		if r.add(-delta) < 0 {
			s.infeasibleRows = append(s.infeasibleRows, t.marker)
		}

		return
	}

	// Case 2: the other symbol is basic, symmetric shift.
	if r, ok := s.rows[t.other]; ok {
		if r.add(delta) < 0 {
			s.infeasibleRows = append(s.infeasibleRows, t.other)
		}

		return
	}

	// Case 3: neither is basic, propagate delta through every row that
	// mentions the marker. Sorted visit keeps the infeasible worklist
	// order reproducible.
	for _, sym := range s.sortedRowKeys() {
		r := s.rows[sym]
		coeff := r.coefficientFor(t.marker)
		diff := delta * coeff
		if diff != 0 && sym.kind == symbolExternal {
			s.markChanged(sym)
		}
		if coeff != 0 && r.add(diff) < 0 && sym.kind != symbolExternal {
			s.infeasibleRows = append(s.infeasibleRows, sym)
		}
	}
}

// FetchChanges reports every variable whose settled value differs from
// the one reported by the previous fetch, in no particular order.
//
// The change set accumulates between fetches: calling FetchChanges twice
// in a row yields an empty second report. The returned slice is reused;
// it is valid until the next FetchChanges call.
func (s *Solver) FetchChanges() []Change {
	if s.shouldClearChanges {
		clear(s.changed)
		s.shouldClearChanges = false
	} else {
		s.shouldClearChanges = true
	}

	s.publicChanges = s.publicChanges[:0]
	for v := range s.changed {
		vd, ok := s.vars[v]
		if !ok {
			continue
		}
		value := 0.0
		if r, basic := s.rows[vd.symbol]; basic {
			value = r.constant
		}
		if value == 0 {
			value = 0 // collapse -0.0
		}
		if value != vd.lastValue { // NaN sentinel: first value always differs
			s.publicChanges = append(s.publicChanges, Change{Variable: v, Value: value})
			vd.lastValue = value
		}
	}

	return s.publicChanges
}

// Value returns the current settled value of v, or 0 when the solver
// does not know v. Negative zero is normalized to +0.
func (s *Solver) Value(v core.Variable) float64 {
	vd, ok := s.vars[v]
	if !ok {
		return 0
	}
	r, basic := s.rows[vd.symbol]
	if !basic {
		return 0
	}
	if r.constant == 0 {
		return 0
	}

	return r.constant
}

// Reset returns the solver to its freshly constructed state. Previously
// allocated Variables and Constraints remain valid handles, but the
// solver no longer knows them.
func (s *Solver) Reset() {
	s.reinit()
}
