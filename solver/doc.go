// Package solver implements the incremental Cassowary simplex engine:
// a tableau of sparse rows kept optimal and feasible as constraints are
// added, removed, and edited one at a time.
//
// 🚀 What is the solver?
//
//	You feed it core.Constraints — linear (in)equalities over
//	core.Variables, each with a Strength — and it maintains an
//	assignment that satisfies every Required constraint while
//	minimizing the weighted violation of the rest:
//	  • AddConstraint / RemoveConstraint — incremental updates
//	  • AddEditVariable / SuggestValue   — interactive value driving
//	  • FetchChanges                     — "what moved since last read?"
//	  • Value                            — point lookup of one variable
//
// ✨ Key properties:
//
//   - Incremental: each operation re-pivots only as much as needed;
//     nothing is solved from scratch.
//   - Deterministic: scans that depend on symbol visit order walk
//     symbols in creation order, so runs are reproducible.
//   - Observable: FetchChanges reports exactly the variables whose
//     settled value moved between successive fetches.
//
// ⚙️ Usage:
//
//	x := core.NewNamedVariable("x")
//	s := solver.New()
//
//	// x >= 100 required, x == 50 weak → x settles at 100
//	if err := s.AddConstraint(
//	    core.FromVariable(x).GreaterThanOrEqualTo(core.FromConstant(100)),
//	); err != nil { ... }
//	if err := s.AddConstraint(
//	    core.FromVariable(x).EqualTo(core.FromConstant(50), core.Weak),
//	); err != nil { ... }
//
//	for _, ch := range s.FetchChanges() {
//	    fmt.Println(ch.Variable, "→", ch.Value)
//	}
//
// Concurrency:
//
//	A Solver requires exclusive access; wrap it in your own mutex if
//	you must share it. All operations are CPU-bound and terminating.
//
// Errors:
//
//	User errors (ErrDuplicateConstraint, ErrUnknownConstraint,
//	ErrDuplicateEditVariable, ErrUnknownEditVariable,
//	ErrBadRequiredStrength) and the model error
//	ErrUnsatisfiableConstraint leave the solver usable. Anything
//	matching ErrInternal is a bug in the solver — please report it.
package solver
