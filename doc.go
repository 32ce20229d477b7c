// Package cassowary is an incremental linear constraint solver based on
// the Cassowary algorithm — the one behind Apple's Auto Layout and a
// family of UI toolkits.
//
// 🚀 What is cassowary?
//
//	Given linear equality/inequality constraints over real variables,
//	each tagged with a priority ("strength"), the solver finds values
//	that satisfy every required constraint and minimize the weighted
//	violation of the rest:
//		• Incremental: add and remove constraints one at a time
//		• Interactive: drive "edit" variables with suggested values
//		• Observable: ask which variables changed since the last read
//
// ✨ Why choose this implementation?
//
//   - Faithful to the reference algorithm — dual simplex, artificial
//     variables, marker-based removal
//   - Deterministic — pivoting order is stable across runs
//   - Pure Go — no cgo, a handful of well-known deps
//
// Everything is organized under three subpackages:
//
//	core/   — Variable, Term, Expression, Constraint, Strength: the
//	          algebra you build constraints with
//	solver/ — the simplex tableau engine: AddConstraint,
//	          SuggestValue, FetchChanges and friends
//	logger/ — the shared zerolog logger used by solver.WithTracing
//
// Quick taste:
//
//	x := core.NewNamedVariable("x")
//	s := solver.New()
//	_ = s.AddConstraint(core.FromVariable(x).EqualTo(core.FromConstant(10), core.Required))
//	fmt.Println(s.Value(x)) // 10
//
// The Example functions of package solver walk through a small
// UI layout, including one driven interactively by an edit variable.
//
//	go get github.com/katalvlaran/cassowary
package cassowary
