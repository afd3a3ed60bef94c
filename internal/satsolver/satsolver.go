// Package satsolver defines the incremental CNF oracle the model-checking
// engine drives, and a concrete adapter over the real third-party SAT solver
// github.com/irifrance/gini.
//
// Literals here are plain signed DIMACS-style integers (variable k is the
// literal +k / -k; 0 is reserved as the clause terminator and must never be
// passed to Add or Assume as a literal). The engine owns the numbering
// scheme; this package only ever forwards literals to the backend.
package satsolver

// Lit is a signed DIMACS-style literal. Variable and sign are folded into the
// same int32: positive is the variable asserted true, negative false.
type Lit int32

// Result is the three possible outcomes of a SAT call.
type Result int

const (
	Unsat Result = iota - 1
	Unknown
	Sat
)

func (r Result) String() string {
	switch r {
	case Unsat:
		return "UNSAT"
	case Sat:
		return "SAT"
	default:
		return "UNKNOWN"
	}
}

// Backend is the incremental CNF oracle the engine consumes: permanent
// clauses added via Add, one-shot assumptions scoped to the next Solve call,
// and post-Solve model extraction via Value.
type Backend interface {
	// Add emits one permanent clause; lits must be nonzero.
	Add(lits ...Lit)
	// Assume records one-shot assumption literals for the next Solve call.
	Assume(lits ...Lit)
	// Solve runs the SAT call under the currently assumed literals, then
	// clears the assumption set.
	Solve() Result
	// Value returns the model's value for lit after a Sat result.
	Value(lit Lit) bool
	// Variables reports how many distinct variables have been referenced.
	Variables() int
	// AddedClauses reports how many permanent clauses have been added.
	AddedClauses() int
}

// ObserverBackend is a Backend that additionally supports an all-different
// observer: an auxiliary feature (PicoSAT's ado_*, which this repository's
// chosen backend, gini, does not implement) that enforces pairwise
// distinctness of a family of observed tuples without materializing O(k^2)
// CNF clauses. Callers must use a type assertion to discover whether a given
// Backend also implements this; when it doesn't, the engine degrades the
// ALL-DIFF-OBSERVER regime to CLASSICAL-DIFF (see NewContext in
// pkg/engine/context.go).
type ObserverBackend interface {
	Backend
	// AddObserverTuple feeds one tuple of literals to the observer.
	AddObserverTuple(lits []Lit)
	// ObserverConflicts reports the cumulative conflict count the observer
	// has consumed while enabled.
	ObserverConflicts() int
	// SetObserverConflictLimit sets the observer's cumulative conflict
	// budget; a Solve call that exceeds it reports Unknown.
	SetObserverConflictLimit(n int)
	DisableObserver()
	EnableObserver()
}
