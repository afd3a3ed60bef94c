package satsolver

import "sort"

// FakeBackend is a small, deterministic, dependency-free SAT backend used
// only by tests: a DPLL-style backtracking solver with unit propagation,
// loosely in the spirit of Algorithm B from Knuth's TAOCP 7.2.2.2 (watching
// literals) but simplified to plain clause scanning, since test instances
// are tiny. It also implements ObserverBackend by literally checking
// pairwise distinctness of observed tuples against the current assignment,
// which makes it useful for exercising the ALL-DIFF-OBSERVER code path
// without gini. Spec §8 calls this kind of thing a "stub SAT backend".
type FakeBackend struct {
	clauses     [][]Lit
	assumptions []Lit
	model       map[Lit]bool // variable (always positive Lit) -> value
	nVars       int

	observerTuples    [][]Lit
	observerEnabled   bool
	observerConflicts int
	observerLimit     int
}

// NewFake constructs an empty FakeBackend with the observer enabled, the
// default state engine.Context expects for the ALL-DIFF-OBSERVER regime.
func NewFake() *FakeBackend {
	return &FakeBackend{observerEnabled: true, observerLimit: -1}
}

func (b *FakeBackend) trackVar(l Lit) {
	v := l
	if v < 0 {
		v = -v
	}
	if int(v) > b.nVars {
		b.nVars = int(v)
	}
}

func (b *FakeBackend) Add(lits ...Lit) {
	clause := append([]Lit(nil), lits...)
	for _, l := range clause {
		b.trackVar(l)
	}
	b.clauses = append(b.clauses, clause)
}

func (b *FakeBackend) Assume(lits ...Lit) {
	for _, l := range lits {
		b.trackVar(l)
	}
	b.assumptions = append(b.assumptions, lits...)
}

func (b *FakeBackend) Variables() int     { return b.nVars }
func (b *FakeBackend) AddedClauses() int  { return len(b.clauses) }

// Decided reports whether l's variable was actually assigned a value by the
// last Solve call, as opposed to defaulting to false because the search
// never touched it. Exercises the witness renderer's 'x' (don't-care) case.
func (b *FakeBackend) Decided(l Lit) bool {
	v := l
	if v < 0 {
		v = -v
	}
	_, known := b.model[v]
	return known
}

func (b *FakeBackend) Value(l Lit) bool {
	v := l
	neg := l < 0
	if neg {
		v = -v
	}
	val := b.model[v]
	if neg {
		return !val
	}
	return val
}

// Solve runs a backtracking search over all clauses plus the current
// assumptions (treated as unit clauses), then clears the assumption set.
// If the observer is enabled, observed tuples are additionally constrained
// to be pairwise distinct; exceeding the conflict limit (when one is set via
// SetObserverConflictLimit) reports Unknown, mirroring how a real observer's
// conflict budget can be exhausted mid-search.
func (b *FakeBackend) Solve() Result {
	allClauses := make([][]Lit, 0, len(b.clauses)+len(b.assumptions))
	allClauses = append(allClauses, b.clauses...)
	for _, a := range b.assumptions {
		allClauses = append(allClauses, []Lit{a})
	}
	b.assumptions = nil

	assign := make(map[Lit]bool, b.nVars)
	ok, conflicted := b.search(allClauses, assign, 1)
	if conflicted {
		return Unknown
	}
	if !ok {
		return Unsat
	}
	b.model = assign
	return Sat
}

func (b *FakeBackend) search(clauses [][]Lit, assign map[Lit]bool, nextVar int) (sat bool, conflicted bool) {
	// Unit propagation to a fixed point.
	for {
		unit, val, v, found := findUnit(clauses, assign)
		if !found {
			break
		}
		assign[v] = val
		_ = unit
	}

	if !b.observerSatisfiable(assign) {
		if b.observerLimit >= 0 {
			b.observerConflicts++
			if b.observerConflicts > b.observerLimit {
				return false, true
			}
		}
		return false, false
	}

	if falsified(clauses, assign) {
		return false, false
	}
	if allSatisfied(clauses, assign) {
		return true, false
	}

	v := nextUnassigned(clauses, assign, b.nVars)
	if v == 0 {
		return allSatisfied(clauses, assign), false
	}

	for _, val := range []bool{false, true} {
		assign[v] = val
		ok, conflicted := b.search(clauses, assign, int(v)+1)
		if conflicted {
			return false, true
		}
		if ok {
			return true, false
		}
		delete(assign, v)
	}
	return false, false
}

func findUnit(clauses [][]Lit, assign map[Lit]bool) (Lit, bool, Lit, bool) {
	for _, c := range clauses {
		var lastUnassigned Lit
		unassignedCount := 0
		satisfied := false
		for _, l := range c {
			v := l
			neg := l < 0
			if neg {
				v = -v
			}
			val, known := assign[v]
			if !known {
				unassignedCount++
				lastUnassigned = l
				continue
			}
			if val != neg {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if unassignedCount == 1 {
			v := lastUnassigned
			neg := v < 0
			if neg {
				v = -v
			}
			return lastUnassigned, !neg, v, true
		}
	}
	return 0, false, 0, false
}

func falsified(clauses [][]Lit, assign map[Lit]bool) bool {
	for _, c := range clauses {
		satisfied := false
		allKnown := true
		for _, l := range c {
			v := l
			neg := l < 0
			if neg {
				v = -v
			}
			val, known := assign[v]
			if !known {
				allKnown = false
				continue
			}
			if val != neg {
				satisfied = true
				break
			}
		}
		if !satisfied && allKnown {
			return true
		}
	}
	return false
}

func allSatisfied(clauses [][]Lit, assign map[Lit]bool) bool {
	for _, c := range clauses {
		satisfied := false
		for _, l := range c {
			v := l
			neg := l < 0
			if neg {
				v = -v
			}
			val, known := assign[v]
			if known && val != neg {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func nextUnassigned(clauses [][]Lit, assign map[Lit]bool, nVars int) Lit {
	for v := 1; v <= nVars; v++ {
		if _, known := assign[Lit(v)]; !known {
			return Lit(v)
		}
	}
	return 0
}

// AddObserverTuple records one observed tuple (the engine calls this once
// per frame with that frame's latch literals). Pairwise distinctness is
// checked against the *current* assignment during search.
func (b *FakeBackend) AddObserverTuple(lits []Lit) {
	b.observerTuples = append(b.observerTuples, append([]Lit(nil), lits...))
}

func (b *FakeBackend) ObserverConflicts() int { return b.observerConflicts }

func (b *FakeBackend) SetObserverConflictLimit(n int) { b.observerLimit = n }

func (b *FakeBackend) DisableObserver() { b.observerEnabled = false }
func (b *FakeBackend) EnableObserver()  { b.observerEnabled = true }

// observerSatisfiable reports whether every *fully assigned* pair of
// observed tuples currently differs in at least one position. Tuples with
// unassigned literals are skipped (not yet decided either way).
func (b *FakeBackend) observerSatisfiable(assign map[Lit]bool) bool {
	if !b.observerEnabled || len(b.observerTuples) < 2 {
		return true
	}
	rows := make([][]bool, 0, len(b.observerTuples))
	for _, tuple := range b.observerTuples {
		row := make([]bool, len(tuple))
		full := true
		for i, l := range tuple {
			v := l
			neg := l < 0
			if neg {
				v = -v
			}
			val, known := assign[v]
			if !known {
				full = false
				break
			}
			if neg {
				val = !val
			}
			row[i] = val
		}
		if !full {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return lessRow(rows[i], rows[j]) })
	for i := 0; i+1 < len(rows); i++ {
		if equalRow(rows[i], rows[i+1]) {
			return false
		}
	}
	return true
}

func lessRow(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return !a[i] && b[i]
		}
	}
	return false
}

func equalRow(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var _ ObserverBackend = (*FakeBackend)(nil)
var _ Backend = (*GiniBackend)(nil)
