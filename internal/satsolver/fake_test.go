package satsolver

import "testing"

func TestFakeBackendUnitPropagation(t *testing.T) {
	b := NewFake()
	b.Add(1)    // x1
	b.Add(-1, 2) // x1 -> x2

	if res := b.Solve(); res != Sat {
		t.Fatalf("Solve() = %v, want Sat", res)
	}
	if !b.Value(1) || !b.Value(2) {
		t.Errorf("expected x1 and x2 both true, got x1=%v x2=%v", b.Value(1), b.Value(2))
	}
}

func TestFakeBackendDetectsUnsat(t *testing.T) {
	b := NewFake()
	b.Add(1)
	b.Add(-1)

	if res := b.Solve(); res != Unsat {
		t.Fatalf("Solve() = %v, want Unsat", res)
	}
}

func TestFakeBackendAssumptionsAreOneShot(t *testing.T) {
	b := NewFake()
	b.Add(1, 2) // x1 or x2

	b.Assume(-1, -2) // forces both false, contradicting the clause
	if res := b.Solve(); res != Unsat {
		t.Fatalf("first Solve() = %v, want Unsat", res)
	}

	// No assumption this time: the permanent clause alone is satisfiable.
	if res := b.Solve(); res != Sat {
		t.Fatalf("second Solve() = %v, want Sat (assumptions must not persist)", res)
	}
}

func TestFakeBackendDecided(t *testing.T) {
	b := NewFake()
	b.Add(1, 2, 3)
	b.Assume(1)

	if res := b.Solve(); res != Sat {
		t.Fatalf("Solve() = %v, want Sat", res)
	}
	if !b.Decided(1) {
		t.Errorf("variable 1 was assumed, should be decided")
	}
}

func TestFakeBackendObserverRejectsDuplicateTuples(t *testing.T) {
	b := NewFake()
	b.Add(1)
	b.Add(2)
	b.AddObserverTuple([]Lit{1})
	b.AddObserverTuple([]Lit{2})

	// Both x1 and x2 are forced true, so the two observed 1-tuples are
	// forced equal: the all-different observer must reject this.
	if res := b.Solve(); res != Unsat {
		t.Fatalf("Solve() = %v, want Unsat (observer should reject equal tuples)", res)
	}
}

func TestFakeBackendDisableObserverLiftsConstraint(t *testing.T) {
	b := NewFake()
	b.Add(1)
	b.Add(2)
	b.AddObserverTuple([]Lit{1})
	b.AddObserverTuple([]Lit{2})
	b.DisableObserver()

	if res := b.Solve(); res != Sat {
		t.Fatalf("Solve() = %v, want Sat once the observer is disabled", res)
	}
}

var _ ObserverBackend = (*FakeBackend)(nil)
