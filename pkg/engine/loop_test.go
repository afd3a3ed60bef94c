package engine

import (
	"testing"

	"github.com/mcaiger-go/mcaiger/internal/satsolver"
)

func TestMaybeSwitchToRefinementNoOpOutsideMix(t *testing.T) {
	c := oneLatchToggleCircuit()
	ctx := newTestContext(t, c, RegimeObserver)

	ctx.maybeSwitchToRefinement()
	if ctx.active != RegimeObserver {
		t.Errorf("active = %v, want unchanged RegimeObserver (regime isn't MIX)", ctx.active)
	}
}

func TestMaybeSwitchToRefinementSwitchesAtThreshold(t *testing.T) {
	c := oneLatchToggleCircuit()
	ctx := newTestContext(t, c, RegimeMix)
	ctx.active = RegimeObserver

	fb, ok := ctx.Backend.(*satsolver.FakeBackend)
	if !ok {
		t.Fatal("expected *satsolver.FakeBackend")
	}
	// Two observer tuples pinned to the same forced-true variable conflict
	// on every Solve call; a generous conflict limit lets the counter climb
	// past the switch threshold without ever reporting Unknown itself.
	fb.Add(1)
	fb.AddObserverTuple([]Lit{1})
	fb.AddObserverTuple([]Lit{1})
	fb.SetObserverConflictLimit(2 * observerSwitchThreshold)
	for i := 0; i < observerSwitchThreshold; i++ {
		fb.Solve()
	}

	ctx.maybeSwitchToRefinement()
	if ctx.active != RegimeRefine {
		t.Errorf("active = %v, want RegimeRefine once the observer conflict budget is exhausted", ctx.active)
	}
}

func TestMaybeSwitchToRefinementBelowThresholdStaysObserver(t *testing.T) {
	c := oneLatchToggleCircuit()
	ctx := newTestContext(t, c, RegimeMix)
	ctx.active = RegimeObserver

	ctx.maybeSwitchToRefinement()
	if ctx.active != RegimeObserver {
		t.Errorf("active = %v, want RegimeObserver (no conflicts yet)", ctx.active)
	}
}

func TestGloballyInconsistentReflectsSolverResult(t *testing.T) {
	c := constantCircuit(0) // aig.False
	ctx := newTestContext(t, c, RegimeNone)
	ctx.encode(0)

	if ctx.globallyInconsistent(0) {
		t.Error("globallyInconsistent(0) = true, want false: the constant-false circuit's frame-0 encoding alone is satisfiable")
	}
}
