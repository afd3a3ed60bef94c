package engine

import "github.com/mcaiger-go/mcaiger/internal/satsolver"

// bad assumes the output is true at frame k: the property is violated.
func (ctx *Context) bad(k uint64) {
	ctx.Backend.Assume(ctx.output(k))
	ctx.report(2, k, "bad")
}

// init asserts every latch is zero at frame 0, the "all latches start at
// zero" semantics spec.md mandates. Under -b, this is made permanent (a
// unit clause per latch, since no later base query at a different bound
// ever revisits frame 0's meaning); otherwise it's a one-shot assumption
// re-applied by every base() call (resolved Open Question 1, DESIGN.md).
func (ctx *Context) init(k uint64) {
	if ctx.Cfg.BaseOnly && k != 0 {
		return
	}
	for i := range ctx.Circuit.Latches {
		l := -ctx.latch(0, i)
		if ctx.Cfg.BaseOnly {
			unary(ctx.Backend, l)
		} else {
			ctx.Backend.Assume(l)
		}
	}
	ctx.report(2, k, "init")
}

// base runs the base-case query at bound k: is the property reachable in
// exactly k steps from the initial state? (spec.md §4.4). The observer, if
// present, is disabled for the duration: initial-state assumptions must not
// be constrained by it.
func (ctx *Context) base(k uint64) bool {
	ob, hasObserver := ctx.Backend.(satsolver.ObserverBackend)
	if hasObserver {
		ob.DisableObserver()
	}

	ctx.init(k)
	ctx.bad(k)
	ctx.report(1, k, "base")
	res := ctx.sat(k) == satsolver.Sat

	if hasObserver {
		ob.EnableObserver()
	}
	return res
}

// step runs the step-case query at bound k: is the bad output unreachable
// at frame k given it held at no earlier frame and the simple-path
// constraints in force? (spec.md §4.4). Returns true when the query is
// UNSAT, i.e. the property is k-inductive.
func (ctx *Context) step(k uint64) bool {
	if ctx.Cfg.Regime == RegimeMix && ctx.active == RegimeObserver {
		if ob, ok := ctx.Backend.(satsolver.ObserverBackend); ok {
			ctx.observerLimit = ob.ObserverConflicts() + 1000
			ob.SetObserverConflictLimit(ctx.observerLimit)
		}
	}

	ctx.bad(k)
	ctx.report(1, k, "step")
	return ctx.sat(k) == satsolver.Unsat
}
