package engine

import "github.com/mcaiger-go/mcaiger/internal/satsolver"

// simple dispatches to the active regime's constraint emission for frame k
// (spec.md §4.3). REFINE emits nothing here: its work happens lazily inside
// sat() once a step-case model is in hand.
func (ctx *Context) simple(k uint64) {
	switch ctx.active {
	case RegimeNone, RegimeRefine:
		return
	case RegimeDiff:
		ctx.diffsk(k)
	case RegimeObserver:
		ctx.ado(k)
	}
}

// diffVar returns the solver variable reserved for d_{k,l,i}, the
// difference-witness variable for latch i between frames l and k (l<k). Its
// index lives in the space frame(k+1) reserves ahead of frame k+1 (spec.md
// §4.3).
func (ctx *Context) diffVar(k, l uint64, i int) Lit {
	n := uint64(ctx.Circuit.MaxVar)
	return Lit(ctx.frame(k+1) - uint64(i) - l*n - 1)
}

// diffs emits the CNF forcing frames k and l to disagree on at least one
// latch: for each latch i, d_{k,l,i} implies latch(k,i) != latch(l,i), and
// at least one d_{k,l,i} must hold. Frame indices may arrive in either
// order; the witness variables are always indexed with the larger frame
// first.
func (ctx *Context) diffs(k, l uint64) {
	if l > k {
		k, l = l, k
	}

	n := len(ctx.Circuit.Latches)
	ds := make([]Lit, n)
	for i := 0; i < n; i++ {
		d := ctx.diffVar(k, l, i)
		ds[i] = d
		ternary(ctx.Backend, ctx.latch(l, i), ctx.latch(k, i), -d)
		ternary(ctx.Backend, -ctx.latch(l, i), -ctx.latch(k, i), -d)
	}
	ctx.Backend.Add(ds...)

	ctx.msg(2, "diffs %d %d", l, k)
}

// diffsk emits diffs(k, l) for every earlier frame l, the eager
// CLASSICAL-DIFF encoding's O(k^2 * N) cost at bound k.
func (ctx *Context) diffsk(k uint64) {
	if k == 0 {
		return
	}
	for l := uint64(0); l < k; l++ {
		ctx.diffs(k, l)
	}
	ctx.report(2, k, "diffsk")
}

// ado feeds frame k's latch tuple to the backend's all-different observer.
// Only reachable when the backend implements ObserverBackend (NewContext
// degrades OBSERVER to CLASSICAL-DIFF otherwise).
func (ctx *Context) ado(k uint64) {
	ob := ctx.Backend.(satsolver.ObserverBackend)
	tuple := make([]Lit, len(ctx.Circuit.Latches))
	for i := range ctx.Circuit.Latches {
		tuple[i] = ctx.latch(k, i)
	}
	ob.AddObserverTuple(tuple)
	ctx.report(2, k, "ado")
}
