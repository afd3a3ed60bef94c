package engine

import "github.com/mcaiger-go/mcaiger/pkg/aig"

// frame returns the base solver-variable index of frame k (spec.md §3).
// Variable 1 is reserved for the shared boolean constant. When the
// session's regime reserves diff-variable space (Config.Regime, frozen at
// session start — see resolved Open Question 2), an extra N*k*(k-1)/2
// variables are folded in ahead of frame k, one reserved block per earlier
// frame.
func (ctx *Context) frame(k uint64) uint64 {
	n := uint64(ctx.Circuit.MaxVar)
	base := k*n + 2
	if ctx.Cfg.Regime.usesDiffVars() {
		base += n * k * (k - 1) / 2
	}
	return base
}

// lit maps a circuit literal l at frame k to a signed solver literal.
//
// l<=1 addresses the shared boolean constant: lit(k,0) = -1, lit(k,1) = +1
// (spec.md §4.1's own sign convention for the constant, which is the
// polarity-mirror of original_source/mcaiger.c's construction — see
// DESIGN.md). For l>=2, the solver variable depends only on (k, l/2); its
// sign is l's own polarity bit.
func (ctx *Context) lit(k uint64, l aig.Lit) Lit {
	if l <= aig.True {
		if l == aig.True {
			return 1
		}
		return -1
	}
	v := uint64(l.Var())
	idx := Lit(ctx.frame(k) + (v - 1))
	if l.Sign() {
		return -idx
	}
	return idx
}

// input returns the signed solver literal for input i at frame k.
func (ctx *Context) input(k uint64, i int) Lit {
	return ctx.lit(k, ctx.Circuit.Inputs[i])
}

// latch returns the signed solver literal for latch i's current state at
// frame k.
func (ctx *Context) latch(k uint64, i int) Lit {
	return ctx.lit(k, ctx.Circuit.Latches[i].Cur)
}

// next returns the signed solver literal for latch i's next state computed
// at frame k.
func (ctx *Context) next(k uint64, i int) Lit {
	return ctx.lit(k, ctx.Circuit.Latches[i].Next)
}

// output returns the signed solver literal for the (sole) output at frame k.
func (ctx *Context) output(k uint64) Lit {
	return ctx.lit(k, ctx.Circuit.Output)
}
