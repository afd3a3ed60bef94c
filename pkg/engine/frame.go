package engine

import "github.com/mcaiger-go/mcaiger/internal/satsolver"

// connect wires latch i's next-state literal at frame k-1 to its
// current-state literal at frame k, for every latch. A no-op at k=0, since
// there is no frame -1 (spec.md §4.2).
func (ctx *Context) connect(k uint64) {
	if k == 0 {
		return
	}
	for i := range ctx.Circuit.Latches {
		eq(ctx.Backend, ctx.next(k-1, i), ctx.latch(k, i))
	}
	ctx.report(2, k, "connect")
}

// encode emits the transition relation's CNF for frame k: the boolean
// constant at k=0, every AND gate's Plaisted-Greenbaum equivalence, and, for
// k>=1, the k-induction hypothesis clauses (spec.md §4.2): some latch must
// be nonzero at frame k, and the output must be false at the previous
// frame.
func (ctx *Context) encode(k uint64) {
	if k == 0 {
		unary(ctx.Backend, ctx.lit(k, 1))
	}

	for _, a := range ctx.Circuit.Ands {
		and(ctx.Backend, ctx.lit(k, a.LHS), ctx.lit(k, a.RHS0), ctx.lit(k, a.RHS1))
	}

	if k > 0 {
		lits := make([]Lit, len(ctx.Circuit.Latches))
		for i := range ctx.Circuit.Latches {
			lits[i] = ctx.latch(k, i)
		}
		ctx.Backend.Add(lits...)

		unary(ctx.Backend, -ctx.output(k-1))
	}

	ctx.report(2, k, "encode")
}

func unary(b satsolver.Backend, a Lit) { b.Add(a) }

func binary(b satsolver.Backend, a, c Lit) { b.Add(a, c) }

func ternary(b satsolver.Backend, a, c, d Lit) { b.Add(a, c, d) }

// and emits the three CNF clauses of lhs <-> rhs0 & rhs1.
func and(b satsolver.Backend, lhs, rhs0, rhs1 Lit) {
	binary(b, -lhs, rhs0)
	binary(b, -lhs, rhs1)
	ternary(b, lhs, -rhs0, -rhs1)
}

// eq emits the two CNF clauses of lhs <-> rhs.
func eq(b satsolver.Backend, lhs, rhs Lit) {
	binary(b, -lhs, rhs)
	binary(b, lhs, -rhs)
}
