package engine

import (
	"sort"

	"github.com/mcaiger-go/mcaiger/internal/satsolver"
)

// sat runs the solver call of a query at bound k (step(k) or base(k)) and, in REFINE (and
// MIX once it has flipped to REFINE), lazily strengthens the problem until
// either a genuine counterexample to k-induction survives or the query goes
// UNSAT (spec.md §4.5).
func (ctx *Context) sat(k uint64) satsolver.Result {
	// step(k) and base(k) both call sat(k) for the same bound: record frame
	// k only the first time, so frames stays exactly [0,1,...,k] with no
	// duplicates (original_source/mcaiger.c:411-423's "if (k == nframes)
	// frames[nframes++] = k"). A duplicate entry would make findEqualFrames
	// compare a frame against itself, which is always model-equal.
	if uint64(len(ctx.frames)) == k {
		ctx.frames = append(ctx.frames, k)
	}

	for {
		res := ctx.Backend.Solve()

		switch res {
		case satsolver.Unsat:
			return satsolver.Unsat

		case satsolver.Unknown:
			// The observer's conflict budget ran out: MIX gives up on
			// observer mode for good and falls back to REFINE, which
			// re-derives the same guarantee lazily (spec.md §4.5, §9).
			if ctx.Cfg.Regime == RegimeMix && ctx.active == RegimeObserver {
				ctx.active = RegimeRefine
				if ob, ok := ctx.Backend.(satsolver.ObserverBackend); ok {
					ob.DisableObserver()
				}
				ctx.msg(1, "mix: conflict limit exhausted at k=%d, switching to refinement", k)
				ctx.bad(k) // assumptions are one-shot: re-assert before retrying
				continue
			}
			return satsolver.Unknown

		case satsolver.Sat:
			if ctx.active != RegimeRefine {
				return satsolver.Sat
			}
			if a, b, ok := ctx.findEqualFrames(); ok {
				ctx.diffs(a, b)
				ctx.refinements++
				ctx.bad(k) // assumptions are one-shot: re-assert before retrying
				continue
			}
			return satsolver.Sat
		}
	}
}

// findEqualFrames looks for two distinct encoded frames whose latch values
// agree in the current model and returns both. Frames are sorted
// lexicographically by their latch assignment (two-valued: Value reports an
// unassigned literal as false) so any two equal frames end up adjacent,
// making the scan linear in the number of frames encoded so far.
func (ctx *Context) findEqualFrames() (uint64, uint64, bool) {
	type row struct {
		k    uint64
		vals []bool
	}
	n := len(ctx.Circuit.Latches)
	rows := make([]row, len(ctx.frames))
	for idx, k := range ctx.frames {
		vals := make([]bool, n)
		for i := 0; i < n; i++ {
			vals[i] = ctx.Backend.Value(ctx.latch(k, i))
		}
		rows[idx] = row{k: k, vals: vals}
	}

	sort.Slice(rows, func(a, b int) bool { return lessRow(rows[a].vals, rows[b].vals) })

	for i := 1; i < len(rows); i++ {
		if equalRow(rows[i-1].vals, rows[i].vals) {
			return rows[i-1].k, rows[i].k, true
		}
	}
	return 0, 0, false
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
