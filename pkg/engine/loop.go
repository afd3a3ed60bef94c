package engine

import "github.com/mcaiger-go/mcaiger/internal/satsolver"

// Verdict is the outcome of a Run: the printed token plus the process exit
// code spec.md §6 assigns to it.
type Verdict struct {
	Token    string // "0", "1", or "2"
	ExitCode int
	Witness  *Stimulus // non-nil only when Token=="1" and Cfg.Witness was set
}

const observerSwitchThreshold = 10000

// Run drives the main search loop of spec.md §4.6 from k=0 up to
// (inclusive) Cfg.MaxK, returning as soon as a verdict is reached.
func (ctx *Context) Run() Verdict {
	for k := uint64(0); k <= ctx.Cfg.MaxK; k++ {
		ctx.maybeSwitchToRefinement()

		ctx.connect(k)
		ctx.encode(k)
		ctx.simple(k)

		if !ctx.Cfg.BaseOnly {
			if ctx.step(k) {
				ctx.msg(1, "property proved k-inductive at k=%d", k)
				return Verdict{Token: "0", ExitCode: 20}
			}
		} else if ctx.globallyInconsistent(k) {
			return Verdict{Token: "0", ExitCode: 20}
		}

		if !ctx.Cfg.InductionOnly {
			if ctx.base(k) {
				ctx.msg(1, "counterexample found at k=%d", k)
				v := Verdict{Token: "1", ExitCode: 10}
				if ctx.Cfg.Witness {
					v.Witness = ctx.extractWitness(k)
				}
				return v
			}
		}

		if k == ctx.Cfg.MaxK {
			break
		}
	}
	return Verdict{Token: "2", ExitCode: 0}
}

// maybeSwitchToRefinement implements spec.md §4.6 step 1: MIX gives up on
// the observer once it has burned through 10 000 conflicts, independent of
// any single query's own smaller conflict-limit increments (query.go).
func (ctx *Context) maybeSwitchToRefinement() {
	if ctx.Cfg.Regime != RegimeMix || ctx.active != RegimeObserver {
		return
	}
	ob, ok := ctx.Backend.(satsolver.ObserverBackend)
	if !ok {
		return
	}
	ctx.observerConflicts = ob.ObserverConflicts()
	if ctx.observerConflicts >= observerSwitchThreshold {
		ob.DisableObserver()
		ctx.active = RegimeRefine
		ctx.msg(1, "mix: %d observer conflicts, switching to refinement", ctx.observerConflicts)
	}
}

// globallyInconsistent reports whether the base-only encoding (permanent
// initial-state units plus every frame's transition relation) is already
// unsatisfiable on its own, with no output assumption needed: spec.md §4.6
// step 4's "solver is already globally inconsistent" case.
func (ctx *Context) globallyInconsistent(k uint64) bool {
	return ctx.Backend.Solve() == satsolver.Unsat
}
