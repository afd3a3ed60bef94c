package engine

import (
	"fmt"
	"io"

	"github.com/mcaiger-go/mcaiger/internal/satsolver"
	"github.com/mcaiger-go/mcaiger/pkg/aig"
)

// Lit is the engine's solver-literal type: a thin alias over satsolver.Lit
// so callers outside internal/satsolver never need to import it directly.
type Lit = satsolver.Lit

// Context is the single mutable value every component in this package is
// threaded through explicitly, replacing the teacher's (and the original
// C tool's) global state: the circuit, the SAT backend, the session
// configuration, and the bookkeeping the refinement loop and regime
// transition need. There is exactly one Context per run.
type Context struct {
	Circuit *aig.Circuit
	Backend satsolver.Backend
	Cfg     Config

	// active is the regime actually in effect right now. It starts equal
	// to Cfg.Regime except that MIX starts behaving like OBSERVER and may
	// transition, one-way, to REFINE. Cfg.Regime itself is never mutated:
	// it is what frame() consults to decide whether diff-variable space is
	// reserved (resolved Open Question 2, DESIGN.md).
	active Regime

	// frames is the append-only list of frame indices encoded so far,
	// consulted by the refinement loop to sort and compare satisfying
	// assignments across frames (spec.md §3). Go's slice append already
	// gives amortized-doubling growth; no manual resizing is needed.
	frames []uint64

	refinements       int
	observerConflicts int
	observerLimit     int

	out io.Writer // diagnostics, prefixed "[mcaiger] " like the original tool
}

// NewContext builds a fresh engine Context. It resolves the one
// backend-dependent Open Question up front: if the requested regime needs
// an all-different observer and backend doesn't implement one, OBSERVER
// degrades to CLASSICAL-DIFF (aliased, per spec.md §9's own prescribed
// fallback) and MIX is rejected outright, since MIX's whole premise is
// starting in observer mode and falling back later.
func NewContext(c *aig.Circuit, backend satsolver.Backend, cfg Config) (*Context, io.Writer, error) {
	_, hasObserver := backend.(satsolver.ObserverBackend)

	switch cfg.Regime {
	case RegimeObserver:
		if !hasObserver {
			cfg.Regime = RegimeDiff
		}
	case RegimeMix:
		if !hasObserver {
			return nil, nil, fmt.Errorf("mix regime requires an all-different observer in the SAT backend; this backend has none (use -r or -d instead)")
		}
	}

	ctx := &Context{
		Circuit:       c,
		Backend:       backend,
		Cfg:           cfg,
		observerLimit: -1,
	}
	ctx.active = ctx.Cfg.Regime
	if ctx.active == RegimeMix {
		ctx.active = RegimeObserver
	}
	return ctx, nil, nil
}

// SetOutput directs diagnostics to w; nil disables them.
func (ctx *Context) SetOutput(w io.Writer) { ctx.out = w }

// msg prints a diagnostic line if the session's verbosity allows it,
// mirroring original_source/mcaiger.c's msg().
func (ctx *Context) msg(level int, format string, args ...any) {
	if ctx.out == nil || ctx.Cfg.Verbosity < level {
		return
	}
	fmt.Fprintf(ctx.out, "[mcaiger] "+format+"\n", args...)
}

// report logs one phase's solver statistics, mirroring report() in
// original_source/mcaiger.c.
func (ctx *Context) report(level int, k uint64, phase string) {
	ctx.msg(level, "%4d %-10s %10d %11d %11d", k, phase,
		ctx.Backend.Variables(), ctx.Backend.AddedClauses(), ctx.observerConflicts)
}

// DumpStats prints final run statistics; called both at normal completion
// and from the signal handler installed by cmd/mcaiger.
func (ctx *Context) DumpStats() {
	if ctx.active == RegimeRefine || ctx.Cfg.Regime == RegimeMix {
		ctx.msg(1, "%d refinements of simple path constraints", ctx.refinements)
	}
}
