package engine

import "fmt"

// Regime selects how the simple-path (no-two-frames-alike) constraint is
// enforced. Exactly one is active for a given run; MIX transitions into
// REFINEMENT partway through (see Context.maybeSwitchToRefinement and
// Context.sat).
type Regime int

const (
	RegimeNone Regime = iota
	RegimeObserver
	RegimeDiff
	RegimeRefine
	RegimeMix
)

func (r Regime) String() string {
	switch r {
	case RegimeNone:
		return "none"
	case RegimeObserver:
		return "all-diff-observer"
	case RegimeDiff:
		return "classical-diff"
	case RegimeRefine:
		return "refinement"
	case RegimeMix:
		return "mix"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// usesDiffVars reports whether frame(k)'s reserved diff-variable region must
// be allocated for this regime. MIX reserves the region unconditionally,
// because it may transition into REFINEMENT — which needs it — at any
// frame, and the allocation formula is frozen at session start (DESIGN.md,
// resolved Open Question 2).
func (r Regime) usesDiffVars() bool {
	return r == RegimeDiff || r == RegimeRefine || r == RegimeMix
}
