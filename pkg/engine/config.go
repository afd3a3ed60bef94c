package engine

import "math"

// UnboundedK is MaxK's value when no bound was given on the command line —
// the spec's "unbounded word".
const UnboundedK = math.MaxUint64

// Config holds the session flags spec.md §3 calls out: base-only,
// induction-only, witness-requested, verbosity, maxk, plus the resolved
// simple-path regime. A Config is built once per run by cmd/mcaiger's
// ParseArgs (which owns flag-combination validation, since it still has the
// raw per-flag booleans needed to produce precise diagnostics) and never
// mutated afterwards — Context.active is what moves during MIX's one-way
// transition.
type Config struct {
	BaseOnly      bool
	InductionOnly bool
	Witness       bool
	Verbosity     int
	MaxK          uint64
	Regime        Regime
}

// DefaultConfig returns the flag defaults: ALL-DIFF-OBSERVER regime, no
// bound, base and induction both run, no witness, silent.
func DefaultConfig() Config {
	return Config{Regime: RegimeObserver, MaxK: UnboundedK}
}
