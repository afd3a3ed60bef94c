package engine

import "strings"

// Stimulus is a rendered counterexample: Lines[i] holds num_inputs
// characters ('0', '1', or 'x') giving input(i, ·) for i=0..k (spec.md §6).
type Stimulus struct {
	Lines []string
}

// String joins the stimulus into the newline-terminated block cmd/mcaiger
// writes to stdout after the "1" verdict token.
func (s *Stimulus) String() string {
	var b strings.Builder
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// extractWitness reads the model found by the most recent base(k) call and
// renders it into a Stimulus: one line per frame 0..k, one character per
// input. A solver that cannot distinguish "assigned false" from "never
// decided" reports both as false. GiniBackend is such a solver (gini exposes
// no unassigned-variable query), so in production every input renders as
// '0' or '1'; only FakeBackend implements decidedBackend, so the 'x' case
// is exercised by tests only (see DESIGN.md).
func (ctx *Context) extractWitness(k uint64) *Stimulus {
	n := len(ctx.Circuit.Inputs)
	lines := make([]string, k+1)
	decider, tracksDecisions := ctx.Backend.(decidedBackend)

	for frame := uint64(0); frame <= k; frame++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			lit := ctx.input(frame, i)
			switch {
			case tracksDecisions && !decider.Decided(lit):
				b.WriteByte('x')
			case ctx.Backend.Value(lit):
				b.WriteByte('1')
			default:
				b.WriteByte('0')
			}
		}
		lines[frame] = b.String()
	}
	return &Stimulus{Lines: lines}
}

// decidedBackend is an optional capability: a Backend that can report
// whether a given literal's value in the last model was actually decided by
// the search, as opposed to defaulted. Unexercised inputs in a bounded
// counterexample render as 'x' rather than an arbitrary '0'.
type decidedBackend interface {
	Decided(lit Lit) bool
}
