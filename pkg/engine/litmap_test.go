package engine

import (
	"testing"

	"github.com/mcaiger-go/mcaiger/internal/satsolver"
	"github.com/mcaiger-go/mcaiger/pkg/aig"
)

func newTestContext(t *testing.T, c *aig.Circuit, regime Regime) *Context {
	t.Helper()
	ctx, _, err := NewContext(c, satsolver.NewFake(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.Cfg.Regime = regime
	ctx.active = regime
	return ctx
}

func TestLitConstants(t *testing.T) {
	c := &aig.Circuit{MaxVar: 1, Latches: []aig.Latch{{Cur: 2, Next: 2}}}
	ctx := newTestContext(t, c, RegimeNone)

	if got := ctx.lit(0, aig.False); got != -1 {
		t.Errorf("lit(0, False) = %d, want -1", got)
	}
	if got := ctx.lit(5, aig.True); got != 1 {
		t.Errorf("lit(5, True) = %d, want 1", got)
	}
}

func TestLitFrameOffsetNoDiffVars(t *testing.T) {
	c := &aig.Circuit{MaxVar: 2, Latches: []aig.Latch{{Cur: 2, Next: 2}, {Cur: 4, Next: 4}}}
	ctx := newTestContext(t, c, RegimeNone)

	if got := ctx.frame(0); got != 2 {
		t.Errorf("frame(0) = %d, want 2", got)
	}
	if got := ctx.frame(1); got != 4 {
		t.Errorf("frame(1) = %d, want 4", got)
	}
	if got := ctx.latch(1, 1); got != 5 {
		t.Errorf("latch(1,1) = %d, want 5", got)
	}
}

func TestLitFrameOffsetReservesDiffVars(t *testing.T) {
	c := &aig.Circuit{MaxVar: 2, Latches: []aig.Latch{{Cur: 2, Next: 2}, {Cur: 4, Next: 4}}}
	ctx := newTestContext(t, c, RegimeDiff)

	// frame(2) must skip past the N*k*(k-1)/2 region reserved for diffs
	// between frames 0 and 1: N=2, k=2 -> 2*2*1/2 = 2 extra variables.
	plain := 2*2 + 2 // what frame(2) would be with no reservation
	if got := ctx.frame(2); got != uint64(plain+2) {
		t.Errorf("frame(2) = %d, want %d", got, plain+2)
	}
}

func TestLitNegativePolarity(t *testing.T) {
	c := &aig.Circuit{MaxVar: 1, Latches: []aig.Latch{{Cur: 2, Next: 3}}}
	ctx := newTestContext(t, c, RegimeNone)

	pos := ctx.latch(0, 0)
	neg := ctx.next(0, 0)
	if neg != -pos {
		t.Errorf("next(0,0) = %d, want %d (negation of latch)", neg, -pos)
	}
}
