package satsolver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// GiniBackend wraps github.com/irifrance/gini behind the Backend interface.
// It deliberately does not implement ObserverBackend: gini has no
// all-different-observer primitive, only PicoSAT does (see ObserverBackend).
type GiniBackend struct {
	s           *gini.Gini
	nClauses    int
	nVars       int
	assumptions []z.Lit
}

// NewGini constructs a fresh, empty GiniBackend.
func NewGini() *GiniBackend {
	return &GiniBackend{s: gini.New()}
}

func (b *GiniBackend) toGini(l Lit) z.Lit {
	v := l
	neg := false
	if v < 0 {
		v = -v
		neg = true
	}
	if int(v) > b.nVars {
		b.nVars = int(v)
	}
	lit := z.Var(v).Pos()
	if neg {
		lit = lit.Not()
	}
	return lit
}

// Add emits one permanent clause, terminated for gini with the implicit 0
// sentinel Add requires between clauses.
func (b *GiniBackend) Add(lits ...Lit) {
	for _, l := range lits {
		b.s.Add(b.toGini(l))
	}
	b.s.Add(0)
	b.nClauses++
}

// Assume buffers one-shot assumption literals; they are handed to gini and
// cleared the next time Solve runs.
func (b *GiniBackend) Assume(lits ...Lit) {
	for _, l := range lits {
		b.assumptions = append(b.assumptions, b.toGini(l))
	}
}

func (b *GiniBackend) Solve() Result {
	if len(b.assumptions) > 0 {
		b.s.Assume(b.assumptions...)
	}
	b.assumptions = b.assumptions[:0]

	switch b.s.Solve() {
	case 1:
		return Sat
	case -1:
		return Unsat
	default:
		return Unknown
	}
}

func (b *GiniBackend) Value(l Lit) bool {
	return b.s.Value(b.toGini(l))
}

func (b *GiniBackend) Variables() int {
	return b.nVars
}

func (b *GiniBackend) AddedClauses() int {
	return b.nClauses
}
