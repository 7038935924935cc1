// Package gen builds synthetic CNF instances for benchmarking and
// regression testing: pigeonhole principle formulas, uniform random
// k-SAT, and small hand-shaped unsatisfiable cores. It is a thin script
// over cnf.Formula, not part of the core solver.
package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/cnfkit/solver/cnf"
)

// Pigeonhole builds the PHP(pigeons->holes) formula: pigeons variables
// per hole encode "pigeon p is in hole h", with clauses forcing every
// pigeon into some hole and forbidding two pigeons from sharing one. It
// is unsatisfiable whenever pigeons > holes.
func Pigeonhole(pigeons, holes int) *cnf.Formula {
	v := func(p, h int) cnf.Variable {
		return cnf.Variable(p*holes + h)
	}
	f := cnf.New(pigeons * holes)

	for p := 0; p < pigeons; p++ {
		lits := make([]cnf.Literal, holes)
		for h := 0; h < holes; h++ {
			lits[h] = cnf.Pos(v(p, h))
		}
		f.AddClause(lits...)
	}

	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				f.AddClause(cnf.Neg(v(p1, h)), cnf.Neg(v(p2, h)))
			}
		}
	}
	return f
}

// RandomKSAT builds a uniform random k-SAT instance: numClauses clauses,
// each k literals drawn (without repeated variables within a clause)
// from numVars variables with independently randomized polarity. It
// makes no satisfiability guarantee; it's meant to exercise the solver
// under realistic propagation/conflict load, not as a decidability
// fixture.
func RandomKSAT(numVars, numClauses, k int, rng *rand.Rand) *cnf.Formula {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}
	f := cnf.New(numVars)

	for c := 0; c < numClauses; c++ {
		chosen := make(map[cnf.Variable]bool, k)
		lits := make([]cnf.Literal, 0, k)
		for len(lits) < k && len(lits) < numVars {
			v := cnf.Variable(rng.IntN(numVars))
			if chosen[v] {
				continue
			}
			chosen[v] = true
			if rng.IntN(2) == 0 {
				lits = append(lits, cnf.Pos(v))
			} else {
				lits = append(lits, cnf.Neg(v))
			}
		}
		f.AddClause(lits...)
	}
	return f
}

// UnsatCore returns one of a small catalog of hand-shaped minimal
// unsatisfiable formulas, identified by name. It panics on an unknown
// name: the catalog is meant to be called with a literal from the list
// below, not a user-supplied string.
func UnsatCore(name string) *cnf.Formula {
	switch name {
	case "empty-clause":
		f := cnf.New(1)
		f.AddClause()
		return f
	case "unit-conflict":
		f := cnf.New(1)
		f.AddClause(cnf.Pos(0))
		f.AddClause(cnf.Neg(0))
		return f
	case "triangle":
		// (a v b) ^ (!a v !b) ^ (b v c) ^ (!b v !c) ^ (a v c) ^ (!a v !c)
		// forces a != b, b != c, and a != c simultaneously, which has no
		// satisfying assignment over {a, b, c}.
		f := cnf.New(3)
		a, b, c := cnf.Variable(0), cnf.Variable(1), cnf.Variable(2)
		f.AddClause(cnf.Pos(a), cnf.Pos(b))
		f.AddClause(cnf.Neg(a), cnf.Neg(b))
		f.AddClause(cnf.Pos(b), cnf.Pos(c))
		f.AddClause(cnf.Neg(b), cnf.Neg(c))
		f.AddClause(cnf.Pos(a), cnf.Pos(c))
		f.AddClause(cnf.Neg(a), cnf.Neg(c))
		return f
	default:
		panic(fmt.Sprintf("gen: unknown unsat core %q", name))
	}
}
