package sat

import "testing"

func lit(s *Solver, v int, positive bool) Literal {
	if positive {
		return s.PositiveLiteral(v)
	}
	return s.NegativeLiteral(v)
}

// S1: (x v y) ^ (!x v z) ^ (!y v !z) is satisfiable.
func TestSolveS1ThreeVariableSat(t *testing.T) {
	s := NewDefaultSolver()
	x, y, z := s.AddVariable(), s.AddVariable(), s.AddVariable()
	_ = s.AddClause([]Literal{lit(s, x, true), lit(s, y, true)})
	_ = s.AddClause([]Literal{lit(s, x, false), lit(s, z, true)})
	_ = s.AddClause([]Literal{lit(s, y, false), lit(s, z, false)})

	status := s.Solve()
	if status != StatusSat {
		t.Fatalf("Solve() = %v, want StatusSat", status)
	}
	model := s.Models[len(s.Models)-1]
	assignment := []bool{model[x], model[y], model[z]}
	if !(assignment[0] || assignment[1]) {
		t.Errorf("clause (x v y) violated by %v", assignment)
	}
	if !(!assignment[0] || assignment[2]) {
		t.Errorf("clause (!x v z) violated by %v", assignment)
	}
	if !(!assignment[1] || !assignment[2]) {
		t.Errorf("clause (!y v !z) violated by %v", assignment)
	}
}

// S2: (a v b) ^ (!a v b) ^ (a v !b) ^ (!a v !b) is unsatisfiable.
func TestSolveS2TwoVariableUnsat(t *testing.T) {
	s := NewDefaultSolver()
	a, b := s.AddVariable(), s.AddVariable()
	_ = s.AddClause([]Literal{lit(s, a, true), lit(s, b, true)})
	_ = s.AddClause([]Literal{lit(s, a, false), lit(s, b, true)})
	_ = s.AddClause([]Literal{lit(s, a, true), lit(s, b, false)})
	_ = s.AddClause([]Literal{lit(s, a, false), lit(s, b, false)})

	if status := s.Solve(); status != StatusUnsat {
		t.Fatalf("Solve() = %v, want StatusUnsat", status)
	}
}

// S3: pigeonhole PHP(3->2) is unsatisfiable.
func TestSolveS3PigeonholeUnsat(t *testing.T) {
	s := NewDefaultSolver()
	const pigeons, holes = 3, 2
	v := make([][]int, pigeons)
	for p := range v {
		v[p] = make([]int, holes)
		for h := range v[p] {
			v[p][h] = s.AddVariable()
		}
	}
	for p := 0; p < pigeons; p++ {
		clause := make([]Literal, holes)
		for h := 0; h < holes; h++ {
			clause[h] = lit(s, v[p][h], true)
		}
		_ = s.AddClause(clause)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				_ = s.AddClause([]Literal{lit(s, v[p1][h], false), lit(s, v[p2][h], false)})
			}
		}
	}

	if status := s.Solve(); status != StatusUnsat {
		t.Fatalf("Solve() = %v, want StatusUnsat", status)
	}
}

// S4: (a) ^ (!a v b) ^ (!b v c) ^ (!c v d) is satisfiable purely by unit
// propagation: no decision should ever be required.
func TestSolveS4UnitChainNoDecisions(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c, d := s.AddVariable(), s.AddVariable(), s.AddVariable(), s.AddVariable()
	_ = s.AddClause([]Literal{lit(s, a, true)})
	_ = s.AddClause([]Literal{lit(s, a, false), lit(s, b, true)})
	_ = s.AddClause([]Literal{lit(s, b, false), lit(s, c, true)})
	_ = s.AddClause([]Literal{lit(s, c, false), lit(s, d, true)})

	status := s.Solve()
	if status != StatusSat {
		t.Fatalf("Solve() = %v, want StatusSat", status)
	}
	model := s.Models[len(s.Models)-1]
	for i, name := range []string{"a", "b", "c", "d"} {
		if !model[i] {
			t.Errorf("%s = false, want true", name)
		}
	}
	if got := s.Stats().Decisions; got != 0 {
		t.Errorf("Decisions = %d, want 0 (fully forced by propagation)", got)
	}
}

func TestSolveLatchesUnsatOnResolve(t *testing.T) {
	s := NewDefaultSolver()
	_ = s.AddClause(nil)
	if got := s.Solve(); got != StatusUnsat {
		t.Fatalf("Solve() = %v, want StatusUnsat", got)
	}
	if got := s.Solve(); got != StatusUnsat {
		t.Fatalf("second Solve() = %v, want StatusUnsat (latched)", got)
	}
}

func TestSolveRespectsConflictBudget(t *testing.T) {
	opts := DefaultOptions
	opts.ConflictBudget = 0
	s := NewSolver(opts)

	// A formula that requires at least one conflict to resolve.
	a, b := s.AddVariable(), s.AddVariable()
	_ = s.AddClause([]Literal{lit(s, a, true), lit(s, b, true)})
	_ = s.AddClause([]Literal{lit(s, a, false), lit(s, b, true)})
	_ = s.AddClause([]Literal{lit(s, a, true), lit(s, b, false)})
	_ = s.AddClause([]Literal{lit(s, a, false), lit(s, b, false)})

	if got := s.Solve(); got != StatusUnknown {
		t.Fatalf("Solve() = %v, want StatusUnknown under a zero conflict budget", got)
	}
}
