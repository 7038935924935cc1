package twosat

import "testing"

// S5: a ternary clause is rejected by the 2-SAT core.
func TestAddClauseRejectsNonBinary(t *testing.T) {
	s := NewSolver(3)
	x, y, z := PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)

	err := s.AddClause([]Literal{x, y, z})
	if err == nil {
		t.Fatal("expected an error for a ternary clause")
	}
	nb, ok := err.(*NotBinaryError)
	if !ok {
		t.Fatalf("error type = %T, want *NotBinaryError", err)
	}
	if nb.Size != 3 {
		t.Errorf("NotBinaryError.Size = %d, want 3", nb.Size)
	}
}

// S6: the 2-SAT triangle is unsatisfiable.
func TestSolveS6TriangleUnsat(t *testing.T) {
	s := NewSolver(3)
	a, b, c := 0, 1, 2

	add := func(l1, l2 Literal) {
		if err := s.AddClause([]Literal{l1, l2}); err != nil {
			t.Fatalf("AddClause: %v", err)
		}
	}
	add(PositiveLiteral(a), PositiveLiteral(b))
	add(NegativeLiteral(a), NegativeLiteral(b))
	add(PositiveLiteral(b), PositiveLiteral(c))
	add(NegativeLiteral(b), NegativeLiteral(c))
	add(PositiveLiteral(a), PositiveLiteral(c))
	add(NegativeLiteral(a), NegativeLiteral(c))

	result := s.Solve()
	if result.Satisfiable {
		t.Fatalf("Solve() = sat with model %v, want unsat", result.Model)
	}
}

func TestSolveSimpleImplicationChainSat(t *testing.T) {
	s := NewSolver(3)
	// (a v b) ^ (!a v c): satisfiable, e.g. a=F,b=T,c=anything.
	if err := s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(2)}); err != nil {
		t.Fatal(err)
	}

	result := s.Solve()
	if !result.Satisfiable {
		t.Fatal("Solve() = unsat, want sat")
	}

	a, b := result.Model[0], result.Model[1]
	if !(a || b) {
		t.Errorf("clause (a v b) violated by %v", result.Model)
	}
	c := result.Model[2]
	if !(!a || c) {
		t.Errorf("clause (!a v c) violated by %v", result.Model)
	}
}

func TestAddVariableExtendsGraph(t *testing.T) {
	s := NewSolver(0)
	v := s.AddVariable()
	if v != 0 {
		t.Fatalf("first AddVariable() = %d, want 0", v)
	}
	if err := s.AddClause([]Literal{PositiveLiteral(v), PositiveLiteral(v)}); err != nil {
		t.Fatalf("AddClause on a freshly added variable: %v", err)
	}
	result := s.Solve()
	if !result.Satisfiable || !result.Model[v] {
		t.Fatalf("(v v v) should force v=true, got %+v", result)
	}
}
