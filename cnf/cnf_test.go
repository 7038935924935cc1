package cnf

import "testing"

func TestLiteralEncoding(t *testing.T) {
	v := Variable(5)
	pos, neg := Pos(v), Neg(v)

	if pos.Var() != v || neg.Var() != v {
		t.Fatalf("Pos/Neg should preserve the variable: got %v, %v", pos.Var(), neg.Var())
	}
	if !pos.IsPositive() || neg.IsPositive() {
		t.Fatalf("IsPositive() mismatched: pos=%v neg=%v", pos.IsPositive(), neg.IsPositive())
	}
	if pos.Opposite() != neg || neg.Opposite() != pos {
		t.Fatalf("Opposite() is not involutive between Pos/Neg")
	}
}

func TestEvaluateSatisfyingAssignment(t *testing.T) {
	f := New(2)
	f.AddClause(Pos(0), Pos(1))
	f.AddClause(Neg(0), Neg(1))

	if !f.Evaluate([]bool{true, false}) {
		t.Error("expected {x0=T,x1=F} to satisfy the formula")
	}
	if f.Evaluate([]bool{true, true}) {
		t.Error("expected {x0=T,x1=T} to violate (!x0 v !x1)")
	}
}

func TestEvaluateEmptyClauseIsUnsatisfiable(t *testing.T) {
	f := New(1)
	f.AddClause()
	if f.Evaluate([]bool{true}) {
		t.Error("a formula containing the empty clause can never be satisfied")
	}
}

func TestIsBinary(t *testing.T) {
	f := New(3)
	f.AddClause(Pos(0), Pos(1))
	f.AddClause(Neg(1), Pos(2))
	if !f.IsBinary() {
		t.Error("IsBinary() = false for an all-binary formula")
	}

	f.AddClause(Pos(0), Pos(1), Pos(2))
	if f.IsBinary() {
		t.Error("IsBinary() = true despite a ternary clause")
	}
}

func TestVariables(t *testing.T) {
	f := New(4)
	vars := f.Variables()
	if len(vars) != 4 {
		t.Fatalf("len(Variables()) = %d, want 4", len(vars))
	}
	for i, v := range vars {
		if int(v) != i {
			t.Errorf("Variables()[%d] = %d, want %d", i, v, i)
		}
	}
}
