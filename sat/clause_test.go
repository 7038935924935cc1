package sat

import "testing"

func TestAddClauseUnitPropagates(t *testing.T) {
	s := NewDefaultSolver()
	a := s.AddVariable()
	_ = s.AddClause([]Literal{PositiveLiteral(a)})

	if conflict := s.Propagate(); conflict != nil {
		t.Fatalf("unexpected conflict propagating a unit clause")
	}
	if s.VarValue(a) != True {
		t.Fatalf("VarValue(a) = %v, want True", s.VarValue(a))
	}
}

func TestAddClauseTautologyIsDropped(t *testing.T) {
	s := NewDefaultSolver()
	a := s.AddVariable()
	_ = s.AddClause([]Literal{PositiveLiteral(a), NegativeLiteral(a)})

	if s.NumConstraints() != 0 {
		t.Fatalf("tautological clause should not be retained, got %d constraints", s.NumConstraints())
	}
}

func TestAddClauseEmptyMarksUnsat(t *testing.T) {
	s := NewDefaultSolver()
	_ = s.AddClause(nil)

	if got := s.Solve(); got != StatusUnsat {
		t.Fatalf("Solve() = %v, want StatusUnsat after an empty clause", got)
	}
}

func TestAddClauseDuplicateLiteralsCollapse(t *testing.T) {
	s := NewDefaultSolver()
	a := s.AddVariable()
	b := s.AddVariable()
	_ = s.AddClause([]Literal{PositiveLiteral(a), PositiveLiteral(a), PositiveLiteral(b)})

	if s.NumConstraints() != 1 {
		t.Fatalf("NumConstraints() = %d, want 1", s.NumConstraints())
	}
	if got := len(s.constraints[0].Literals()); got != 2 {
		t.Fatalf("clause should collapse duplicate literals to 2, got %d", got)
	}
}

func TestTwoWatchedLiteralsConflictDetection(t *testing.T) {
	s := NewDefaultSolver()
	a := s.AddVariable()
	b := s.AddVariable()
	_ = s.AddClause([]Literal{PositiveLiteral(a), PositiveLiteral(b)})

	s.assume(NegativeLiteral(a))
	if conflict := s.Propagate(); conflict != nil {
		t.Fatalf("propagation should not conflict yet")
	}
	if s.VarValue(b) != True {
		t.Fatalf("remaining literal should have been forced true, got %v", s.VarValue(b))
	}

	s.cancelUntil(0)
	s.assume(NegativeLiteral(a))
	s.assume(NegativeLiteral(b))
	if conflict := s.Propagate(); conflict == nil {
		t.Fatalf("expected a conflict with both literals false")
	}
}
