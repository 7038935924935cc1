// Package cnf defines the format-agnostic conjunctive-normal-form value
// that the solver cores and the DIMACS/generator adapters all share.
package cnf

import "fmt"

// Variable is a dense index in [0, n) identifying a propositional variable.
type Variable int

// Literal encodes a variable and its polarity as 2*v for the positive form
// and 2*v+1 for the negative form, so that negation is XOR-1 and array
// lookup is O(1).
type Literal int

// Pos returns the positive literal of variable v.
func Pos(v Variable) Literal {
	return Literal(v) * 2
}

// Neg returns the negative literal of variable v.
func Neg(v Variable) Literal {
	return Literal(v)*2 + 1
}

// Var returns the variable underlying the literal.
func (l Literal) Var() Variable {
	return Variable(l / 2)
}

// IsPositive reports whether l is the positive form of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}

// Clause is a disjunction of literals.
type Clause []Literal

func (c Clause) String() string {
	s := "("
	for i, l := range c {
		if i > 0 {
			s += " v "
		}
		s += l.String()
	}
	return s + ")"
}

// Formula is a conjunction of clauses over a fixed number of variables.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// New returns an empty formula over numVars variables.
func New(numVars int) *Formula {
	return &Formula{NumVars: numVars}
}

// AddClause appends a clause to the formula.
func (f *Formula) AddClause(lits ...Literal) {
	c := make(Clause, len(lits))
	copy(c, lits)
	f.Clauses = append(f.Clauses, c)
}

// Variables returns every variable index declared in the formula.
func (f *Formula) Variables() []Variable {
	vars := make([]Variable, f.NumVars)
	for i := range vars {
		vars[i] = Variable(i)
	}
	return vars
}

// Evaluate reports whether the given total assignment (indexed by
// Variable) satisfies every clause of the formula. It panics if a clause
// refers to a variable beyond the end of the assignment.
func (f *Formula) Evaluate(assignment []bool) bool {
	for _, c := range f.Clauses {
		if !evaluateClause(c, assignment) {
			return false
		}
	}
	return true
}

func evaluateClause(c Clause, assignment []bool) bool {
	if len(c) == 0 {
		return false
	}
	for _, l := range c {
		v := assignment[l.Var()]
		if (v && l.IsPositive()) || (!v && !l.IsPositive()) {
			return true
		}
	}
	return false
}

// IsBinary reports whether every clause in the formula has exactly two
// literals, the applicability condition for the 2-SAT core.
func (f *Formula) IsBinary() bool {
	for _, c := range f.Clauses {
		if len(c) != 2 {
			return false
		}
	}
	return true
}
