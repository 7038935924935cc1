package dimacs

import (
	"compress/gzip"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/pkg/errors"

	"github.com/cnfkit/solver/sat"
	"github.com/cnfkit/solver/twosat"
)

// Target is anything clauses can be streamed directly into: both
// *sat.Solver and *twosat.Solver satisfy it via the adapters below. Unlike
// Parse/cnf.Formula, this path never materializes the whole formula in
// memory, which matters for instances too large to hold twice over.
type Target interface {
	AddVariable() int
	addClauseInts(lits []int) error
}

// SatTarget adapts a *sat.Solver to Target, translating DIMACS signed
// integers into the solver's internal Literal encoding.
type SatTarget struct{ Solver *sat.Solver }

func (t SatTarget) AddVariable() int { return t.Solver.AddVariable() }

func (t SatTarget) addClauseInts(lits []int) error {
	clause := make([]sat.Literal, len(lits))
	for i, n := range lits {
		if n < 0 {
			clause[i] = sat.NegativeLiteral(-n - 1)
		} else {
			clause[i] = sat.PositiveLiteral(n - 1)
		}
	}
	return t.Solver.AddClause(clause)
}

// TwoSatTarget adapts a *twosat.Solver to Target the same way.
type TwoSatTarget struct{ Solver *twosat.Solver }

func (t TwoSatTarget) AddVariable() int { return t.Solver.AddVariable() }

func (t TwoSatTarget) addClauseInts(lits []int) error {
	clause := make([]twosat.Literal, len(lits))
	for i, n := range lits {
		if n < 0 {
			clause[i] = twosat.NegativeLiteral(-n - 1)
		} else {
			clause[i] = twosat.PositiveLiteral(n - 1)
		}
	}
	return t.Solver.AddClause(clause)
}

// builder wraps a Target to satisfy the rhartert/dimacs.Builder
// interface (Problem/Clause/Comment), the same streaming-reader pattern
// the teacher's parsers package used.
type builder struct {
	target Target
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return errors.Errorf("dimacs: unsupported problem type %q", problem)
	}
	for i := 0; i < nVars; i++ {
		b.target.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	return b.target.addClauseInts(tmpClause)
}

func (b *builder) Comment(_ string) error {
	return nil
}

// LoadInto streams the clauses of a DIMACS CNF file directly into target,
// declaring variables and adding clauses as they're read rather than
// building an intermediate cnf.Formula.
func LoadInto(filename string, gzipped bool, target Target) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "dimacs: opening %q", filename)
	}
	defer file.Close()

	var r io.Reader = file
	if gzipped {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return errors.Wrapf(err, "dimacs: gunzip %q", filename)
		}
		defer gr.Close()
		r = gr
	}

	return extdimacs.ReadBuilder(r, &builder{target: target})
}
