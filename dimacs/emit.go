package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cnfkit/solver/cnf"
	"github.com/cnfkit/solver/sat"
)

// WriteFormula writes f in DIMACS CNF format: a "p cnf <vars> <clauses>"
// problem line followed by one line per clause, each terminated by 0.
func WriteFormula(w io.Writer, f *cnf.Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, c := range f.Clauses {
		for _, l := range c {
			n := int(l.Var()) + 1
			if !l.IsPositive() {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// maxLineWidth is the DIMACS solution format's line-wrap column, including
// the leading "v" and its following space.
const maxLineWidth = 80

// WriteSolution writes status and, when satisfiable, model in the DIMACS
// solution format: a single "s SATISFIABLE"/"s UNSATISFIABLE"/"s UNKNOWN"
// line, followed by one or more "v"-lines of signed literals terminated
// by a final 0, wrapped so that no line exceeds 80 columns.
func WriteSolution(w io.Writer, status sat.Status, model []bool) error {
	bw := bufio.NewWriter(w)

	var verdict string
	switch status {
	case sat.StatusSat:
		verdict = "SATISFIABLE"
	case sat.StatusUnsat:
		verdict = "UNSATISFIABLE"
	default:
		verdict = "UNKNOWN"
	}
	if _, err := fmt.Fprintf(bw, "s %s\n", verdict); err != nil {
		return err
	}
	if status != sat.StatusSat {
		return bw.Flush()
	}

	tokens := make([]string, 0, len(model)+1)
	for v, positive := range model {
		lit := v + 1
		if !positive {
			lit = -lit
		}
		tokens = append(tokens, fmt.Sprintf("%d", lit))
	}
	tokens = append(tokens, "0")

	if err := writeWrapped(bw, tokens); err != nil {
		return err
	}
	return bw.Flush()
}

// writeWrapped writes tokens as one or more "v "-prefixed lines, each kept
// at or under maxLineWidth columns.
func writeWrapped(bw *bufio.Writer, tokens []string) error {
	const prefix = "v"
	line := prefix
	for _, tok := range tokens {
		candidate := line + " " + tok
		if len(candidate) > maxLineWidth && line != prefix {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
			line = prefix + " " + tok
			continue
		}
		line = candidate
	}
	if line != prefix {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return nil
}
