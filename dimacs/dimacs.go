// Package dimacs implements the textual DIMACS CNF input format and the
// DIMACS solution output format at the repository's boundary. The core
// solver packages (sat, twosat) are format-agnostic; this package is the
// adapter that turns DIMACS text into a cnf.Formula and a verdict back
// into DIMACS text.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cnfkit/solver/cnf"
)

// ParseError carries the line and column of a malformed DIMACS input, so
// that callers can report the exact location of a syntax error. The core
// solver is never entered when parsing fails.
type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse reads a DIMACS CNF document from r and returns the formula it
// describes. Lines starting with 'c' are comments; the problem line has
// the form "p cnf <vars> <clauses>"; each subsequent clause is a
// whitespace-separated sequence of signed integers terminated by 0.
func Parse(r io.Reader) (*cnf.Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	nVars, nClauses := -1, -1

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == 'c' {
			continue
		}
		fields := strings.Fields(trimmed)
		if fields[0] != "p" {
			return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 1, Msg: "expected problem line starting with 'p'"})
		}
		if len(fields) != 4 || fields[1] != "cnf" {
			return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 1, Msg: "malformed problem line, want 'p cnf <vars> <clauses>'"})
		}
		var err error
		nVars, err = strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 3, Msg: "invalid variable count"})
		}
		nClauses, err = strconv.Atoi(fields[3])
		if err != nil {
			return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 4, Msg: "invalid clause count"})
		}
		break
	}
	if nVars < 0 {
		return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 1, Msg: "missing problem line"})
	}

	f := cnf.New(nVars)
	parsed := 0
	var lits []cnf.Literal

	for parsed < nClauses && scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == 'c' {
			continue
		}
		fields := strings.Fields(trimmed)

		for col, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.WithStack(&ParseError{Line: lineNo, Column: col + 1, Msg: fmt.Sprintf("invalid literal %q", tok)})
			}
			switch {
			case n == 0:
				// end of clause
				f.AddClause(lits...)
				lits = lits[:0]
				parsed++
			case n > 0:
				if n > nVars {
					return nil, errors.WithStack(&ParseError{Line: lineNo, Column: col + 1, Msg: fmt.Sprintf("variable %d out of declared range [1,%d]", n, nVars)})
				}
				lits = append(lits, cnf.Pos(cnf.Variable(n-1)))
			default:
				if -n > nVars {
					return nil, errors.WithStack(&ParseError{Line: lineNo, Column: col + 1, Msg: fmt.Sprintf("variable %d out of declared range [1,%d]", -n, nVars)})
				}
				lits = append(lits, cnf.Neg(cnf.Variable(-n-1)))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: read error")
	}
	if parsed != nClauses {
		return nil, errors.WithStack(&ParseError{Line: lineNo, Column: 1, Msg: fmt.Sprintf("declared %d clauses, found %d", nClauses, parsed)})
	}

	return f, nil
}

// ParseFile opens filename (optionally gzip-compressed) and parses it as
// DIMACS CNF.
func ParseFile(filename string, gzipped bool) (*cnf.Formula, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: opening %q", filename)
	}
	defer file.Close()

	var r io.Reader = file
	if gzipped {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "dimacs: gunzip %q", filename)
		}
		defer gr.Close()
		r = gr
	}
	return Parse(r)
}
