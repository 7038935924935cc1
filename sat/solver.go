// Package sat implements a conflict-driven clause learning (CDCL) SAT
// solver: two-watched-literal unit propagation, first-UIP conflict
// analysis with clause minimization, non-chronological backjumping,
// VSIDS branching with phase saving, Luby and Glucose-style restarts
// with postponing, and LBD-based learned-clause reduction.
package sat

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Solver is a CDCL SAT solver instance. A Solver owns its clause arena,
// trail, watch lists, and score vectors exclusively: it is not safe for
// concurrent use by multiple goroutines, and callers wanting parallelism
// should construct independent instances.
type Solver struct {
	opts Options

	// Clause database.
	constraints []*Clause
	learnts     []*Clause
	clauseInc   float64

	// Variable ordering and phase memory.
	order *varOrder

	// Propagation and watch lists.
	watchers  [][]watcher
	propQueue *Queue[Literal]

	// Value currently assigned to each literal (indexed by Literal).
	assigns []LBool

	// Trail.
	trail    []Literal
	trailLim []int
	reason   []*Clause
	level    []int

	restarts *restartPolicy

	// unsat is latched once the formula is proven unsatisfiable at the
	// root level; every subsequent Solve call returns StatusUnsat.
	unsat bool

	stats Stats

	startTime time.Time

	// Models accumulates one assignment per call to Solve that returns
	// StatusSat, in the order found.
	Models [][]bool

	// Scratch buffers, reused across calls to avoid reallocating on
	// every conflict.
	seenVar       *ResetSet
	seenLevel     *ResetSet
	tmpWatchers   []watcher
	tmpLearnts    []Literal
	tmpReason     []Literal
	minimizeStack []int

	log *logrus.Logger
}

// NewSolver returns a solver configured with the given options.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		opts:      opts,
		clauseInc: 1,
		order:     newVarOrder(opts),
		propQueue: NewQueue[Literal](128),
		restarts:  newRestartPolicy(opts),
		seenVar:   &ResetSet{},
		seenLevel: &ResetSet{},
		log:       opts.logger(),
	}
	return s
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func (s *Solver) shouldStop() bool {
	if s.opts.ConflictBudget >= 0 && s.stats.Conflicts >= s.opts.ConflictBudget {
		return true
	}
	if s.opts.Timeout >= 0 && s.opts.Timeout <= time.Since(s.startTime) {
		return true
	}
	return false
}

func (s *Solver) PositiveLiteral(varID int) Literal {
	return Literal(varID * 2)
}

func (s *Solver) NegativeLiteral(varID int) Literal {
	return s.PositiveLiteral(varID).Opposite()
}

func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

func (s *Solver) VarValue(x int) LBool {
	return s.assigns[s.PositiveLiteral(x)]
}

func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// Stats returns a snapshot of the solver's search counters.
func (s *Solver) Stats() Stats {
	st := s.stats
	st.Learned = int64(len(s.learnts))
	return st
}

// AddVariable declares a fresh variable and returns its dense index.
func (s *Solver) AddVariable() int {
	index := s.NumVariables()
	s.watchers = append(s.watchers, nil, nil)
	s.reason = append(s.reason, nil)
	s.seenVar.Expand()
	s.seenLevel.Expand()

	s.assigns = append(s.assigns, Unknown, Unknown)
	s.level = append(s.level, -1)
	s.order.newVar()
	return index
}

// AddClause adds an original (non-learnt) clause. It may only be called
// at decision level 0. An empty input clause, or one that collapses to
// empty after simplification against the root assignment, marks the
// formula unsatisfiable (observable via the next call to Solve).
func (s *Solver) AddClause(clause []Literal) error {
	c, ok := newClause(s, clause, false)
	if c != nil {
		s.constraints = append(s.constraints, c)
	}
	if !ok {
		s.unsat = true
	}
	return nil
}

// Simplify removes clauses satisfied at the root level from both the
// original and learned clause sets. It must only be called at decision
// level 0 with an empty propagation queue.
func (s *Solver) Simplify() bool {
	if s.unsat || s.Propagate() != nil {
		s.unsat = true
		return false
	}
	s.simplifySet(&s.learnts)
	s.simplifySet(&s.constraints)
	return true
}

func (s *Solver) simplifySet(clausesPtr *[]*Clause) {
	clauses := *clausesPtr
	j := 0
	for i := 0; i < len(clauses); i++ {
		if clauses[i].Simplify(s) {
			clauses[i].Delete(s)
		} else {
			clauses[j] = clauses[i]
			j++
		}
	}
	*clausesPtr = clauses[:j]
}

// BumpClaActivity increases c's activity, rescaling every learnt clause's
// activity if it would overflow.
func (s *Solver) BumpClaActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, l := range s.learnts {
			l.activity *= 1e-100
		}
	}
}

// BumpVarActivity increases the VSIDS score of l's variable.
func (s *Solver) BumpVarActivity(l Literal) {
	s.order.bump(l.VarID())
}

func (s *Solver) decayClaActivity() {
	s.clauseInc *= s.opts.ClauseDecay
}

func (s *Solver) decayVarActivity() {
	s.order.decayIncrement()
}

// Propagate runs unit propagation to a fixed point, returning the
// conflicting clause if one is found, or nil once every clause is either
// satisfied or watching two non-false literals.
func (s *Solver) Propagate() *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()
		s.stats.Propagations++

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}
			if w.clause.Propagate(s, l) {
				continue
			}

			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return s.tmpWatchers[i].clause
		}
	}
	return nil
}

func (s *Solver) record(learnt []Literal) {
	c, _ := newClause(s, learnt, true)
	s.enqueue(learnt[0], c)
	if c != nil {
		s.learnts = append(s.learnts, c)
		s.stats.Learned++
		if c.isProtected() {
			s.stats.GlueClauses++
		}
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for i := range model {
		model[i] = s.VarValue(i) == True
	}
	s.Models = append(s.Models, model)
}

// Solve searches for a satisfying assignment by running the search loop
// until it reaches a verdict or the stop condition holds; no conflict or
// learned-clause budget is grown between rounds. It returns StatusSat
// with a model recorded in Models, StatusUnsat, or StatusUnknown if the
// configured conflict budget or timeout is exhausted first.
func (s *Solver) Solve() Status {
	if s.unsat {
		return StatusUnsat
	}
	s.startTime = time.Now()

	if conflict := s.Propagate(); conflict != nil {
		s.unsat = true
		return StatusUnsat
	}

	for {
		status := s.search()
		if status != StatusUnknown {
			s.cancelUntil(0)
			return status
		}
		if s.shouldStop() {
			s.cancelUntil(0)
			return StatusUnknown
		}
	}
}

// search runs the decision loop described by the driver contract:
// propagate, and on conflict analyze/learn/backjump; on fixpoint with a
// full assignment, report SAT; otherwise decide and repeat. It returns
// StatusUnknown only when the caller's stop condition should be checked
// again (not a verdict by itself).
func (s *Solver) search() Status {
	for {
		if s.shouldStop() {
			return StatusUnknown
		}

		conflict := s.Propagate()
		if conflict != nil {
			s.stats.Conflicts++
			if s.stats.Conflicts%10000 == 0 {
				s.logProgress()
			}

			if s.decisionLevel() == 0 {
				s.unsat = true
				return StatusUnsat
			}

			learnt, backjumpLevel := s.analyze(conflict)
			lbd := s.computeLBD(learnt)
			restart := s.restarts.onConflict(lbd, len(s.trail), s.stats.Conflicts)

			s.cancelUntil(backjumpLevel)
			s.record(learnt)

			s.decayClaActivity()
			s.decayVarActivity()

			if restart {
				s.cancelUntil(0)
				s.stats.Restarts++
				s.restarts.restarted(s.stats.Conflicts)
				if len(s.learnts) > s.opts.LearnedClauseLimit {
					s.ReduceDB()
					s.stats.Reductions++
				}
				if p := s.Propagate(); p != nil {
					s.unsat = true
					return StatusUnsat
				}
			}
			continue
		}

		if s.decisionLevel() == 0 {
			s.Simplify()
			if len(s.learnts) > s.opts.LearnedClauseLimit {
				s.ReduceDB()
				s.stats.Reductions++
			}
		}

		if s.NumAssigns() == s.NumVariables() {
			s.saveModel()
			return StatusSat
		}

		v, ok := s.order.pickVar(func(v int) bool { return s.VarValue(v) != Unknown })
		if !ok {
			s.saveModel()
			return StatusSat
		}

		if s.decisionLevel()+1 > s.stats.MaxLevel {
			s.stats.MaxLevel = s.decisionLevel() + 1
		}
		s.stats.Decisions++

		phase := s.order.pickPhase(v)
		var l Literal
		if phase {
			l = PositiveLiteral(v)
		} else {
			l = NegativeLiteral(v)
		}
		s.assume(l)
	}
}
