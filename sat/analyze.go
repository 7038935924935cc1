package sat

// analyze implements first-UIP conflict analysis. Given the conflicting
// clause and the current decision level, it returns a learned clause with
// the asserting literal in position 0 and the backjump level (the highest
// level among the clause's other literals, or -1 if the formula is UNSAT
// at level 0).
func (s *Solver) analyze(confl *Clause) ([]Literal, int) {
	// Number of literals from the current decision level still to be
	// resolved away. Reaching zero marks the first UIP.
	nImplicationPoints := 0

	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, -1) // reserved for the asserting literal

	nextTrailPos := len(s.trail) - 1

	l := Literal(-1) // sentinel: "the conflict itself", not a real trail literal
	s.seenVar.Clear()
	backtrackLevel := 0
	currentLevel := s.decisionLevel()

	for {
		for _, q := range s.explain(confl, l) {
			v := q.VarID()
			if s.seenVar.Contains(v) {
				continue
			}
			s.seenVar.Add(v)
			s.BumpVarActivity(q)

			if s.level[v] == currentLevel {
				nImplicationPoints++
				continue
			}
			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lvl := s.level[v]; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		// Walk backward to the next trail entry whose variable was seen
		// and belongs to the current decision level.
		for {
			l = s.trail[nextTrailPos]
			nextTrailPos--
			v := l.VarID()
			confl = s.reason[v]
			if s.seenVar.Contains(v) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}
	}

	s.tmpLearnts[0] = l.Opposite()
	learnt := s.minimize(s.tmpLearnts)

	if currentLevel == 0 {
		return learnt[:0], -1
	}
	return learnt, backtrackLevel
}

// explain returns the set of literals that imply l is false: if l is the
// sentinel conflict literal, the conflicting clause's own literals;
// otherwise the reason clause's literals other than l.
func (s *Solver) explain(c *Clause, l Literal) []Literal {
	if l == -1 {
		return c.explainConflict(s, s.tmpReason)
	}
	return c.explainAssign(s, s.tmpReason)
}

// minimize drops literals from the learned clause that are redundant: a
// literal's negation need not be kept if every other literal of its
// reason clause is already present (directly or, recursively, also
// redundant). The asserting literal (position 0) is never removed. The
// recursion is bounded by the number of variables in the formula, per the
// solver's robustness requirements; isRedundant uses an explicit
// stack rather than the call stack to stay safe on large formulas.
func (s *Solver) minimize(learnt []Literal) []Literal {
	if len(learnt) <= 1 {
		return learnt
	}

	s.minimizeStack = s.minimizeStack[:0]
	out := learnt[:1]
	for _, lit := range learnt[1:] {
		if s.isRedundant(lit.Opposite()) {
			continue
		}
		out = append(out, lit)
	}
	return out
}

// isRedundant reports whether the literal that forced variable of q false
// (i.e. the variable is assigned, and was propagated) can be explained
// entirely in terms of other seen variables, recursively, via an explicit
// work stack.
func (s *Solver) isRedundant(q Literal) bool {
	v := q.VarID()
	reason := s.reason[v]
	if reason == nil {
		return false // was a decision: cannot be redundant
	}

	// Variables marked seen by this check are unmarked again if it fails,
	// so that later checks do not mistake them for clause literals.
	var marked []int
	fail := func() bool {
		for _, m := range marked {
			s.seenVar.addedAt[m] = s.seenVar.addedTimestamp - 1
		}
		return false
	}

	s.minimizeStack = append(s.minimizeStack[:0], v)
	for len(s.minimizeStack) > 0 {
		cur := s.minimizeStack[len(s.minimizeStack)-1]
		s.minimizeStack = s.minimizeStack[:len(s.minimizeStack)-1]

		c := s.reason[cur]
		if c == nil {
			return fail()
		}
		for _, lit := range c.literals[1:] {
			pv := lit.VarID()
			if s.seenVar.Contains(pv) || s.level[pv] == 0 {
				continue
			}
			pr := s.reason[pv]
			if pr == nil {
				return fail()
			}
			s.seenVar.Add(pv)
			marked = append(marked, pv)
			s.minimizeStack = append(s.minimizeStack, pv)
		}
	}
	return true
}
