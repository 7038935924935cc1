package sat

import "sort"

// computeLBD returns the number of distinct decision levels among the
// given literals under the current assignment -- the "glue" that
// identifies high-quality learned clauses.
func (s *Solver) computeLBD(lits []Literal) int {
	s.seenLevel.Clear()
	n := 0
	for _, l := range lits {
		lvl := s.level[l.VarID()]
		if lvl < 0 {
			continue
		}
		if !s.seenLevel.Contains(lvl) {
			s.seenLevel.Add(lvl)
			n++
		}
	}
	return n
}

// ReduceDB partitions learned clauses into protected (never deleted) and
// deletable, sorts the deletable ones by ascending LBD then descending
// activity, and keeps the best half of the total (protected count plus
// as many top deletable clauses as needed to reach half of the limit).
// The rest are detached and deleted. It must only run at decision level
// 0 so that no trail entry's reason is among the deleted clauses -- see
// the design notes on reduction vs. locked clauses.
func (s *Solver) ReduceDB() {
	if s.decisionLevel() != 0 {
		return
	}

	var protected, deletable []*Clause
	for _, c := range s.learnts {
		if c.isProtected() || c.locked(s) {
			protected = append(protected, c)
		} else {
			deletable = append(deletable, c)
		}
	}

	sort.Slice(deletable, func(i, j int) bool {
		a, b := deletable[i], deletable[j]
		if a.lbd != b.lbd {
			return a.lbd < b.lbd
		}
		return a.activity > b.activity
	})

	target := s.opts.LearnedClauseLimit / 2
	keepDeletable := target - len(protected)
	if keepDeletable < 0 {
		keepDeletable = 0
	}
	if keepDeletable > len(deletable) {
		keepDeletable = len(deletable)
	}

	kept := make([]*Clause, 0, len(protected)+keepDeletable)
	kept = append(kept, protected...)
	kept = append(kept, deletable[:keepDeletable]...)
	for _, c := range deletable[keepDeletable:] {
		c.Delete(s)
	}

	s.learnts = kept
}
