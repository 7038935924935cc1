package sat

// decisionLevel returns the current decision level: the number of
// decisions on the trail, 0 before the first decision.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// enqueue records l as true (with the given reason, or nil for a
// decision) at the current decision level. It returns false if l
// conflicts with an existing assignment.
func (s *Solver) enqueue(l Literal, from *Clause) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		varID := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[varID] = s.decisionLevel()
		s.reason[varID] = from
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// assume starts a new decision level and enqueues l as a decision.
func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, nil)
}

// undoOne pops the most recent trail entry, clearing its assignment and
// reinserting its variable into the decision order (with phase memory).
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	val := s.VarValue(v)
	s.order.undo(v, val)

	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = nil
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// cancel undoes every trail entry made since the last decision.
func (s *Solver) cancel() {
	n := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; n > 0; n-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// cancelUntil backtracks to the given decision level. The trail after
// cancelUntil(l) is identical to its state the moment decisionLevel()
// first reached l+1, minus that decision and its propagations.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
	s.propQueue.Clear()
}
