package sat

// watcher represents a clause attached to the watch list of a literal,
// awaiting re-examination when that literal becomes true (i.e. its
// negation, one of the clause's watched literals, becomes false).
type watcher struct {
	clause *Clause

	// guard is one of the clause's literals, distinct from the watched
	// literal. If the guard is already true, the clause is satisfied and
	// the propagator can skip it without touching the clause itself.
	guard Literal
}

// Watch registers clause c to be examined whenever watch becomes true
// (i.e. its negation, a watched literal of c, becomes false); the clause
// is skipped without being examined if guard is already true.
func (s *Solver) Watch(c *Clause, watch Literal, guard Literal) {
	s.watchers[watch] = append(s.watchers[watch], watcher{clause: c, guard: guard})
}

// Unwatch removes clause c from the watch list of watch.
func (s *Solver) Unwatch(c *Clause, watch Literal) {
	list := s.watchers[watch]
	j := 0
	for i := 0; i < len(list); i++ {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	s.watchers[watch] = list[:j]
}
