package sat

// logProgress emits a structured progress record at Debug level. Called
// periodically by the driver so long searches remain observable without
// the caller polling Stats().
func (s *Solver) logProgress() {
	s.log.WithFields(map[string]interface{}{
		"decisions":    s.stats.Decisions,
		"propagations": s.stats.Propagations,
		"conflicts":    s.stats.Conflicts,
		"learned":      len(s.learnts),
		"restarts":     s.stats.Restarts,
	}).Debug("cdcl: search progress")
}
