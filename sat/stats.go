package sat

// Stats reports search counters, valid after (and during) a call to
// Solve.
type Stats struct {
	Decisions     int64
	Propagations  int64
	Conflicts     int64
	Learned       int64
	GlueClauses   int64
	Restarts      int64
	MaxLevel      int
	Reductions    int64
}
