package sat

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RestartStrategy selects the restart schedule used between decisions.
type RestartStrategy int8

const (
	// RestartGlucose triggers a restart when the short-term mean LBD of
	// learned clauses exceeds GlucoseK times the long-term mean (default).
	RestartGlucose RestartStrategy = iota
	// RestartLuby triggers a restart every base*luby(k) conflicts.
	RestartLuby
)

func (r RestartStrategy) String() string {
	if r == RestartLuby {
		return "luby"
	}
	return "glucose"
}

// Options configures a Solver. Every entry in the configuration table of
// the solver's specification has a field here with the same meaning;
// ClauseDecay, RandomSeed, Timeout and Logger are additional settings.
type Options struct {
	// VSIDSDecay is the exponential aging factor applied to variable
	// scores after every conflict, in (0.5, 1.0).
	VSIDSDecay float64

	// RestartStrategy picks the restart schedule.
	RestartStrategy RestartStrategy
	// RestartBase is the Luby multiplier (conflicts).
	RestartBase int64
	// GlucoseLBDWindow is the size of the short-term LBD moving window.
	GlucoseLBDWindow int
	// GlucoseK is the short/long mean-LBD ratio that triggers a restart.
	GlucoseK float64
	// RestartPostponing cancels a triggered restart when the trail is
	// still growing faster than its recent average.
	RestartPostponing bool
	// PostponingThreshold is the trail-size growth factor above which a
	// triggered restart is postponed.
	PostponingThreshold float64

	// PhaseSaving reuses a variable's last assigned polarity as its next
	// decision phase.
	PhaseSaving bool
	// InitialPhase is the default phase for a variable that has never
	// been assigned.
	InitialPhase bool
	// RandomPhaseFreq is the probability, in [0,1], that a decision's
	// phase is drawn uniformly at random instead of from phase memory.
	RandomPhaseFreq float64
	// RandomSeed seeds the solver's private random source, used only for
	// phase diversification. Zero means "seed from a fixed constant",
	// which keeps runs reproducible by default.
	RandomSeed int64

	// ClauseDecay ages learned-clause activity after every conflict.
	ClauseDecay float64
	// LearnedClauseLimit is the learned-clause count above which
	// reduction runs.
	LearnedClauseLimit int
	// GlueThreshold is the LBD at or below which a learned clause is
	// protected from deletion.
	GlueThreshold int

	// ConflictBudget bounds the number of conflicts Solve will tolerate
	// before returning StatusUnknown. Negative means unbounded; zero stops
	// the search before its first decision.
	ConflictBudget int64
	// Timeout bounds wall-clock time the same way. Negative means
	// unbounded; zero stops the search before its first decision.
	Timeout time.Duration

	// Logger receives structured progress/diagnostic records. Defaults
	// to logrus's standard logger if nil.
	Logger *logrus.Logger
}

// DefaultOptions mirrors the defaults listed in the solver's
// specification.
var DefaultOptions = Options{
	VSIDSDecay:          0.95,
	RestartStrategy:     RestartGlucose,
	RestartBase:         100,
	GlucoseLBDWindow:    50,
	GlucoseK:            0.8,
	RestartPostponing:   true,
	PostponingThreshold: 1.4,
	PhaseSaving:         true,
	InitialPhase:        true,
	RandomPhaseFreq:     0,
	ClauseDecay:         0.999,
	LearnedClauseLimit:  10000,
	GlueThreshold:       2,
	ConflictBudget:      -1,
	Timeout:             -1,
}

func (o *Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
