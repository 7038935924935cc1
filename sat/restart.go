package sat

// EMA is an exponential moving average, used to track the short- and
// long-term mean LBD that drives the Glucose restart heuristic.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0,1); higher decay
// weighs history more heavily.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the average.
func (e *EMA) Add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

// Val returns the current average.
func (e *EMA) Val() float64 {
	return e.value
}

// luby returns the i-th term (1-indexed) of the Luby sequence
// 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,... computed iteratively from the
// standard power-of-two decomposition: find k such that i == 2^k - 1, or
// otherwise recurse into the largest sub-sequence of full length strictly
// less than i.
func luby(i int64) int64 {
	i-- // the decomposition below works on a 0-indexed position
	// Find the smallest 2^k - 1 > i.
	var size, seq int64 = 1, 0
	for size < i+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != i {
		size = (size - 1) / 2
		seq--
		i %= size
	}
	return 1 << uint(seq)
}

// restartPolicy decides, between decisions, whether the search should
// restart to decision level 0.
type restartPolicy struct {
	strategy RestartStrategy

	// Luby state.
	lubyBase     int64
	lubyIndex    int64
	conflictsAtLastRestart int64

	// Glucose state.
	longAvg   EMA
	shortAvg  EMA
	shortN    int
	window    int
	k         float64

	// Postponing state: sliding window over trail size at conflict time.
	postpone     bool
	postponeTau  float64
	trailWindow  []int
	trailWinSum  int
	trailWinNext int
}

func newRestartPolicy(opts Options) *restartPolicy {
	return &restartPolicy{
		strategy:    opts.RestartStrategy,
		lubyBase:    opts.RestartBase,
		lubyIndex:   1,
		longAvg:     NewEMA(0.999),
		shortAvg:    NewEMA(1 - 1/float64(max(opts.GlucoseLBDWindow, 1))),
		window:      max(opts.GlucoseLBDWindow, 1),
		k:           opts.GlucoseK,
		postpone:    opts.RestartPostponing,
		postponeTau: opts.PostponingThreshold,
		trailWindow: make([]int, 0, 50),
	}
}

// onConflict records the LBD of the clause just learned and the trail
// size at the moment of conflict, and reports whether a restart should
// happen now.
func (rp *restartPolicy) onConflict(lbd int, trailSize int, totalConflicts int64) bool {
	rp.longAvg.Add(float64(lbd))
	rp.shortAvg.Add(float64(lbd))
	rp.shortN++

	trigger := false
	switch rp.strategy {
	case RestartLuby:
		if totalConflicts-rp.conflictsAtLastRestart >= rp.lubyBase*luby(rp.lubyIndex) {
			trigger = true
		}
	default: // RestartGlucose
		if rp.shortN >= rp.window && rp.shortAvg.Val() > rp.k*rp.longAvg.Val() {
			trigger = true
		}
	}

	if !trigger {
		return false
	}
	if rp.postpone && rp.makingProgress(trailSize) {
		return false
	}
	return true
}

// makingProgress reports whether the current trail size exceeds the
// recent mean by more than the postponing threshold, which is a signal
// that the search is still productive and a restart should be skipped.
func (rp *restartPolicy) makingProgress(trailSize int) bool {
	const windowSize = 50
	if len(rp.trailWindow) < windowSize {
		rp.trailWindow = append(rp.trailWindow, trailSize)
		rp.trailWinSum += trailSize
	} else {
		idx := rp.trailWinNext % windowSize
		rp.trailWinSum += trailSize - rp.trailWindow[idx]
		rp.trailWindow[idx] = trailSize
		rp.trailWinNext++
	}
	if len(rp.trailWindow) < windowSize {
		return false
	}
	mean := float64(rp.trailWinSum) / float64(len(rp.trailWindow))
	return float64(trailSize) > mean*rp.postponeTau
}

// restarted resets per-restart bookkeeping after the driver has backtracked
// to level 0.
func (rp *restartPolicy) restarted(totalConflicts int64) {
	rp.conflictsAtLastRestart = totalConflicts
	rp.lubyIndex++
	rp.shortN = 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
