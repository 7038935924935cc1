package sat

import (
	"math/rand/v2"

	"github.com/rhartert/yagh"
)

// varOrder maintains the order in which unassigned variables are offered
// to the driver as decisions: a max-heap on VSIDS score (implemented as a
// min-heap on negated score, since yagh.IntMap pops the minimum priority
// first) with phase memory and optional random phase diversification.
type varOrder struct {
	heap *yagh.IntMap[float64]

	scores   []float64 // in [0, 1e100)
	scoreInc float64   // in (0, 1e100)
	decay    float64   // in (0, 1]

	phases       []LBool
	phaseSaving  bool
	initialPhase bool

	randomPhaseFreq float64
	rng             *rand.Rand
}

func newVarOrder(opts Options) *varOrder {
	seed := opts.RandomSeed
	if seed == 0 {
		seed = 0x5eed
	}
	return &varOrder{
		heap:            yagh.New[float64](0),
		scoreInc:        1,
		decay:           opts.VSIDSDecay,
		phaseSaving:     opts.PhaseSaving,
		initialPhase:    opts.InitialPhase,
		randomPhaseFreq: opts.RandomPhaseFreq,
		rng:             rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0xa5a5a5a5)),
	}
}

// newVar registers a fresh variable with score 0 and the configured
// initial phase, returning its ID.
func (vo *varOrder) newVar() int {
	v := len(vo.scores)
	vo.scores = append(vo.scores, 0)
	vo.phases = append(vo.phases, Lift(vo.initialPhase))
	vo.heap.GrowBy(1)
	vo.heap.Put(v, 0)
	return v
}

// bump increases v's score by the current bump increment, rescaling every
// score (and the increment) if it would overflow.
func (vo *varOrder) bump(v int) {
	newScore := vo.scores[v] + vo.scoreInc
	vo.scores[v] = newScore
	if vo.heap.Contains(v) {
		vo.heap.Put(v, -newScore)
	}
	if newScore > 1e100 {
		vo.rescale()
	}
}

func (vo *varOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		rescaled := sc * 1e-100
		vo.scores[v] = rescaled
		if vo.heap.Contains(v) {
			vo.heap.Put(v, -rescaled)
		}
	}
}

// decayIncrement ages the bump increment, the VSIDS equivalent of aging
// every score without touching the heap.
func (vo *varOrder) decayIncrement() {
	vo.scoreInc /= vo.decay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

// undo reinserts v into the set of candidate decisions, remembering val
// as its saved phase if phase saving is enabled. val is the value v was
// assigned to immediately before this call.
func (vo *varOrder) undo(v int, val LBool) {
	if vo.phaseSaving && val != Unknown {
		vo.phases[v] = val
	}
	vo.heap.Put(v, -vo.scores[v])
}

// pickVar pops the unassigned variable with the highest score, lazily
// discarding stale heap entries for variables that got assigned by
// propagation after they were last pushed. It returns (0, false) once
// every variable is assigned.
func (vo *varOrder) pickVar(isAssigned func(int) bool) (int, bool) {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		if isAssigned(next.Elem) {
			continue
		}
		return next.Elem, true
	}
}

// pickPhase returns the phase to assign to v: a uniformly random phase
// with probability randomPhaseFreq (overriding any saved phase), else the
// saved/default phase.
func (vo *varOrder) pickPhase(v int) bool {
	if vo.randomPhaseFreq > 0 && vo.rng.Float64() < vo.randomPhaseFreq {
		return vo.rng.IntN(2) == 0
	}
	switch vo.phases[v] {
	case False:
		return false
	default:
		return true
	}
}
