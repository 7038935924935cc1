package sat

import "strings"

type status uint8

const (
	statusDeleted   status = 0b001
	statusLearnt    status = 0b010
	statusProtected status = 0b100
)

// Clause is an ordered sequence of literals. Only positions 0 and 1 are
// meaningful as "the currently watched literals"; the propagator is free
// to swap literals within the clause. A *Clause is the stable handle used
// by the trail (as a reason) and by watch lists (as an element): it stays
// valid for the clause's lifetime and is only invalidated by Delete.
type Clause struct {
	activity float64

	// literals holds the clause's literals while the clause is live. It is
	// nil once the clause has been deleted, so stray handles fault loudly
	// rather than reading garbage.
	literals []Literal

	// prevPos remembers where Propagate last found a new literal to watch,
	// so the next scan resumes there instead of restarting at position 2.
	// Always in [2, len(literals)] when meaningful.
	prevPos int

	// lbd is the literal block distance computed when the clause was
	// learned: the number of distinct decision levels among its literals
	// at that moment. Only meaningful for learnt clauses.
	lbd uint32

	statusMask status
}

func (c *Clause) isDeleted() bool {
	return c.statusMask&statusDeleted != 0
}

func (c *Clause) isLearnt() bool {
	return c.statusMask&statusLearnt != 0
}

func (c *Clause) isProtected() bool {
	return c.statusMask&statusProtected != 0
}

func (c *Clause) setProtected() {
	c.statusMask |= statusProtected
}

// LBD returns the clause's literal block distance (0 for original,
// non-learnt clauses).
func (c *Clause) LBD() int {
	return int(c.lbd)
}

// Literals returns the clause's current literals. The returned slice must
// not be retained past the next call that mutates the clause.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// newClause creates a clause from tmpLiterals, simplifying it against the
// current root-level assignment when it is not a learnt clause (removing
// duplicate and falsified literals, and rejecting tautologies). It returns
// (nil, true) for clauses immediately satisfied or absorbed as a unit fact,
// and (nil, false) if the clause is empty (the formula is UNSAT).
func newClause(s *Solver, tmpLiterals []Literal, learnt bool) (*Clause, bool) {
	size := len(tmpLiterals)

	if !learnt {
		seen := map[Literal]struct{}{}
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
				return nil, true // tautology
			}
			if _, ok := seen[tmpLiterals[i]]; ok {
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
				continue
			}
			seen[tmpLiterals[i]] = struct{}{}

			switch s.LitValue(tmpLiterals[i]) {
			case True:
				return nil, true
			case False:
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			}
		}
		tmpLiterals = tmpLiterals[:size]
	}

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, s.enqueue(tmpLiterals[0], nil)
	default:
		c := &Clause{
			prevPos:  2,
			literals: make([]Literal, size),
		}
		copy(c.literals, tmpLiterals)

		if learnt {
			c.statusMask |= statusLearnt

			// Put the literal with the highest decision level in position
			// 1, so the two watches are the asserting literal (position 0,
			// set by the caller) and the literal that will force the next
			// conflict soonest after backjump.
			maxLevel := -1
			wl := 1
			for i, lit := range c.literals {
				if lvl := s.level[lit.VarID()]; lvl > maxLevel {
					maxLevel = lvl
					wl = i
				}
			}
			c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]
			c.lbd = uint32(s.computeLBD(c.literals))
			if int(c.lbd) <= s.opts.GlueThreshold {
				c.setProtected()
			}
		}

		s.Watch(c, c.literals[0].Opposite(), c.literals[1])
		s.Watch(c, c.literals[1].Opposite(), c.literals[0])

		return c, true
	}
}

// locked reports whether c is currently the reason for its first literal's
// assignment, meaning it cannot be deleted without invalidating the trail.
func (c *Clause) locked(s *Solver) bool {
	return s.reason[c.literals[0].VarID()] == c
}

// Delete removes c from both its watch lists and releases its literal
// slice. It must only be called when c is not a trail reason (the manager
// enforces this by only reducing at decision level 0).
func (c *Clause) Delete(s *Solver) {
	c.statusMask |= statusDeleted
	s.Unwatch(c, c.literals[0].Opposite())
	s.Unwatch(c, c.literals[1].Opposite())
	c.literals = nil
}

// Simplify removes literals falsified at the root level and reports
// whether the clause is satisfied at the root level (in which case the
// caller should discard it entirely).
func (c *Clause) Simplify(s *Solver) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.LitValue(lit) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// Propagate is called when literal l has just become true, i.e. the
// clause's watched literal l.Opposite() has just become false. It returns
// true if the clause is satisfied, a new literal was found to watch, or
// its last non-false literal was unassigned and has just been enqueued
// with c as its reason; it returns false only if the clause is now a
// conflict (all its literals are false).
func (c *Clause) Propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0] = c.literals[1]
		c.literals[1] = opp
	}

	if s.LitValue(c.literals[0]) == True {
		s.Watch(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.Watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos && i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.Watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	s.Watch(c, l, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

// explainConflict appends the negation of every literal of c into dst,
// bumping the clause's activity if it is learnt. Used when c is the
// conflicting clause itself during analysis.
func (c *Clause) explainConflict(s *Solver, dst []Literal) []Literal {
	dst = dst[:0]
	for _, l := range c.literals {
		dst = append(dst, l.Opposite())
	}
	if c.isLearnt() {
		s.BumpClaActivity(c)
	}
	return dst
}

// explainAssign appends the negation of every literal of c other than its
// first (the propagated literal) into dst.
func (c *Clause) explainAssign(s *Solver, dst []Literal) []Literal {
	dst = dst[:0]
	for _, l := range c.literals[1:] {
		dst = append(dst, l.Opposite())
	}
	if c.isLearnt() {
		s.BumpClaActivity(c)
	}
	return dst
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
