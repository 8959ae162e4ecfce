package satgo

// assign attempts to make literal l true.
//
// If l's variable is already assigned, assign succeeds iff the existing
// value is consistent with l, with no side effects either way (callers are
// permitted to pass an already-assigned literal).
//
// On success, every clause satisfied by l leaves the unsatisfied set, and l's
// negation is removed from the working form of every still-unsatisfied
// clause that contains it.
//
// On failure, the tentative assignment is reverted and the conflict reason
// is left in s.lastStatus for the caller to optionally learn from.
func (s *Solver) assign(l Literal) bool {
	s.lastStatus = conflictStatus{}

	v := &s.vars[l.Var()]
	if v.value != unassigned {
		return l.satisfiedBy(v.value)
	}
	v.value = valueFor(l)

	// count tracks whether some clause on the satisfying side was already
	// "one step from empty" (every literal but l falsified) at the moment l
	// satisfies it. The reason built from it is not an implication-graph
	// cut, just a cheap approximation that often yields a short learned
	// clause.
	count := 0
	var reason []Literal

	for _, idx := range v.occurs(l) {
		if !s.unsatisfied.Contains(idx) {
			continue
		}
		if count == 0 && s.allOtherLiteralsFalse(idx, l) {
			count = 1
			reason = s.falseLiteralsOf(idx)
		}
		s.unsatisfied.Remove(idx)
	}

	neg := l.Negate()
	for _, idx := range v.occurs(neg) {
		if !s.unsatisfied.Contains(idx) {
			continue
		}
		working := s.arena.working[idx]
		if working.Len() == 1 && count == 1 {
			for _, lit := range s.arena.original[idx] {
				if lit != neg {
					reason = appendUnique(reason, lit)
				}
			}
			s.lastStatus = conflictStatus{conflict: true, reason: reason}
			v.value = unassigned
			return false
		}
		working.Remove(neg)
	}

	return true
}

// allOtherLiteralsFalse reports whether every literal of original clause idx
// other than l is currently false under the assignment.
func (s *Solver) allOtherLiteralsFalse(idx int, l Literal) bool {
	for _, lit := range s.arena.original[idx] {
		if lit == l {
			continue
		}
		val := s.vars[lit.Var()].value
		if val == unassigned || !lit.falsifiedBy(val) {
			return false
		}
	}
	return true
}

// falseLiteralsOf collects the literals of original clause idx that are
// currently false under the assignment, in original-clause order.
func (s *Solver) falseLiteralsOf(idx int) []Literal {
	var out []Literal
	for _, lit := range s.arena.original[idx] {
		val := s.vars[lit.Var()].value
		if val != unassigned && lit.falsifiedBy(val) {
			out = append(out, lit)
		}
	}
	return out
}

func appendUnique(lits []Literal, l Literal) []Literal {
	for _, x := range lits {
		if x == l {
			return lits
		}
	}
	return append(lits, l)
}

// unassign reverses assign(l). It must be called in exact reverse order of
// the corresponding assignments: the working-form deltas it replays do not
// commute.
func (s *Solver) unassign(l Literal) {
	v := &s.vars[l.Var()]
	v.value = unassigned

	neg := l.Negate()
	for _, idx := range v.occurs(neg) {
		s.arena.working[idx].Add(neg)
	}
	for _, idx := range v.occurs(l) {
		if !s.clauseSatisfied(idx) {
			s.unsatisfied.Add(idx)
		}
	}
}

// clauseSatisfied reports whether any literal currently in clause idx's
// working form evaluates to true under the assignment.
func (s *Solver) clauseSatisfied(idx int) bool {
	for _, lit := range s.arena.working[idx].Items() {
		val := s.vars[lit.Var()].value
		if val != unassigned && lit.satisfiedBy(val) {
			return true
		}
	}
	return false
}
