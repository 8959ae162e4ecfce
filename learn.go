package satgo

// maybeLearn consults s.lastStatus, the side channel assign leaves behind
// on conflict, and learns a clause from it if the reason is short enough
// and the solver hasn't hit its learned-clause cap. A no-op for D1 (callers
// only invoke it when the variant has conflict learning) and a no-op when
// the last assign call didn't conflict.
func (s *Solver) maybeLearn() {
	if !s.lastStatus.conflict {
		return
	}
	reason := s.lastStatus.reason
	if len(reason) >= s.maxLearnedClauseLen {
		return
	}
	if s.learnedCount >= s.maxLearnedClauses {
		return
	}
	s.learnClause(reason)
}

// learnClause appends reason to the clause arena: the working form is the
// reason filtered to literals that are still consistent with the current
// assignment, the original form is the raw reason, and the new index is
// registered in every variable's occurrence lists and inserted into the
// unsatisfied set. Learned clauses are never removed.
func (s *Solver) learnClause(reason []Literal) {
	if len(reason) == 0 {
		return
	}

	working := make([]Literal, 0, len(reason))
	for _, l := range reason {
		v := &s.vars[l.Var()]
		if v.value == unassigned || l.satisfiedBy(v.value) {
			working = append(working, l)
		}
	}

	idx := s.arena.addLearned(reason, working)
	s.registerOccurrences(idx, reason)
	s.unsatisfied.Add(idx)
	s.learnedCount++

	if s.cfg.Variant.hasVSIDS() {
		s.boostConflictLiterals(reason)
	}
}
