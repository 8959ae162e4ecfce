package satgo

// pickBranch selects the next decision literal for the active variant. A
// return of 0 means there is nothing left to branch on.
func (s *Solver) pickBranch() Literal {
	switch {
	case s.cfg.Variant.hasVSIDS():
		return s.pickBranchVSIDS()
	case s.cfg.Variant.hasConflictLearning():
		return s.pickBranchFirstLiteral()
	default:
		return s.pickBranchTrivial()
	}
}

// pickBranchTrivial implements D1's strategy: the first unassigned variable
// in numerical order, tried as +v before -v by the caller.
func (s *Solver) pickBranchTrivial() Literal {
	for v := 1; v <= s.maxVar; v++ {
		if s.vars[v].value == unassigned {
			return Literal(v)
		}
	}
	return 0
}

// pickBranchFirstLiteral implements D2's strategy: the first literal of the
// first clause in the unsatisfied set.
func (s *Solver) pickBranchFirstLiteral() Literal {
	idx, ok := s.unsatisfied.First()
	if !ok {
		return 0
	}
	lit, ok := s.arena.working[idx].First()
	if !ok {
		return 0
	}
	return lit
}

// pickBranchVSIDS implements D3's strategy: among literals appearing in a
// live clause whose variable is unassigned, pick the one with the highest
// weight = 1 + activity(l), ties broken by the (deterministic) scan order.
func (s *Solver) pickBranchVSIDS() Literal {
	var best Literal
	bestWeight := -1.0
	seen := make(map[Literal]bool)

	for _, idx := range s.unsatisfied.Items() {
		for _, lit := range s.arena.working[idx].Items() {
			if s.vars[lit.Var()].value != unassigned {
				continue
			}
			if seen[lit] {
				continue
			}
			seen[lit] = true

			weight := 1 + s.vars[lit.Var()].activity(lit)
			if weight > bestWeight {
				bestWeight = weight
				best = lit
			}
		}
	}
	return best
}

// decayActivities multiplies every variable's activity counters by the
// configured decay factor. Called every DecayInterval decisions and again
// at the end of boostConflictLiterals.
func (s *Solver) decayActivities() {
	for i := range s.vars {
		s.vars[i].decayActivity(s.cfg.DecayFactor)
	}
}

// boostConflictLiterals bumps the activity of every literal in a newly
// learned clause, then decays all activities once more on top of the
// interval-driven decay.
func (s *Solver) boostConflictLiterals(lits []Literal) {
	for _, l := range lits {
		s.vars[l.Var()].bumpActivity(l, s.cfg.ConflictWeight)
	}
	s.decayActivities()
}
