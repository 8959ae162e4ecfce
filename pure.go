package satgo

// findPureLiterals scans every live clause's working form and returns every
// literal that appears in some live clause while its negation appears in
// none of them and its variable is currently unassigned.
//
// Iteration is in the unsatisfied set's deterministic order (see
// orderedset.go) rather than via a map, so repeated runs of the same binary
// over the same input produce the same pure-literal set in the same order.
func (s *Solver) findPureLiterals() []Literal {
	seen := make([]Literal, 0)
	count := make(map[Literal]int)

	for _, idx := range s.unsatisfied.Items() {
		for _, lit := range s.arena.working[idx].Items() {
			if count[lit] == 0 {
				seen = append(seen, lit)
			}
			count[lit]++
		}
	}

	var pure []Literal
	for _, lit := range seen {
		if count[lit.Negate()] == 0 && s.vars[lit.Var()].value == unassigned {
			pure = append(pure, lit)
		}
	}
	return pure
}
