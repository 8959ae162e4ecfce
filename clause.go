package satgo

// clauseArena holds two parallel, same-indexed clause collections: the
// original (immutable, append-only) clauses and their working (dynamically
// shrinking) forms under the current assignment. Index i always refers to
// the same clause in both.
type clauseArena struct {
	original [][]Literal            // immutable body of clause i, as loaded or learned
	working  []*orderedSet[Literal] // live literal set of clause i under the current assignment
}

func newClauseArena(capacity int) *clauseArena {
	return &clauseArena{
		original: make([][]Literal, 0, capacity),
		working:  make([]*orderedSet[Literal], 0, capacity),
	}
}

// add appends a new clause to both collections and returns its index. lits
// is copied into original; the working form starts as a fresh set holding
// the same literals.
func (a *clauseArena) add(lits []Literal) int {
	idx := len(a.original)
	orig := make([]Literal, len(lits))
	copy(orig, lits)
	a.original = append(a.original, orig)

	ws := newOrderedSet[Literal](len(lits))
	for _, l := range lits {
		ws.Add(l)
	}
	a.working = append(a.working, ws)
	return idx
}

func (a *clauseArena) len() int {
	return len(a.original)
}

// addLearned appends a clause learned at a conflict point: original takes
// the raw reason, working takes the filtered form the learner computed
// (literals whose variable is unassigned or whose current value still
// matches the literal's polarity). Unlike add, the two differ.
func (a *clauseArena) addLearned(original, working []Literal) int {
	idx := len(a.original)
	orig := make([]Literal, len(original))
	copy(orig, original)
	a.original = append(a.original, orig)

	ws := newOrderedSet[Literal](len(working))
	for _, l := range working {
		ws.Add(l)
	}
	a.working = append(a.working, ws)
	return idx
}
