package satgo

import "fmt"

// conflictStatus is the side channel through which assign reports a
// conflict: assign's return value signals success/failure, the reason
// clause (when there is a conflict) is exposed here for the caller to
// optionally learn from.
type conflictStatus struct {
	conflict bool
	reason   []Literal
}

// Solver is a single formula's solving state: the clause arena, the
// variable table, the trail, and the unsatisfied-clause index set. A Solver
// is built once from a formula and solved once; it is not safe for
// concurrent use and not meant to be reused across unrelated formulas.
type Solver struct {
	cfg Config

	maxVar int
	vars   []variableRecord // index 0 unused, variables are 1..maxVar
	arena  *clauseArena

	unsatisfied *orderedSet[int]
	trail       []Literal

	lastStatus conflictStatus

	initialClauseCount  int
	learnedCount        int
	maxLearnedClauses   int
	maxLearnedClauseLen int

	decisionCount int

	// simpleUnsat is set at construction time when the input contains an
	// empty clause: the formula is UNSAT without any search, regardless of
	// variant.
	simpleUnsat bool

	// Stats, purely informational.
	NumDecisions    int64
	NumImplications int64
}

// New builds a Solver over problem, a list of clauses each given as a slice
// of non-zero signed integers. It returns an error if problem is empty or
// contains a zero literal.
func New(problem [][]int, cfg Config) (*Solver, error) {
	if len(problem) == 0 {
		return nil, fmt.Errorf("satgo: formula has no clauses")
	}

	maxVar := 0
	for _, cls := range problem {
		for _, lit := range cls {
			if lit == 0 {
				return nil, fmt.Errorf("satgo: clause contains literal 0")
			}
			if v := abs(lit); v > maxVar {
				maxVar = v
			}
		}
	}

	s := &Solver{
		cfg:                 cfg,
		maxVar:              maxVar,
		vars:                make([]variableRecord, maxVar+1),
		arena:               newClauseArena(len(problem)),
		unsatisfied:         newOrderedSet[int](len(problem)),
		initialClauseCount:  len(problem),
		maxLearnedClauseLen: cfg.MaxLearnedClauseLenParam + 1,
	}
	s.maxLearnedClauses = len(problem) * cfg.LearnedClauseLimitPercentage / 100

	for _, cls := range problem {
		lits := dedupClause(cls)
		if len(lits) == 0 {
			s.simpleUnsat = true
		}
		idx := s.arena.add(lits)
		s.unsatisfied.Add(idx)
		s.registerOccurrences(idx, lits)
	}

	return s, nil
}

// registerOccurrences records idx in occursPos/occursNeg for every variable
// in lits. The occurrence lists are append-only once set.
func (s *Solver) registerOccurrences(idx int, lits []Literal) {
	for _, l := range lits {
		v := &s.vars[l.Var()]
		if l > 0 {
			v.occursPos = append(v.occursPos, idx)
		} else {
			v.occursNeg = append(v.occursNeg, idx)
		}
	}
}

// dedupClause converts raw ints to Literals, dropping duplicate literals.
// Clauses where a literal co-occurs with its negation are passed through
// unchanged: {+1,-1} is a tautology satisfied by either value of the
// variable, not specially rewritten.
func dedupClause(cls []int) []Literal {
	seen := make(map[Literal]bool, len(cls))
	out := make([]Literal, 0, len(cls))
	for _, v := range cls {
		l := Literal(v)
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Assignment maps every variable 1..N to 0 or 1; variables left unassigned
// by the search are reported as 0.
type Assignment map[int]int

// Solve runs the search and returns the satisfying assignment (if any) and
// whether the formula is satisfiable.
func (s *Solver) Solve() (Assignment, bool) {
	if s.simpleUnsat {
		return nil, false
	}

	if !s.dpll() {
		return nil, false
	}

	out := make(Assignment, s.maxVar)
	for v := 1; v <= s.maxVar; v++ {
		val := s.vars[v].value
		if val == assignTrue {
			out[v] = 1
		} else {
			out[v] = 0
		}
	}
	return out, true
}

// Stats returns solver-internal counters purely for diagnostic reporting.
// The set of keys may grow over time.
func (s *Solver) Stats() map[string]any {
	return map[string]any{
		"variant":             s.cfg.Variant.String(),
		"num decisions":       s.NumDecisions,
		"num implications":    s.NumImplications,
		"learned clauses":     s.learnedCount,
		"initial clauses":     s.initialClauseCount,
		"solved by fast path": s.simpleUnsat,
	}
}

// Solve is a convenience entry point: build a solver over problem with the
// default knobs for variant and run it once.
func Solve(problem [][]int, variant Variant) (Assignment, map[string]any, bool, error) {
	s, err := New(problem, DefaultConfig(variant))
	if err != nil {
		return nil, nil, false, err
	}
	assignment, ok := s.Solve()
	return assignment, s.Stats(), ok, nil
}
