package satgo

import "github.com/kr/pretty"

// traceDump is the snapshot of solver state Config.Trace receives at each
// decision, when set.
type traceDump struct {
	Phase       string
	Decisions   int64
	Trail       []Literal
	Unsatisfied int
	Learned     int
}

// traceState formats the current solver state with kr/pretty and hands it
// to Config.Trace, if the caller installed one. A no-op otherwise, so
// production solves pay nothing for it.
func (s *Solver) traceState(phase string) {
	if s.cfg.Trace == nil {
		return
	}
	dump := traceDump{
		Phase:       phase,
		Decisions:   s.NumDecisions,
		Trail:       append([]Literal(nil), s.trail...),
		Unsatisfied: s.unsatisfied.Len(),
		Learned:     s.learnedCount,
	}
	s.cfg.Trace(pretty.Sprint(dump))
}
