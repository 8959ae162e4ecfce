package satgo

// Variant selects which of the three solver builds to run.
type Variant int

const (
	// D1 is pure DPLL: unit propagation and arbitrary branching, no
	// pure-literal elimination, no conflict learning.
	D1 Variant = iota
	// D2 is D1 plus pure-literal elimination and conflict-clause learning.
	D2
	// D3 is D2 plus VSIDS-style decayed activity branching.
	D3
)

// String returns the variant tag. The CLI prints it as the output header
// for D1 and D2 only; D3 output has no header line.
func (v Variant) String() string {
	switch v {
	case D1:
		return "DPLL Only"
	case D2:
		return "DPLL + CCL"
	case D3:
		return "DPLL + CCL + VSIDS"
	default:
		return "unknown variant"
	}
}

func (v Variant) hasPureLiteralElimination() bool { return v >= D2 }
func (v Variant) hasConflictLearning() bool       { return v >= D2 }
func (v Variant) hasVSIDS() bool                  { return v >= D3 }

// Config carries the solver's constructor-time knobs. Zero values are not
// meaningful defaults; start from DefaultConfig and override fields as
// needed.
type Config struct {
	Variant Variant

	// LearnedClauseLimitPercentage caps the number of learned clauses at
	// this percentage of the initial (pre-learning) clause count.
	LearnedClauseLimitPercentage int

	// MaxLearnedClauseLenParam: only conflict reasons strictly shorter than
	// MaxLearnedClauseLenParam+1 literals are learned.
	MaxLearnedClauseLenParam int

	// DecayFactor, ConflictWeight, and DecayInterval configure the D3
	// VSIDS-style activity heuristic; ignored for D1 and D2.
	DecayFactor    float64
	ConflictWeight float64
	DecayInterval  int

	// EarlyReturnOnDecisionConflict controls the D2/D3 behavior at a failed
	// decision: when a conflict on the first branch polarity produces a
	// learnable reason, the search returns UNSAT immediately rather than
	// trying the opposite polarity. DefaultConfig sets it true; set false
	// to always try both polarities.
	EarlyReturnOnDecisionConflict bool

	// Trace, if non-nil, receives a human-readable dump of solver state at
	// each decision. See trace.go.
	Trace func(string)
}

// DefaultConfig returns the stock knob settings for the given variant.
func DefaultConfig(variant Variant) Config {
	return Config{
		Variant:                       variant,
		LearnedClauseLimitPercentage:  25,
		MaxLearnedClauseLenParam:      5,
		DecayFactor:                   0.95,
		ConflictWeight:                0.2,
		DecayInterval:                 10,
		EarlyReturnOnDecisionConflict: true,
	}
}
