// Package satgo implements a DPLL-family SAT solver over propositional CNF
// formulas, shipping in three variants of increasing sophistication:
//
//   - D1: pure DPLL with unit propagation and arbitrary branching.
//   - D2: D1 plus pure-literal elimination and conflict-clause learning
//     (CCL), with length and count caps.
//   - D3: D2 plus a VSIDS-style decayed literal activity heuristic for
//     branching.
//
// A formula is a slice of clauses, each clause a slice of non-zero signed
// integers: a positive integer v asserts variable v, a negative integer -v
// asserts its negation. Variables are numbered from 1; any integers other
// than zero are accepted as variable names, they need not be contiguous.
//
// The search engine mutates a clause arena and a variable table in place as
// it assigns and backtracks, rather than copying the formula at each
// decision. See DESIGN.md for how that arena is organized and why.
package satgo
