// Package ltlfc compiles LTLf (Linear Temporal Logic on Finite Traces)
// formulas into finite-trace automata.
//
// The pipeline is organized under five subpackages, each depending only
// on the ones before it:
//
//	symbol/    — atomic propositions and interpretations (truth assignments)
//	ltlf/      — the formula AST: construction, negation normal form, a
//	             reference trace-semantics oracle
//	pl/        — the propositional algebra delta rewrites into
//	delta/     — the symbolic one-step transition relation over an ltlf.Formula
//	automaton/ — macro-state subset construction, determinization, and
//	             iterative partition-refinement minimization
//
// Typical use:
//
//	phi := ltlf.Eventually(ltlf.Atomic(symbol.New("delivered")))
//	auto, err := automaton.Compile(phi, automaton.WithMinimize(true))
//	ok, err := automaton.Accepts(auto, trace)
//
// The Example functions in each subpackage's example_test.go are the
// runnable scenarios; the module has no separate examples/ directory.
package ltlfc
