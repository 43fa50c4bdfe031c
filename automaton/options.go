// Package automaton implements the DFA/NFA construction pipeline:
// compiling an LTLf formula into a macro-state automaton via fixed-point
// subset construction over the ltlf/pl/delta layers, with optional
// classical determinization and iterative partition-refinement
// minimization.
package automaton

import "github.com/katalvlaran/ltlfc/symbol"

// Option configures Compile, mirroring the functional-options idiom of
// bfs.Option / builder.BuilderOption: each Option mutates a config in
// place, and later options override earlier ones.
type Option func(*config)

// config holds Compile's parameters ("compile(φ, options)").
type config struct {
	labels      []symbol.Symbol
	onTheFly    bool
	determinize bool
	minimize    bool
}

// defaultConfig returns the zero-value configuration: no explicit
// labels (FindLabels(φ) is used instead), batch (not on-the-fly)
// construction, no determinization, no minimization.
func defaultConfig() config {
	return config{}
}

// WithLabels supplies an explicit alphabet instead of FindLabels(φ). A
// nil slice is a no-op, leaving the default (derive from φ) in place.
func WithLabels(labels []symbol.Symbol) Option {
	return func(c *config) {
		if labels != nil {
			c.labels = append([]symbol.Symbol(nil), labels...)
		}
	}
}

// WithOnTheFly selects the lazy DFAOTF construction instead of a
// materialized batch automaton.
func WithOnTheFly(v bool) Option {
	return func(c *config) { c.onTheFly = v }
}

// WithDeterminize runs classical subset construction over the
// built automaton before returning it.
func WithDeterminize(v bool) Option {
	return func(c *config) { c.determinize = v }
}

// WithMinimize runs iterative partition refinement over the built
// automaton before returning it. Minimize implies Determinize: partition
// refinement assumes a deterministic transition function.
func WithMinimize(v bool) Option {
	return func(c *config) { c.minimize = v }
}
