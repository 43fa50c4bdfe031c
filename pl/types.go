// Package pl implements the Propositional Formula (PL) algebra: the
// delta engine's output alphabet. A PL atom carries one of two disjoint
// namespaces (delta's double role for atoms):
// an AtomSymbol wraps a symbol.Symbol (a proposition resolved against an
// Interpretation), and an AtomSubformula wraps an *ltlf.Formula (a
// placeholder naming a successor obligation, read off by the automaton
// builder). Both live in the one Formula type, tagged by AtomKind, so
// evaluation can refuse to cross namespaces instead of silently
// misinterpreting one atom kind as the other.
package pl

import (
	"errors"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

// Kind identifies a PL node's variant.
type Kind uint8

const (
	KindTrue Kind = iota
	KindFalse
	KindAtomic
	KindNot
	KindAnd
	KindOr
)

// AtomKind distinguishes the two atom namespaces a KindAtomic node can
// carry.
type AtomKind uint8

const (
	// AtomSymbol atoms wrap a symbol.Symbol, resolved by Truth against an
	// Interpretation.
	AtomSymbol AtomKind = iota
	// AtomSubformula atoms wrap an *ltlf.Formula, read off by Clauses as
	// a successor-macro-state placeholder. Truth refuses to resolve
	// these directly.
	AtomSubformula
)

// ErrCrossNamespaceEval is the value Truth panics with when asked to
// evaluate an AtomSubformula atom: these are never directly truth-evaluable, only
// readable via Clauses once the caller has reduced them.
var ErrCrossNamespaceEval = errors.New("pl: cannot evaluate a subformula atom directly")

// Formula is an immutable propositional-logic AST node over the two atom
// namespaces above. Construction flattens nested same-kind And/Or nodes,
// deduplicates children, and collapses empty/singleton nodes.
type Formula struct {
	kind     Kind
	atomKind AtomKind
	sym      symbol.Symbol
	sub      *ltlf.Formula
	children []*Formula
	key      string
}

// Kind reports the node's variant tag.
func (f *Formula) Kind() Kind { return f.kind }

// AtomKind reports which namespace a KindAtomic node's atom belongs to.
// Meaningless for any other Kind.
func (f *Formula) AtomKind() AtomKind { return f.atomKind }

// Symbol returns the wrapped symbol.Symbol for an AtomSymbol atom.
func (f *Formula) Symbol() symbol.Symbol { return f.sym }

// Subformula returns the wrapped *ltlf.Formula for an AtomSubformula
// atom.
func (f *Formula) Subformula() *ltlf.Formula { return f.sub }

// Children returns the node's operands (KindNot has exactly one).
func (f *Formula) Children() []*Formula { return f.children }

// String renders f's canonical form, also used as its identity key.
func (f *Formula) String() string { return f.key }

// Equal reports whether f and other are the canonically identical PL
// formula.
func (f *Formula) Equal(other *Formula) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.key == other.key
}
