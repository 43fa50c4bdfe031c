// Package ltlf implements the LTLf formula AST: construction with
// structural invariants (flattening, canonicalization, dedup), negation,
// NNF rewriting, label collection, and a ground-truth trace-semantics
// oracle used as an independent correctness reference.
//
// Formula is a tagged-variant sum type rather than a polymorphic class
// hierarchy: every capability (ToNNF, TruthOnTrace, FindLabels, Negate,
// Equal/Less/Hash) is a method dispatched on Kind via a single exhaustive
// switch, the same way core/methods_vertices.go, methods_edges.go, and
// methods_clone.go split core.Graph's behavior across files by concern
// instead of separate mixin types.
package ltlf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ltlfc/symbol"
)

// Kind identifies an LTLf AST node's variant.
type Kind uint8

const (
	KindTrue Kind = iota
	KindFalse
	KindAtomic
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindEquivalence
	KindNext
	KindWeakNext
	KindUntil
	KindRelease
	KindEventually
	KindAlways
)

// kindNames gives each Kind a stable, human-readable operator symbol for
// String() and diagnostics, mirroring the original's operator_symbol
// properties ("X", "U", "G", "R", "F", ...).
var kindNames = map[Kind]string{
	KindTrue:        "true",
	KindFalse:       "false",
	KindAtomic:      "",
	KindNot:         "!",
	KindAnd:         "&",
	KindOr:          "|",
	KindImplies:     "->",
	KindEquivalence: "<->",
	KindNext:        "X",
	KindWeakNext:    "WX",
	KindUntil:       "U",
	KindRelease:     "R",
	KindEventually:  "F",
	KindAlways:      "G",
}

// ErrEmptyOperands is the PreconditionViolation signalled when And, Or,
// Equivalence or Implies is given zero operands.
var ErrEmptyOperands = errors.New("ltlf: operator requires at least one operand")

// ErrTooFewOperands is the PreconditionViolation signalled when
// Until or Release is given fewer than two operands.
var ErrTooFewOperands = errors.New("ltlf: Until/Release require at least two operands")

// Formula is an immutable LTLf AST node. Construction normalizes: nested
// same-kind commutative operators (And, Or, Equivalence) are flattened
// (Until, Release and Implies are not), commutative operators are sorted
// and deduplicated, and singleton commutative nodes collapse to their
// sole child — so every *Formula reachable from a constructor already
// satisfies the structural invariants documented on the commutative
// constructors below.
type Formula struct {
	kind     Kind
	sym      symbol.Symbol
	children []*Formula // operands, never mutated after construction
	hash     uint64
	str      string // cached canonical string, doubles as the hash seed
}

// Kind reports the node's variant tag.
func (f *Formula) Kind() Kind { return f.kind }

// Symbol returns the atomic proposition named by an KindAtomic node; it
// is the zero Symbol for every other kind.
func (f *Formula) Symbol() symbol.Symbol { return f.sym }

// Children returns the node's operands in their canonical order. The
// returned slice must not be mutated by callers.
func (f *Formula) Children() []*Formula { return f.children }

// String renders f in the canonical infix notation used for hashing and
// diagnostics (not intended to round-trip through a parser — parsing is
// an external collaborator this package does not provide).
func (f *Formula) String() string { return f.str }

// Hash is a pure function of f's canonical form, stable across runs for
// equal inputs, superseding the original's "sort by hash(x)" tie-break —
// here Hash is derived *from* the already-canonical String, not used to
// derive the canonical order itself.
func (f *Formula) Hash() uint64 { return f.hash }

func mustf(name string, cond bool, err error) {
	if !cond {
		panic(fmt.Sprintf("ltlf: %s: %v", name, err))
	}
}

// fnv1a64 computes a stable 64-bit hash of s, used to derive Formula.Hash
// from its canonical string form.
func fnv1a64(s string) uint64 {
	const (
		offset uint64 = 14695981039346656037
		prime  uint64 = 1099511628211
	)
	h := offset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}
