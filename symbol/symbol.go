// Package symbol defines atomic propositions and truth assignments over
// them: the Symbol and Interpretation types shared by every layer of the
// compiler (pl, ltlf, delta, automaton).
//
// Symbol is a value-typed, hashable, totally-ordered wrapper around a
// name. Interpretation is an immutable finite set of Symbols considered
// true at one trace position; everything else is false by omission.
package symbol

import "sort"

// Symbol is an opaque atomic proposition identifier with value equality.
// Two Symbols are equal iff their names are equal.
type Symbol struct {
	name string
}

// New returns the Symbol named name.
func New(name string) Symbol {
	return Symbol{name: name}
}

// String returns the Symbol's name.
func (s Symbol) String() string {
	return s.name
}

// Less defines the total order over Symbols (lexicographic on name),
// used for canonical sorting of alphabets and interpretations.
func (s Symbol) Less(other Symbol) bool {
	return s.name < other.name
}

// Equal reports whether s and other denote the same proposition.
func (s Symbol) Equal(other Symbol) bool {
	return s.name == other.name
}

// LAST is the reserved Symbol denoting "current position is the last of
// the trace". The automaton builder injects it into every alphabet.
var LAST = New("LAST")

// Interpretation is a finite set of Symbols considered true; all others
// are false. Interpretations are immutable once constructed.
type Interpretation struct {
	set map[Symbol]struct{}
}

// NewInterpretation constructs an Interpretation containing exactly the
// given Symbols.
func NewInterpretation(syms ...Symbol) Interpretation {
	set := make(map[Symbol]struct{}, len(syms))
	for _, s := range syms {
		set[s] = struct{}{}
	}
	return Interpretation{set: set}
}

// EmptyI returns the interpretation in which every symbol is false.
func EmptyI() Interpretation {
	return Interpretation{set: map[Symbol]struct{}{}}
}

// FullI returns the interpretation in which every symbol in alphabet is
// true (an "all-true" assignment parameterized by alphabet, since there
// is no single universal alphabet at this layer).
func FullI(alphabet []Symbol) Interpretation {
	return NewInterpretation(alphabet...)
}

// PLTrueInterpretation is the conventional interpretation used to collapse
// an epsilon-step delta residual: since that residual contains only
// PLTrue/PLFalse atoms, any interpretation yields the same Boolean, and
// FullI(nil) (the empty-alphabet full assignment, equivalent to the empty
// interpretation) is used by convention.
func PLTrueInterpretation() Interpretation {
	return FullI(nil)
}

// PLFalseInterpretation is the all-false interpretation, the other
// conventional choice for collapsing an epsilon-step residual.
func PLFalseInterpretation() Interpretation {
	return EmptyI()
}

// Contains reports whether sym is true under i.
func (i Interpretation) Contains(sym Symbol) bool {
	_, ok := i.set[sym]
	return ok
}

// Union returns a new Interpretation true on exactly the symbols true in
// i or in other.
func (i Interpretation) Union(other Interpretation) Interpretation {
	merged := make(map[Symbol]struct{}, len(i.set)+len(other.set))
	for s := range i.set {
		merged[s] = struct{}{}
	}
	for s := range other.set {
		merged[s] = struct{}{}
	}
	return Interpretation{set: merged}
}

// Sorted returns the true symbols of i as a slice ordered by Less,
// giving Interpretation a deterministic canonical representation (used
// as a map/macro-state key component throughout automaton).
func (i Interpretation) Sorted() []Symbol {
	out := make([]Symbol, 0, len(i.set))
	for s := range i.set {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })
	return out
}

// Key returns a canonical string key for i, suitable for map lookups and
// equality comparisons (e.g. as part of a transition-table key).
func (i Interpretation) Key() string {
	sorted := i.Sorted()
	// Each symbol's name can't contain NUL in practice; use it as a
	// cheap, readable separator.
	key := make([]byte, 0, 16*len(sorted))
	for idx, s := range sorted {
		if idx > 0 {
			key = append(key, 0)
		}
		key = append(key, []byte(s.name)...)
	}
	return string(key)
}

// Len reports the number of true symbols in i.
func (i Interpretation) Len() int {
	return len(i.set)
}
