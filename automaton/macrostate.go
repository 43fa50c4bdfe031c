package automaton

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ltlfc/ltlf"
)

// MacroState is the canonicalized identity of one automaton state: either
// a leaf NFA state (a sorted, deduplicated set of NNF LTLf subformulas,
// per the macro-state identity rule) or a composite DFA state built by
// Determinize/Minimize (a sorted, deduplicated set of constituent leaf
// states). MacroState is a value type; its Key is the sole identity used
// for map lookups throughout this package — MacroState itself carries a
// slice field and is therefore not usable directly as a Go map key.
type MacroState struct {
	key     string
	members []*ltlf.Formula
}

// NewMacroState builds a leaf MacroState from a set of NNF subformulas,
// deduplicating via Equal and ordering via Less so that two calls with
// the same set in any order produce the same Key.
func NewMacroState(fs []*ltlf.Formula) MacroState {
	dedup := make([]*ltlf.Formula, 0, len(fs))
	for _, f := range fs {
		found := false
		for _, d := range dedup {
			if f.Equal(d) {
				found = true
				break
			}
		}
		if !found {
			dedup = append(dedup, f)
		}
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].Less(dedup[j]) })

	parts := make([]string, len(dedup))
	for i, f := range dedup {
		parts[i] = f.String()
	}
	return MacroState{key: "N{" + strings.Join(parts, ",") + "}", members: dedup}
}

// NewCompositeMacroState builds a DFA state out of a set of constituent
// leaf (or composite) states — the subset-construction / partition-
// refinement identity used by Determinize and Minimize. A composite
// state carries no direct LTLf members of its own; Members always
// reports nil for it, since its acceptance and transitions are derived
// from its constituents rather than recomputed via delta.
func NewCompositeMacroState(states []MacroState) MacroState {
	dedup := make([]MacroState, 0, len(states))
	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if _, ok := seen[s.key]; ok {
			continue
		}
		seen[s.key] = struct{}{}
		dedup = append(dedup, s)
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].key < dedup[j].key })

	parts := make([]string, len(dedup))
	for i, s := range dedup {
		parts[i] = s.key
	}
	return MacroState{key: "D{" + strings.Join(parts, ",") + "}"}
}

// Key returns the canonical string identity of s.
func (s MacroState) Key() string { return s.key }

// Members returns the NNF subformulas making up a leaf state, in
// canonical order; nil for a composite state.
func (s MacroState) Members() []*ltlf.Formula { return s.members }

// String renders s's Key, suitable for diagnostics.
func (s MacroState) String() string { return s.key }
