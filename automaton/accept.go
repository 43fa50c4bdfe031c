package automaton

import (
	"fmt"

	"github.com/katalvlaran/ltlfc/symbol"
)

// Accepts runs a per-position NFA subset simulation over trace: the
// current "frontier" of reachable MacroStates starts at a.Initial() and,
// at each position, becomes the union of Successors over every state
// currently held — sound for both NFA and DFA automata without
// requiring the caller to determinize first. The final letter in each
// trace gets LAST unioned in, per convention. Returns ErrUnknownSymbol
// if any trace letter mentions a symbol outside a.Alphabet(). A
// zero-length trace is accepted iff the initial state is accepting
// under ε-evaluation.
func Accepts(a Automaton, trace []symbol.Interpretation) (bool, error) {
	allowed := make(map[symbol.Symbol]struct{}, len(a.Alphabet()))
	for _, s := range a.Alphabet() {
		allowed[s] = struct{}{}
	}
	for _, letter := range trace {
		for _, s := range letter.Sorted() {
			if s.Equal(symbol.LAST) {
				continue
			}
			if _, ok := allowed[s]; !ok {
				return false, fmt.Errorf("%w: %s", ErrUnknownSymbol, s)
			}
		}
	}

	current := map[string]MacroState{a.Initial().Key(): a.Initial()}
	if len(trace) == 0 {
		return anyAccepting(a, current), nil
	}

	for pos, letter := range trace {
		l := letter
		if pos == len(trace)-1 {
			l = letter.Union(symbol.NewInterpretation(symbol.LAST))
		}
		next := map[string]MacroState{}
		for _, s := range current {
			for _, succ := range a.Successors(s, l) {
				next[succ.Key()] = succ
			}
		}
		current = next
		if len(current) == 0 {
			return false, nil
		}
	}
	return anyAccepting(a, current), nil
}

func anyAccepting(a Automaton, states map[string]MacroState) bool {
	for _, s := range states {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}
