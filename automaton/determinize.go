package automaton

import (
	"sort"

	"github.com/katalvlaran/ltlfc/pl"
)

// Determinize runs classical subset construction over nfa: each
// DFA state is the set of NFA macro-states reachable by the same input
// prefix, built by the same frontier/seen closure-loop discipline as
// buildBatch. A DFA state accepts iff any of its constituent NFA states
// accepts.
func Determinize(nfa Automaton) Automaton {
	alphabet := nfa.Alphabet()
	letters := pl.Models(pl.True(), alphabet)

	nfaInitial := nfa.Initial()
	dfaInitial := NewCompositeMacroState([]MacroState{nfaInitial})

	frontier := []MacroState{dfaInitial}
	seen := map[string]MacroState{dfaInitial.Key(): dfaInitial}
	members := map[string][]MacroState{dfaInitial.Key(): {nfaInitial}}
	transitions := map[string]map[string][]MacroState{}
	accepting := map[string]bool{}

	emptyDFA := NewCompositeMacroState(nil)

	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]
		constituents := members[s.Key()]

		acc := false
		for _, c := range constituents {
			if nfa.IsAccepting(c) {
				acc = true
				break
			}
		}
		accepting[s.Key()] = acc

		row := make(map[string][]MacroState, len(letters))
		for _, letter := range letters {
			unionSet := map[string]MacroState{}
			for _, c := range constituents {
				for _, succ := range nfa.Successors(c, letter) {
					unionSet[succ.Key()] = succ
				}
			}

			if len(unionSet) == 0 {
				row[letter.Key()] = []MacroState{emptyDFA}
				if _, ok := seen[emptyDFA.Key()]; !ok {
					seen[emptyDFA.Key()] = emptyDFA
					members[emptyDFA.Key()] = nil
					frontier = append(frontier, emptyDFA)
				}
				continue
			}

			unionMembers := make([]MacroState, 0, len(unionSet))
			for _, m := range unionSet {
				unionMembers = append(unionMembers, m)
			}
			next := NewCompositeMacroState(unionMembers)
			row[letter.Key()] = []MacroState{next}
			if _, ok := seen[next.Key()]; !ok {
				seen[next.Key()] = next
				members[next.Key()] = unionMembers
				frontier = append(frontier, next)
			}
		}
		transitions[s.Key()] = row
	}

	states := make([]MacroState, 0, len(seen))
	for _, s := range seen {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Key() < states[j].Key() })

	return &batchAutomaton{
		alphabet:    alphabet,
		initial:     dfaInitial,
		states:      states,
		transitions: transitions,
		accepting:   accepting,
	}
}
