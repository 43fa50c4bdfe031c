package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ltlfc/pl"
)

// Minimize collapses dfa's states into the coarsest partition refinement
// that distinguishes accepting from non-accepting states and any two
// states whose successors (under any letter) land in different blocks.
// Assumes dfa is already deterministic — callers get this automatically
// via Compile(WithMinimize(true)), which always determinizes first.
//
// This is Moore-style iterative partition refinement rather than
// Hopcroft's worklist algorithm — simpler to verify, same fixed point,
// different asymptotic complexity (see DESIGN.md). Blocks start at the
// accept/reject split and are refined by successor-block membership per
// letter until no split changes anything, the same union-find discipline
// prim_kruskal.Kruskal applies to components, with merge and split
// swapped (there: merge by edge; here: split by letter).
func Minimize(dfa Automaton) Automaton {
	states := dfa.States()
	alphabet := dfa.Alphabet()
	letters := pl.Models(pl.True(), alphabet)

	blockOf := make(map[string]int, len(states))
	for _, s := range states {
		if dfa.IsAccepting(s) {
			blockOf[s.Key()] = 1
		} else {
			blockOf[s.Key()] = 0
		}
	}

	for {
		signatureOf := make(map[string]string, len(states))
		for _, s := range states {
			var sig strings.Builder
			sig.WriteString(strconv.Itoa(blockOf[s.Key()]))
			for _, letter := range letters {
				sig.WriteByte('|')
				succs := dfa.Successors(s, letter)
				if len(succs) > 0 {
					sig.WriteString(strconv.Itoa(blockOf[succs[0].Key()]))
				} else {
					sig.WriteByte('-')
				}
			}
			signatureOf[s.Key()] = sig.String()
		}

		idOf := map[string]int{}
		next := make(map[string]int, len(states))
		for _, s := range states {
			sig := signatureOf[s.Key()]
			id, ok := idOf[sig]
			if !ok {
				id = len(idOf)
				idOf[sig] = id
			}
			next[s.Key()] = id
		}

		// Refinement only ever splits existing blocks (every signature
		// carries its prior block id as its first token), so an unchanged
		// block count means the partition is already stable.
		stable := len(idOf) == countBlocks(blockOf)
		blockOf = next
		if stable {
			break
		}
	}

	blocks := map[int][]MacroState{}
	for _, s := range states {
		b := blockOf[s.Key()]
		blocks[b] = append(blocks[b], s)
	}

	repOf := make(map[string]MacroState, len(states))
	blockRep := make(map[int]MacroState, len(blocks))
	for b, group := range blocks {
		rep := NewCompositeMacroState(group)
		blockRep[b] = rep
		for _, s := range group {
			repOf[s.Key()] = rep
		}
	}

	transitions := map[string]map[string][]MacroState{}
	accepting := map[string]bool{}
	for b, group := range blocks {
		rep := blockRep[b]
		witness := group[0]
		accepting[rep.Key()] = dfa.IsAccepting(witness)

		row := make(map[string][]MacroState, len(letters))
		for _, letter := range letters {
			succs := dfa.Successors(witness, letter)
			if len(succs) == 0 {
				row[letter.Key()] = nil
				continue
			}
			row[letter.Key()] = []MacroState{repOf[succs[0].Key()]}
		}
		transitions[rep.Key()] = row
	}

	repStates := make([]MacroState, 0, len(blockRep))
	for _, rep := range blockRep {
		repStates = append(repStates, rep)
	}
	sort.Slice(repStates, func(i, j int) bool { return repStates[i].Key() < repStates[j].Key() })

	return &batchAutomaton{
		alphabet:    alphabet,
		initial:     repOf[dfa.Initial().Key()],
		states:      repStates,
		transitions: transitions,
		accepting:   accepting,
	}
}

func countBlocks(blockOf map[string]int) int {
	seen := map[int]struct{}{}
	for _, b := range blockOf {
		seen[b] = struct{}{}
	}
	return len(seen)
}
