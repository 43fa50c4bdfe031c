package automaton

import (
	"sort"

	"github.com/katalvlaran/ltlfc/delta"
	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/pl"
	"github.com/katalvlaran/ltlfc/symbol"
)

// Automaton is the external interface: initial(), successors(),
// is_accepting(), states(), alphabet(). Successors may return more than
// one MacroState — the compiler builds an NFA by default; Determinize
// collapses that into a single successor per letter.
type Automaton interface {
	Initial() MacroState
	Successors(s MacroState, letter symbol.Interpretation) []MacroState
	IsAccepting(s MacroState) bool
	States() []MacroState
	Alphabet() []symbol.Symbol
}

// Compile is the single entry point: compile(φ, options) → Automaton.
// Labels default to FindLabels(φ) when WithLabels is not given; LAST is
// always appended to the alphabet.
func Compile(phi *ltlf.Formula, opts ...Option) (Automaton, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	alphabet := resolveAlphabet(phi, cfg.labels)
	initial := NewMacroState([]*ltlf.Formula{phi.ToNNF()})

	var a Automaton
	if cfg.onTheFly {
		a = &DFAOTF{alphabet: alphabet, initial: initial}
	} else {
		built, err := buildBatch(initial, alphabet)
		if err != nil {
			return nil, err
		}
		a = built
	}

	if cfg.determinize || cfg.minimize {
		a = Determinize(a)
	}
	if cfg.minimize {
		a = Minimize(a)
	}
	return a, nil
}

func resolveAlphabet(phi *ltlf.Formula, explicit []symbol.Symbol) []symbol.Symbol {
	var labels []symbol.Symbol
	if explicit != nil {
		labels = explicit
	} else {
		set := phi.FindLabels()
		labels = make([]symbol.Symbol, 0, len(set))
		for s := range set {
			labels = append(labels, s)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i].Less(labels[j]) })
	}
	return append(append([]symbol.Symbol(nil), labels...), symbol.LAST)
}

// conj folds a macro-state's members into a single LTLf formula for
// delta/acceptance evaluation: the empty set is vacuously True,
// a singleton is itself, otherwise their conjunction.
func conj(s MacroState) *ltlf.Formula {
	switch len(s.members) {
	case 0:
		return ltlf.True()
	case 1:
		return s.members[0]
	default:
		return ltlf.And(s.members...)
	}
}

// successorsOf computes the candidate successor macro-states of s under
// letter: δ(conj(S), I, ε=false) read as a disjunction of conjunctions,
// each minimal clause becoming one NFA alternative successor.
func successorsOf(s MacroState, letter symbol.Interpretation) ([]MacroState, error) {
	q, err := delta.Delta(conj(s), letter, false)
	if err != nil {
		return nil, err
	}
	clauses := pl.Clauses(q)
	out := make([]MacroState, 0, len(clauses))
	for _, clause := range clauses {
		out = append(out, NewMacroState(clause))
	}
	return out, nil
}

// acceptingOf reports whether s is accepting: the conjunction of its
// members, evaluated with ε=true, simplifies to PLTrue. Every
// production rule in delta resolves eagerly under ε=true, so q is
// already a bare PLTrue/PLFalse constant by construction — Truth is
// still called against the conventional PLFalseInterpretation to make
// that collapse explicit rather than relying on callers to know it.
func acceptingOf(s MacroState) (bool, error) {
	q, err := delta.Delta(conj(s), symbol.PLFalseInterpretation(), true)
	if err != nil {
		return false, err
	}
	return pl.Truth(q, symbol.PLFalseInterpretation()), nil
}

// DFAOTF is the on-the-fly implementation: Initial/Successors/
// IsAccepting are computed per call with no materialized transition
// table. States returns nil — there is no pre-enumerated state set to
// report in this mode.
type DFAOTF struct {
	alphabet []symbol.Symbol
	initial  MacroState
}

func (a *DFAOTF) Initial() MacroState { return a.initial }

func (a *DFAOTF) Successors(s MacroState, letter symbol.Interpretation) []MacroState {
	succs, err := successorsOf(s, letter)
	if err != nil {
		panic(err)
	}
	return succs
}

func (a *DFAOTF) IsAccepting(s MacroState) bool {
	ok, err := acceptingOf(s)
	if err != nil {
		panic(err)
	}
	return ok
}

func (a *DFAOTF) States() []MacroState       { return nil }
func (a *DFAOTF) Alphabet() []symbol.Symbol { return a.alphabet }

// batchAutomaton is the materialized implementation: every
// reachable state, transition, and acceptance verdict is precomputed by
// the closure loop (buildBatch) or by Determinize/Minimize, and every
// Automaton method here is a pure map lookup.
type batchAutomaton struct {
	alphabet    []symbol.Symbol
	initial     MacroState
	states      []MacroState
	transitions map[string]map[string][]MacroState // stateKey -> letterKey -> successors
	accepting   map[string]bool
}

func (a *batchAutomaton) Initial() MacroState { return a.initial }

func (a *batchAutomaton) Successors(s MacroState, letter symbol.Interpretation) []MacroState {
	return a.transitions[s.Key()][letter.Key()]
}

func (a *batchAutomaton) IsAccepting(s MacroState) bool { return a.accepting[s.Key()] }
func (a *batchAutomaton) States() []MacroState          { return a.states }
func (a *batchAutomaton) Alphabet() []symbol.Symbol     { return a.alphabet }

// buildBatch runs the closure loop: a frontier/seen/transitions
// triple confined to this one call, grounded on bfs.BFS's walker loop
// (enqueue, dequeue, visit) — here there is no graph to traverse, so the
// "neighbors" of a macro-state are its letter-indexed successor sets
// computed directly from delta.
func buildBatch(initial MacroState, alphabet []symbol.Symbol) (*batchAutomaton, error) {
	letters := pl.Models(pl.True(), alphabet)

	frontier := []MacroState{initial}
	seen := map[string]MacroState{initial.Key(): initial}
	transitions := map[string]map[string][]MacroState{}
	accepting := map[string]bool{}

	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]

		row := make(map[string][]MacroState, len(letters))
		for _, letter := range letters {
			succs, err := successorsOf(s, letter)
			if err != nil {
				return nil, err
			}
			row[letter.Key()] = succs
			for _, succ := range succs {
				if _, ok := seen[succ.Key()]; !ok {
					seen[succ.Key()] = succ
					frontier = append(frontier, succ)
				}
			}
		}
		transitions[s.Key()] = row

		acc, err := acceptingOf(s)
		if err != nil {
			return nil, err
		}
		accepting[s.Key()] = acc
	}

	states := make([]MacroState, 0, len(seen))
	for _, s := range seen {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Key() < states[j].Key() })

	return &batchAutomaton{
		alphabet:    alphabet,
		initial:     initial,
		states:      states,
		transitions: transitions,
		accepting:   accepting,
	}, nil
}
