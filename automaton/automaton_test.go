package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfc/automaton"
	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

func sym(name string) symbol.Symbol { return symbol.New(name) }

func interp(syms ...symbol.Symbol) symbol.Interpretation {
	return symbol.NewInterpretation(syms...)
}

func mustCompile(t *testing.T, phi *ltlf.Formula, opts ...automaton.Option) automaton.Automaton {
	t.Helper()
	a, err := automaton.Compile(phi, opts...)
	require.NoError(t, err)
	return a
}

func TestAccepts_Eventually(t *testing.T) {
	a, b := sym("a"), sym("b")
	phi := ltlf.Eventually(ltlf.Atomic(a))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(), interp(a)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = automaton.Accepts(auto, []symbol.Interpretation{interp(b), interp(b)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccepts_Always(t *testing.T) {
	a := sym("a")
	phi := ltlf.Always(ltlf.Atomic(a))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(a), interp(a), interp(a)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = automaton.Accepts(auto, []symbol.Interpretation{interp(a), interp(), interp(a)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccepts_Until(t *testing.T) {
	a, b := sym("a"), sym("b")
	phi := ltlf.Until(ltlf.Atomic(a), ltlf.Atomic(b))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(a), interp(a), interp(b)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccepts_Next(t *testing.T) {
	a := sym("a")
	phi := ltlf.Next(ltlf.Atomic(a))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(), interp(a)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = automaton.Accepts(auto, []symbol.Interpretation{interp(a)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccepts_WeakNext(t *testing.T) {
	a := sym("a")
	phi := ltlf.WeakNext(ltlf.Atomic(a))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(a)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccepts_Implies(t *testing.T) {
	a, b := sym("a"), sym("b")
	phi := ltlf.Implies(ltlf.Atomic(a), ltlf.Eventually(ltlf.Atomic(b)))
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, []symbol.Interpretation{interp(a), interp(), interp(b)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = automaton.Accepts(auto, []symbol.Interpretation{interp(a), interp(), interp()})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccepts_UnknownSymbolIsInvalidAlphabet(t *testing.T) {
	a, c := sym("a"), sym("c")
	phi := ltlf.Atomic(a)
	auto := mustCompile(t, phi)

	_, err := automaton.Accepts(auto, []symbol.Interpretation{interp(c)})
	require.ErrorIs(t, err, automaton.ErrUnknownSymbol)
}

func TestAccepts_EmptyTrace(t *testing.T) {
	phi := ltlf.True()
	auto := mustCompile(t, phi)

	ok, err := automaton.Accepts(auto, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompile_Determinize_AgreesWithNFA(t *testing.T) {
	a, b := sym("a"), sym("b")
	phi := ltlf.Until(ltlf.Atomic(a), ltlf.Atomic(b))

	nfa := mustCompile(t, phi)
	dfa := mustCompile(t, phi, automaton.WithDeterminize(true))

	trace := []symbol.Interpretation{interp(a), interp(a), interp(b)}
	okNFA, err := automaton.Accepts(nfa, trace)
	require.NoError(t, err)
	okDFA, err := automaton.Accepts(dfa, trace)
	require.NoError(t, err)
	assert.Equal(t, okNFA, okDFA)
	assert.True(t, okDFA)

	for _, s := range dfa.States() {
		assert.LessOrEqual(t, len(dfa.Successors(s, interp(a))), 1)
	}
}

func TestCompile_Minimize_NoDuplicateStates(t *testing.T) {
	a := sym("a")
	phi := ltlf.Eventually(ltlf.Atomic(a))

	dfa := mustCompile(t, phi, automaton.WithMinimize(true))

	seen := map[string]bool{}
	for _, s := range dfa.States() {
		require.False(t, seen[s.Key()], "duplicate state key after minimize: %s", s.Key())
		seen[s.Key()] = true
	}

	trace := []symbol.Interpretation{interp(), interp(a)}
	ok, err := automaton.Accepts(dfa, trace)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompile_OnTheFly_MatchesBatch(t *testing.T) {
	a := sym("a")
	phi := ltlf.Eventually(ltlf.Atomic(a))

	batch := mustCompile(t, phi)
	otf := mustCompile(t, phi, automaton.WithOnTheFly(true))

	trace := []symbol.Interpretation{interp(), interp(a)}
	okBatch, err := automaton.Accepts(batch, trace)
	require.NoError(t, err)
	okOTF, err := automaton.Accepts(otf, trace)
	require.NoError(t, err)
	assert.Equal(t, okBatch, okOTF)
}

func TestCompile_DefaultAlphabetIncludesLast(t *testing.T) {
	a := sym("a")
	phi := ltlf.Atomic(a)
	auto := mustCompile(t, phi)

	found := false
	for _, s := range auto.Alphabet() {
		if s.Equal(symbol.LAST) {
			found = true
		}
	}
	assert.True(t, found)
}
