package pl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/pl"
	"github.com/katalvlaran/ltlfc/symbol"
)

func TestAnd_EmptyIsTrue(t *testing.T) {
	assert.True(t, pl.And().Equal(pl.True()))
	assert.True(t, pl.Or().Equal(pl.False()))
}

func TestAnd_SingletonCollapses(t *testing.T) {
	a := pl.Atomic(symbol.New("a"))
	assert.True(t, pl.And(a).Equal(a))
	assert.True(t, pl.Or(a).Equal(a))
}

func TestAnd_OrderIndependent(t *testing.T) {
	a, b := pl.Atomic(symbol.New("a")), pl.Atomic(symbol.New("b"))
	assert.True(t, pl.And(a, b).Equal(pl.And(b, a)))
}

func TestNot_FoldsConstants(t *testing.T) {
	assert.True(t, pl.Not(pl.True()).Equal(pl.False()))
	assert.True(t, pl.Not(pl.False()).Equal(pl.True()))
	a := pl.Atomic(symbol.New("a"))
	assert.True(t, pl.Not(pl.Not(a)).Equal(a))
}

func TestTruth(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	i := symbol.NewInterpretation(a)

	assert.True(t, pl.Truth(pl.Atomic(a), i))
	assert.False(t, pl.Truth(pl.Atomic(b), i))
	assert.True(t, pl.Truth(pl.Or(pl.Atomic(a), pl.Atomic(b)), i))
	assert.False(t, pl.Truth(pl.And(pl.Atomic(a), pl.Atomic(b)), i))
}

func TestModels_Enumeration(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	f := pl.Or(pl.Atomic(a), pl.Atomic(b))
	models := pl.Models(f, []symbol.Symbol{a, b})
	// {a}, {b}, {a,b} satisfy a|b; {} does not.
	require.Len(t, models, 3)
}

func TestModels_Deterministic(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	f := pl.And(pl.Atomic(a), pl.Atomic(b))
	m1 := pl.Models(f, []symbol.Symbol{b, a})
	m2 := pl.Models(f, []symbol.Symbol{a, b})
	require.Len(t, m1, 1)
	require.Len(t, m2, 1)
	assert.Equal(t, m1[0].Key(), m2[0].Key())
}

func TestClauses_AndOrMinimal(t *testing.T) {
	x := ltlf.Atomic(symbol.New("x"))
	y := ltlf.Atomic(symbol.New("y"))

	qx := pl.SubAtomic(x)
	qy := pl.SubAtomic(y)

	// (qx | qy) & T -> two singleton clauses {x}, {y}.
	f := pl.And(pl.Or(qx, qy), pl.True())
	clauses := pl.Clauses(f)
	require.Len(t, clauses, 2)
}

func TestClauses_TrueIsEmptyClause(t *testing.T) {
	clauses := pl.Clauses(pl.True())
	require.Len(t, clauses, 1)
	assert.Len(t, clauses[0], 0)
}

func TestClauses_FalseHasNoModels(t *testing.T) {
	clauses := pl.Clauses(pl.False())
	assert.Len(t, clauses, 0)
}

func TestClauses_DropsNonMinimal(t *testing.T) {
	x := ltlf.Atomic(symbol.New("x"))
	y := ltlf.Atomic(symbol.New("y"))
	qx := pl.SubAtomic(x)
	qy := pl.SubAtomic(y)

	// qx | (qx & qy): the conjunctive clause {x,y} is dominated by {x}.
	f := pl.Or(qx, pl.And(qx, qy))
	clauses := pl.Clauses(f)
	require.Len(t, clauses, 1)
	assert.Len(t, clauses[0], 1)
}
