package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfc/symbol"
)

func TestSymbol_EqualityAndOrder(t *testing.T) {
	a := symbol.New("a")
	a2 := symbol.New("a")
	b := symbol.New("b")

	assert.True(t, a.Equal(a2))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, "a", a.String())
}

func TestInterpretation_Contains(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	i := symbol.NewInterpretation(a)

	assert.True(t, i.Contains(a))
	assert.False(t, i.Contains(b))
	assert.Equal(t, 1, i.Len())
}

func TestInterpretation_EmptyAndFull(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	alphabet := []symbol.Symbol{a, b}

	empty := symbol.EmptyI()
	full := symbol.FullI(alphabet)

	assert.False(t, empty.Contains(a))
	assert.False(t, empty.Contains(b))
	assert.True(t, full.Contains(a))
	assert.True(t, full.Contains(b))
}

func TestInterpretation_Union(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	i1 := symbol.NewInterpretation(a)
	i2 := symbol.NewInterpretation(b)

	u := i1.Union(i2)
	assert.True(t, u.Contains(a))
	assert.True(t, u.Contains(b))
}

func TestInterpretation_Key_OrderIndependent(t *testing.T) {
	a, b := symbol.New("a"), symbol.New("b")
	i1 := symbol.NewInterpretation(a, b)
	i2 := symbol.NewInterpretation(b, a)

	require.Equal(t, i1.Key(), i2.Key())
}

func TestInterpretation_Sorted_Deterministic(t *testing.T) {
	a, b, c := symbol.New("a"), symbol.New("b"), symbol.New("c")
	i := symbol.NewInterpretation(c, a, b)

	sorted := i.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].String())
	assert.Equal(t, "b", sorted[1].String())
	assert.Equal(t, "c", sorted[2].String())
}

func TestPLConventionInterpretations(t *testing.T) {
	assert.Equal(t, 0, symbol.PLFalseInterpretation().Len())
	assert.Equal(t, 0, symbol.PLTrueInterpretation().Len())
}
