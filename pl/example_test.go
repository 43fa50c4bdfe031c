package pl_test

import (
	"fmt"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/pl"
	"github.com/katalvlaran/ltlfc/symbol"
)

// ExampleClauses reduces a delta residual to its minimal models: x alone
// already satisfies the formula, so the redundant x&y clause is dropped
// as a non-minimal superset.
func ExampleClauses() {
	x := ltlf.Atomic(symbol.New("x"))
	y := ltlf.Atomic(symbol.New("y"))
	q := pl.Or(pl.SubAtomic(x), pl.And(pl.SubAtomic(x), pl.SubAtomic(y)))

	for _, clause := range pl.Clauses(q) {
		fmt.Println(clause)
	}
	// Output:
	// [x]
}
