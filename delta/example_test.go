package delta_test

import (
	"fmt"

	"github.com/katalvlaran/ltlfc/delta"
	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

// ExampleDelta computes the one-step residual of Next(a) under a letter
// that is not the last one (LAST is absent): the obligation defers to a
// subformula placeholder naming a itself.
func ExampleDelta() {
	a := symbol.New("a")
	phi := ltlf.Next(ltlf.Atomic(a))

	q, err := delta.Delta(phi, symbol.NewInterpretation(a), false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q)
	// Output:
	// q:a
}
