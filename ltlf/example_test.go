package ltlf_test

import (
	"fmt"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

// ExampleAtomic builds a single atomic proposition and renders it.
func ExampleAtomic() {
	delivered := ltlf.Atomic(symbol.New("delivered"))
	fmt.Println(delivered)
	// Output:
	// delivered
}

// ExampleFormula_ToNNF pushes a negation through Eventually, landing on
// its dual Always operator with the negation sitting on the atom.
func ExampleFormula_ToNNF() {
	delivered := ltlf.Atomic(symbol.New("delivered"))
	phi := ltlf.Not(ltlf.Eventually(delivered))
	fmt.Println(phi.ToNNF())
	// Output:
	// G(!(delivered))
}
