package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/ltlfc/automaton"
	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

// ExampleCompile builds the minimized DFA for Eventually(delivered): a
// waiting state, an absorbing accepting state once delivered has been
// seen, and a trap state for letters that can never lead to acceptance.
func ExampleCompile() {
	delivered := symbol.New("delivered")
	phi := ltlf.Eventually(ltlf.Atomic(delivered))

	auto, err := automaton.Compile(phi, automaton.WithMinimize(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("states:", len(auto.States()))
	fmt.Println("alphabet:", auto.Alphabet())
	// Output:
	// states: 3
	// alphabet: [delivered LAST]
}

// ExampleAccepts checks a handful of candidate delivery logs against the
// compiled automaton for Eventually(delivered).
func ExampleAccepts() {
	delivered := symbol.New("delivered")
	phi := ltlf.Eventually(ltlf.Atomic(delivered))

	auto, err := automaton.Compile(phi, automaton.WithMinimize(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	empty := symbol.EmptyI()
	set := func(syms ...symbol.Symbol) symbol.Interpretation { return symbol.NewInterpretation(syms...) }

	scenarios := []struct {
		name  string
		trace []symbol.Interpretation
	}{
		{"delivered on last step", []symbol.Interpretation{empty, set(delivered)}},
		{"never delivered", []symbol.Interpretation{empty, empty}},
		{"delivered immediately", []symbol.Interpretation{set(delivered)}},
		{"delivered then dropped", []symbol.Interpretation{set(delivered), empty}},
	}
	for _, sc := range scenarios {
		ok, err := automaton.Accepts(auto, sc.trace)
		if err != nil {
			fmt.Printf("%s: error: %v\n", sc.name, err)
			continue
		}
		fmt.Printf("%s: %v\n", sc.name, ok)
	}
	// Output:
	// delivered on last step: true
	// never delivered: false
	// delivered immediately: true
	// delivered then dropped: true
}
