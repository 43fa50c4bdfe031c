package pl

import (
	"sort"

	"github.com/katalvlaran/ltlfc/symbol"
)

// Models enumerates every Interpretation over alphabet that satisfies f.
// Implementation enumerates the 2^|alphabet| subsets directly: small,
// audit-friendly alphabets make brute-force enumeration preferable to
// building and maintaining a BDD representation (see DESIGN.md). The
// alphabet is sorted once so iteration order, and hence the returned
// slice's order, is deterministic.
func Models(f *Formula, alphabet []symbol.Symbol) []symbol.Interpretation {
	sorted := append([]symbol.Symbol(nil), alphabet...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	n := len(sorted)
	var out []symbol.Interpretation
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var truthy []symbol.Symbol
		for i, s := range sorted {
			if mask&(1<<uint(i)) != 0 {
				truthy = append(truthy, s)
			}
		}
		i := symbol.NewInterpretation(truthy...)
		if Truth(f, i) {
			out = append(out, i)
		}
	}
	return out
}
