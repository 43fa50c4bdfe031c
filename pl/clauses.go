package pl

import "github.com/katalvlaran/ltlfc/ltlf"

// Clauses reads f — a delta residual whose atoms are all
// AtomSubformula placeholders — as a disjunction of conjunctions and
// returns its minimal models: each returned []*ltlf.Formula is a set of
// subformulas assigned true that satisfies f, with no other returned
// clause a proper subset of it. This is how the automaton builder turns
// a one-step delta residual into the candidate successor macro-states
// ("the successor macro-states are the minimal models of q").
//
// Because delta never wraps an AtomSubformula atom in PLNot (Next/
// WeakNext's rules always emit the successor obligation positively),
// every atom Clauses encounters is positive; PLNot reaching this function
// at all is a precondition violation; callers must pass a genuine
// epsilon=false delta residual.
func Clauses(f *Formula) [][]*ltlf.Formula {
	raw := rawClauses(f)
	return minimal(raw)
}

func rawClauses(f *Formula) [][]*ltlf.Formula {
	switch f.kind {
	case KindTrue:
		return [][]*ltlf.Formula{{}}
	case KindFalse:
		return nil
	case KindAtomic:
		if f.atomKind != AtomSubformula {
			panic("pl: Clauses: unresolved symbol atom in delta residual")
		}
		return [][]*ltlf.Formula{{f.sub}}
	case KindAnd:
		combined := [][]*ltlf.Formula{{}}
		for _, c := range f.children {
			childClauses := rawClauses(c)
			var next [][]*ltlf.Formula
			for _, left := range combined {
				for _, right := range childClauses {
					next = append(next, mergeAtoms(left, right))
				}
			}
			combined = next
		}
		return combined
	case KindOr:
		var out [][]*ltlf.Formula
		for _, c := range f.children {
			out = append(out, rawClauses(c)...)
		}
		return out
	case KindNot:
		panic("pl: Clauses: negation over a subformula atom is unsupported")
	default:
		panic("pl: Clauses: unknown kind")
	}
}

func mergeAtoms(a, b []*ltlf.Formula) []*ltlf.Formula {
	out := append([]*ltlf.Formula(nil), a...)
	for _, f := range b {
		found := false
		for _, g := range out {
			if f.Equal(g) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, f)
		}
	}
	return out
}

func isSubsetOf(small, big []*ltlf.Formula) bool {
	for _, f := range small {
		found := false
		for _, g := range big {
			if f.Equal(g) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// minimal removes duplicate clauses and any clause that is a proper
// superset of another clause in the list, leaving only the minimal
// models.
func minimal(clauses [][]*ltlf.Formula) [][]*ltlf.Formula {
	// Drop exact duplicates first.
	var dedup [][]*ltlf.Formula
	for _, c := range clauses {
		dup := false
		for _, d := range dedup {
			if len(c) == len(d) && isSubsetOf(c, d) && isSubsetOf(d, c) {
				dup = true
				break
			}
		}
		if !dup {
			dedup = append(dedup, c)
		}
	}
	var out [][]*ltlf.Formula
	for i, c := range dedup {
		dominated := false
		for j, d := range dedup {
			if i == j {
				continue
			}
			if len(d) < len(c) && isSubsetOf(d, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, c)
		}
	}
	return out
}
