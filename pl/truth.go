package pl

import "github.com/katalvlaran/ltlfc/symbol"

// Truth evaluates f against interpretation i. Only AtomSymbol
// atoms are resolved against i; encountering an AtomSubformula atom is a
// caller error — those atoms must first be reduced via Clauses.
func Truth(f *Formula, i symbol.Interpretation) bool {
	switch f.kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindAtomic:
		if f.atomKind == AtomSubformula {
			panic(ErrCrossNamespaceEval)
		}
		return i.Contains(f.sym)
	case KindNot:
		return !Truth(f.children[0], i)
	case KindAnd:
		for _, c := range f.children {
			if !Truth(c, i) {
				return false
			}
		}
		return true
	case KindOr:
		for _, c := range f.children {
			if Truth(c, i) {
				return true
			}
		}
		return false
	default:
		panic("pl: Truth: unknown kind")
	}
}
