package ltlf

import "github.com/katalvlaran/ltlfc/symbol"

// FindLabels returns the set of atomic symbols appearing anywhere under
// f; it defines the default alphabet when the caller does not
// supply one explicitly to Compile.
func (f *Formula) FindLabels() map[symbol.Symbol]struct{} {
	out := map[symbol.Symbol]struct{}{}
	f.collectLabels(out)
	return out
}

func (f *Formula) collectLabels(into map[symbol.Symbol]struct{}) {
	if f.kind == KindAtomic {
		into[f.sym] = struct{}{}
		return
	}
	for _, c := range f.children {
		c.collectLabels(into)
	}
}

// Negate returns the syntactic negation Not(f), used only as an input to
// ToNNF — it performs no rewriting itself.
func (f *Formula) Negate() *Formula {
	return Not(f)
}

// dual maps a Kind to its De Morgan dual under negation (the "cyclic
// duality links", re-expressed as a pure static function instead of
// module-load-time mutation of class attributes).
func dual(kind Kind) Kind {
	switch kind {
	case KindAnd:
		return KindOr
	case KindOr:
		return KindAnd
	case KindNext:
		return KindWeakNext
	case KindWeakNext:
		return KindNext
	case KindUntil:
		return KindRelease
	case KindRelease:
		return KindUntil
	case KindEventually:
		return KindAlways
	case KindAlways:
		return KindEventually
	default:
		return kind
	}
}
