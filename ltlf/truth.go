package ltlf

import "github.com/katalvlaran/ltlfc/symbol"

// TruthOnTrace is the independent ground-truth semantics oracle
// ("truth_on_trace"), used to check delta and NNF against a definition
// that does not go through either of them. It accepts formulas in any
// form (not just NNF) — Implies, Equivalence, Eventually, and Always are
// evaluated directly via their own recursive definitions rather than
// requiring prior desugaring, since this oracle must independently
// corroborate that NNF preserves semantics without assuming NNF has
// already been applied.
func (f *Formula) TruthOnTrace(trace []symbol.Interpretation, pos int) bool {
	last := len(trace) - 1
	switch f.kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindAtomic:
		if pos < 0 || pos > last {
			return false
		}
		return trace[pos].Contains(f.sym)
	case KindNot:
		return !f.children[0].TruthOnTrace(trace, pos)
	case KindAnd:
		for _, c := range f.children {
			if !c.TruthOnTrace(trace, pos) {
				return false
			}
		}
		return true
	case KindOr:
		for _, c := range f.children {
			if c.TruthOnTrace(trace, pos) {
				return true
			}
		}
		return false
	case KindImplies:
		for i := 0; i < len(f.children)-1; i++ {
			if !f.children[i].TruthOnTrace(trace, pos) {
				return true // vacuous: an antecedent already fails
			}
		}
		return f.children[len(f.children)-1].TruthOnTrace(trace, pos)
	case KindEquivalence:
		allTrue, allFalse := true, true
		for _, c := range f.children {
			if c.TruthOnTrace(trace, pos) {
				allFalse = false
			} else {
				allTrue = false
			}
		}
		return allTrue || allFalse
	case KindNext:
		return pos < last && f.children[0].TruthOnTrace(trace, pos+1)
	case KindWeakNext:
		return pos >= last || f.children[0].TruthOnTrace(trace, pos+1)
	case KindUntil:
		return untilTruth(f.children, trace, pos, last)
	case KindRelease:
		// Release is the dual of Until: R(f1,...,fn) ≡ ¬U(¬f1,...,¬fn).
		negated := negateChildrenPlain(f.children)
		return !untilTruth(negated, trace, pos, last)
	case KindEventually:
		// F(f) ≡ U(true, f).
		return untilTruth([]*Formula{True(), f.children[0]}, trace, pos, last)
	case KindAlways:
		// G(f) ≡ ¬F(¬f).
		return !untilTruth([]*Formula{True(), Not(f.children[0])}, trace, pos, last)
	default:
		panic("ltlf: TruthOnTrace: unknown kind")
	}
}

// untilTruth evaluates n-ary right-associative Until[f1,...,fn] at pos:
// exists j in [pos,last] such that the tail operator holds at j and f1
// holds at every position k with pos <= k < j.
func untilTruth(children []*Formula, trace []symbol.Interpretation, pos, last int) bool {
	f1 := children[0]
	f2 := tailOperator(KindUntil, children)
	for j := pos; j <= last; j++ {
		if !f2.TruthOnTrace(trace, j) {
			continue
		}
		ok := true
		for k := pos; k < j; k++ {
			if !f1.TruthOnTrace(trace, k) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// negateChildrenPlain applies plain syntactic Not() to each child
// (unlike notToNNF, no rewriting: TruthOnTrace recurses through Not
// itself).
func negateChildrenPlain(fs []*Formula) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = Not(c)
	}
	return out
}
