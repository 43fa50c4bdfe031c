package ltlf

// ToNNF rewrites f into Negative Normal Form: negation appears only on
// KindAtomic nodes. Implies/Equivalence are always desugared to
// And/Or/Not, whether or not they sit under a negation. Eventually/
// Always are left as first-class NNF kinds throughout: when not negated
// they carry no negation of their own to push down, and when negated
// notToNNF swaps directly to their dual operator rather than expanding
// to Until/Release.
func (f *Formula) ToNNF() *Formula {
	switch f.kind {
	case KindTrue, KindFalse, KindAtomic:
		return f
	case KindNot:
		return notToNNF(f.children[0])
	case KindAnd:
		return And(nnfChildren(f.children)...)
	case KindOr:
		return Or(nnfChildren(f.children)...)
	case KindImplies:
		return expandImplies(f.children).ToNNF()
	case KindEquivalence:
		return expandEquivalence(f.children).ToNNF()
	case KindNext:
		return Next(f.children[0].ToNNF())
	case KindWeakNext:
		return WeakNext(f.children[0].ToNNF())
	case KindUntil:
		return Until(nnfChildren(f.children)...)
	case KindRelease:
		return Release(nnfChildren(f.children)...)
	case KindEventually:
		return Eventually(f.children[0].ToNNF())
	case KindAlways:
		return Always(f.children[0].ToNNF())
	default:
		panic("ltlf: ToNNF: unknown kind")
	}
}

func nnfChildren(fs []*Formula) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = c.ToNNF()
	}
	return out
}

// notToNNF computes to_nnf(Not(inner)) — the rewrite table, keyed on
// inner's kind rather than on a virtual method so the whole table reads
// as one exhaustive switch. Every binary-family case and every unary
// operator case pushes the negation through by rebuilding inner's De
// Morgan dual (see dual in labels.go) around the negated/recursed
// operands, rather than hand-rolling the swap per kind.
func notToNNF(inner *Formula) *Formula {
	switch inner.kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindAtomic:
		// Not(Atomic a) is already NNF: terminal.
		return Not(inner)
	case KindNot:
		return inner.children[0].ToNNF()
	case KindAnd, KindOr, KindUntil, KindRelease:
		return rebuildNary(dual(inner.kind), negateEach(inner.children))
	case KindImplies:
		return notToNNF(expandImplies(inner.children))
	case KindEquivalence:
		return notToNNF(expandEquivalence(inner.children))
	case KindNext, KindWeakNext, KindEventually, KindAlways:
		return rebuildUnary(dual(inner.kind), notToNNF(inner.children[0]))
	default:
		panic("ltlf: notToNNF: unknown kind")
	}
}

// rebuildNary reconstructs an n-ary node of kind from fs, used by
// notToNNF to apply a De Morgan swap without repeating one constructor
// call per kind.
func rebuildNary(kind Kind, fs []*Formula) *Formula {
	switch kind {
	case KindAnd:
		return And(fs...)
	case KindOr:
		return Or(fs...)
	case KindUntil:
		return Until(fs...)
	case KindRelease:
		return Release(fs...)
	default:
		panic("ltlf: rebuildNary: kind is not n-ary")
	}
}

// rebuildUnary reconstructs a unary node of kind wrapping f, the unary
// counterpart of rebuildNary.
func rebuildUnary(kind Kind, f *Formula) *Formula {
	switch kind {
	case KindNext:
		return Next(f)
	case KindWeakNext:
		return WeakNext(f)
	case KindEventually:
		return Eventually(f)
	case KindAlways:
		return Always(f)
	default:
		panic("ltlf: rebuildUnary: kind is not unary")
	}
}

func negateEach(fs []*Formula) []*Formula {
	out := make([]*Formula, len(fs))
	for i, c := range fs {
		out[i] = notToNNF(c)
	}
	return out
}

// expandImplies desugars Implies(f1,...,fn) to
// Or(Not(f1),...,Not(f_{n-1}), fn).
func expandImplies(fs []*Formula) *Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	parts := make([]*Formula, 0, len(fs))
	for i := 0; i < len(fs)-1; i++ {
		parts = append(parts, Not(fs[i]))
	}
	parts = append(parts, fs[len(fs)-1])
	return Or(parts...)
}

// expandEquivalence desugars Equivalence(f1,...,fn) to
// Or(And(f1,...,fn), And(Not(f1),...,Not(fn))): either every operand
// holds, or every operand fails to hold.
func expandEquivalence(fs []*Formula) *Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	notFs := make([]*Formula, len(fs))
	for i, c := range fs {
		notFs[i] = Not(c)
	}
	return Or(And(fs...), And(notFs...))
}
