package ltlf

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ltlfc/symbol"
)

// build finalizes a node: it computes and caches the canonical string
// form (used both for diagnostics and as the Hash seed) and the Hash
// itself. Every constructor in this file funnels through build exactly
// once, so no *Formula ever observes an uninitialized cache.
func build(kind Kind, sym symbol.Symbol, children []*Formula) *Formula {
	f := &Formula{kind: kind, sym: sym, children: children}
	f.str = render(f)
	f.hash = fnv1a64(f.str)
	return f
}

func render(f *Formula) string {
	switch f.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindAtomic:
		return f.sym.String()
	case KindNot:
		return "!(" + f.children[0].String() + ")"
	case KindNext, KindWeakNext, KindEventually, KindAlways:
		return kindNames[f.kind] + "(" + f.children[0].String() + ")"
	default:
		parts := make([]string, len(f.children))
		for i, c := range f.children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " "+kindNames[f.kind]+" ") + ")"
	}
}

// True returns the LTLfTrue leaf.
func True() *Formula { return build(KindTrue, symbol.Symbol{}, nil) }

// False returns the LTLfFalse leaf.
func False() *Formula { return build(KindFalse, symbol.Symbol{}, nil) }

// Atomic returns an LTLfAtomic(sym) leaf.
func Atomic(sym symbol.Symbol) *Formula { return build(KindAtomic, sym, nil) }

// Not returns the syntactic negation node Not(f). Callers needing an NNF
// negation should use (Not(f)).ToNNF() (or f.Negate().ToNNF()) instead;
// Not and Negate alone perform no rewriting.
func Not(f *Formula) *Formula { return build(KindNot, symbol.Symbol{}, []*Formula{f}) }

// flattenSameKind recursively pulls up children of the same kind into a
// single flat slice, applied only to the commutative family (And, Or,
// Equivalence), where flattening is
// semantics-preserving. Until/Release/Implies are deliberately excluded:
// unlike And/Or/Equivalence, Until/Release are not associative, so
// flattening Until(Until(a,b),c) into Until(a,b,c) would silently change
// meaning (see DESIGN.md).
func flattenSameKind(kind Kind, children []*Formula) []*Formula {
	out := make([]*Formula, 0, len(children))
	for _, c := range children {
		if c.kind == kind {
			out = append(out, c.children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// canonicalizeCommutative flattens, deduplicates (via Equal), and sorts
// (via Less) the children of a commutative operator. The caller collapses
// a singleton result to that sole child.
func canonicalizeCommutative(kind Kind, children []*Formula) []*Formula {
	flat := flattenSameKind(kind, children)
	dedup := make([]*Formula, 0, len(flat))
	for _, c := range flat {
		found := false
		for _, d := range dedup {
			if c.Equal(d) {
				found = true
				break
			}
		}
		if !found {
			dedup = append(dedup, c)
		}
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].Less(dedup[j]) })
	return dedup
}

// And returns the n-ary conjunction of fs: flattened, deduplicated,
// sorted, and collapsed to its sole child if exactly one remains.
// Panics with ErrEmptyOperands if fs is empty.
func And(fs ...*Formula) *Formula {
	mustf("And", len(fs) >= 1, ErrEmptyOperands)
	children := canonicalizeCommutative(KindAnd, fs)
	if len(children) == 1 {
		return children[0]
	}
	return build(KindAnd, symbol.Symbol{}, children)
}

// Or returns the n-ary disjunction of fs, with the same canonicalization
// and singleton-collapse rules as And.
func Or(fs ...*Formula) *Formula {
	mustf("Or", len(fs) >= 1, ErrEmptyOperands)
	children := canonicalizeCommutative(KindOr, fs)
	if len(children) == 1 {
		return children[0]
	}
	return build(KindOr, symbol.Symbol{}, children)
}

// Equivalence returns the n-ary "all agree" equivalence of fs: true iff
// every formula in fs has the same truth value. Canonicalized the same
// way as And/Or — Equivalence is treated as a member of the commutative
// family.
func Equivalence(fs ...*Formula) *Formula {
	mustf("Equivalence", len(fs) >= 1, ErrEmptyOperands)
	children := canonicalizeCommutative(KindEquivalence, fs)
	if len(children) == 1 {
		return children[0]
	}
	return build(KindEquivalence, symbol.Symbol{}, children)
}

// Implies returns the n-ary right-chained implication:
// Implies(f1,...,fn) ≡ Or(Not(f1),...,Not(f_{n-1}), fn) — "if every
// antecedent f1..f_{n-1} holds, then fn holds". Not commutative, so its
// children are kept in the given order (no sort, no flatten).
func Implies(fs ...*Formula) *Formula {
	mustf("Implies", len(fs) >= 1, ErrEmptyOperands)
	if len(fs) == 1 {
		return fs[0]
	}
	return build(KindImplies, symbol.Symbol{}, append([]*Formula(nil), fs...))
}

// Next returns the strong next-step operator X(f): requires a next
// position to exist and f to hold there.
func Next(f *Formula) *Formula { return build(KindNext, symbol.Symbol{}, []*Formula{f}) }

// WeakNext returns the weak next-step operator (f holds vacuously at the
// end of the trace).
func WeakNext(f *Formula) *Formula { return build(KindWeakNext, symbol.Symbol{}, []*Formula{f}) }

// Until returns the n-ary, right-associative Until[f1,...,fn].
// Panics with ErrTooFewOperands if fewer than two operands are given.
func Until(fs ...*Formula) *Formula {
	mustf("Until", len(fs) >= 2, ErrTooFewOperands)
	return build(KindUntil, symbol.Symbol{}, append([]*Formula(nil), fs...))
}

// Release returns the n-ary, right-associative Release[f1,...,fn], dual
// of Until.
func Release(fs ...*Formula) *Formula {
	mustf("Release", len(fs) >= 2, ErrTooFewOperands)
	return build(KindRelease, symbol.Symbol{}, append([]*Formula(nil), fs...))
}

// Eventually returns F(f). Ground-truth evaluation treats it as
// Until([True(), f]); ToNNF keeps it as its own kind and does not expand
// it to Until.
func Eventually(f *Formula) *Formula { return build(KindEventually, symbol.Symbol{}, []*Formula{f}) }

// Always returns G(f). Ground-truth evaluation treats it as
// Not(Eventually(Not(f))); ToNNF keeps it as its own kind and does not
// expand it.
func Always(f *Formula) *Formula { return build(KindAlways, symbol.Symbol{}, []*Formula{f}) }

// tailOperator returns the "rest" operand used by Until/Release's delta
// and truth rules: fs[1] if there are exactly two operands, otherwise the
// same n-ary operator applied to fs[1:] ("f2 becomes Until(rest) when
// |rest|>1, else rest[0]"). Factored once and shared by both operators.
func tailOperator(kind Kind, fs []*Formula) *Formula {
	if len(fs) == 2 {
		return fs[1]
	}
	if kind == KindUntil {
		return Until(fs[1:]...)
	}
	return Release(fs[1:]...)
}
