// Package delta implements the symbolic one-step transition relation:
// δ(φ, I, ε) → PL. Given a formula already in NNF, an interpretation of
// the current letter, and an "end of trace" flag, Delta returns a
// propositional residual describing the obligation that must hold from
// the next trace position onward.
//
// Delta never recurses into ltlf.Formula.ToNNF itself — callers own that
// step (NNF rewriting is a separate, composable operation) — but it
// rejects any Not node whose operand is not KindAtomic, since such a node
// could only arise from a non-NNF formula.
package delta

import (
	"errors"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/pl"
	"github.com/katalvlaran/ltlfc/symbol"
)

// ErrNotNNF is the PreconditionViolation signalled when Delta
// encounters a Not node wrapping a non-atomic operand — only possible if
// the caller passed a formula that was never run through ToNNF.
var ErrNotNNF = errors.New("delta: formula is not in negation normal form")

// ErrTooFewOperands is the PreconditionViolation signalled when an
// Until or Release node carries fewer than two children.
var ErrTooFewOperands = errors.New("delta: Until/Release require at least two operands")

// cacheKey identifies one memoized Delta subcall: the formula node by
// pointer identity (every *ltlf.Formula is immutable, so a pointer always
// names the same result; formulas are not interned, so two structurally
// equal nodes at different addresses are cached separately), the letter
// by its canonical Interpretation key, and the epsilon mode.
type cacheKey struct {
	f       *ltlf.Formula
	letter  string
	epsilon bool
}

// cache memoizes Delta results within a single top-level call: a fresh
// cache is allocated per Delta invocation so no state leaks across
// unrelated calls, while a subformula node reached more than once within
// one formula (the same pointer shared by several parents) is computed
// once.
type cache struct {
	m map[cacheKey]result
}

type result struct {
	f   *pl.Formula
	err error
}

// Delta computes δ(f, i, eps) per the rewrite table below. f must be in
// NNF (the result of f.ToNNF()); passing a formula that is not in NNF may
// produce ErrNotNNF once a non-atomic negation is reached.
func Delta(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	c := &cache{m: make(map[cacheKey]result)}
	return c.delta(f, i, eps)
}

func (c *cache) delta(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	key := cacheKey{f: f, letter: i.Key(), epsilon: eps}
	if r, ok := c.m[key]; ok {
		return r.f, r.err
	}
	out, err := c.computeDelta(f, i, eps)
	c.m[key] = result{f: out, err: err}
	return out, err
}

func (c *cache) computeDelta(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	switch f.Kind() {
	case ltlf.KindTrue:
		return pl.True(), nil
	case ltlf.KindFalse:
		return pl.False(), nil
	case ltlf.KindAtomic:
		if eps {
			return pl.False(), nil
		}
		if i.Contains(f.Symbol()) {
			return pl.True(), nil
		}
		return pl.False(), nil
	case ltlf.KindNot:
		return c.deltaNot(f, i, eps)
	case ltlf.KindAnd:
		return c.deltaJunction(pl.And, f.Children(), i, eps)
	case ltlf.KindOr:
		return c.deltaJunction(pl.Or, f.Children(), i, eps)
	case ltlf.KindNext:
		return nextRule(f.Children()[0], i, eps), nil
	case ltlf.KindWeakNext:
		return weakNextRule(f.Children()[0], i, eps), nil
	case ltlf.KindUntil:
		return c.deltaUntil(f, i, eps)
	case ltlf.KindRelease:
		return c.deltaRelease(f, i, eps)
	case ltlf.KindEventually:
		return c.deltaEventually(f, i, eps)
	case ltlf.KindAlways:
		return c.deltaAlways(f, i, eps)
	default:
		return nil, ErrNotNNF
	}
}

// deltaNot handles Not(ψ): in NNF, ψ must be KindAtomic (NNF rewriting
// pushes negation all the way to atoms). δ(Not(Atomic a), I, ε=false) is
// PLTrue iff I does not satisfy a; under ε=true this resolves to PLFalse
// uniformly, since no atom — positive or negated — can hold past the end
// of the trace.
func (c *cache) deltaNot(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	inner := f.Children()[0]
	if inner.Kind() != ltlf.KindAtomic {
		return nil, ErrNotNNF
	}
	if eps {
		return pl.False(), nil
	}
	if i.Contains(inner.Symbol()) {
		return pl.False(), nil
	}
	return pl.True(), nil
}

func (c *cache) deltaJunction(combine func(...*pl.Formula) *pl.Formula, children []*ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	parts := make([]*pl.Formula, len(children))
	for idx, child := range children {
		p, err := c.delta(child, i, eps)
		if err != nil {
			return nil, err
		}
		parts[idx] = p
	}
	return combine(parts...), nil
}

// nextRule implements δ(Next ψ, I, ε): ψ is deferred as a subformula
// obligation for the next position when one exists, PLFalse otherwise;
// under ε it is always PLFalse (there is no next position).
func nextRule(psi *ltlf.Formula, i symbol.Interpretation, eps bool) *pl.Formula {
	if eps {
		return pl.False()
	}
	if i.Contains(symbol.LAST) {
		return pl.False()
	}
	return pl.SubAtomic(psi)
}

// weakNextRule implements δ(WeakNext ψ, I, ε): dual of nextRule — ψ is
// deferred when a next position exists, PLTrue at or past the end of
// trace (vacuous satisfaction).
func weakNextRule(psi *ltlf.Formula, i symbol.Interpretation, eps bool) *pl.Formula {
	if eps {
		return pl.True()
	}
	if i.Contains(symbol.LAST) {
		return pl.True()
	}
	return pl.SubAtomic(psi)
}

// deltaUntil implements δ(Until[φ1, rest], I, ε) using the standard
// unrolling φ1 U φ2 ≡ φ2 ∨ (φ1 ∧ X(φ1 U φ2)), where φ2 is rest collapsed
// via tailOperands and the whole Until node f stands in for "φ1 U φ2"
// inside the Next.
func (c *cache) deltaUntil(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	children := f.Children()
	if len(children) < 2 {
		return nil, ErrTooFewOperands
	}
	f1, f2 := tailOperands(ltlf.KindUntil, children)

	d1, err := c.delta(f1, i, eps)
	if err != nil {
		return nil, err
	}
	d2, err := c.delta(f2, i, eps)
	if err != nil {
		return nil, err
	}
	return pl.Or(d2, pl.And(d1, nextRule(f, i, eps))), nil
}

// deltaRelease implements δ(Release[φ1, rest], I, ε), the dual unrolling
// φ1 R φ2 ≡ φ2 ∧ (φ1 ∨ WX(φ1 R φ2)).
func (c *cache) deltaRelease(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	children := f.Children()
	if len(children) < 2 {
		return nil, ErrTooFewOperands
	}
	f1, f2 := tailOperands(ltlf.KindRelease, children)

	d1, err := c.delta(f1, i, eps)
	if err != nil {
		return nil, err
	}
	d2, err := c.delta(f2, i, eps)
	if err != nil {
		return nil, err
	}
	return pl.And(d2, pl.Or(d1, weakNextRule(f, i, eps))), nil
}

// tailOperands splits an Until/Release child list into its head operand
// and its tail operand, the latter collapsed via the same rule the ltlf
// package uses internally for its own truth semantics ("f2 becomes
// Until(rest)"): kind selects which n-ary constructor rebuilds the tail
// when more than two operands remain.
func tailOperands(kind ltlf.Kind, children []*ltlf.Formula) (head, tail *ltlf.Formula) {
	if len(children) == 2 {
		return children[0], children[1]
	}
	if kind == ltlf.KindUntil {
		return children[0], ltlf.Until(children[1:]...)
	}
	return children[0], ltlf.Release(children[1:]...)
}

// deltaEventually implements δ(Eventually ψ, I, ε) = δ(ψ) ∨ δ(Next(F ψ)).
func (c *cache) deltaEventually(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	psi := f.Children()[0]
	d, err := c.delta(psi, i, eps)
	if err != nil {
		return nil, err
	}
	return pl.Or(d, nextRule(f, i, eps)), nil
}

// deltaAlways implements δ(Always ψ, I, ε) = δ(ψ) ∧ δ(WeakNext(G ψ)).
func (c *cache) deltaAlways(f *ltlf.Formula, i symbol.Interpretation, eps bool) (*pl.Formula, error) {
	psi := f.Children()[0]
	d, err := c.delta(psi, i, eps)
	if err != nil {
		return nil, err
	}
	return pl.And(d, weakNextRule(f, i, eps)), nil
}
