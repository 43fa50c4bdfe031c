package pl

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ltlfc/ltlf"
	"github.com/katalvlaran/ltlfc/symbol"
)

func build(kind Kind, atomKind AtomKind, sym symbol.Symbol, sub *ltlf.Formula, children []*Formula) *Formula {
	f := &Formula{kind: kind, atomKind: atomKind, sym: sym, sub: sub, children: children}
	f.key = render(f)
	return f
}

func render(f *Formula) string {
	switch f.kind {
	case KindTrue:
		return "T"
	case KindFalse:
		return "F"
	case KindAtomic:
		if f.atomKind == AtomSymbol {
			return "s:" + f.sym.String()
		}
		return "q:" + f.sub.String()
	case KindNot:
		return "!(" + f.children[0].String() + ")"
	default:
		op := "&"
		if f.kind == KindOr {
			op = "|"
		}
		parts := make([]string, len(f.children))
		for i, c := range f.children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " "+op+" ") + ")"
	}
}

// True returns the PLTrue constant.
func True() *Formula { return build(KindTrue, 0, symbol.Symbol{}, nil, nil) }

// False returns the PLFalse constant.
func False() *Formula { return build(KindFalse, 0, symbol.Symbol{}, nil, nil) }

// Atomic returns a PLAtomic node wrapping a Symbol (the AtomSymbol
// namespace).
func Atomic(sym symbol.Symbol) *Formula { return build(KindAtomic, AtomSymbol, sym, nil, nil) }

// SubAtomic returns a PLAtomic node wrapping an LTLf subformula (the
// AtomSubformula namespace) — the placeholder the delta engine emits for
// Next/WeakNext-derived obligations.
func SubAtomic(f *ltlf.Formula) *Formula {
	return build(KindAtomic, AtomSubformula, symbol.Symbol{}, f, nil)
}

// Not returns the negation of f, folding the constant and double-
// negation cases (Not(True)=False, Not(False)=True, Not(Not x)=x) so
// that PL identity stays canonical without requiring callers to simplify
// by hand.
func Not(f *Formula) *Formula {
	switch f.kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindNot:
		return f.children[0]
	default:
		return build(KindNot, 0, symbol.Symbol{}, nil, []*Formula{f})
	}
}

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

func dedupSorted(children []*Formula) []*Formula {
	dedup := make([]*Formula, 0, len(children))
	seen := make(map[string]struct{}, len(children))
	for _, c := range children {
		if _, ok := seen[c.key]; ok {
			continue
		}
		seen[c.key] = struct{}{}
		dedup = append(dedup, c)
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].key < dedup[j].key })
	return dedup
}

// And returns the n-ary conjunction of fs: PLAnd([]) ≡ PLTrue, and
// a singleton collapses to its sole child.
func And(fs ...*Formula) *Formula {
	if len(fs) == 0 {
		return True()
	}
	children := dedupSorted(flattenSameKind(KindAnd, fs))
	for _, c := range children {
		if c.kind == KindFalse {
			return False()
		}
	}
	children = dropConstant(children, KindTrue)
	if len(children) == 0 {
		return True()
	}
	if len(children) == 1 {
		return children[0]
	}
	return build(KindAnd, 0, symbol.Symbol{}, nil, children)
}

// Or returns the n-ary disjunction of fs: PLOr([]) ≡ PLFalse, and a
// singleton collapses to its sole child.
func Or(fs ...*Formula) *Formula {
	if len(fs) == 0 {
		return False()
	}
	children := dedupSorted(flattenSameKind(KindOr, fs))
	for _, c := range children {
		if c.kind == KindTrue {
			return True()
		}
	}
	children = dropConstant(children, KindFalse)
	if len(children) == 0 {
		return False()
	}
	if len(children) == 1 {
		return children[0]
	}
	return build(KindOr, 0, symbol.Symbol{}, nil, children)
}

func dropConstant(children []*Formula, kind Kind) []*Formula {
	out := make([]*Formula, 0, len(children))
	for _, c := range children {
		if c.kind != kind {
			out = append(out, c)
		}
	}
	return out
}
