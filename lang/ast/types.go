package ast

import (
	"fmt"

	"github.com/cerium-lang/cerium/lang/token"
)

// TypeExpr is the syntax of a type annotation, as written in source. It is
// resolved to a types.Type by the registry and code generator; TypeExpr
// itself carries no semantic information beyond what was parsed.
type TypeExpr interface {
	Node
	typeExpr()
}

type (
	// PrimitiveTypeExpr is one of i16, u16, f16, bool, any.
	PrimitiveTypeExpr struct {
		Kind  token.Token // U16, I16, F16, BOOL or ANY
		Start token.Pos
	}

	// NamedTypeExpr refers to a struct by qualified name.
	NamedTypeExpr struct {
		Name Qualifier
		Rng  token.Range
	}

	// PointerTypeExpr is `& T`. Parsing `&&T` yields a PointerTypeExpr whose
	// Elem is itself a PointerTypeExpr.
	PointerTypeExpr struct {
		Amp  token.Pos
		Elem TypeExpr
	}

	// FuncTypeExpr is `fn(T1,...,Tn) [-> T]`.
	FuncTypeExpr struct {
		Fn     token.Pos
		Params []TypeExpr
		Ret    TypeExpr // nil if no declared return type (unit)
		End    token.Pos
	}
)

func (n *PrimitiveTypeExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Kind.String(), nil) }
func (n *PrimitiveTypeExpr) Span() token.Range {
	return token.Range{Start: n.Start, End: n.Start + token.Pos(len(n.Kind.String()))}
}
func (n *PrimitiveTypeExpr) Walk(_ Visitor) {}
func (n *PrimitiveTypeExpr) typeExpr()      {}

func (n *NamedTypeExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name.String(), nil) }
func (n *NamedTypeExpr) Span() token.Range             { return n.Rng }
func (n *NamedTypeExpr) Walk(_ Visitor)                {}
func (n *NamedTypeExpr) typeExpr()                     {}

func (n *PointerTypeExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "&T", nil) }
func (n *PointerTypeExpr) Span() token.Range {
	_, end := n.Elem.Span().Start, n.Elem.Span().End
	return token.Range{Start: n.Amp, End: end}
}
func (n *PointerTypeExpr) Walk(v Visitor) { Walk(v, n.Elem) }
func (n *PointerTypeExpr) typeExpr()      {}

func (n *FuncTypeExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fn(...)", map[string]int{"params": len(n.Params)})
}
func (n *FuncTypeExpr) Span() token.Range { return token.Range{Start: n.Fn, End: n.End} }
func (n *FuncTypeExpr) Walk(v Visitor) {
	for _, p := range n.Params {
		Walk(v, p)
	}
	if n.Ret != nil {
		Walk(v, n.Ret)
	}
}
func (n *FuncTypeExpr) typeExpr() {}
