package ast

import (
	"fmt"

	"github.com/cerium-lang/cerium/lang/token"
)

type (
	// Program is the top-level list of definitions in a single compiled
	// source buffer.
	Program struct {
		Functions []*Function
		Structs   []*Struct
		Consts    []*Const
	}

	// Param is a `NAME : T` shape, shared by function parameters and struct
	// fields.
	Param struct {
		Name *IdentExpr
		Type TypeExpr
	}

	// Function is a `fn NAME (ARGS) [-> T] SCOPE` definition.
	Function struct {
		Fn      token.Pos
		Name    Qualifier
		NameRng token.Range
		Params  []*Param
		Ret     TypeExpr // nil means unit
		Body    *Block
		End     token.Pos
	}

	// Struct is a `struct NAME { NAME : T, ... }` definition.
	Struct struct {
		StructTok token.Pos
		Name      Qualifier
		NameRng   token.Range
		Fields    []*Param
		End       token.Pos
	}

	// Const is a `const NAME : T = EXPR ;` definition.
	Const struct {
		ConstTok token.Pos
		Name     Qualifier
		NameRng  token.Range
		Type     TypeExpr
		Value    Expr
		Semi     token.Pos
	}

	// Block is a sequence of statement-expressions with an optional tail
	// expression that carries the block's value. The presence of a trailing
	// semicolon after the last expression is what distinguishes "no tail" (the
	// block's value is unit) from "has tail".
	Block struct {
		Lbrace token.Pos
		Stmts  []Expr // lowered in unit mode
		Tail   Expr   // nil if the block's value is unit
		Rbrace token.Pos
	}
)

func (n *Program) Format(f fmt.State, verb rune) {
	format(f, verb, n, "program", map[string]int{
		"functions": len(n.Functions), "structs": len(n.Structs), "consts": len(n.Consts),
	})
}
func (n *Program) Span() token.Range {
	var start, end token.Pos
	for _, fn := range n.Functions {
		r := fn.Span()
		if start == 0 || r.Start < start {
			start = r.Start
		}
		if r.End > end {
			end = r.End
		}
	}
	return token.Range{Start: start, End: end}
}
func (n *Program) Walk(v Visitor) {
	for _, s := range n.Structs {
		Walk(v, s)
	}
	for _, c := range n.Consts {
		Walk(v, c)
	}
	for _, fn := range n.Functions {
		Walk(v, fn)
	}
}

func (n *Param) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name.Lit+" : T", nil) }
func (n *Param) Span() token.Range             { return n.Name.Span().Join(n.Type.Span()) }
func (n *Param) Walk(v Visitor) {
	Walk(v, n.Name)
	Walk(v, n.Type)
}

func (n *Function) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fn "+n.Name.String(), map[string]int{"params": len(n.Params)})
}
func (n *Function) Span() token.Range { return token.Range{Start: n.Fn, End: n.End} }
func (n *Function) Walk(v Visitor) {
	for _, p := range n.Params {
		Walk(v, p)
	}
	if n.Ret != nil {
		Walk(v, n.Ret)
	}
	Walk(v, n.Body)
}

func (n *Struct) Format(f fmt.State, verb rune) {
	format(f, verb, n, "struct "+n.Name.String(), map[string]int{"fields": len(n.Fields)})
}
func (n *Struct) Span() token.Range { return token.Range{Start: n.StructTok, End: n.End} }
func (n *Struct) Walk(v Visitor) {
	for _, fl := range n.Fields {
		Walk(v, fl)
	}
}

func (n *Const) Format(f fmt.State, verb rune) {
	format(f, verb, n, "const "+n.Name.String(), nil)
}
func (n *Const) Span() token.Range { return token.Range{Start: n.ConstTok, End: n.Semi + 1} }
func (n *Const) Walk(v Visitor) {
	Walk(v, n.Type)
	Walk(v, n.Value)
}

func (n *Block) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *Block) Span() token.Range { return token.Range{Start: n.Lbrace, End: n.Rbrace + 1} }
func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
	if n.Tail != nil {
		Walk(v, n.Tail)
	}
}
