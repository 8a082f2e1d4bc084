package ast

import (
	"fmt"

	"github.com/cerium-lang/cerium/lang/token"
)

// IsAssignable reports whether e is a valid assignment target: an identifier,
// a field access, an index expression, or a deref, with the same requirement
// recursively applied to its prefix.
func IsAssignable(e Expr) bool {
	switch e := e.(type) {
	case *IdentExpr:
		return true
	case *FieldExpr:
		return IsAssignable(e.Left)
	case *IndexExpr:
		return IsAssignable(e.Prefix)
	case *UnaryOpExpr:
		return e.Op == token.STAR || e.Op == token.CIRCUMFLEX
	default:
		return false
	}
}

type (
	// LiteralExpr is an integer, float, character, string, bool or nullptr
	// literal.
	LiteralExpr struct {
		Kind  token.Token // INT, FLOAT, CHAR, STRING, TRUE, FALSE or NULLPTR
		Start token.Pos
		Raw   string
		Int   int64
		Float float64
		Char  byte
		Str   string
	}

	// IdentExpr is a qualified variable reference.
	IdentExpr struct {
		Name  Qualifier
		Start token.Pos
		Lit   string // the raw `::`-joined source text
	}

	// ScopeExpr wraps a Block as an expression.
	ScopeExpr struct {
		Block *Block
	}

	// FieldExpr is `e.field`.
	FieldExpr struct {
		Left  Expr
		Dot   token.Pos
		Field *IdentExpr
	}

	// IndexExpr is `e[i]`.
	IndexExpr struct {
		Prefix Expr
		Lbrack token.Pos
		Index  Expr
		Rbrack token.Pos
	}

	// CallExpr is `f(a1, ..., an)`.
	CallExpr struct {
		Fn     Expr
		Lparen token.Pos
		Args   []Expr
		Rparen token.Pos
	}

	// AssignExpr is `lhs = rhs`.
	AssignExpr struct {
		Left  Expr
		Eq    token.Pos
		Right Expr
	}

	// BinOpExpr is a binary operator expression.
	BinOpExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// UnaryOpExpr is a prefix unary operator expression: borrow (&), not (!),
	// deref (*), iterate (^) or unary negate (-).
	UnaryOpExpr struct {
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// ConvertExpr is `e as T` (value conversion) or `e alias T` (bitwise
	// reinterpretation, no code emitted).
	ConvertExpr struct {
		Expr  Expr
		Op    token.Token // AS or ALIAS
		OpPos token.Pos
		Type  TypeExpr
	}

	// LetExpr is `let NAME = EXPR` (binds in the enclosing scope) or
	// `let NAME = EXPR in BODY` (binds only over Body).
	LetExpr struct {
		LetTok token.Pos
		Name   *IdentExpr
		Value  Expr
		In     token.Pos // 0 if no `in BODY` form
		Body   Expr      // nil if no `in BODY` form
	}

	// IfExpr is `if COND { THEN } [else { ELSE }]`.
	IfExpr struct {
		If   token.Pos
		Cond Expr
		Then *Block
		Else *Block // nil if no else branch
		End  token.Pos
	}

	// ForToExpr is `for NAME to LIMIT { BODY }` or, with Downto set,
	// `for NAME downto LIMIT { BODY }`. NAME must already be a bound
	// variable of integer or pointer type. The `to` form counts NAME down to
	// zero and only type-checks LIMIT; the `downto` form runs it down to LIMIT.
	ForToExpr struct {
		For    token.Pos
		Var    *IdentExpr
		Downto bool
		Limit  Expr
		Body   *Block
		End    token.Pos
	}

	// ForInExpr is `for NAME in ITER { BODY }`, iterating a pointer with the
	// iterate operator.
	ForInExpr struct {
		For  token.Pos
		Var  *IdentExpr
		Iter Expr
		Body *Block
		End  token.Pos
	}

	// WhileExpr is `while COND { BODY }`.
	WhileExpr struct {
		While token.Pos
		Cond  Expr
		Body  *Block
		End   token.Pos
	}

	// LoopExpr is `loop { BODY }`, an infinite loop.
	LoopExpr struct {
		Loop token.Pos
		Body *Block
		End  token.Pos
	}

	// BreakExpr is `break`.
	BreakExpr struct{ Start token.Pos }

	// ContinueExpr is `continue`.
	ContinueExpr struct{ Start token.Pos }

	// AsmExpr is a raw assembly escape hatch: `asm "..."`. The generator
	// emits Raw verbatim as one instruction and gives the expression unit
	// type.
	AsmExpr struct {
		AsmTok token.Pos
		Raw    string
		End    token.Pos
	}
)

func (n *LiteralExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Kind.String()+" "+n.Raw, nil) }
func (n *LiteralExpr) Span() token.Range {
	return token.Range{Start: n.Start, End: n.Start + token.Pos(len(n.Raw))}
}
func (n *LiteralExpr) Walk(_ Visitor) {}
func (n *LiteralExpr) expr()          {}

func (n *IdentExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Lit, nil) }
func (n *IdentExpr) Span() token.Range {
	return token.Range{Start: n.Start, End: n.Start + token.Pos(len(n.Lit))}
}
func (n *IdentExpr) Walk(_ Visitor) {}
func (n *IdentExpr) expr()          {}

func (n *ScopeExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "scope", nil) }
func (n *ScopeExpr) Span() token.Range             { return n.Block.Span() }
func (n *ScopeExpr) Walk(v Visitor)                { Walk(v, n.Block) }
func (n *ScopeExpr) expr()                         {}

func (n *FieldExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Field.Lit, nil) }
func (n *FieldExpr) Span() token.Range             { return n.Left.Span().Join(n.Field.Span()) }
func (n *FieldExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Field)
}
func (n *FieldExpr) expr() {}

func (n *IndexExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr[index]", nil) }
func (n *IndexExpr) Span() token.Range {
	return token.Range{Start: n.Prefix.Span().Start, End: n.Rbrack + 1}
}
func (n *IndexExpr) Walk(v Visitor) {
	Walk(v, n.Prefix)
	Walk(v, n.Index)
}
func (n *IndexExpr) expr() {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() token.Range {
	return token.Range{Start: n.Fn.Span().Start, End: n.Rparen + 1}
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Fn)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *AssignExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "assign", nil) }
func (n *AssignExpr) Span() token.Range             { return n.Left.Span().Join(n.Right.Span()) }
func (n *AssignExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *AssignExpr) expr() {}

func (n *BinOpExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "binary "+n.Op.GoString(), nil) }
func (n *BinOpExpr) Span() token.Range             { return n.Left.Span().Join(n.Right.Span()) }
func (n *BinOpExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinOpExpr) expr() {}

func (n *UnaryOpExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "unary "+n.Op.GoString(), nil) }
func (n *UnaryOpExpr) Span() token.Range {
	return token.Range{Start: n.OpPos, End: n.Right.Span().End}
}
func (n *UnaryOpExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *UnaryOpExpr) expr()          {}

func (n *ConvertExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Op.String()+" T", nil) }
func (n *ConvertExpr) Span() token.Range             { return n.Expr.Span().Join(n.Type.Span()) }
func (n *ConvertExpr) Walk(v Visitor) {
	Walk(v, n.Expr)
	Walk(v, n.Type)
}
func (n *ConvertExpr) expr() {}

func (n *LetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "let "+n.Name.Lit, nil) }
func (n *LetExpr) Span() token.Range {
	end := n.Value.Span().End
	if n.Body != nil {
		end = n.Body.Span().End
	}
	return token.Range{Start: n.LetTok, End: end}
}
func (n *LetExpr) Walk(v Visitor) {
	Walk(v, n.Name)
	Walk(v, n.Value)
	if n.Body != nil {
		Walk(v, n.Body)
	}
}
func (n *LetExpr) expr() {}

func (n *IfExpr) Format(f fmt.State, verb rune) {
	lbl := "if"
	if n.Else != nil {
		lbl = "if/else"
	}
	format(f, verb, n, lbl, nil)
}
func (n *IfExpr) Span() token.Range { return token.Range{Start: n.If, End: n.End} }
func (n *IfExpr) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfExpr) expr() {}

func (n *ForToExpr) Format(f fmt.State, verb rune) {
	lbl := "for..to"
	if n.Downto {
		lbl = "for..downto"
	}
	format(f, verb, n, lbl, nil)
}
func (n *ForToExpr) Span() token.Range { return token.Range{Start: n.For, End: n.End} }
func (n *ForToExpr) Walk(v Visitor) {
	Walk(v, n.Var)
	Walk(v, n.Limit)
	Walk(v, n.Body)
}
func (n *ForToExpr) expr() {}

func (n *ForInExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "for..in", nil) }
func (n *ForInExpr) Span() token.Range             { return token.Range{Start: n.For, End: n.End} }
func (n *ForInExpr) Walk(v Visitor) {
	Walk(v, n.Var)
	Walk(v, n.Iter)
	Walk(v, n.Body)
}
func (n *ForInExpr) expr() {}

func (n *WhileExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileExpr) Span() token.Range             { return token.Range{Start: n.While, End: n.End} }
func (n *WhileExpr) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileExpr) expr() {}

func (n *LoopExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "loop", nil) }
func (n *LoopExpr) Span() token.Range             { return token.Range{Start: n.Loop, End: n.End} }
func (n *LoopExpr) Walk(v Visitor)                { Walk(v, n.Body) }
func (n *LoopExpr) expr()                         {}

func (n *BreakExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "break", nil) }
func (n *BreakExpr) Span() token.Range {
	return token.Range{Start: n.Start, End: n.Start + token.Pos(len(token.BREAK.String()))}
}
func (n *BreakExpr) Walk(_ Visitor) {}
func (n *BreakExpr) expr()          {}

func (n *ContinueExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "continue", nil) }
func (n *ContinueExpr) Span() token.Range {
	return token.Range{Start: n.Start, End: n.Start + token.Pos(len(token.CONTINUE.String()))}
}
func (n *ContinueExpr) Walk(_ Visitor) {}
func (n *ContinueExpr) expr()          {}

func (n *AsmExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "asm", nil) }
func (n *AsmExpr) Span() token.Range             { return token.Range{Start: n.AsmTok, End: n.End} }
func (n *AsmExpr) Walk(_ Visitor)                {}
func (n *AsmExpr) expr()                         {}
