package parser

import (
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
)

// binopPriority gives the precedence of each left-associative binary
// operator tier, lowest first: logical, comparison, bitwise, additive,
// multiplicative. Assignment (lowest, right-associative) and typing/prefix/
// postfix (highest) are handled outside this table, as in the teacher's
// array-of-structs-indexed-by-token idiom, generalized here since every tier
// in Cerium's ladder is left-associative and there is no unique per-operator
// right priority to track.
var binopPriority = [...]int{
	token.OR:  1,
	token.AND: 2,

	token.LT: 3, token.LE: 3, token.GT: 3, token.GE: 3, token.EQ: 3, token.NEQ: 3,

	token.AMPERSAND: 4, token.PIPE: 4, token.CIRCUMFLEX: 4, token.LTLT: 4, token.GTGT: 4,

	token.PLUS: 5, token.MINUS: 5,

	token.STAR: 6, token.SLASH: 6,
}

func (p *parser) parseExpr() ast.Expr { return p.parseAssign() }

// parseAssign is the lowest (and only right-associative) tier.
func (p *parser) parseAssign() ast.Expr {
	left := p.parseSubExpr(0)
	if p.tok != token.ASSIGN {
		return left
	}
	if !ast.IsAssignable(left) {
		p.errorf(&diag.UnexpectedToken{Rng: left.Span(), Tok: token.ASSIGN})
		return left
	}
	eq := p.val.Range.Start
	p.advance()
	right := p.parseAssign()
	return &ast.AssignExpr{Left: left, Eq: eq, Right: right}
}

// parseSubExpr climbs the left-associative binop ladder above priority.
func (p *parser) parseSubExpr(priority int) ast.Expr {
	left := p.parseTyping()
	for p.tok.IsBinop() && int(binopPriority[p.tok]) > priority {
		op := p.tok
		opPos := p.val.Range.Start
		p.advance()
		right := p.parseSubExpr(int(binopPriority[op]))
		left = &ast.BinOpExpr{Left: left, Op: op, OpPos: opPos, Right: right}
	}
	return left
}

// parseTyping handles the left-associative `as`/`alias` tier, which binds
// tighter than every arithmetic/comparison/logical operator but looser than
// prefix and postfix.
func (p *parser) parseTyping() ast.Expr {
	left := p.parsePrefix()
	for p.tok == token.AS || p.tok == token.ALIAS {
		op := p.tok
		opPos := p.val.Range.Start
		p.advance()
		typ := p.parseType(true)
		left = &ast.ConvertExpr{Expr: left, Op: op, OpPos: opPos, Type: typ}
	}
	return left
}

func (p *parser) parsePrefix() ast.Expr {
	if p.tok.IsUnop() {
		op := p.tok
		opPos := p.val.Range.Start
		p.advance()
		right := p.parsePrefix()
		return &ast.UnaryOpExpr{Op: op, OpPos: opPos, Right: right}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		switch p.tok {
		case token.DOT:
			dot := p.val.Range.Start
			p.advance()
			field := p.parseIdent()
			e = &ast.FieldExpr{Left: e, Dot: dot, Field: field}
		case token.LBRACK:
			lb := p.val.Range.Start
			p.advance()
			idx := p.parseExpr()
			rb := p.expect(token.RBRACK)
			e = &ast.IndexExpr{Prefix: e, Lbrack: lb, Index: idx, Rbrack: rb}
		case token.LPAREN:
			lp := p.val.Range.Start
			p.advance()
			var args []ast.Expr
			for p.tok != token.RPAREN {
				if len(args) > 0 {
					p.expect(token.COMMA)
				}
				args = append(args, p.parseExpr())
			}
			rp := p.expect(token.RPAREN)
			e = &ast.CallExpr{Fn: e, Lparen: lp, Args: args, Rparen: rp}
		default:
			return e
		}
	}
}

func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.INT, token.FLOAT, token.CHAR, token.STRING, token.TRUE, token.FALSE, token.NULLPTR:
		e := &ast.LiteralExpr{
			Kind: p.tok, Start: p.val.Range.Start, Raw: p.val.Raw,
			Int: p.val.Int, Float: p.val.Float, Char: p.val.Char, Str: p.val.Str,
		}
		p.advance()
		return e
	case token.IDENT:
		return p.parseIdent()
	case token.LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e
	case token.LBRACE:
		return &ast.ScopeExpr{Block: p.parseBlock()}
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.LOOP:
		return p.parseLoop()
	case token.BREAK:
		start := p.val.Range.Start
		p.advance()
		return &ast.BreakExpr{Start: start}
	case token.CONTINUE:
		start := p.val.Range.Start
		p.advance()
		return &ast.ContinueExpr{Start: start}
	case token.ASM:
		return p.parseAsm()
	default:
		p.unexpected()
		panic("unreachable")
	}
}

func (p *parser) parseAsm() *ast.AsmExpr {
	tok := p.expect(token.ASM)
	raw := p.val.Str
	end := p.val.Range.End
	p.expect(token.STRING)
	return &ast.AsmExpr{AsmTok: tok, Raw: raw, End: end}
}
