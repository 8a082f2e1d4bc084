package parser

import (
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/token"
)

// parseBlock parses `{ STMT* TAIL? }`. Each STMT is an expression followed by
// `;`; the optional TAIL is a final expression with no trailing `;`, and is
// what gives the block its value.
func (p *parser) parseBlock() *ast.Block {
	lbrace := p.expect(token.LBRACE)
	b := &ast.Block{Lbrace: lbrace}

	for p.tok != token.RBRACE {
		e := p.parseExpr()
		if p.tok == token.SEMI {
			p.advance()
			b.Stmts = append(b.Stmts, e)
			continue
		}
		b.Tail = e
		break
	}
	rbrace := p.expect(token.RBRACE)
	b.Rbrace = rbrace
	return b
}

func (p *parser) parseLet() *ast.LetExpr {
	letTok := p.expect(token.LET)
	name := p.parseIdent()
	p.expect(token.ASSIGN)
	value := p.parseExpr()

	var inPos token.Pos
	var body ast.Expr
	if p.tok == token.IN {
		inPos = p.val.Range.Start
		p.advance()
		body = p.parseExpr()
	}
	return &ast.LetExpr{LetTok: letTok, Name: name, Value: value, In: inPos, Body: body}
}

func (p *parser) parseIf() *ast.IfExpr {
	ifTok := p.expect(token.IF)
	cond := p.parseExpr()
	then := p.parseBlock()
	end := then.Rbrace + 1

	var elseBlock *ast.Block
	if p.tok == token.ELSE {
		p.advance()
		elseBlock = p.parseBlock()
		end = elseBlock.Rbrace + 1
	}
	return &ast.IfExpr{If: ifTok, Cond: cond, Then: then, Else: elseBlock, End: end}
}

// parseFor parses the three syntactic for-loop forms: `for NAME to LIMIT`,
// `for NAME downto LIMIT` and `for NAME in ITER`. The `to`/`downto` forms
// share ast.ForToExpr (distinguished by its Downto flag); `in` produces a
// distinct ast.ForInExpr, since iterating a pointer has no shared shape with
// counting towards a limit.
func (p *parser) parseFor() ast.Expr {
	forTok := p.expect(token.FOR)
	v := p.parseIdent()

	switch p.tok {
	case token.TO, token.DOWNTO:
		downto := p.tok == token.DOWNTO
		p.advance()
		limit := p.parseExpr()
		body := p.parseBlock()
		return &ast.ForToExpr{For: forTok, Var: v, Downto: downto, Limit: limit, Body: body, End: body.Rbrace + 1}
	case token.IN:
		p.advance()
		iter := p.parseExpr()
		body := p.parseBlock()
		return &ast.ForInExpr{For: forTok, Var: v, Iter: iter, Body: body, End: body.Rbrace + 1}
	default:
		p.unexpected()
		panic("unreachable")
	}
}

func (p *parser) parseWhile() *ast.WhileExpr {
	whileTok := p.expect(token.WHILE)
	cond := p.parseExpr()
	body := p.parseBlock()
	return &ast.WhileExpr{While: whileTok, Cond: cond, Body: body, End: body.Rbrace + 1}
}

func (p *parser) parseLoop() *ast.LoopExpr {
	loopTok := p.expect(token.LOOP)
	body := p.parseBlock()
	return &ast.LoopExpr{Loop: loopTok, Body: body, End: body.Rbrace + 1}
}
