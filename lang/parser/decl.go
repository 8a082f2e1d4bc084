package parser

import (
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/token"
)

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.tok != token.EOF {
		start := p.tok
		func() {
			defer func() {
				if r := recover(); r != nil {
					if r != errPanicMode {
						panic(r)
					}
					p.syncToNextDef()
				}
			}()
			switch start {
			case token.FN:
				prog.Functions = append(prog.Functions, p.parseFunction())
			case token.STRUCT:
				prog.Structs = append(prog.Structs, p.parseStruct())
			case token.CONST:
				prog.Consts = append(prog.Consts, p.parseConst())
			default:
				p.unexpected()
			}
		}()
	}
	return prog
}

func (p *parser) parseQualifier() (ast.Qualifier, token.Range) {
	startPos := p.val.Range.Start
	name := p.val.Raw
	endPos := p.expect(token.IDENT)
	_ = endPos
	q := ast.Qualifier{name}
	end := p.val.Range
	for p.tok == token.COLONCOLON {
		p.advance()
		part := p.val.Raw
		end = p.val.Range
		p.expect(token.IDENT)
		q = append(q, part)
	}
	return q, token.Range{Start: startPos, End: end.End}
}

func (p *parser) parseIdent() *ast.IdentExpr {
	start := p.val.Range.Start
	lit := p.val.Raw
	p.expect(token.IDENT)
	return &ast.IdentExpr{Name: ast.Qualifier{lit}, Start: start, Lit: lit}
}

func (p *parser) parseParams() []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	for p.tok != token.RPAREN {
		if len(params) > 0 {
			p.expect(token.COMMA)
		}
		name := p.parseIdent()
		p.expect(token.COLON)
		typ := p.parseType(false)
		params = append(params, &ast.Param{Name: name, Type: typ})
	}
	p.expect(token.RPAREN)
	return params
}

func (p *parser) parseFunction() *ast.Function {
	fn := p.expect(token.FN)
	name, nameRng := p.parseQualifier()
	params := p.parseParams()

	var ret ast.TypeExpr
	if p.tok == token.ARROW {
		p.advance()
		ret = p.parseType(true)
	}

	body := p.parseBlock()
	return &ast.Function{
		Fn: fn, Name: name, NameRng: nameRng, Params: params,
		Ret: ret, Body: body, End: body.Rbrace + 1,
	}
}

func (p *parser) parseStruct() *ast.Struct {
	st := p.expect(token.STRUCT)
	name, nameRng := p.parseQualifier()
	p.expect(token.LBRACE)

	var fields []*ast.Param
	for p.tok != token.RBRACE {
		if len(fields) > 0 {
			p.expect(token.COMMA)
			if p.tok == token.RBRACE {
				break
			}
		}
		fname := p.parseIdent()
		p.expect(token.COLON)
		typ := p.parseType(true)
		fields = append(fields, &ast.Param{Name: fname, Type: typ})
	}
	end := p.expect(token.RBRACE)
	return &ast.Struct{StructTok: st, Name: name, NameRng: nameRng, Fields: fields, End: end + 1}
}

func (p *parser) parseConst() *ast.Const {
	c := p.expect(token.CONST)
	name, nameRng := p.parseQualifier()
	p.expect(token.COLON)
	typ := p.parseType(true)
	p.expect(token.ASSIGN)
	val := p.parseExpr()
	semi := p.expect(token.SEMI)
	return &ast.Const{ConstTok: c, Name: name, NameRng: nameRng, Type: typ, Value: val, Semi: semi}
}

// parseType parses a TypeExpr. A leading `&&` (a single AND token) is always
// read as a pointer to a pointer; the allowAnd parameter is not consulted.
// `&&` means logical-and only in expression position, where parseType is not
// called.
func (p *parser) parseType(allowAnd bool) ast.TypeExpr {
	switch p.tok {
	case token.U16, token.I16, token.F16, token.BOOL, token.ANY:
		kind := p.tok
		start := p.val.Range.Start
		p.advance()
		return &ast.PrimitiveTypeExpr{Kind: kind, Start: start}
	case token.IDENT:
		name, rng := p.parseQualifier()
		return &ast.NamedTypeExpr{Name: name, Rng: rng}
	case token.AMPERSAND:
		amp := p.val.Range.Start
		p.advance()
		elem := p.parseType(true)
		return &ast.PointerTypeExpr{Amp: amp, Elem: elem}
	case token.AND:
		// `&&T` lexes as one AND token; split it into two nested pointers.
		amp := p.val.Range.Start
		p.advance()
		inner := p.parseType(true)
		return &ast.PointerTypeExpr{
			Amp:  amp,
			Elem: &ast.PointerTypeExpr{Amp: amp + 1, Elem: inner},
		}
	case token.FN:
		fn := p.val.Range.Start
		p.advance()
		p.expect(token.LPAREN)
		var params []ast.TypeExpr
		for p.tok != token.RPAREN {
			if len(params) > 0 {
				p.expect(token.COMMA)
			}
			params = append(params, p.parseType(true))
		}
		end := p.expect(token.RPAREN)
		var ret ast.TypeExpr
		if p.tok == token.ARROW {
			p.advance()
			ret = p.parseType(true)
			end = ret.Span().End
		}
		return &ast.FuncTypeExpr{Fn: fn, Params: params, Ret: ret, End: end}
	default:
		p.unexpected()
		panic("unreachable")
	}
}
