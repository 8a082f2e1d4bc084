// Package parser implements the recursive-descent, precedence-climbing
// parser that transforms Cerium source into an lang/ast.Program.
package parser

import (
	"errors"

	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/scanner"
	"github.com/cerium-lang/cerium/lang/token"
)

// Parse parses a single source buffer into a Program. Any diagnostics
// accumulated during scanning or parsing are returned as a diag.List; parsing
// recovers at each top-level definition boundary, so a single syntax error
// does not stop the rest of the file from being parsed.
func Parse(src []byte) (*ast.Program, diag.List) {
	var p parser
	p.init(src)
	prog := p.parseProgram()
	p.diags.Sort()
	return prog, p.diags
}

type parser struct {
	sc       *scanner.Scanner
	diags    diag.List
	seenDiag int // number of scanner diagnostics already copied into diags

	tok token.Token
	val token.Value
}

func (p *parser) init(src []byte) {
	p.sc = scanner.New(src)
	p.advance()
}

func (p *parser) advance() {
	p.tok, p.val = p.sc.Scan()
	if sd := p.sc.Diagnostics(); len(sd) > p.seenDiag {
		p.diags = append(p.diags, sd[p.seenDiag:]...)
		p.seenDiag = len(sd)
	}
}

var errPanicMode = errors.New("parser: panic mode")

// expect consumes the current token if it matches tok, else records a
// MissingToken diagnostic and panics with errPanicMode, recovered by
// parseProgram at the next top-level definition boundary.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.val.Range.Start
	if p.tok != tok {
		p.errorf(&diag.MissingToken{
			Rng:      p.val.Range,
			Expected: tok,
			Found:    p.tok,
		})
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) errorf(e diag.Error) { p.diags.Add(e) }

func (p *parser) unexpected() {
	p.errorf(&diag.UnexpectedToken{Rng: p.val.Range, Tok: p.tok})
	panic(errPanicMode)
}

// syncToNextDef advances until a token that can plausibly start a new
// top-level definition, or EOF.
func (p *parser) syncToNextDef() {
	for p.tok != token.EOF && p.tok != token.FN && p.tok != token.STRUCT && p.tok != token.CONST {
		p.advance()
	}
}
