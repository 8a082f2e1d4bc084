// Package scanner tokenizes Cerium source. It is adapted in structure from
// the Go source code's scanner (cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go):
// a single current-byte cursor advanced one character at a time, with each
// token's start offset captured before dispatch.
package scanner

import (
	"strings"

	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
)

// Scanner tokenizes a single source buffer for the parser to consume.
type Scanner struct {
	src []byte
	sb  strings.Builder

	cur  byte // current byte, or 0 at EOF
	off  int  // offset of cur
	roff int  // offset following cur

	diags diag.List
}

// New returns a Scanner positioned at the start of src.
func New(src []byte) *Scanner {
	s := &Scanner{src: src}
	s.advance()
	return s
}

// Diagnostics returns the lexical errors accumulated so far.
func (s *Scanner) Diagnostics() diag.List { return s.diags }

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = 0
		return
	}
	s.off = s.roff
	s.cur = s.src[s.roff]
	s.roff++
}

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) atEOF() bool { return s.off >= len(s.src) }

// advanceIf advances past cur and returns true if cur equals b.
func (s *Scanner) advanceIf(b byte) bool {
	if !s.atEOF() && s.cur == b {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token and its decoded value.
func (s *Scanner) Scan() (token.Token, token.Value) {
	s.skipWhitespaceAndComments()

	start := token.Pos(s.off)

	if s.atEOF() {
		return token.EOF, token.Value{Range: token.Range{Start: start, End: start}}
	}

	switch {
	case isLetter(s.cur):
		return s.scanIdent(start)
	case isDigit(s.cur):
		return s.scanNumber(start)
	case s.cur == '\'':
		return s.scanChar(start)
	case s.cur == '"':
		return s.scanString(start)
	default:
		return s.scanOperator(start)
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case !s.atEOF() && isSpace(s.cur):
			s.advance()
		case !s.atEOF() && s.cur == '/' && s.peek() == '/':
			for !s.atEOF() && s.cur != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdent(start token.Pos) (token.Token, token.Value) {
	from := s.off
	for !s.atEOF() && (isLetter(s.cur) || isDigit(s.cur)) {
		s.advance()
	}
	lit := string(s.src[from:s.off])
	tok := token.LookupKw(lit)
	return tok, token.Value{Range: token.Range{Start: start, End: token.Pos(s.off)}, Raw: lit}
}

func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isLetter(b byte) bool { return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
