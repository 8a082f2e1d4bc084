package scanner

import (
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
)

var simpleEscapes = map[byte]byte{
	'0':  0,
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// escape consumes a backslash escape sequence (the leading backslash already
// consumed) and writes its decoded byte to sb. It reports whether the escape
// was well-formed.
func (s *Scanner) escape(sb *[]byte) bool {
	if s.atEOF() {
		return false
	}
	c := s.cur
	v, ok := simpleEscapes[c]
	if !ok {
		return false
	}
	s.advance()
	*sb = append(*sb, v)
	return true
}

// scanChar reads a single-quoted character literal: `'` then exactly one
// (possibly escaped) byte of content, then `'`.
func (s *Scanner) scanChar(start token.Pos) (token.Token, token.Value) {
	from := s.off
	s.advance() // opening '

	var content []byte
	for !s.atEOF() && s.cur != '\'' {
		if s.cur == '\\' {
			s.advance()
			if !s.escape(&content) {
				content = append(content, '\\')
			}
			continue
		}
		content = append(content, s.cur)
		s.advance()
	}
	terminated := !s.atEOF()
	if terminated {
		s.advance() // closing '
	}

	raw := string(s.src[from:s.off])
	rng := token.Range{Start: start, End: token.Pos(s.off)}
	val := token.Value{Range: rng, Raw: raw}

	if !terminated {
		s.diags.Add(&diag.UnexpectedEof{ExpectedKind: "closing '", Idx: token.Pos(s.off)})
	} else if len(content) != 1 {
		s.diags.Add(&diag.InvalidCharacterLiteralLength{Rng: rng, Literal: raw})
	} else {
		val.Char = content[0]
	}
	return token.CHAR, val
}

// scanString reads a double-quoted string literal, with the same escapes as
// a character literal.
func (s *Scanner) scanString(start token.Pos) (token.Token, token.Value) {
	from := s.off
	s.advance() // opening "

	var content []byte
	for !s.atEOF() && s.cur != '"' {
		if s.cur == '\\' {
			s.advance()
			if !s.escape(&content) {
				content = append(content, '\\')
			}
			continue
		}
		content = append(content, s.cur)
		s.advance()
	}
	terminated := !s.atEOF()
	if terminated {
		s.advance() // closing "
	}

	raw := string(s.src[from:s.off])
	rng := token.Range{Start: start, End: token.Pos(s.off)}
	val := token.Value{Range: rng, Raw: raw, Str: string(content)}

	if !terminated {
		s.diags.Add(&diag.UnexpectedEof{ExpectedKind: "closing \"", Idx: token.Pos(s.off)})
	}
	return token.STRING, val
}
