package scanner

import (
	"strconv"
	"strings"

	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
)

// scanNumber reads decimal digits (underscores ignored), optionally followed
// by `.` and more decimals, producing a FLOAT; otherwise an INT.
func (s *Scanner) scanNumber(start token.Pos) (token.Token, token.Value) {
	from := s.off
	tok := token.INT

	s.digits()
	if !s.atEOF() && s.cur == '.' && isDigit(s.peek()) {
		tok = token.FLOAT
		s.advance()
		s.digits()
	}

	raw := string(s.src[from:s.off])
	clean := strings.ReplaceAll(raw, "_", "")
	val := token.Value{Range: token.Range{Start: start, End: token.Pos(s.off)}, Raw: raw}

	if tok == token.INT {
		n, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			s.diags.Add(&diag.SyntaxError{Char: raw[0], Idx: start})
		}
		val.Int = n
	} else {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			s.diags.Add(&diag.SyntaxError{Char: raw[0], Idx: start})
		}
		val.Float = f
	}
	return tok, val
}

func (s *Scanner) digits() {
	for !s.atEOF() && (isDigit(s.cur) || s.cur == '_') {
		s.advance()
	}
}
