package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/scanner"
	"github.com/cerium-lang/cerium/lang/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, []token.Value) {
	t.Helper()
	s := scanner.New([]byte(src))
	var toks []token.Token
	var vals []token.Value
	for {
		tok, val := s.Scan()
		toks = append(toks, tok)
		vals = append(vals, val)
		if tok == token.EOF {
			break
		}
	}
	require.Empty(t, s.Diagnostics())
	return toks, vals
}

func TestScanIdentsAndKeywords(t *testing.T) {
	toks, _ := scanAll(t, "foo fn struct let123")
	require.Equal(t, []token.Token{token.IDENT, token.FN, token.STRUCT, token.IDENT, token.EOF}, toks)
}

func TestScanNumbers(t *testing.T) {
	toks, vals := scanAll(t, "123 1_000 3.14")
	require.Equal(t, []token.Token{token.INT, token.INT, token.FLOAT, token.EOF}, toks)
	require.Equal(t, int64(123), vals[0].Int)
	require.Equal(t, int64(1000), vals[1].Int)
	require.InDelta(t, 3.14, vals[2].Float, 0.0001)
}

func TestScanOperators(t *testing.T) {
	toks, _ := scanAll(t, "-> :: == != <= >= && || << >>")
	require.Equal(t, []token.Token{
		token.ARROW, token.COLONCOLON, token.EQ, token.NEQ, token.LE, token.GE,
		token.AND, token.OR, token.LTLT, token.GTGT, token.EOF,
	}, toks)
}

func TestScanCharLiteral(t *testing.T) {
	toks, vals := scanAll(t, `'a' '\n' '\0'`)
	require.Equal(t, []token.Token{token.CHAR, token.CHAR, token.CHAR, token.EOF}, toks)
	require.Equal(t, byte('a'), vals[0].Char)
	require.Equal(t, byte('\n'), vals[1].Char)
	require.Equal(t, byte(0), vals[2].Char)
}

func TestScanInvalidCharLiteralLength(t *testing.T) {
	s := scanner.New([]byte(`'ab'`))
	tok, _ := s.Scan()
	require.Equal(t, token.CHAR, tok)
	require.Len(t, s.Diagnostics(), 1)
}

func TestScanString(t *testing.T) {
	toks, vals := scanAll(t, `"hello\nworld"`)
	require.Equal(t, []token.Token{token.STRING, token.EOF}, toks)
	require.Equal(t, "hello\nworld", vals[0].Str)
}

func TestScanSkipsLineComments(t *testing.T) {
	toks, _ := scanAll(t, "let x = 1 // trailing comment\nlet y = 2")
	require.Equal(t, []token.Token{
		token.LET, token.IDENT, token.ASSIGN, token.INT,
		token.LET, token.IDENT, token.ASSIGN, token.INT,
		token.EOF,
	}, toks)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	s := scanner.New([]byte("@"))
	tok, _ := s.Scan()
	require.Equal(t, token.ILLEGAL, tok)
	require.Len(t, s.Diagnostics(), 1)
}

func TestScanByteRanges(t *testing.T) {
	_, vals := scanAll(t, "ab cd")
	require.Equal(t, token.Range{Start: 0, End: 2}, vals[0].Range)
	require.Equal(t, token.Range{Start: 3, End: 5}, vals[1].Range)
}
