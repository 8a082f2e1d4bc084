package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/parser"
)

func TestParseFunction(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn add(a: u16, b: u16) -> u16 {
	a + b
}
`))
	require.Empty(t, diags)
	require.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	require.Equal(t, "add", fn.Name.String())
	require.Len(t, fn.Params, 2)
	require.NotNil(t, fn.Ret)
	require.NotNil(t, fn.Body.Tail)
	require.IsType(t, &ast.BinOpExpr{}, fn.Body.Tail)
}

func TestParseStructAndConst(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
struct Point { x: u16, y: u16 }
const ORIGIN : &Point = &0;
`))
	require.Empty(t, diags)
	require.Len(t, prog.Structs, 1)
	require.Len(t, prog.Consts, 1)
	require.Equal(t, "Point", prog.Structs[0].Name.String())
	require.Len(t, prog.Structs[0].Fields, 2)
}

func TestParseIfElseAndAssignment(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn f() {
	let x = 1;
	if x == 1 {
		x = 2;
	} else {
		x = 3;
	}
}
`))
	require.Empty(t, diags)
	require.Len(t, prog.Functions, 1)
	body := prog.Functions[0].Body
	require.Len(t, body.Stmts, 1)
	require.IsType(t, &ast.LetExpr{}, body.Stmts[0])
	require.IsType(t, &ast.IfExpr{}, body.Tail)
}

func TestParseForLoops(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn f() {
	for i to 10 { };
	for i downto 0 { };
	for i in p { }
}
`))
	require.Empty(t, diags)
	body := prog.Functions[0].Body
	require.Len(t, body.Stmts, 2)
	require.IsType(t, &ast.ForToExpr{}, body.Stmts[0])
	require.False(t, body.Stmts[0].(*ast.ForToExpr).Downto)
	require.IsType(t, &ast.ForToExpr{}, body.Stmts[1])
	require.True(t, body.Stmts[1].(*ast.ForToExpr).Downto)
	require.IsType(t, &ast.ForInExpr{}, body.Tail)
}

func TestParseBinopPrecedence(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn f() -> u16 {
	1 + 2 * 3 as u16
}
`))
	require.Empty(t, diags)
	tail := prog.Functions[0].Body.Tail
	add, ok := tail.(*ast.BinOpExpr)
	require.True(t, ok)
	// 1 + (2 * (3 as u16))
	require.IsType(t, &ast.LiteralExpr{}, add.Left)
	mul, ok := add.Right.(*ast.BinOpExpr)
	require.True(t, ok)
	require.IsType(t, &ast.ConvertExpr{}, mul.Right)
}

func TestParseSyntaxErrorRecoversAtNextDefinition(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn broken( {
}
fn ok() { }
`))
	require.NotEmpty(t, diags)
	require.Len(t, prog.Functions, 1)
	require.Equal(t, "ok", prog.Functions[0].Name.String())
}
