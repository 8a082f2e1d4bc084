package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/codegen"
	"github.com/cerium-lang/cerium/lang/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	prog, diags := parser.Parse([]byte(src))
	require.Empty(t, diags)

	out, gdiags := codegen.Generate(prog)
	require.Empty(t, gdiags)

	var sb strings.Builder
	require.NoError(t, out.Write(&sb))
	return sb.String()
}

func TestGenerateArithmeticReturn(t *testing.T) {
	got := generate(t, `fn add(a: u16, b: u16) -> u16 { a + b }`)
	require.Contains(t, got, "add:")
	require.Contains(t, got, "add ")
	require.Contains(t, got, "ret")
}

func TestGenerateIfElseBranches(t *testing.T) {
	got := generate(t, `
fn max(a: u16, b: u16) -> u16 {
	if a == b { a } else { b }
}
`)
	require.Contains(t, got, "jrnz")
	require.Contains(t, got, "jmp")
}

func TestGenerateWhileLoop(t *testing.T) {
	got := generate(t, `
fn countdown(n: u16) {
	while n == n {
		break;
	}
}
`)
	require.Contains(t, got, "jmp")
	require.Contains(t, got, "jrnz")
}

// TestGenerateForToPinnedScenario checks the exact shape spec.md's restricted
// `to` form is pinned to: `i` (already bound to n-1) is decremented in place
// by jrnzdec, with no separate count local and no use of the limit as a
// runtime operand. n-1 itself still costs a handful of instructions to load
// and store into i, but nothing beyond that may appear between the loop body
// and the jrnzdec: a phantom count local would show up as an extra mov/sub
// pair spilling into another register.
func TestGenerateForToPinnedScenario(t *testing.T) {
	got := generate(t, `
fn loop_down(n: u16) {
	let i = n - 1;
	for i to 0 { }
}
`)
	want := `loop_down:
    mov rg, rb
    sub rg, 2
    read rf, [rg]
    mov r1, rf
    sub r1, 1
    mov r2, r1
    jmp .L0
.L1:
.L0:
    jrnzdec r2, .L1
.L2:
    ret
`
	require.Equal(t, want, got)
}

func TestGenerateConstDefine(t *testing.T) {
	got := generate(t, `const LIMIT : u16 = 10;`)
	require.Contains(t, got, "#define LIMIT 10")
}

func TestGenerateConstAddressOfLiteral(t *testing.T) {
	got := generate(t, `const MSG : &u16 = &65;`)
	require.Contains(t, got, "dw 65")
	require.Contains(t, got, "#define MSG")
}

func TestGenerateFunctionCallPushesArgsAndCalls(t *testing.T) {
	got := generate(t, `
fn add(a: u16, b: u16) -> u16 { a + b }
fn main() -> u16 { add(1, 2) }
`)
	require.Contains(t, got, "call add")
	require.Contains(t, got, "push")
	require.Contains(t, got, "pop")
}

func TestGenerateStructFieldAccess(t *testing.T) {
	got := generate(t, `
struct Point { x: u16, y: u16 }
fn getX(p: &Point) -> u16 { p.x }
`)
	require.Contains(t, got, "read")
}

func TestGenerateBitwiseOperatorPanics(t *testing.T) {
	prog, diags := parser.Parse([]byte(`fn f(a: u16, b: u16) -> u16 { a & b }`))
	require.Empty(t, diags)

	require.Panics(t, func() {
		codegen.Generate(prog)
	})
}

func TestGenerateUnsupportedConversionDiagnoses(t *testing.T) {
	prog, diags := parser.Parse([]byte(`fn f(a: u16) -> f16 { a as f16 }`))
	require.Empty(t, diags)

	_, gdiags := codegen.Generate(prog)
	require.NotEmpty(t, gdiags)
}

func TestGenerateReturnTypeMismatchDiagnoses(t *testing.T) {
	prog, diags := parser.Parse([]byte(`fn f() -> u16 { }`))
	require.Empty(t, diags)

	_, gdiags := codegen.Generate(prog)
	require.NotEmpty(t, gdiags)
}
