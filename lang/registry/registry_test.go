package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/parser"
	"github.com/cerium-lang/cerium/lang/registry"
	"github.com/cerium-lang/cerium/lang/types"
)

func TestBuildStructLayout(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
struct Point { x: u16, y: u16 }
fn origin() -> Point { let p = 0; }
`))
	require.Empty(t, diags)

	reg, rdiags := registry.Build(prog)
	require.Empty(t, rdiags)

	pt, ok := reg.Structs["Point"]
	require.True(t, ok)
	require.Equal(t, 2, pt.Size())
	xf, ok := pt.Field("x")
	require.True(t, ok)
	require.Equal(t, 0, xf.Offset)
	yf, ok := pt.Field("y")
	require.True(t, ok)
	require.Equal(t, 1, yf.Offset)
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn f() { }
fn f() { }
`))
	require.Empty(t, diags)

	_, rdiags := registry.Build(prog)
	require.Len(t, rdiags, 1)
}

func TestLookupFunctionType(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn add(a: u16, b: u16) -> u16 { a + b }
`))
	require.Empty(t, diags)

	reg, rdiags := registry.Build(prog)
	require.Empty(t, rdiags)

	typ, ok := reg.Lookup("add")
	require.True(t, ok)
	fn, ok := typ.(*types.Function)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	require.False(t, types.IsUnit(fn.Ret))
}

func TestDumpIsSorted(t *testing.T) {
	prog, diags := parser.Parse([]byte(`
fn zeta() { }
fn alpha() { }
const MID : u16 = 1;
`))
	require.Empty(t, diags)

	reg, rdiags := registry.Build(prog)
	require.Empty(t, rdiags)
	require.Equal(t, []string{"MID", "alpha", "zeta"}, reg.Dump())
}
