package varenv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/registry"
	"github.com/cerium-lang/cerium/lang/types"
	"github.com/cerium-lang/cerium/lang/varenv"
)

func emptyRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, diags := registry.Build(&ast.Program{})
	require.Empty(t, diags)
	return reg
}

func TestFindShadowing(t *testing.T) {
	env := varenv.New(emptyRegistry(t), nil)
	outer := env.Push("x", types.Primitive{Kind: types.U16})

	env.BeginScope()
	inner := env.Push("x", types.Primitive{Kind: types.I16})

	idx, typ, _, _, ok := env.Find("x")
	require.True(t, ok)
	require.Equal(t, inner, idx)
	require.Equal(t, types.Primitive{Kind: types.I16}, typ)

	env.EndScope()

	idx, typ, _, _, ok = env.Find("x")
	require.True(t, ok)
	require.Equal(t, outer, idx)
	require.Equal(t, types.Primitive{Kind: types.U16}, typ)
}

func TestMaxSizeHighWaterMark(t *testing.T) {
	env := varenv.New(emptyRegistry(t), nil)
	env.BeginScope()
	env.Push("a", types.Primitive{Kind: types.U16})
	env.Push("b", types.Primitive{Kind: types.U16})
	env.Push("c", types.Primitive{Kind: types.U16})
	env.EndScope()
	env.Push("d", types.Primitive{Kind: types.U16})

	require.Equal(t, 3, env.MaxSize())
}

func TestNotFound(t *testing.T) {
	env := varenv.New(emptyRegistry(t), nil)
	_, _, _, _, ok := env.Find("missing")
	require.False(t, ok)
}

func TestStorageIndex(t *testing.T) {
	slot, isReg := varenv.StorageIndex(3)
	require.True(t, isReg)
	require.Equal(t, 3, slot)

	slot, isReg = varenv.StorageIndex(9)
	require.False(t, isReg)
	require.Equal(t, 2, slot)
}
