// Package registry builds the type-registry pre-pass: a flat index of every
// struct layout and top-level global (function or const) visible to code
// generation, built once from a whole Program before any function body is
// lowered.
package registry

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dolthub/swiss"

	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// Registry is the read-only global symbol table shared by every function's
// code generation frame. It is built once per Program and never mutated
// afterwards.
type Registry struct {
	Structs map[string]*types.Struct
	globals *swiss.Map[string, types.Type]
}

// Build scans prog's top-level Function, Struct and Const definitions —
// without descending into function bodies — and returns the Registry along
// with any duplicate-name diagnostics. Struct field types referring to other
// structs are resolved in a second pass so that declaration order within the
// file does not matter.
func Build(prog *ast.Program) (*Registry, diag.List) {
	var diags diag.List
	reg := &Registry{
		Structs: make(map[string]*types.Struct, len(prog.Structs)),
		globals: swiss.NewMap[string, types.Type](uint32(len(prog.Functions) + len(prog.Consts))),
	}

	for _, st := range prog.Structs {
		name := st.Name.String()
		if _, ok := reg.Structs[name]; ok {
			diags.Add(&diag.DuplicateDefinition{Name: name, Rng: st.NameRng})
			continue
		}
		reg.Structs[name] = &types.Struct{Name: name}
	}

	for _, st := range prog.Structs {
		s := reg.Structs[st.Name.String()]
		words := 0
		for _, f := range st.Fields {
			ft, fdiags := reg.resolveTypeExpr(f.Type)
			diags = append(diags, fdiags...)
			s.Fields = append(s.Fields, types.Field{Name: f.Name.Lit, Type: ft, Offset: words})
			words += sizeOf(ft)
		}
		s.Words = words
	}

	for _, c := range prog.Consts {
		name := c.Name.String()
		if _, ok := reg.globals.Get(name); ok || reg.Structs[name] != nil {
			diags.Add(&diag.DuplicateDefinition{Name: name, Rng: c.NameRng})
			continue
		}
		ct, cdiags := reg.resolveTypeExpr(c.Type)
		diags = append(diags, cdiags...)
		reg.globals.Put(name, ct)
	}

	for _, fn := range prog.Functions {
		name := fn.Name.String()
		if _, ok := reg.globals.Get(name); ok || reg.Structs[name] != nil {
			diags.Add(&diag.DuplicateDefinition{Name: name, Rng: fn.NameRng})
			continue
		}
		params := make([]types.Type, len(fn.Params))
		for i, p := range fn.Params {
			pt, pdiags := reg.resolveTypeExpr(p.Type)
			diags = append(diags, pdiags...)
			params[i] = pt
		}
		var ret types.Type = types.Unit{}
		if fn.Ret != nil {
			rt, rdiags := reg.resolveTypeExpr(fn.Ret)
			diags = append(diags, rdiags...)
			ret = rt
		}
		reg.globals.Put(name, &types.Function{Params: params, Ret: ret})
	}

	return reg, diags
}

// Lookup returns the type of the global (function or const) named name.
func (r *Registry) Lookup(name string) (types.Type, bool) {
	return r.globals.Get(name)
}

// Dump returns every global qualifier name in sorted order.
func (r *Registry) Dump() []string {
	names := maps.Keys(mapToGo(r.globals))
	slices.Sort(names)
	return names
}

func mapToGo(m *swiss.Map[string, types.Type]) map[string]types.Type {
	out := make(map[string]types.Type, m.Count())
	m.Iter(func(k string, v types.Type) (stop bool) {
		out[k] = v
		return false
	})
	return out
}

func sizeOf(t types.Type) int {
	if t == nil {
		return 0
	}
	return t.Size()
}

// ResolveTypeExpr resolves a parsed TypeExpr against r's struct table. It is
// exported for lang/codegen, which needs it to set up a function's parameter
// and return types without re-running a full registry build.
func (r *Registry) ResolveTypeExpr(te ast.TypeExpr) (types.Type, diag.List) {
	return r.resolveTypeExpr(te)
}

// resolveTypeExpr resolves a parsed TypeExpr against the struct table built
// so far. Forward references to structs declared later in the file still
// resolve, since Structs is fully populated (names only) before this is ever
// called from the field-resolution pass.
func (r *Registry) resolveTypeExpr(te ast.TypeExpr) (types.Type, diag.List) {
	switch te := te.(type) {
	case nil:
		return types.Unit{}, nil
	case *ast.PrimitiveTypeExpr:
		return types.Primitive{Kind: primitiveKind(te)}, nil
	case *ast.NamedTypeExpr:
		name := te.Name.String()
		s, ok := r.Structs[name]
		if !ok {
			return types.Unit{}, diag.List{&diag.UnexpectedToken{Rng: te.Rng}}
		}
		return s, nil
	case *ast.PointerTypeExpr:
		elem, diags := r.resolveTypeExpr(te.Elem)
		return types.Pointer{Elem: elem}, diags
	case *ast.FuncTypeExpr:
		var diags diag.List
		params := make([]types.Type, len(te.Params))
		for i, p := range te.Params {
			pt, pd := r.resolveTypeExpr(p)
			diags = append(diags, pd...)
			params[i] = pt
		}
		ret, rd := r.resolveTypeExpr(te.Ret)
		diags = append(diags, rd...)
		return &types.Function{Params: params, Ret: ret}, diags
	default:
		panic("registry: unreachable TypeExpr kind")
	}
}

func primitiveKind(te *ast.PrimitiveTypeExpr) types.Kind {
	switch te.Kind {
	case token.U16:
		return types.U16
	case token.I16:
		return types.I16
	case token.F16:
		return types.F16
	case token.BOOL:
		return types.Bool
	default:
		return types.Any
	}
}
