package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/types"
)

// mutField resolves `e.field` to a location: e's prefix must be a struct (an
// assignable struct-typed place, addressed with &) or a pointer to one.
func (fg *funcGen) mutField(e *ast.FieldExpr) (location, types.Type, diag.List) {
	base, baseType, diags := fg.structBase(e.Left)
	st, ok := underlyingStruct(baseType)
	if !ok {
		diags = append(diags, &diag.InvalidDeref{Rng: e.Span(), FoundType: baseType})
		return location{}, types.Primitive{Kind: types.Any}, diags
	}
	field, ok := st.Field(e.Field.Lit)
	if !ok {
		diags = append(diags, &diag.NoSuchField{StructName: st.Name, Field: e.Field.Lit, Rng: e.Field.Span()})
		return location{}, types.Primitive{Kind: types.Any}, diags
	}
	return fieldLocation(base, field.Offset), field.Type, diags
}

// mutIndex resolves `p[i]` to a location, `*(p+i)`: pointer arithmetic
// scaled by the element's size in words. The target has no multiply
// instruction, so scaling by a (compile-time constant) element size greater
// than one word is unrolled into that many adds; every primitive and
// pointer element has size 1, so this is almost always a single add.
func (fg *funcGen) mutIndex(e *ast.IndexExpr) (location, types.Type, diag.List) {
	base, baseType, diags := fg.ref(e.Prefix)
	ptr, ok := baseType.(types.Pointer)
	if !ok {
		diags = append(diags, &diag.InvalidDeref{Rng: e.Span(), FoundType: baseType})
		return location{}, types.Primitive{Kind: types.Any}, diags
	}

	idxOperand, idxType, idxDiags := fg.ref(e.Index)
	diags = append(diags, idxDiags...)
	if p, ok := idxType.(types.Primitive); !ok || !p.IsInteger() {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "[]", Lhs: idxType, Rhs: idxType, Rng: e.Index.Span()})
	}

	elemSize := ptr.Elem.Size()
	if elemSize < 1 {
		elemSize = 1
	}

	addr := base
	for i := 0; i < elemSize; i++ {
		addr = fg.combine(baseType, addr, idxOperand, mkAdd)
	}
	return fieldLocation(addr, 0), ptr.Elem, diags
}

// underlyingStruct unwraps one level of pointer to find a struct type, since
// `e.field` is accepted both on a struct place directly and through a
// pointer to one.
func underlyingStruct(t types.Type) (*types.Struct, bool) {
	switch t := t.(type) {
	case *types.Struct:
		return t, true
	case types.Pointer:
		st, ok := t.Elem.(*types.Struct)
		return st, ok
	default:
		return nil, false
	}
}

// structBase lowers e to the address of its struct storage: if e is already
// pointer-typed, its value is the address; otherwise e must itself be an
// assignable struct-typed place, and its address is taken.
func (fg *funcGen) structBase(e ast.Expr) (asm.Operand, types.Type, diag.List) {
	if ast.IsAssignable(e) {
		loc, t, diags := fg.mut(e)
		if _, isPtr := t.(types.Pointer); isPtr {
			return fg.load(loc), t, diags
		}
		if loc.kind != locIndirect {
			diags = append(diags, &diag.CannotBorrow{Rng: e.Span()})
			return asm.Immediate(0), t, diags
		}
		return fg.addressOf(loc), t, diags
	}
	return fg.ref(e)
}
