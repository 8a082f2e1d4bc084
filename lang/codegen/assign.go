package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// lowerAssign lowers `x = v`, `*p = v` and `^p = v`. The first stores v into
// x's location; the latter two write through the pointer value of p, the
// iterate form additionally persisting p's post-advance value if p is itself
// an addressable place.
func (fg *funcGen) lowerAssign(e *ast.AssignExpr) (types.Type, diag.List) {
	if lhs, ok := e.Left.(*ast.UnaryOpExpr); ok && (lhs.Op == token.STAR || lhs.Op == token.CIRCUMFLEX) {
		return fg.lowerPointerAssign(e, lhs)
	}

	loc, lt, diags := fg.mut(e.Left)
	rv, rt, rdiags := fg.ref(e.Right)
	diags = append(diags, rdiags...)
	if !lt.Equal(rt) {
		diags = append(diags, &diag.MismatchedAssignType{DstRng: e.Left.Span(), DstType: lt, SrcRng: e.Right.Span(), SrcType: rt})
	}
	fg.store(loc, rv)
	return types.Unit{}, diags
}

func (fg *funcGen) lowerPointerAssign(e *ast.AssignExpr, lhs *ast.UnaryOpExpr) (types.Type, diag.List) {
	ptrLoc, pt, diags := fg.mut(lhs.Right)
	ptr, ok := pt.(types.Pointer)
	if !ok {
		diags = append(diags, &diag.InvalidDeref{Rng: lhs.Span(), FoundType: pt})
		return types.Unit{}, diags
	}

	rv, rt, rdiags := fg.ref(e.Right)
	diags = append(diags, rdiags...)
	if !ptr.Elem.Equal(rt) {
		diags = append(diags, &diag.MismatchedAssignType{DstRng: lhs.Span(), DstType: ptr.Elem, SrcRng: e.Right.Span(), SrcType: rt})
	}

	ptrVal := fg.load(ptrLoc)
	if lhs.Op == token.STAR {
		fg.store(fieldLocation(ptrVal, 0), rv)
		return types.Unit{}, diags
	}

	fg.emit(asm.WriteItr{Reg: ptrVal, Src: rv})
	if ptrLoc.kind != locRegister {
		fg.store(ptrLoc, ptrVal)
	}
	return types.Unit{}, diags
}
