package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/types"
)

// refCall lowers `f(a1, ..., an)`: each argument is evaluated left to right
// and pushed, then call/pop-args/move-the-result-out. Only a bare name
// naming a global function is callable; there are no first-class function
// values at this target's ABI level.
func (fg *funcGen) refCall(e *ast.CallExpr) (asm.Operand, types.Type, diag.List) {
	ident, ok := e.Fn.(*ast.IdentExpr)
	if !ok {
		return asm.Immediate(0), types.Primitive{Kind: types.Any}, diag.List{
			&diag.NotCallable{FoundType: types.Primitive{Kind: types.Any}, Rng: e.Fn.Span()},
		}
	}
	target, found := fg.g.reg.Lookup(ident.Lit)
	if !found {
		return asm.Immediate(0), types.Primitive{Kind: types.Any}, diag.List{
			&diag.UndefinedName{Name: ident.Lit, Rng: ident.Span()},
		}
	}
	fn, ok := target.(*types.Function)
	if !ok {
		return asm.Immediate(0), types.Primitive{Kind: types.Any}, diag.List{
			&diag.NotCallable{FoundType: target, Rng: e.Fn.Span()},
		}
	}

	var diags diag.List
	if len(e.Args) != len(fn.Params) {
		diags = append(diags, &diag.ArgumentCountMismatch{Want: len(fn.Params), Got: len(e.Args), Rng: e.Span()})
	}
	for i, a := range e.Args {
		val, at, adiags := fg.ref(a)
		diags = append(diags, adiags...)
		if i < len(fn.Params) && !at.Equal(fn.Params[i]) {
			diags = append(diags, &diag.MismatchedAssignType{DstRng: a.Span(), DstType: fn.Params[i], SrcRng: a.Span(), SrcType: at})
		}
		fg.emit(asm.Push{Src: val})
	}

	fg.emit(asm.Call{Label: ident.Lit})
	for range e.Args {
		fg.emit(asm.Pop{Dst: asm.Direct(asm.RD)})
	}

	if types.IsUnit(fn.Ret) {
		return asm.Operand{}, types.Unit{}, diags
	}
	result := fg.freshLocal(fn.Ret)
	fg.store(result, asm.Direct(asm.R0))
	return fg.load(result), fn.Ret, diags
}
