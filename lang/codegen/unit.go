package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
)

// unit lowers e for its side effects only, discarding any value it
// produces. It is how a block lowers every statement but its tail.
func (fg *funcGen) unit(e ast.Expr) diag.List {
	switch e := e.(type) {
	case *ast.BreakExpr:
		if len(fg.loops) == 0 {
			return diag.List{&diag.BreakOutsideLoop{Rng: e.Span()}}
		}
		fg.emit(asm.Jmp{Label: fg.loops[len(fg.loops)-1].breakLabel})
		return nil

	case *ast.ContinueExpr:
		if len(fg.loops) == 0 {
			return diag.List{&diag.ContinueOutsideLoop{Rng: e.Span()}}
		}
		fg.emit(asm.Jmp{Label: fg.loops[len(fg.loops)-1].continueLabel})
		return nil

	case *ast.AssignExpr:
		_, diags := fg.lowerAssign(e)
		return diags

	case *ast.AsmExpr:
		fg.emit(asm.Raw{Text: e.Raw})
		return nil

	case *ast.ScopeExpr, *ast.IfExpr, *ast.WhileExpr, *ast.LoopExpr,
		*ast.ForToExpr, *ast.ForInExpr, *ast.LetExpr:
		_, diags := fg.intoLocation(e, dummyTarget())
		return diags

	default:
		_, _, diags := fg.ref(e)
		return diags
	}
}
