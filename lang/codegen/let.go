package codegen

import (
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/types"
)

// lowerLet lowers `let NAME = VALUE` and `let NAME = VALUE in BODY`. The
// first form's binding outlives this call, released when the enclosing
// block's scope ends; the second's is popped here once BODY is lowered.
func (fg *funcGen) lowerLet(e *ast.LetExpr, target location) (types.Type, diag.List) {
	val, vt, diags := fg.ref(e.Value)
	idx := fg.env.Push(e.Name.Lit, vt)
	loc := localLocation(idx, false, len(fg.env.Params))
	fg.store(loc, val)

	if e.Body == nil {
		return types.Unit{}, diags
	}
	bt, bdiags := fg.intoLocation(e.Body, target)
	diags = append(diags, bdiags...)
	fg.env.Pop()
	return bt, diags
}
