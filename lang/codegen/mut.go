package codegen

import (
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// mut lowers e as an assignable location: the storage assignment writes
// through and `&e` takes the address of. ast.IsAssignable(e) must already
// hold for any caller that plans to write through the result.
func (fg *funcGen) mut(e ast.Expr) (location, types.Type, diag.List) {
	switch e := e.(type) {
	case *ast.IdentExpr:
		loc, t, ok := fg.lookupVar(e.Lit)
		if !ok {
			return location{}, types.Primitive{Kind: types.Any}, diag.List{
				&diag.UndefinedName{Name: e.Lit, Rng: e.Span()},
			}
		}
		return loc, t, nil

	case *ast.FieldExpr:
		return fg.mutField(e)

	case *ast.IndexExpr:
		return fg.mutIndex(e)

	case *ast.UnaryOpExpr:
		if e.Op != token.STAR && e.Op != token.CIRCUMFLEX {
			return location{}, types.Primitive{Kind: types.Any}, diag.List{&diag.CannotBorrow{Rng: e.Span()}}
		}
		base, bt, diags := fg.ref(e.Right)
		ptr, ok := bt.(types.Pointer)
		if !ok {
			diags = append(diags, &diag.InvalidDeref{Rng: e.Span(), FoundType: bt})
			return location{}, types.Primitive{Kind: types.Any}, diags
		}
		return fieldLocation(base, 0), ptr.Elem, diags

	default:
		return location{}, types.Primitive{Kind: types.Any}, diag.List{&diag.CannotBorrow{Rng: e.Span()}}
	}
}
