package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// refConvert lowers `e alias T` and `e as T`. alias is a pure type
// relabeling: every Cerium type is one word wide, so reinterpreting one as
// another costs no instructions. as is a value conversion; only the
// conversions between the two integer kinds are implemented; beyond that
// (numeric/float, numeric/bool, pointer casts) is left unsupported, matching
// the system this generator is modeled on, which never finished it either.
func (fg *funcGen) refConvert(e *ast.ConvertExpr) (asm.Operand, types.Type, diag.List) {
	val, from, diags := fg.ref(e.Expr)
	to, tdiags := fg.g.reg.ResolveTypeExpr(e.Type)
	diags = append(diags, tdiags...)

	if e.Op == token.ALIAS {
		return val, to, diags
	}

	if from.Equal(to) {
		return val, to, diags
	}
	if fp, ok := from.(types.Primitive); ok {
		if tp, ok := to.(types.Primitive); ok && fp.IsInteger() && tp.IsInteger() {
			return val, to, diags
		}
	}

	diags = append(diags, &diag.UnsupportedConversion{From: from, To: to, Rng: e.Span()})
	return val, to, diags
}
