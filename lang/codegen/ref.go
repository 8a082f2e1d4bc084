package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// ref lowers e for its value, returning an operand the caller can read from
// directly (a register, immediate, symbol, or a value just loaded into RF).
// It is the workhorse mode: most expression kinds reduce to it, and into/mut
// delegate back to it for anything without its own control-flow shape.
func (fg *funcGen) ref(e ast.Expr) (asm.Operand, types.Type, diag.List) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		op, t := refLiteral(e)
		return op, t, nil

	case *ast.IdentExpr:
		loc, t, ok := fg.lookupVar(e.Lit)
		if !ok {
			return asm.Immediate(0), types.Primitive{Kind: types.Any}, diag.List{
				&diag.UndefinedName{Name: e.Lit, Rng: e.Span()},
			}
		}
		return fg.load(loc), t, nil

	case *ast.UnaryOpExpr:
		return fg.refUnary(e)

	case *ast.BinOpExpr:
		return fg.refBinOp(e)

	case *ast.ConvertExpr:
		return fg.refConvert(e)

	case *ast.FieldExpr:
		loc, t, diags := fg.mutField(e)
		return fg.load(loc), t, diags

	case *ast.IndexExpr:
		loc, t, diags := fg.mutIndex(e)
		return fg.load(loc), t, diags

	case *ast.CallExpr:
		return fg.refCall(e)

	case *ast.AssignExpr:
		t, diags := fg.lowerAssign(e)
		return asm.Operand{}, t, diags

	case *ast.LetExpr, *ast.ScopeExpr, *ast.IfExpr, *ast.WhileExpr, *ast.LoopExpr,
		*ast.ForToExpr, *ast.ForInExpr:
		tmp := fg.freshLocal(types.Primitive{Kind: types.Any})
		t, diags := fg.intoLocation(e, tmp)
		return fg.load(tmp), t, diags

	case *ast.BreakExpr, *ast.ContinueExpr:
		diags := fg.unit(e)
		return asm.Operand{}, types.Unit{}, diags

	case *ast.AsmExpr:
		fg.emit(asm.Raw{Text: e.Raw})
		return asm.Operand{}, types.Unit{}, nil

	default:
		panic("codegen: unreachable expr kind in ref")
	}
}

func (fg *funcGen) refUnary(e *ast.UnaryOpExpr) (asm.Operand, types.Type, diag.List) {
	switch e.Op {
	case token.AMPERSAND:
		loc, t, diags := fg.mut(e.Right)
		if loc.kind != locIndirect {
			diags = append(diags, &diag.CannotBorrow{Rng: e.Span()})
			return asm.Immediate(0), types.Pointer{Elem: t}, diags
		}
		return fg.addressOf(loc), types.Pointer{Elem: t}, diags

	case token.STAR, token.CIRCUMFLEX:
		ptrLoc, bt, diags := fg.mut(e.Right)
		ptr, ok := bt.(types.Pointer)
		if !ok {
			diags = append(diags, &diag.InvalidDeref{Rng: e.Span(), FoundType: bt})
			return asm.Immediate(0), types.Primitive{Kind: types.Any}, diags
		}
		ptrVal := fg.load(ptrLoc)
		if e.Op == token.STAR {
			val := fg.load(fieldLocation(ptrVal, 0))
			return val, ptr.Elem, diags
		}
		fg.emit(asm.ReadItr{Dst: asm.Direct(asm.RD), Reg: ptrVal})
		if ptrLoc.kind != locRegister {
			fg.store(ptrLoc, ptrVal)
		}
		return asm.Direct(asm.RD), ptr.Elem, diags

	case token.BANG:
		rv, t, diags := fg.ref(e.Right)
		if !t.Equal(types.Primitive{Kind: types.Bool}) {
			diags = append(diags, &diag.MismatchedOperandTypes{Op: "!", Lhs: t, Rhs: t, Rng: e.Span()})
		}
		result := fg.combine(types.Primitive{Kind: types.Bool}, asm.Immediate(1), rv, mkSub)
		return result, types.Primitive{Kind: types.Bool}, diags

	case token.MINUS:
		rv, t, diags := fg.ref(e.Right)
		result := fg.combine(t, asm.Immediate(0), rv, subFor(t))
		return result, t, diags

	default:
		panic("codegen: unreachable unary operator")
	}
}

func subFor(t types.Type) func(dst, src asm.Operand) asm.Instruction {
	if p, ok := t.(types.Primitive); ok && p.Kind == types.F16 {
		return mkFsub
	}
	return mkSub
}
