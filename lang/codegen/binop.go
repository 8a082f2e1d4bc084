package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// refBinOp lowers a BinOpExpr. `&&` and `||` short-circuit and get their own
// control-flow lowering; `+`, `-`, `==` and `!=` evaluate both operands
// unconditionally and combine them with a single instruction (or a
// subtract-then-branch sequence for equality).
//
// The target ISA has no bitwise, multiply/divide or ordered-comparison
// instructions (see lang/asm's opcode table): only
// mov/add/sub/fadd/fsub/jmp/jrnz/jrnzdec and the pointer read/write family.
// Equality and logical and/or reduce cleanly to subtract-and-branch-on-zero;
// bitwise `& | ^ << >>`, multiplicative `* /` and ordered `< <= > >=` do not, and are left unlowered here exactly as the system this
// generator is modeled on leaves them unlowered (see DESIGN.md) — reaching
// one is an internal compiler bug, not a user diagnostic, since the parser
// accepts the full operator grammar but this target cannot execute these
// operators at all.
func (fg *funcGen) refBinOp(e *ast.BinOpExpr) (asm.Operand, types.Type, diag.List) {
	switch e.Op {
	case token.AND:
		return fg.refShortCircuit(e, false)
	case token.OR:
		return fg.refShortCircuit(e, true)
	case token.AMPERSAND, token.PIPE, token.CIRCUMFLEX, token.LTLT, token.GTGT:
		panic("codegen: bitwise operator " + e.Op.GoString() + " has no lowering on this target")
	case token.LT, token.LE, token.GT, token.GE:
		panic("codegen: ordered comparison " + e.Op.GoString() + " has no lowering on this target")
	}

	lv, lt, diags := fg.ref(e.Left)
	rv, rt, rdiags := fg.ref(e.Right)
	diags = append(diags, rdiags...)

	switch e.Op {
	case token.PLUS, token.MINUS:
		return fg.refArith(e, lv, lt, rv, rt, diags)
	case token.EQ, token.NEQ:
		return fg.refEquality(e, lv, lt, rv, rt, diags)
	default:
		panic("codegen: unreachable binary operator")
	}
}

func (fg *funcGen) refArith(e *ast.BinOpExpr, lv asm.Operand, lt types.Type, rv asm.Operand, rt types.Type, diags diag.List) (asm.Operand, types.Type, diag.List) {
	resultType := lt

	if ptr, isPtr := lt.(types.Pointer); isPtr {
		if rp, ok := rt.(types.Primitive); !ok || !rp.IsInteger() {
			diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: lt, Rhs: rt, Rng: e.Span()})
			return lv, lt, diags
		}
		_ = ptr
		mk := mkAdd
		if e.Op == token.MINUS {
			mk = mkSub
		}
		return fg.combine(lt, lv, rv, mk), resultType, diags
	}

	if !lt.Equal(rt) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: lt, Rhs: rt, Rng: e.Span()})
		return lv, lt, diags
	}
	p, ok := lt.(types.Primitive)
	if !ok || !p.IsNumeric() {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: lt, Rhs: rt, Rng: e.Span()})
		return lv, lt, diags
	}

	mk := mkAdd
	if e.Op == token.MINUS {
		mk = mkSub
	}
	if p.Kind == types.F16 {
		if e.Op == token.PLUS {
			mk = mkFadd
		} else {
			mk = mkFsub
		}
	}
	return fg.combine(lt, lv, rv, mk), resultType, diags
}

func (fg *funcGen) refEquality(e *ast.BinOpExpr, lv asm.Operand, lt types.Type, rv asm.Operand, rt types.Type, diags diag.List) (asm.Operand, types.Type, diag.List) {
	if !lt.Equal(rt) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: lt, Rhs: rt, Rng: e.Span()})
	}
	sub := mkSub
	if p, ok := lt.(types.Primitive); ok && p.Kind == types.F16 {
		sub = mkFsub
	}
	diff := fg.combine(lt, lv, rv, sub)

	boolT := types.Primitive{Kind: types.Bool}
	result := fg.freshLocal(boolT)

	equalValue, notEqualValue := int64(1), int64(0)
	if e.Op == token.NEQ {
		equalValue, notEqualValue = notEqualValue, equalValue
	}

	nz := fg.newLabel()
	end := fg.newLabel()
	fg.store(result, asm.Immediate(equalValue))
	fg.emit(asm.Jrnz{Reg: diff, Label: nz})
	fg.emit(asm.Jmp{Label: end})
	fg.emit(asm.Label{Name: nz})
	fg.store(result, asm.Immediate(notEqualValue))
	fg.emit(asm.Label{Name: end})

	return fg.load(result), boolT, diags
}

// refShortCircuit lowers `&&` (isOr=false) and `||` (isOr=true): the right
// operand is only evaluated when the left doesn't already decide the result.
func (fg *funcGen) refShortCircuit(e *ast.BinOpExpr, isOr bool) (asm.Operand, types.Type, diag.List) {
	boolT := types.Primitive{Kind: types.Bool}
	result := fg.freshLocal(boolT)

	lv, lt, diags := fg.ref(e.Left)
	if !lt.Equal(boolT) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: lt, Rhs: lt, Rng: e.Left.Span()})
	}
	fg.store(result, lv)

	shortCircuit := fg.newLabel()
	end := fg.newLabel()
	if isOr {
		fg.emit(asm.Jrnz{Reg: fg.load(result), Label: shortCircuit})
	} else {
		notTaken := fg.newLabel()
		fg.emit(asm.Jrnz{Reg: fg.load(result), Label: notTaken})
		fg.emit(asm.Jmp{Label: shortCircuit})
		fg.emit(asm.Label{Name: notTaken})
	}

	rv, rt, rdiags := fg.ref(e.Right)
	diags = append(diags, rdiags...)
	if !rt.Equal(boolT) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: e.Op.GoString(), Lhs: rt, Rhs: rt, Rng: e.Right.Span()})
	}
	fg.store(result, rv)
	fg.emit(asm.Jmp{Label: end})

	fg.emit(asm.Label{Name: shortCircuit})
	fg.emit(asm.Label{Name: end})
	return fg.load(result), boolT, diags
}
