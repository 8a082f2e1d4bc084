package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/types"
)

// into lowers e so its value ends up in target, a register operand (the
// caller always passes asm.Direct(reg), e.g. the return register R0).
func (fg *funcGen) into(e ast.Expr, target asm.Operand) (types.Type, diag.List) {
	return fg.intoLocation(e, location{kind: locRegister, reg: target.Reg})
}

// intoLocation is into's general form: target may be any writable location.
// Control-flow expressions get their own shape here; everything else reduces
// to ref followed by a single store.
func (fg *funcGen) intoLocation(e ast.Expr, target location) (types.Type, diag.List) {
	switch e := e.(type) {
	case *ast.ScopeExpr:
		return fg.lowerBlock(e.Block, target)
	case *ast.IfExpr:
		return fg.lowerIf(e, target)
	case *ast.WhileExpr:
		return fg.lowerWhile(e)
	case *ast.LoopExpr:
		return fg.lowerLoop(e)
	case *ast.ForToExpr:
		return fg.lowerForTo(e)
	case *ast.ForInExpr:
		return fg.lowerForIn(e)
	case *ast.LetExpr:
		return fg.lowerLet(e, target)
	default:
		val, t, diags := fg.ref(e)
		if !types.IsUnit(t) {
			fg.store(target, val)
		}
		return t, diags
	}
}

// dummyTarget is the target passed to an intoLocation call whose result is
// statically known to be unit (a loop or while body); its value, if any,
// lands in a scratch register rather than risking a parameter or return
// register.
func dummyTarget() location { return location{kind: locRegister, reg: asm.RD} }

// lowerBlock lowers a `{ s1; s2; ...; [tail] }` block: begin a scope, lower
// every statement in unit mode, then the optional tail expression into
// target, then end the scope.
func (fg *funcGen) lowerBlock(b *ast.Block, target location) (types.Type, diag.List) {
	fg.env.BeginScope()
	var diags diag.List
	for _, s := range b.Stmts {
		diags = append(diags, fg.unit(s)...)
	}
	t := types.Type(types.Unit{})
	if b.Tail != nil {
		var tdiags diag.List
		t, tdiags = fg.intoLocation(b.Tail, target)
		diags = append(diags, tdiags...)
	}
	fg.env.EndScope()
	return t, diags
}

// lowerIf lowers `if COND { THEN } [else { ELSE }]`. With no else branch the
// result is unit; with one, THEN and ELSE must agree on type.
func (fg *funcGen) lowerIf(e *ast.IfExpr, target location) (types.Type, diag.List) {
	cond, ct, diags := fg.ref(e.Cond)
	boolT := types.Primitive{Kind: types.Bool}
	if !ct.Equal(boolT) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "if", Lhs: ct, Rhs: ct, Rng: e.Cond.Span()})
	}

	thenLabel := fg.newLabel()
	elseLabel := fg.newLabel()
	end := fg.newLabel()

	fg.emit(asm.Jrnz{Reg: cond, Label: thenLabel})
	fg.emit(asm.Jmp{Label: elseLabel})
	fg.emit(asm.Label{Name: thenLabel})
	thenType, tdiags := fg.lowerBlock(e.Then, target)
	diags = append(diags, tdiags...)
	fg.emit(asm.Jmp{Label: end})
	fg.emit(asm.Label{Name: elseLabel})

	resultType := types.Type(types.Unit{})
	if e.Else != nil {
		elseType, ediags := fg.lowerBlock(e.Else, target)
		diags = append(diags, ediags...)
		if !typesEqual(thenType, elseType) {
			diags = append(diags, &diag.MismatchedOperandTypes{Op: "if/else", Lhs: thenType, Rhs: elseType, Rng: e.Span()})
		}
		resultType = thenType
	}
	fg.emit(asm.Label{Name: end})
	return resultType, diags
}
