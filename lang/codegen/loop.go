package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/types"
)

// decrementAndTest decrements loc by one and branches to label if the result
// is nonzero. A register-resident loc uses jrnzdec directly; an indirect one
// is decremented through the scratch register RF and written back, since
// jrnzdec's single-instruction decrement has nowhere to persist the result
// of a frame-resident counter.
func (fg *funcGen) decrementAndTest(loc location, label string) {
	if loc.kind == locRegister {
		fg.emit(asm.JrnzDec{Reg: asm.Direct(loc.reg), Label: label})
		return
	}
	v := fg.load(loc)
	fg.emit(asm.Sub{Dst: v, Src: asm.Immediate(1)})
	fg.store(loc, v)
	fg.emit(asm.Jrnz{Reg: v, Label: label})
}

// lowerWhile lowers `while COND { BODY }`. BODY must be unit-typed.
func (fg *funcGen) lowerWhile(e *ast.WhileExpr) (types.Type, diag.List) {
	start := fg.newLabel()
	body := fg.newLabel()
	end := fg.newLabel()

	fg.emit(asm.Label{Name: start})
	cond, ct, diags := fg.ref(e.Cond)
	if !ct.Equal(types.Primitive{Kind: types.Bool}) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "while", Lhs: ct, Rhs: ct, Rng: e.Cond.Span()})
	}
	fg.emit(asm.Jrnz{Reg: cond, Label: body})
	fg.emit(asm.Jmp{Label: end})
	fg.emit(asm.Label{Name: body})

	fg.loops = append(fg.loops, loopLabels{continueLabel: start, breakLabel: end})
	bodyType, bdiags := fg.lowerBlock(e.Body, dummyTarget())
	fg.loops = fg.loops[:len(fg.loops)-1]
	diags = append(diags, bdiags...)
	if !types.IsUnit(bodyType) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "while body", Lhs: bodyType, Rhs: bodyType, Rng: e.Body.Span()})
	}

	fg.emit(asm.Jmp{Label: start})
	fg.emit(asm.Label{Name: end})
	return types.Unit{}, diags
}

// lowerLoop lowers `loop { BODY }`, an infinite loop exited only by break.
func (fg *funcGen) lowerLoop(e *ast.LoopExpr) (types.Type, diag.List) {
	start := fg.newLabel()
	end := fg.newLabel()

	fg.emit(asm.Label{Name: start})
	fg.loops = append(fg.loops, loopLabels{continueLabel: start, breakLabel: end})
	bodyType, diags := fg.lowerBlock(e.Body, dummyTarget())
	fg.loops = fg.loops[:len(fg.loops)-1]
	if !types.IsUnit(bodyType) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "loop body", Lhs: bodyType, Rhs: bodyType, Rng: e.Body.Span()})
	}
	fg.emit(asm.Jmp{Label: start})
	fg.emit(asm.Label{Name: end})
	return types.Unit{}, diags
}

// lowerForTo lowers `for NAME to/downto LIMIT { BODY }`.
//
// The `to` form is spec.md's pinned restricted form (E2E scenario 5): NAME
// is assumed already bound and initialised to LIMIT-1 by the time the loop
// is reached, and the loop does nothing but decrement NAME itself to zero —
// `jmp .cond; .loop: <body>; .cond: jrnzdec i, .loop`. LIMIT contributes
// only a type check and its own side effects (via ref); it is never an
// operand of the emitted loop.
//
// The `downto` form has no pinned shape (spec.md §9 leaves its desugaring
// to the implementer), so it keeps a separate explicit distance counter and
// steps NAME down by one each pass, supporting an arbitrary LIMIT.
func (fg *funcGen) lowerForTo(e *ast.ForToExpr) (types.Type, diag.List) {
	xLoc, xt, diags := fg.mut(e.Var)
	limitVal, lt, ldiags := fg.ref(e.Limit)
	diags = append(diags, ldiags...)
	if !xt.Equal(lt) {
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "for", Lhs: xt, Rhs: lt, Rng: e.Span()})
	}
	switch t := xt.(type) {
	case types.Pointer:
	case types.Primitive:
		if !t.IsInteger() {
			diags = append(diags, &diag.MismatchedOperandTypes{Op: "for", Lhs: xt, Rhs: xt, Rng: e.Var.Span()})
		}
	default:
		diags = append(diags, &diag.MismatchedOperandTypes{Op: "for", Lhs: xt, Rhs: xt, Rng: e.Var.Span()})
	}

	if e.Downto {
		return fg.lowerForDownto(e, xLoc, xt, limitVal, diags)
	}

	cond := fg.newLabel()
	loop := fg.newLabel()
	end := fg.newLabel()

	fg.emit(asm.Jmp{Label: cond})
	fg.emit(asm.Label{Name: loop})

	fg.loops = append(fg.loops, loopLabels{continueLabel: cond, breakLabel: end})
	_, bdiags := fg.lowerBlock(e.Body, dummyTarget())
	fg.loops = fg.loops[:len(fg.loops)-1]
	diags = append(diags, bdiags...)

	fg.emit(asm.Label{Name: cond})
	fg.decrementAndTest(xLoc, loop)
	fg.emit(asm.Label{Name: end})

	return types.Unit{}, diags
}

// lowerForDownto lowers the general `for i downto LIMIT { BODY }` form:
// compute the iteration count once up front (i - LIMIT) in a fresh local and
// drive it down with decrementAndTest, stepping i itself down by one each
// pass.
func (fg *funcGen) lowerForDownto(e *ast.ForToExpr, xLoc location, xt types.Type, limitVal asm.Operand, diags diag.List) (types.Type, diag.List) {
	countVal := fg.combine(xt, fg.load(xLoc), limitVal, mkSub)
	countLoc := fg.freshLocal(types.Primitive{Kind: types.U16})
	fg.store(countLoc, countVal)

	start := fg.newLabel()
	advance := fg.newLabel()
	end := fg.newLabel()

	fg.emit(asm.Jrnz{Reg: fg.load(countLoc), Label: start})
	fg.emit(asm.Jmp{Label: end})
	fg.emit(asm.Label{Name: start})

	fg.loops = append(fg.loops, loopLabels{continueLabel: advance, breakLabel: end})
	_, bdiags := fg.lowerBlock(e.Body, dummyTarget())
	fg.loops = fg.loops[:len(fg.loops)-1]
	diags = append(diags, bdiags...)

	fg.emit(asm.Label{Name: advance})
	newX := fg.combine(xt, fg.load(xLoc), asm.Immediate(1), mkSub)
	fg.store(xLoc, newX)
	fg.decrementAndTest(countLoc, start)
	fg.emit(asm.Label{Name: end})

	return types.Unit{}, diags
}

// lowerForIn lowers `for NAME in ITER { BODY }`: ITER must be an assignable
// pointer, iterated with readitr each pass. With no separate length given in
// the grammar, the loop runs until an explicit break inside BODY; NAME is
// bound to the value read on each pass, scoped to the loop.
func (fg *funcGen) lowerForIn(e *ast.ForInExpr) (types.Type, diag.List) {
	iterLoc, it, diags := fg.mut(e.Iter)
	ptr, ok := it.(types.Pointer)
	if !ok {
		diags = append(diags, &diag.InvalidDeref{Rng: e.Iter.Span(), FoundType: it})
		ptr = types.Pointer{Elem: types.Primitive{Kind: types.Any}}
	}

	fg.env.BeginScope()
	idx := fg.env.Push(e.Var.Lit, ptr.Elem)
	varLoc := localLocation(idx, false, len(fg.env.Params))

	start := fg.newLabel()
	end := fg.newLabel()
	fg.emit(asm.Label{Name: start})

	iterVal := fg.load(iterLoc)
	fg.emit(asm.ReadItr{Dst: asm.Direct(asm.RD), Reg: iterVal})
	if iterLoc.kind != locRegister {
		fg.store(iterLoc, iterVal)
	}
	fg.store(varLoc, asm.Direct(asm.RD))

	fg.loops = append(fg.loops, loopLabels{continueLabel: start, breakLabel: end})
	_, bdiags := fg.lowerBlock(e.Body, dummyTarget())
	fg.loops = fg.loops[:len(fg.loops)-1]
	diags = append(diags, bdiags...)

	fg.emit(asm.Jmp{Label: start})
	fg.emit(asm.Label{Name: end})
	fg.env.EndScope()

	return types.Unit{}, diags
}
