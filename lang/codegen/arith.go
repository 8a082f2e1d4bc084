package codegen

import "github.com/cerium-lang/cerium/lang/asm"
import "github.com/cerium-lang/cerium/lang/types"

// combine materializes lv into a fresh accumulator of type accType, applies
// mk(dst, rv) to it, and returns the operand holding the result.
//
// lv is always committed to the accumulator's own storage before rv is
// computed by the caller (ref on the right operand can freely reuse the
// address/value scratch registers RG and RF without disturbing lv). When the
// accumulator lands in a frame slot rather than a register, its value is
// read into the dedicated RD register before mk runs, so that rv — which
// may itself be sitting in RF from a just-completed load — is never
// clobbered by the accumulator's own read.
func (fg *funcGen) combine(accType types.Type, lv asm.Operand, rv asm.Operand, mk func(dst, src asm.Operand) asm.Instruction) asm.Operand {
	accLoc := fg.freshLocal(accType)
	fg.store(accLoc, lv)

	var dst asm.Operand
	if accLoc.kind == locRegister {
		dst = asm.Direct(accLoc.reg)
	} else {
		dst = asm.Direct(asm.RD)
		fg.emit(asm.Read{Dst: dst, Src: fg.address(accLoc)})
	}
	fg.emit(mk(dst, rv))
	return dst
}

func mkAdd(dst, src asm.Operand) asm.Instruction  { return asm.Add{Dst: dst, Src: src} }
func mkSub(dst, src asm.Operand) asm.Instruction  { return asm.Sub{Dst: dst, Src: src} }
func mkFadd(dst, src asm.Operand) asm.Instruction { return asm.Fadd{Dst: dst, Src: src} }
func mkFsub(dst, src asm.Operand) asm.Instruction { return asm.Fsub{Dst: dst, Src: src} }
