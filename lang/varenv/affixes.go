package varenv

import "github.com/cerium-lang/cerium/lang/asm"

// CollectAffixes computes the function's prologue and epilogue once its body
// has been fully lowered and MaxSize is known: the prologue reserves stack
// slots for every local beyond the seven register-resident ones, and the
// epilogue releases them before the return instruction the caller appends.
func (e *Env) CollectAffixes() (prologue, epilogue []asm.Instruction) {
	stackSlots := e.maxSize - 7
	if stackSlots <= 0 {
		return nil, nil
	}
	for i := 0; i < stackSlots; i++ {
		prologue = append(prologue, asm.Push{Src: asm.Immediate(0)})
	}
	for i := 0; i < stackSlots; i++ {
		epilogue = append(epilogue, asm.Pop{Dst: asm.Direct(asm.RD)})
	}
	return prologue, epilogue
}
