package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/types"
	"github.com/cerium-lang/cerium/lang/varenv"
)

// locKind distinguishes the ways a storage location can be addressed.
type locKind int8

const (
	locRegister locKind = iota // one of R1-R7, read/written with mov
	locIndirect                // base+offset, read/written with read/write through RG
	locSymbol                  // a global function or const, read-only, a bare symbol operand
)

// location is a variable's or field's storage. Register and symbol locations
// have no addressing cost; indirect locations recompute base+offset into the
// scratch register RG before every read or write, since the target has no
// indexed-addressing instruction. base is meaningful only for locIndirect,
// and is itself an already-lowered operand (typically Direct(RB) for a local
// frame slot, or a register/temporary holding a pointer value for a field or
// array-element access).
type location struct {
	kind   locKind
	reg    asm.Register
	base   asm.Operand
	offset int
	symbol string
}

// registerForSlot maps a register-resident local's slot (0-6, from
// varenv.StorageIndex) to its machine register R1-R7.
func registerForSlot(slot int) asm.Register { return asm.R1 + asm.Register(slot) }

// localLocation computes the location of the local/param at stack index idx.
// Parameter i of n (1-indexed per spec.md's calling convention) sits at
// [RB + i - (n+2)]; idx here is the 0-indexed position in fn.Params, so the
// 1-indexed ordinal is idx+1 and the offset is idx+1-(n+2) = idx-n-1. Locals
// 0-6 live in registers R1-R7; locals 7 and up spill to frame slots at
// [RB + (idx-7)].
func localLocation(idx int, isParam bool, numParams int) location {
	if isParam {
		return location{kind: locIndirect, base: asm.Direct(asm.RB), offset: idx - numParams - 1}
	}
	slot, isRegister := varenv.StorageIndex(idx)
	if isRegister {
		return location{kind: locRegister, reg: registerForSlot(slot)}
	}
	return location{kind: locIndirect, base: asm.Direct(asm.RB), offset: slot}
}

// fieldLocation is the location of a word at byte/word offset off from the
// address held in base (itself an already-lowered pointer-valued operand).
func fieldLocation(base asm.Operand, offset int) location {
	return location{kind: locIndirect, base: base, offset: offset}
}

// lookupVar resolves a variable reference to its location and type,
// searching locals, then params, then globals.
func (fg *funcGen) lookupVar(name string) (location, types.Type, bool) {
	idx, t, isParam, isGlobal, ok := fg.env.Find(name)
	if !ok {
		return location{}, nil, false
	}
	if isGlobal {
		return location{kind: locSymbol, symbol: name}, t, true
	}
	return localLocation(idx, isParam, len(fg.env.Params)), t, true
}

// address materializes loc's address (loc.kind must be locIndirect) as an
// Indirect operand, ready for a single read or write instruction.
func (fg *funcGen) address(loc location) asm.Operand {
	fg.emit(asm.Mov{Dst: asm.Direct(asm.RG), Src: loc.base})
	switch {
	case loc.offset > 0:
		fg.emit(asm.Add{Dst: asm.Direct(asm.RG), Src: asm.Immediate(int64(loc.offset))})
	case loc.offset < 0:
		fg.emit(asm.Sub{Dst: asm.Direct(asm.RG), Src: asm.Immediate(int64(-loc.offset))})
	}
	return asm.Indirect(asm.RG)
}

// load returns an operand holding loc's current value, emitting a read
// through RG first if loc is indirect.
func (fg *funcGen) load(loc location) asm.Operand {
	switch loc.kind {
	case locRegister:
		return asm.Direct(loc.reg)
	case locSymbol:
		return asm.Symbol(loc.symbol)
	case locIndirect:
		addr := fg.address(loc)
		fg.emit(asm.Read{Dst: asm.Direct(asm.RF), Src: addr})
		return asm.Direct(asm.RF)
	default:
		panic("codegen: unreachable location kind")
	}
}

// addressOf returns an operand holding the address of loc, for the `&`
// borrow operator. Register locations have no address; callers must reject
// those before calling addressOf. The address is copied into RF so it
// survives any further use of the address-compute scratch register RG.
func (fg *funcGen) addressOf(loc location) asm.Operand {
	if loc.kind != locIndirect {
		panic("codegen: addressOf of a non-addressable location")
	}
	fg.address(loc) // leaves the computed address in RG
	fg.emit(asm.Mov{Dst: asm.Direct(asm.RF), Src: asm.Direct(asm.RG)})
	return asm.Direct(asm.RF)
}

// store writes src into loc. loc must not be locSymbol; globals are never
// assignment targets, a property enforced before store is ever called.
func (fg *funcGen) store(loc location, src asm.Operand) {
	switch loc.kind {
	case locRegister:
		fg.emit(asm.Mov{Dst: asm.Direct(loc.reg), Src: src})
	case locIndirect:
		addr := fg.address(loc)
		fg.emit(asm.Write{Dst: addr, Src: src})
	default:
		panic("codegen: cannot assign to a global symbol")
	}
}

// freshLocal allocates a new anonymous local of type t and returns its
// location, for intermediate values that must outlive a single instruction
// (e.g. the left operand of a binary op while the right is lowered).
func (fg *funcGen) freshLocal(t types.Type) location {
	idx := fg.env.Push("", t)
	return localLocation(idx, false, len(fg.env.Params))
}
