// Package asm models the target machine's assembly text and renders it.
//
// The target is a 16-bit register/stack machine with eight general-purpose
// registers (R0-R7, R0 reserved for a call's return value), seven special
// registers (RI instruction pointer, RB call-frame base, RS stack pointer,
// RR unused/reserved, and RG, RD, RF, which lang/codegen uses as scratch
// registers), and a closed instruction set:
//
//	mov   dst, src        copy a word
//	add   dst, src        integer add
//	sub   dst, src        integer subtract
//	fadd  dst, src        16-bit float add
//	fsub  dst, src        16-bit float subtract
//	jmp   label           unconditional jump
//	jrnz  reg, label       jump to label if reg != 0
//	jrnzdec reg, label     decrement reg, jump to label if the result != 0
//	readitr  dst, reg      read through reg as an iterator, advancing it
//	writeitr reg, src      write through reg as an iterator, advancing it
//	read  dst, [reg]       load a word through reg
//	write [reg], src       store a word through reg
//	push  src              push a word
//	pop   dst              pop a word
//	call  label            push a return address, jump to label
//	ret                    return to the caller
//
// Grounded in structure on the teacher's lang/compiler/asm.go dasm writer and
// on db47h-ngaro/asm/asm.go's convention of tabulating the target's opcode
// set directly in the package doc comment.
package asm

import "strconv"

// Register names a machine register.
type Register int8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RR
	RI
	RB
	RS
	RG
	RD
	RF
)

var registerNames = [...]string{
	R0: "r0", R1: "r1", R2: "r2", R3: "r3", R4: "r4", R5: "r5", R6: "r6", R7: "r7",
	RR: "rr", RI: "ri", RB: "rb", RS: "rs", RG: "rg", RD: "rd", RF: "rf",
}

func (r Register) String() string { return registerNames[r] }

// Operand is an instruction argument: a register, an immediate/named symbol,
// or an indirect (memory-through-register) reference.
type Operand struct {
	kind    operandKind
	Reg     Register
	Symbol  string // immediate literal text or a #define'd name
	Literal int64  // used when kind is opImmediate and Symbol is empty
}

type operandKind int8

const (
	opRegister operandKind = iota
	opSymbol
	opImmediate
	opIndirect
)

// Direct returns a register operand.
func Direct(r Register) Operand { return Operand{kind: opRegister, Reg: r} }

// Symbol returns an operand referring to a named (#define'd or labeled)
// value.
func Symbol(name string) Operand { return Operand{kind: opSymbol, Symbol: name} }

// Immediate returns a literal integer operand.
func Immediate(n int64) Operand { return Operand{kind: opImmediate, Literal: n} }

// Indirect returns an operand dereferencing the word pointed to by r.
func Indirect(r Register) Operand { return Operand{kind: opIndirect, Reg: r} }

func (o Operand) String() string {
	switch o.kind {
	case opRegister:
		return o.Reg.String()
	case opSymbol:
		return o.Symbol
	case opImmediate:
		return strconv.FormatInt(o.Literal, 10)
	case opIndirect:
		return "[" + o.Reg.String() + "]"
	default:
		panic("asm: unreachable operand kind")
	}
}
