package codegen

import (
	"math"

	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// refLiteral lowers a literal in ref mode: every literal is representable as
// a bare immediate operand, so no code is emitted.
func refLiteral(lit *ast.LiteralExpr) (asm.Operand, types.Type) {
	switch lit.Kind {
	case token.INT:
		return asm.Immediate(lit.Int), types.Primitive{Kind: types.U16}
	case token.FLOAT:
		return asm.Immediate(int64(float16bits(lit.Float))), types.Primitive{Kind: types.F16}
	case token.CHAR:
		return asm.Immediate(int64(lit.Char)), types.Primitive{Kind: types.U16}
	case token.TRUE:
		return asm.Immediate(1), types.Primitive{Kind: types.Bool}
	case token.FALSE:
		return asm.Immediate(0), types.Primitive{Kind: types.Bool}
	case token.NULLPTR:
		return asm.Immediate(0), types.Pointer{Elem: types.Primitive{Kind: types.Any}}
	default:
		panic("codegen: unsupported literal kind " + lit.Kind.String())
	}
}

// float16bits encodes f as an IEEE 754 binary16 bit pattern, the word format
// fadd/fsub operate on.
func float16bits(f float64) uint16 {
	bits := math.Float32bits(float32(f))
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff

	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1f:
		return sign | 0x7c00
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}
