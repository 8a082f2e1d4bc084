package asm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerium-lang/cerium/lang/asm"
)

func TestOperandString(t *testing.T) {
	require.Equal(t, "r1", asm.Direct(asm.R1).String())
	require.Equal(t, "[r2]", asm.Indirect(asm.R2).String())
	require.Equal(t, "42", asm.Immediate(42).String())
	require.Equal(t, "FOO", asm.Symbol("FOO").String())
}

func TestProgramWrite(t *testing.T) {
	p := &asm.Program{
		Consts: []asm.Instruction{
			asm.Define{Name: "ORIGIN", Value: asm.Symbol(".L0")},
			asm.Label{Name: ".L0"},
			asm.Dw{Value: asm.Immediate(0)},
		},
		Functions: []asm.Function{
			{
				Name: "add",
				Body: []asm.Instruction{
					asm.Mov{Dst: asm.Direct(asm.R0), Src: asm.Direct(asm.R1)},
					asm.Add{Dst: asm.Direct(asm.R0), Src: asm.Direct(asm.R2)},
					asm.Ret{},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))
	require.Equal(t, `#define ORIGIN .L0
.L0:
    dw 0
add:
    mov r0, r1
    add r0, r2
    ret
`, buf.String())
}
