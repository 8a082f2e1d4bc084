package asm

import (
	"fmt"
	"io"
	"strings"
)

// Function is one compiled function's body: its name and ordered
// instruction stream, prologue and body and epilogue already concatenated.
type Function struct {
	Name string
	Body []Instruction
}

// Program is a whole compiled unit: top-level #define/dw constants, in
// declaration order, followed by every function.
type Program struct {
	Consts    []Instruction // Define, Label and Dw only
	Functions []Function
}

// Write renders the program in the line-oriented text form: four-space
// indent for instructions, column 0 for labels and #define, lowercase
// register mnemonics, `[reg]` for indirect operands.
func (p *Program) Write(w io.Writer) error {
	dw := &dasmWriter{w: w}
	for _, ins := range p.Consts {
		dw.instruction(ins)
	}
	for _, fn := range p.Functions {
		dw.writef("%s:\n", fn.Name)
		for _, ins := range fn.Body {
			dw.instruction(ins)
		}
	}
	return dw.err
}

type dasmWriter struct {
	w   io.Writer
	err error
}

func (d *dasmWriter) writef(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dasmWriter) instruction(ins Instruction) {
	switch ins := ins.(type) {
	case Label:
		d.writef("%s:\n", ins.Name)
	case Define:
		d.writef("#define %s %s\n", ins.Name, ins.Value)
	case Dw:
		d.writef("    dw %s\n", ins.Value)
	case Mov:
		d.writef("    mov %s, %s\n", ins.Dst, ins.Src)
	case Add:
		d.writef("    add %s, %s\n", ins.Dst, ins.Src)
	case Sub:
		d.writef("    sub %s, %s\n", ins.Dst, ins.Src)
	case Fadd:
		d.writef("    fadd %s, %s\n", ins.Dst, ins.Src)
	case Fsub:
		d.writef("    fsub %s, %s\n", ins.Dst, ins.Src)
	case Jmp:
		d.writef("    jmp %s\n", ins.Label)
	case Jrnz:
		d.writef("    jrnz %s, %s\n", ins.Reg, ins.Label)
	case JrnzDec:
		d.writef("    jrnzdec %s, %s\n", ins.Reg, ins.Label)
	case ReadItr:
		d.writef("    readitr %s, %s\n", ins.Dst, ins.Reg)
	case WriteItr:
		d.writef("    writeitr %s, %s\n", ins.Reg, ins.Src)
	case Read:
		d.writef("    read %s, %s\n", ins.Dst, ins.Src)
	case Write:
		d.writef("    write %s, %s\n", ins.Dst, ins.Src)
	case Push:
		d.writef("    push %s\n", ins.Src)
	case Pop:
		d.writef("    pop %s\n", ins.Dst)
	case Call:
		d.writef("    call %s\n", ins.Label)
	case Ret:
		d.writef("    ret\n")
	case Raw:
		for _, line := range strings.Split(ins.Text, "\n") {
			d.writef("    %s\n", line)
		}
	default:
		panic("asm: unreachable instruction kind")
	}
}
