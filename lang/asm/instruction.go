package asm

// Instruction is implemented by every emittable line: either a real opcode,
// a label, a #define, or a raw data word.
type Instruction interface {
	instruction()
}

type (
	// Label marks a jump target.
	Label struct{ Name string }

	// Define emits a top-level `#define NAME OPERAND`.
	Define struct {
		Name  string
		Value Operand
	}

	// Dw emits a raw data word, used for const-expression label bodies.
	Dw struct{ Value Operand }

	Mov  struct{ Dst, Src Operand }
	Add  struct{ Dst, Src Operand }
	Sub  struct{ Dst, Src Operand }
	Fadd struct{ Dst, Src Operand }
	Fsub struct{ Dst, Src Operand }

	Jmp  struct{ Label string }
	Jrnz struct {
		Reg   Operand
		Label string
	}
	JrnzDec struct {
		Reg   Operand
		Label string
	}

	ReadItr  struct{ Dst, Reg Operand }
	WriteItr struct{ Reg, Src Operand }

	Read  struct{ Dst, Src Operand } // Src must be Indirect
	Write struct{ Dst, Src Operand } // Dst must be Indirect

	Push struct{ Src Operand }
	Pop  struct{ Dst Operand }

	// Call pushes a return address and jumps to Label; Ret is its pair.
	Call struct{ Label string }
	Ret  struct{}

	// Raw emits Text verbatim, one line per element split on "\n", each
	// indented like a normal instruction. It is the lowering of an `asm`
	// escape-hatch expression: the generator never parses or validates it.
	Raw struct{ Text string }
)

func (Label) instruction()    {}
func (Define) instruction()   {}
func (Dw) instruction()       {}
func (Mov) instruction()      {}
func (Add) instruction()      {}
func (Sub) instruction()      {}
func (Fadd) instruction()     {}
func (Fsub) instruction()     {}
func (Jmp) instruction()      {}
func (Jrnz) instruction()     {}
func (JrnzDec) instruction()  {}
func (ReadItr) instruction()  {}
func (WriteItr) instruction() {}
func (Read) instruction()     {}
func (Write) instruction()    {}
func (Push) instruction()     {}
func (Pop) instruction()      {}
func (Call) instruction()     {}
func (Ret) instruction()      {}
func (Raw) instruction()      {}
