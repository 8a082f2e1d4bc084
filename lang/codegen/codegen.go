// Package codegen is the code generator: a tree-walking translator from
// lang/ast to lang/asm, threading a lang/registry type environment and a
// lang/varenv register/stack allocator through four mutually recursive
// lowering modes (into, ref, mut, unit).
//
// Generator plays the role of the teacher's pcomp/fcomp pair
// (lang/compiler/compiler.go): one Generator per Program holds the shared
// registry, and one funcGen per function holds that function's *varenv.Env
// and its emitted instruction slice.
package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/registry"
	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
	"github.com/cerium-lang/cerium/lang/varenv"
)

// Generator lowers a whole Program to an asm.Program.
type Generator struct {
	reg      *registry.Registry
	labelSeq int
}

// Generate builds the registry pre-pass and lowers every definition in prog.
// Diagnostics from registry construction and from every function/const are
// aggregated and sorted; lowering continues past a failing definition so a
// single bad function does not hide errors in the rest of the file.
func Generate(prog *ast.Program) (*asm.Program, diag.List) {
	reg, diags := registry.Build(prog)
	g := &Generator{reg: reg}

	out := &asm.Program{}
	for _, c := range prog.Consts {
		instrs, cdiags := g.lowerConst(c)
		diags = append(diags, cdiags...)
		out.Consts = append(out.Consts, instrs...)
	}
	for _, fn := range prog.Functions {
		f, fdiags := g.lowerFunction(fn)
		diags = append(diags, fdiags...)
		if f != nil {
			out.Functions = append(out.Functions, *f)
		}
	}

	diags.Sort()
	return out, diags
}

// newLabel returns a fresh label unique across the whole program: constants
// and every function's internal branch targets share one counter, since the
// rendered assembly text has a single flat label namespace.
func (g *Generator) newLabel() string {
	l := g.labelSeq
	g.labelSeq++
	return labelName(l)
}

func labelName(n int) string {
	const digits = "0123456789"
	if n == 0 {
		return ".L0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return ".L" + string(buf)
}

// funcGen is one function's code-generation frame: the environment and the
// flat instruction stream being built.
type funcGen struct {
	g     *Generator
	env   *varenv.Env
	instr []asm.Instruction

	// loop context for break/continue, innermost first.
	loops []loopLabels
}

type loopLabels struct {
	continueLabel string
	breakLabel    string
}

func (fg *funcGen) emit(ins ...asm.Instruction) { fg.instr = append(fg.instr, ins...) }

func (fg *funcGen) newLabel() string { return fg.g.newLabel() }

func (g *Generator) lowerFunction(fn *ast.Function) (*asm.Function, diag.List) {
	params := make([]varenv.Local, len(fn.Params))
	for i, p := range fn.Params {
		pt, _ := g.reg.ResolveTypeExpr(p.Type)
		params[i] = varenv.Local{Name: p.Name.Lit, Type: pt}
	}

	env := varenv.New(g.reg, params)
	fg := &funcGen{g: g, env: env}

	retTarget := asm.Direct(asm.R0)
	bodyType, diags := fg.into(&ast.ScopeExpr{Block: fn.Body}, retTarget)

	declared, ddiags := g.reg.ResolveTypeExpr(fn.Ret)
	diags = append(diags, ddiags...)
	if !typesEqual(declared, bodyType) {
		diags = append(diags, &diag.MismatchedReturnType{
			FnName: fn.Name.String(), Expected: declared, Actual: bodyType, Rng: tailRange(fn.Body),
		})
	}

	prologue, epilogue := env.CollectAffixes()
	body := make([]asm.Instruction, 0, len(prologue)+len(fg.instr)+len(epilogue)+1)
	body = append(body, prologue...)
	body = append(body, fg.instr...)
	body = append(body, epilogue...)
	body = append(body, asm.Ret{})

	return &asm.Function{Name: fn.Name.String(), Body: body}, diags
}

// tailRange is the range a MismatchedReturnType diagnostic should point at:
// the body's tail expression per spec.md, or the whole block when the body
// has no tail (its value is unit with nothing more specific to underline).
func tailRange(b *ast.Block) token.Range {
	if b.Tail != nil {
		return b.Tail.Span()
	}
	return b.Span()
}

func typesEqual(a, b types.Type) bool {
	if types.IsUnit(a) || types.IsUnit(b) {
		return types.IsUnit(a) == types.IsUnit(b)
	}
	return a.Equal(b)
}
