package codegen

import (
	"github.com/cerium-lang/cerium/lang/asm"
	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/token"
)

// lowerConst lowers a top-level `const NAME : T = EXPR;`. The const
// expression grammar is deliberately narrow: a literal, or `&` of one,
// naming a one-word value the assembler can fold at link time. A literal
// becomes a bare #define; `&literal` allocates an anonymous data word and
// defines NAME as that word's address.
func (g *Generator) lowerConst(c *ast.Const) ([]asm.Instruction, diag.List) {
	t, diags := g.reg.ResolveTypeExpr(c.Type)

	switch v := c.Value.(type) {
	case *ast.LiteralExpr:
		op, lt := refLiteral(v)
		if !lt.Equal(t) {
			diags = append(diags, &diag.MismatchedAssignType{DstRng: c.NameRng, DstType: t, SrcRng: v.Span(), SrcType: lt})
		}
		return []asm.Instruction{asm.Define{Name: c.Name.String(), Value: op}}, diags

	case *ast.UnaryOpExpr:
		if v.Op != token.AMPERSAND {
			diags = append(diags, &diag.UnexpectedToken{Rng: v.Span(), Tok: v.Op})
			return nil, diags
		}
		inner, ok := v.Right.(*ast.LiteralExpr)
		if !ok {
			diags = append(diags, &diag.UnexpectedToken{Rng: v.Right.Span()})
			return nil, diags
		}
		op, _ := refLiteral(inner)
		label := g.newLabel()
		return []asm.Instruction{
			asm.Label{Name: label},
			asm.Dw{Value: op},
			asm.Define{Name: c.Name.String(), Value: asm.Symbol(label)},
		}, diags

	default:
		diags = append(diags, &diag.UnexpectedToken{Rng: c.Value.Span()})
		return nil, diags
	}
}
