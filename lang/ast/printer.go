package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of the AST.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// Range, if true, prefixes each node with its byte [start:end) range.
	Range bool
}

// Print pretty-prints n as an indented tree, one node per line.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, rng: p.Range}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	rng   bool
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}
	format := "%s"
	args := []interface{}{strings.Repeat(". ", indent)}
	if p.rng {
		format += "[%s] "
		args = append(args, n.Span())
	}
	format += "%v\n"
	args = append(args, n)
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
