package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/cerium-lang/cerium/lang/ast"
	"github.com/cerium-lang/cerium/lang/parser"
)

// Parse runs the scanner and parser phases and prints the resulting AST.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, c.WithRanges, args...)
}

// ParseFiles parses each file in turn and prints the resulting Program as an
// indented tree. A file with parse errors still has its (partial) AST
// printed; the errors are reported afterward.
func ParseFiles(stdio mainer.Stdio, withRanges bool, files ...string) error {
	var failed bool
	printer := ast.Printer{Output: stdio.Stdout, Range: withRanges}
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}
		prog, diags := parser.Parse(src)
		if err := printer.Print(prog); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		if len(diags) > 0 {
			printDiags(stdio, name, src, diags)
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
