package maincmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mna/mainer"

	"github.com/cerium-lang/cerium/lang/codegen"
	"github.com/cerium-lang/cerium/lang/parser"
)

// Compile runs the full pipeline (scan, parse, generate) and writes the
// resulting assembly. Each input file compiles independently; output goes to
// stdout unless the command was given more than one file, in which case each
// file's assembly is written next to it with a .asm extension.
func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CompileFiles(stdio, args...)
}

// CompileFiles compiles each of files in turn.
func CompileFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	toStdout := len(files) == 1
	for _, name := range files {
		if !compileFile(stdio, name, toStdout) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func compileFile(stdio mainer.Stdio, name string, toStdout bool) bool {
	src, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return false
	}

	prog, pdiags := parser.Parse(src)
	if len(pdiags) > 0 {
		printDiags(stdio, name, src, pdiags)
		return false
	}

	out, gdiags := codegen.Generate(prog)
	if len(gdiags) > 0 {
		printDiags(stdio, name, src, gdiags)
		return false
	}

	if toStdout {
		if err := out.Write(stdio.Stdout); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return false
		}
		return true
	}

	asmName := strings.TrimSuffix(name, filepath.Ext(name)) + ".asm"
	f, err := os.Create(asmName)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return false
	}
	defer f.Close()
	if err := out.Write(f); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return false
	}
	return true
}
