package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/cerium-lang/cerium/lang/diag"
	"github.com/cerium-lang/cerium/lang/scanner"
	"github.com/cerium-lang/cerium/lang/token"
)

// Tokenize runs the scanner phase alone and prints the resulting tokens.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles scans each file in turn and writes one line per token to
// stdio.Stdout. Scanning of a file continues past lexical errors; they are
// reported to stdio.Stderr once the file's tokens have been printed.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}
		if !tokenizeFile(stdio, name, src) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func tokenizeFile(stdio mainer.Stdio, name string, src []byte) bool {
	sc := scanner.New(src)
	for {
		tok, val := sc.Scan()
		fmt.Fprintf(stdio.Stdout, "%s: %s", val.Range, tok)
		if val.Raw != "" {
			fmt.Fprintf(stdio.Stdout, " %s", val.Raw)
		}
		fmt.Fprintln(stdio.Stdout)
		if tok == token.EOF {
			break
		}
	}
	if diags := sc.Diagnostics(); len(diags) > 0 {
		printDiags(stdio, name, src, diags)
		return false
	}
	return true
}

func printDiags(stdio mainer.Stdio, name string, src []byte, diags diag.List) {
	for _, d := range diags {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, diag.Format(src, d))
	}
}
