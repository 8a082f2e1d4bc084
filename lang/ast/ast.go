// Package ast defines the abstract syntax tree produced by lang/parser and
// consumed by lang/codegen. Every node records its source Range; nodes are
// moved (not shared) into the generator and dropped once a definition has
// been lowered.
package ast

import (
	"fmt"
	"strings"

	"github.com/cerium-lang/cerium/lang/token"
)

// Node is implemented by every AST node.
type Node interface {
	// Every Node implements fmt.Formatter for debug printing; only 'v' and 's'
	// verbs are supported. The '#' flag prints child-count annotations.
	fmt.Formatter

	// Span reports the node's source range.
	Span() token.Range

	// Walk visits the node's direct children.
	Walk(v Visitor)
}

// Expr is any Cerium expression. Cerium has no separate statement AST: a
// Block is simply a sequence of expressions lowered in unit mode, plus an
// optional tail expression lowered in the block's own mode.
type Expr interface {
	Node
	expr()
}

// Qualifier is a nonempty `::`-separated identifier path.
type Qualifier []string

func (q Qualifier) String() string { return strings.Join(q, "::") }

// Equal reports whether q and other name the same qualifier, componentwise.
func (q Qualifier) Equal(other Qualifier) bool {
	if len(q) != len(other) {
		return false
	}
	for i := range q {
		if q[i] != other[i] {
			return false
		}
	}
	return true
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
