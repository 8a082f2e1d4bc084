// Package diag defines Cerium's closed set of diagnostics and a formatter
// that renders one against its originating source buffer. Diagnostics are
// ordinary values returned up the call stack; nothing in this package panics
// on user input.
package diag

import (
	"strconv"

	"github.com/cerium-lang/cerium/lang/token"
)

// Error is implemented by every diagnostic kind. The set of implementers is
// closed; callers type-switch on it when they need to distinguish kinds
// (notably the parser's panic/recover synchronization).
type Error interface {
	error

	// Range reports the byte range the diagnostic applies to.
	Range() token.Range
}

// List collects diagnostics accumulated during one phase (scanning, parsing,
// registry build, code generation) of a single definition or file.
type List []Error

// Add appends e to the list.
func (l *List) Add(e Error) { *l = append(*l, e) }

// Err returns the list as an error, or nil if the list is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	if len(l) == 1 {
		return l[0].Error()
	}
	s := l[0].Error()
	return s + " (and " + strconv.Itoa(len(l)-1) + " more)"
}
