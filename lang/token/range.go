package token

import "fmt"

// Pos is a byte offset into a source buffer.
type Pos int

// Range is a half-open [Start, End) byte range into a source buffer.
// Every token and AST node carries one.
type Range struct {
	Start, End Pos
}

// String renders the range as "start:end", mainly for debug output.
func (r Range) String() string { return fmt.Sprintf("%d:%d", r.Start, r.End) }

// Len returns the number of bytes spanned by the range.
func (r Range) Len() int { return int(r.End - r.Start) }

// Join returns the smallest range covering both r and other.
func (r Range) Join(other Range) Range {
	start, end := r.Start, r.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Value holds the decoded payload of a token with a value (identifiers and
// literals); the zero Value is appropriate for tokens that carry none.
type Value struct {
	Range Range
	Raw   string // the literal source text of the token

	Int   int64
	Float float64
	Char  byte
	Str   string
}
