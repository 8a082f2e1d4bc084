package diag

import (
	"fmt"
	"strings"
)

// Format renders e against the source it was produced from: the line
// containing the start of e's range, trimmed of trailing whitespace and
// line-number-prefixed, followed by a line of carets underlining the byte
// range clipped to that line. Only that one line is rendered: when the range
// spans several lines, the lines after the first are neither shown nor
// underlined.
//
// Colouring is deliberately not performed here; a caller that wants colour
// wraps the returned string itself.
func Format(src []byte, e Error) string {
	rng := e.Range()
	lineStart, lineNo := lineContaining(src, int(rng.Start))

	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}
	line := strings.TrimRight(string(src[lineStart:lineEnd]), " \t\r")

	underlineFrom := int(rng.Start) - lineStart
	underlineTo := int(rng.End) - lineStart
	if underlineTo > len(line) {
		underlineTo = len(line)
	}
	if underlineTo < underlineFrom {
		underlineTo = underlineFrom
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", lineNo, line)
	fmt.Fprint(&b, "     | ")
	b.WriteString(strings.Repeat(" ", underlineFrom))
	if underlineTo == underlineFrom {
		b.WriteByte('^')
	} else {
		b.WriteString(strings.Repeat("^", underlineTo-underlineFrom))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "error: %s\n", e.Error())
	return b.String()
}

// lineContaining returns the byte offset of the start of the line containing
// off, and that line's 1-based line number.
func lineContaining(src []byte, off int) (start, lineNo int) {
	lineNo = 1
	for i := 0; i < off && i < len(src); i++ {
		if src[i] == '\n' {
			lineNo++
			start = i + 1
		}
	}
	return start, lineNo
}
