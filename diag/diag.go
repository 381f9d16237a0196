// Package diag formats the single-line diagnostics and the run summary.
package diag

import "fmt"

// DefaultWidth is the width of a diagnostic line, a terminal line.
const DefaultWidth = 80

// Blame composes "<label>: <message>" within width-1 characters. The message
// is kept whole when it fits and the label is truncated first; a label with
// no room left is dropped.
//
//	                 0          len
//	                 |-----------|
//	    <label> ": "   <message>
//	  |--------------|-----------|
//	  0             off       width-1
func Blame(label, message string, width int) string {
	limit := width - 1
	if limit < 0 {
		limit = 0
	}
	if len(message) > limit {
		message = message[:limit]
	}

	off := 0
	if label != "" {
		off = len(label) + 2
	}
	if off > limit-len(message) {
		off = limit - len(message)
	}

	if off > 2 {
		return label[:off-2] + ": " + message
	}
	return message
}

// Position returns the "<name>:<line>:<column>: " prefix, or nothing when
// parsing never started.
func Position(name string, line, column int) string {
	if line == 0 || column == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d: ", name, line, column)
}

// Diagnostic returns the failure line for a run over input.
func Diagnostic(input string, line, column int, label, message string, width int) string {
	return Position(input, line, column) + Blame(label, message, width)
}

// Summary returns the closing "<n> octet(s) written" line.
func Summary(n uint64) string {
	if n == 1 {
		return "1 octet written"
	}
	return fmt.Sprintf("%d octets written", n)
}
