// Package token defines source positions attached to syntax tree nodes.
package token

import "fmt"

// Position points to a particular location in an input file.
type Position struct {
	Line   int    // 0-indexed line number
	Column int    // 0-indexed column number
	File   string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n columns.
// Used for computing End positions from a start position.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Line:   p.Line,
		Column: p.Column + n,
		File:   p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0
}

// String returns the position in file:line:column form, 1-indexed.
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}
