package token

import "unicode/utf8"

// Position represents a location in an expression.
type Position struct {
	Column int // 1-based column, counted in characters
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (column > 0).
func (p Position) IsValid() bool {
	return p.Column > 0
}

// PositionAt returns the position of the byte offset within input.
// Offsets past the end map to the column just after the last character.
func PositionAt(input string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	return Position{
		Column: utf8.RuneCountInString(input[:offset]) + 1,
		Offset: offset,
	}
}

// Span represents a range in an expression.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
