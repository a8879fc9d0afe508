package hcsc

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Location is the human-facing position of a single point in an HCS
// source file. It wraps participle's lexer.Position so the rest of
// the compiler never has to import the lexer package directly.
type Location struct {
	File   string
	Line   int
	Column int
	Cursor int
}

// NewLocation converts a participle lexer position into a Location.
func NewLocation(pos lexer.Position) Location {
	return Location{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
		Cursor: pos.Offset,
	}
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Span is a half-open range between two Locations, used to anchor
// parse errors and (eventually) diagnostics onto source text.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a Span from a single position, treating it as a
// zero-width range. Most parse errors only have a single point of
// failure (the offending token), so this is the common case.
func NewSpan(pos lexer.Position) Span {
	loc := NewLocation(pos)
	return Span{Start: loc, End: loc}
}

func (s Span) String() string {
	if s.Start == s.End {
		return s.Start.String()
	}
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}
