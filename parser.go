package hcsc

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// hcsParser is built once at package init and reused for every
// compile; participle parsers are safe for concurrent use, though
// the compiler itself never calls it from more than one goroutine —
// compilation is single-threaded and synchronous end to end.
var hcsParser = participle.MustBuild(
	&Program{},
	participle.Lexer(hcsLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// ParseProgram parses a whole HCS source file into a Program tree.
// filename is used only for error messages and source-location
// reporting. A malformed grammar is the one strict boundary in the
// pipeline: it always returns a ParsingError.
func ParseProgram(filename string, src []byte) (*Program, error) {
	prog := &Program{}
	err := hcsParser.ParseBytes(filename, src, prog)
	if err == nil {
		return prog, nil
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		var uerr *participle.UnexpectedTokenError
		if errors.As(err, &uerr) {
			return nil, ParsingError{
				Message: "parse error",
				Token:   uerr.Unexpected.Value,
				Span:    NewSpan(perr.Position()),
			}
		}
		return nil, ParsingError{
			Message: "parse error: " + perr.Message(),
			Span:    NewSpan(perr.Position()),
		}
	}
	return nil, ParsingError{Message: fmt.Sprintf("parse error: %s", err)}
}
