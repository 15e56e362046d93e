package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// ErrParse indicates a grammar violation. Every *ParseError matches it
// under errors.Is.
var ErrParse = errors.New("parse error")

// ParseError represents a parsing error with position information.
type ParseError struct {
	Char    rune // offending character, or EOF at end of input
	Pos     token.Position
	Message string
	Err     error // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Pos.Column, e.Message)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AtEOF reports whether the error was raised at the end of input.
func (e *ParseError) AtEOF() bool {
	return e.Char == EOF
}

// Common error messages
const (
	ErrUnexpectedChar     = "unexpected character %q"
	ErrUnexpectedEOF      = "unexpected end of input"
	ErrUnexpectedTrailing = "unexpected trailing character %q"
	ErrMissingRParen      = "missing closing parenthesis"
	ErrMalformedNumber    = "malformed number %q"
)
