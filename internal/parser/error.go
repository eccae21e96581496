package parser

import (
	"fmt"

	"github.com/Ameliorate/buildlua/internal/token"
)

// MismatchError is returned when the parser expected something, but found
// something else.
type MismatchError struct {
	Expected interface{}
	Got      interface{}
	// Pos is the position of the offending token. It is nil if the input
	// ended unexpectedly.
	Pos *token.Position
}

func (e MismatchError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("expected %v, but got %v", e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: expected %v, but got %v", e.Pos, e.Expected, e.Got)
}

func ErrUnexpectedEof(expected interface{}) error {
	return MismatchError{
		Expected: expected,
		Got:      "EOF",
	}
}

// unexpected reports the given token where something else was expected.
// The token is described by its source text.
func (p *parser) unexpected(expected interface{}, got token.Token) error {
	if got == nil {
		return ErrUnexpectedEof(expected)
	}
	pos := got.Pos()
	return MismatchError{
		Expected: expected,
		Got:      fmt.Sprintf("'%s'", p.source(got)),
		Pos:      &pos,
	}
}
