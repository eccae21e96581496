package token

import (
	"fmt"
	"strings"
)

// Token is a lexical token of Lua source.
// A token may have multiple types, e.g. '-' may be a
// unary and a binary operator.
type Token interface {
	// Value is the string value of the token. For strings, escapes are
	// resolved and quotes removed. For errors, it is the message.
	Value() string
	// Pos is the position of the first byte of the token.
	Pos() Position
	// Length is the number of source bytes the token spans, starting at
	// Pos().Offset.
	Length() int
	Is(Type) bool
	Types() []Type
}

// Position describes the position of something in a file.
// Line and Col are 1-based, Offset is 0-based. Col and Offset count bytes.
type Position struct {
	Line   int
	Col    int
	Offset int64
}

// New creates a token whose source text is its value.
func New(value string, pos Position, types ...Type) Token {
	return NewSpanning(value, pos, len(value), types...)
}

// NewSpanning creates a token that spans length bytes of source, which may
// differ from its value, e.g. for strings.
func NewSpanning(value string, pos Position, length int, types ...Type) Token {
	return tok{
		value:  value,
		pos:    pos,
		length: length,
		types:  types,
	}
}

type tok struct {
	value  string
	pos    Position
	length int
	types  []Type
}

// Is determines whether this token has the given type.
func (t tok) Is(typ Type) bool {
	for _, gotTyp := range t.types {
		if gotTyp == typ {
			return true
		}
	}
	return false
}

func (t tok) Value() string {
	return t.value
}

func (t tok) Length() int {
	return t.length
}

func (t tok) Pos() Position {
	return t.pos
}

func (t tok) Types() []Type {
	return t.types
}

func (t tok) String() string {
	return fmt.Sprintf("(%s+%d) %q (types=%v)", t.Pos(), t.length, t.Value(), t.Types())
}

func (t tok) GoString() string {
	types := make([]string, len(t.types))
	for i, typ := range t.types {
		types[i] = "token." + typ.String()
	}
	return fmt.Sprintf(`token.NewSpanning(%q, token.Position{%d, %d, %d}, %d, %s)`, t.value, t.pos.Line, t.pos.Col, t.pos.Offset, t.length, strings.Join(types, ", "))
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
