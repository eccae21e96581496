package parser

import "github.com/Ameliorate/buildlua/internal/token"

type scanner interface {
	next() (token.Token, bool)
	// source returns the source text of a token obtained from next.
	source(token.Token) string
}
