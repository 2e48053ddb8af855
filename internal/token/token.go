package token

import (
	"fmt"
)

// Token is a single whitespace-separated word of a declaration line.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
}

func NewToken(t TokenType, lexeme string, line int) Token {
	return Token{
		Type:   t,
		Lexeme: lexeme,
		Line:   line,
	}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Line: %d}", t.Type, t.Lexeme, t.Line)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
