package scanner

import (
	"fmt"
	"strings"

	"github.com/leonardinius/zsharp/internal/token"
)

// Line is one source line: its indentation depth in tabs and its tokens.
// Raw keeps the text after the indentation, used for string literals that
// contain whitespace.
type Line struct {
	Number int
	Indent int
	Raw    string
	Tokens []token.Token
}

func (l Line) IsEmpty() bool {
	return len(l.Tokens) == 0
}

// At returns the token at idx and false when the line is too short.
func (l Line) At(idx int) (token.Token, bool) {
	if idx < 0 || idx >= len(l.Tokens) {
		return token.Token{}, false
	}
	return l.Tokens[idx], true
}

// Count returns the number of tokens of the given type.
func (l Line) Count(t token.TokenType) int {
	n := 0
	for _, tok := range l.Tokens {
		if tok.Type == t {
			n++
		}
	}
	return n
}

// Words returns the lexemes of the line with strip indentation levels
// removed. Remaining levels are kept as leading tabs on the first word.
func (l Line) Words(strip int) []string {
	words := make([]string, len(l.Tokens))
	for idx, tok := range l.Tokens {
		words[idx] = tok.Lexeme
	}

	if indent := l.Indent - strip; indent > 0 && len(words) > 0 {
		words[0] = strings.Repeat("\t", indent) + words[0]
	}

	return words
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("[line %d] %s%s", l.Number, strings.Repeat("\t", l.Indent), l.Raw)
}

var _ fmt.Stringer = (*Line)(nil)
