package parser

import (
	"strconv"
	"strings"

	"github.com/leonardinius/zsharp/internal/token"
	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

// ParseTypedLiteral converts a literal according to a declaration keyword.
func ParseTypedLiteral(kind token.TokenType, literal string) (value.Value, error) {
	switch kind {
	case token.STRING:
		return value.ValueString(value.Unquote(literal)), nil
	case token.INT:
		if i, err := strconv.Atoi(literal); err == nil {
			return value.ValueInt(i), nil
		}
	case token.FLOAT:
		if f, err := strconv.ParseFloat(literal, 64); err == nil {
			return value.ValueFloat(f), nil
		}
	case token.BOOL:
		if b, err := strconv.ParseBool(literal); err == nil {
			return value.ValueBool(b), nil
		}
	}

	return value.NullValue, zserrors.ErrLoadInvalidLiteralKind(strings.ToLower(kind.String()), literal)
}

// ParseLiteral infers the type of an untyped literal. It reports false for
// words that are not literals, such as identifiers.
func ParseLiteral(literal string) (value.Value, bool) {
	switch {
	case literal == "":
		return value.NullValue, false
	case literal == "null":
		return value.NullValue, true
	case literal == "true" || literal == "false":
		return value.ValueBool(literal == "true"), true
	case strings.HasPrefix(literal, `"`):
		return value.ValueString(value.Unquote(literal)), true
	case !strings.ContainsAny(literal[:1], "0123456789+-."):
		return value.NullValue, false
	}

	for _, kind := range []token.TokenType{token.INT, token.FLOAT} {
		if v, err := ParseTypedLiteral(kind, literal); err == nil {
			return v, true
		}
	}
	return value.NullValue, false
}
