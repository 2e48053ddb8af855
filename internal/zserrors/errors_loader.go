package zserrors

import (
	"errors"
	"fmt"
)

var (
	ErrLoadError                  = errors.New("load error.")
	ErrLoadExpectedFunctionName   = errors.New("expect function name after 'func'.")
	ErrLoadExpectedLeftParen      = errors.New("expect '(' after function name.")
	ErrLoadExpectedRightParen     = errors.New("expect ')' after parameters.")
	ErrLoadExpectedParameterName  = errors.New("expect parameter name.")
	ErrLoadDuplicateParameterName = errors.New("duplicate parameter")
	ErrLoadExpectedLeftBrace      = errors.New("expect '{' before function body.")
	ErrLoadExpectedRightBrace     = errors.New("expect '}' after function body.")
	ErrLoadExpectedVariableName   = errors.New("expect variable name.")
	ErrLoadExpectedEqual          = errors.New("expect '=' after variable name.")
	ErrLoadExpectedLiteral        = errors.New("expect literal value after '='.")
	ErrLoadInvalidLiteral         = errors.New("invalid literal.")
)

func ErrLoadDuplicateParameter(name string) error {
	return fmt.Errorf("%w '%s'.", ErrLoadDuplicateParameterName, name)
}

func ErrLoadInvalidLiteralKind(kind, literal string) error {
	return fmt.Errorf("%w '%s' is not a valid %s.", ErrLoadInvalidLiteral, literal, kind)
}

func NewLoadError(line int, where string, cause error) error {
	return &LoadError{line: line, where: where, cause: cause}
}

type LoadError struct {
	line  int
	where string
	cause error
}

func (l *LoadError) Line() int {
	return l.line
}

// Error implements error.
func (l *LoadError) Error() string {
	where := "at end"
	if l.where != "" {
		where = fmt.Sprintf("at '%s'", l.where)
	}
	return fmt.Sprintf("[line %d] load error %s: %v", l.line, where, l.cause)
}

func (l *LoadError) Unwrap() error {
	return l.cause
}

// Is matches ErrLoadError, so callers can tell load failures apart.
func (l *LoadError) Is(target error) bool {
	return target == ErrLoadError
}

var _ error = (*LoadError)(nil)
var _ unwrapInterface = (*LoadError)(nil)
