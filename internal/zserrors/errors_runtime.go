package zserrors

import (
	"errors"
	"fmt"
)

var (
	ErrRuntimeUndefinedFunction      = errors.New("ZS function does not exist")
	ErrRuntimeUndefinedVariable      = errors.New("Undefined variable")
	ErrRuntimeOperandMustBeSprite    = errors.New("Operand must be a Sprite.")
	ErrRuntimeOperandMustBeVec2      = errors.New("Operand must be a Vec2.")
	ErrRuntimeOperandMustBeText      = errors.New("Operand must be a Text.")
	ErrRuntimeOperandMustBePrimitive = errors.New("Operand must be a number, string or bool.")
	ErrRuntimeUndefinedSubComponent  = errors.New("Undefined sub-component.")
	ErrRuntimeUnsupportedOperator    = errors.New("Unsupported operator.")
	ErrRuntimeNotComposite           = errors.New("Only Sprite, Vec2 and Text have sub-components.")
	ErrRuntimeGraphicsNotInitialized = errors.New("Graphics are not initialized.")
)

func ErrRuntimeCalleeArityError(expectedArity int, actualArity int) error {
	return fmt.Errorf("Expected %d arguments but got %d.", expectedArity, actualArity)
}

func ErrRuntimeArgumentError(index int, cause error) error {
	return fmt.Errorf("argument %d: %w", index, cause)
}

func NewRuntimeError(name string, cause error) error {
	return &RuntimeError{name, cause}
}

type RuntimeError struct {
	name  string
	cause error
}

func (r *RuntimeError) Name() string {
	return r.name
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[in '%s']", r.cause, r.name)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)

var ErrRuntimeReadOnlyVariable = errors.New("Builtin variables are read-only.")

func ErrRuntimeUndefinedFunctionName(name string) error {
	return fmt.Errorf("%w: '%s'.", ErrRuntimeUndefinedFunction, name)
}

func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}
