package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardinius/zsharp/internal/zserrors"
)

// Composite is a value with named sub-components.
type Composite interface {
	Value
	SubComponent(name string) (Value, error)
}

func undefinedSubComponent(owner ValueType, name string) error {
	return fmt.Errorf("%w %s has no '%s'.", zserrors.ErrRuntimeUndefinedSubComponent, owner, name)
}

func unsupportedOperator(op string, target ValueType) error {
	return fmt.Errorf("%w '%s' on %s.", zserrors.ErrRuntimeUnsupportedOperator, op, target)
}

// primitive rejects composite operands where a field expects a primitive.
func primitive(operand Value) error {
	if _, ok := operand.(Composite); ok {
		return fmt.Errorf("%w Got %s.", zserrors.ErrRuntimeOperandMustBePrimitive, operand.Type())
	}
	return nil
}

// splitField splits "position.x" into "position" and "x".
func splitField(name string) (string, string) {
	head, rest, _ := strings.Cut(name, ".")
	return head, rest
}

func applyFloat(op string, current float64, operand Value) (float64, error) {
	if err := primitive(operand); err != nil {
		return current, err
	}
	other := AsFloat(operand)
	switch op {
	case "=":
		return other, nil
	case "+=":
		return current + other, nil
	case "-=":
		return current - other, nil
	case "*=":
		return current * other, nil
	case "/=":
		return current / other, nil
	}
	return current, unsupportedOperator(op, ValueFloatType)
}

func applyString(op string, current string, operand Value) (string, error) {
	if err := primitive(operand); err != nil {
		return current, err
	}
	other := Unquote(AsString(operand))
	switch op {
	case "=":
		return other, nil
	case "+=":
		return current + other, nil
	}
	return current, unsupportedOperator(op, ValueStringType)
}

// applyVec2 combines component-wise with another Vec2, or applies a
// primitive operand to both components. Other composites are rejected.
func applyVec2(op string, current Vec2, operand Value) (Vec2, error) {
	ox, oy := operand, operand
	if other, ok := operand.(Vec2); ok {
		if op == "+=" {
			return current.Add(other), nil
		}
		ox, oy = ValueFloat(other.X), ValueFloat(other.Y)
	}

	x, err := applyFloat(op, current.X, ox)
	if errors.Is(err, zserrors.ErrRuntimeUnsupportedOperator) {
		return current, unsupportedOperator(op, ValueVec2Type)
	}
	if err != nil {
		return current, err
	}
	y, _ := applyFloat(op, current.Y, oy)

	return Vec2{X: x, Y: y}, nil
}

func applyChannel(op string, current uint8, operand Value) (uint8, error) {
	f, err := applyFloat(op, float64(current), operand)
	if err != nil {
		return current, err
	}
	return uint8(Clamp(f, 0, 255)), nil
}
