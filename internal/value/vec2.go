package value

import (
	"fmt"
)

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Type implements Value.
func (v Vec2) Type() ValueType { return ValueVec2Type }

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%s, %s)", ValueFloat(v.X), ValueFloat(v.Y))
}

func (Vec2) sealed() {}

// SubComponent implements Composite.
func (v Vec2) SubComponent(name string) (Value, error) {
	switch name {
	case "x":
		return ValueFloat(v.X), nil
	case "y":
		return ValueFloat(v.Y), nil
	}
	return NullValue, undefinedSubComponent(ValueVec2Type, name)
}

// EditSubComponent applies op with operand to the named component.
func (v *Vec2) EditSubComponent(name, op string, operand Value) (err error) {
	switch name {
	case "x":
		v.X, err = applyFloat(op, v.X, operand)
	case "y":
		v.Y, err = applyFloat(op, v.Y, operand)
	default:
		err = undefinedSubComponent(ValueVec2Type, name)
	}
	return err
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

var _ Composite = Vec2{}
