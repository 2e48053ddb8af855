package value

import (
	"fmt"
)

// Sprite is an image placed at a center position with a full-size scale.
type Sprite struct {
	Path     string
	Position Vec2
	Scale    Vec2
	Rotation float64
}

func NewSprite(path string, position, scale Vec2, rotation float64) Sprite {
	return Sprite{Path: path, Position: position, Scale: scale, Rotation: rotation}
}

// Type implements Value.
func (s Sprite) Type() ValueType { return ValueSpriteType }

// String implements fmt.Stringer.
func (s Sprite) String() string {
	return fmt.Sprintf("Sprite(%q, %s, %s, %s)", s.Path, s.Position, s.Scale, ValueFloat(s.Rotation))
}

func (Sprite) sealed() {}

// SubComponent implements Composite.
func (s Sprite) SubComponent(name string) (Value, error) {
	field, rest := splitField(name)
	switch field {
	case "position":
		return vec2Component(s.Position, rest)
	case "scale":
		return vec2Component(s.Scale, rest)
	}

	if rest == "" {
		switch field {
		case "path":
			return ValueString(s.Path), nil
		case "rotation":
			return ValueFloat(s.Rotation), nil
		}
	}
	return NullValue, undefinedSubComponent(ValueSpriteType, name)
}

// EditSubComponent applies op with operand to the named field.
func (s *Sprite) EditSubComponent(name, op string, operand Value) (err error) {
	field, rest := splitField(name)
	switch {
	case field == "position":
		return editVec2(&s.Position, rest, op, operand)
	case field == "scale":
		return editVec2(&s.Scale, rest, op, operand)
	case name == "path":
		s.Path, err = applyString(op, s.Path, operand)
	case name == "rotation":
		s.Rotation, err = applyFloat(op, s.Rotation, operand)
	default:
		err = undefinedSubComponent(ValueSpriteType, name)
	}
	return err
}

func vec2Component(v Vec2, rest string) (Value, error) {
	if rest == "" {
		return v, nil
	}
	return v.SubComponent(rest)
}

func editVec2(v *Vec2, rest, op string, operand Value) error {
	if rest != "" {
		return v.EditSubComponent(rest, op, operand)
	}

	updated, err := applyVec2(op, *v, operand)
	if err != nil {
		return err
	}
	*v = updated
	return nil
}

var _ Composite = Sprite{}
