package value

import (
	"fmt"
)

// Text is a line of text rendered with a font at a position.
type Text struct {
	Content  string
	Font     string
	Position Vec2
	FontSize float64
	Angle    float64
	R, G, B  uint8
}

func NewText(content, font string, position Vec2, fontSize, angle float64, r, g, b uint8) Text {
	return Text{
		Content:  content,
		Font:     font,
		Position: position,
		FontSize: fontSize,
		Angle:    angle,
		R:        r,
		G:        g,
		B:        b,
	}
}

// Type implements Value.
func (t Text) Type() ValueType { return ValueTextType }

// String implements fmt.Stringer.
func (t Text) String() string {
	return fmt.Sprintf("Text(%q, %q, %s, %s, %s, %d, %d, %d)",
		t.Content, t.Font, t.Position, ValueFloat(t.FontSize), ValueFloat(t.Angle), t.R, t.G, t.B)
}

func (Text) sealed() {}

// SubComponent implements Composite.
func (t Text) SubComponent(name string) (Value, error) {
	if field, rest := splitField(name); field == "position" {
		return vec2Component(t.Position, rest)
	}

	switch name {
	case "content":
		return ValueString(t.Content), nil
	case "font":
		return ValueString(t.Font), nil
	case "fontSize":
		return ValueFloat(t.FontSize), nil
	case "angle":
		return ValueFloat(t.Angle), nil
	case "r":
		return ValueInt(t.R), nil
	case "g":
		return ValueInt(t.G), nil
	case "b":
		return ValueInt(t.B), nil
	}
	return NullValue, undefinedSubComponent(ValueTextType, name)
}

// EditSubComponent applies op with operand to the named field.
func (t *Text) EditSubComponent(name, op string, operand Value) (err error) {
	if field, rest := splitField(name); field == "position" {
		return editVec2(&t.Position, rest, op, operand)
	}

	switch name {
	case "content":
		t.Content, err = applyString(op, t.Content, operand)
	case "font":
		t.Font, err = applyString(op, t.Font, operand)
	case "fontSize":
		t.FontSize, err = applyFloat(op, t.FontSize, operand)
	case "angle":
		t.Angle, err = applyFloat(op, t.Angle, operand)
	case "r":
		t.R, err = applyChannel(op, t.R, operand)
	case "g":
		t.G, err = applyChannel(op, t.G, operand)
	case "b":
		t.B, err = applyChannel(op, t.B, operand)
	default:
		err = undefinedSubComponent(ValueTextType, name)
	}
	return err
}

var _ Composite = Text{}
