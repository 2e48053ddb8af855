package interpreter

import (
	"fmt"

	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

// SubComponent reads a named field of a composite value.
func SubComponent(v value.Value, field string) (value.Value, error) {
	switch v := v.(type) {
	case value.Sprite:
		return v.SubComponent(field)
	case value.Vec2:
		return v.SubComponent(field)
	case value.Text:
		return v.SubComponent(field)
	}
	return value.NullValue, notComposite(v)
}

// EditSubComponent applies op to a field of a copy of v and returns the
// copy. On failure the unchanged value is returned with the error.
func EditSubComponent(v value.Value, op string, operand value.Value, field string) (value.Value, error) {
	switch v := v.(type) {
	case value.Sprite:
		s := v
		if err := s.EditSubComponent(field, op, operand); err != nil {
			return v, err
		}
		return s, nil
	case value.Vec2:
		vec := v
		if err := vec.EditSubComponent(field, op, operand); err != nil {
			return v, err
		}
		return vec, nil
	case value.Text:
		t := v
		if err := t.EditSubComponent(field, op, operand); err != nil {
			return v, err
		}
		return t, nil
	}
	return value.NullValue, notComposite(v)
}

func notComposite(v value.Value) error {
	kind := "null"
	if v != nil {
		kind = v.Type().String()
	}
	return fmt.Errorf("%w Got %s.", zserrors.ErrRuntimeNotComposite, kind)
}
