package interpreter

import (
	"context"

	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

func StdFnGraphicsInit(ctx context.Context, interpeter *interpreter, title, width, height value.Value) (value.Value, error) {
	if err := primitives(title, width, height); err != nil {
		return value.NullValue, err
	}
	interpeter.log("Init graphics")
	err := interpeter.opts.renderer.Init(asText(title), value.AsInt(width), value.AsInt(height))
	return value.VoidValue, err
}

// StdFnGraphicsSprite builds Sprite(path, position, scale, rotation).
func StdFnGraphicsSprite(ctx context.Context, interpeter *interpreter, args ...value.Value) (value.Value, error) {
	if err := primitivesAt(args, 0, 3); err != nil {
		return value.NullValue, err
	}
	position, err := asVec2(1, args[1])
	if err != nil {
		return value.NullValue, err
	}
	scale, err := asVec2(2, args[2])
	if err != nil {
		return value.NullValue, err
	}
	return value.NewSprite(asText(args[0]), position, scale, value.AsFloat(args[3])), nil
}

func StdFnGraphicsDraw(ctx context.Context, interpeter *interpreter, sprite value.Value) (value.Value, error) {
	s, err := asSprite(0, sprite)
	if err != nil {
		return value.NullValue, err
	}
	return value.VoidValue, interpeter.opts.renderer.DrawSprite(s)
}

func StdFnGraphicsLoad(ctx context.Context, interpeter *interpreter, sprite value.Value) (value.Value, error) {
	s, err := asSprite(0, sprite)
	if err != nil {
		return value.NullValue, err
	}
	return value.VoidValue, interpeter.opts.renderer.LoadSprite(s)
}

// StdFnGraphicsText builds Text(content, font, position, fontSize, angle, r, g, b).
// Colour channels are clamped to 0..255.
func StdFnGraphicsText(ctx context.Context, interpeter *interpreter, args ...value.Value) (value.Value, error) {
	if err := primitivesAt(args, 0, 1, 3, 4, 5, 6, 7); err != nil {
		return value.NullValue, err
	}
	position, err := asVec2(2, args[2])
	if err != nil {
		return value.NullValue, err
	}
	return value.NewText(
		asText(args[0]),
		asText(args[1]),
		position,
		value.AsFloat(args[3]),
		value.AsFloat(args[4]),
		asChannel(args[5]),
		asChannel(args[6]),
		asChannel(args[7]),
	), nil
}

func StdFnGraphicsDrawText(ctx context.Context, interpeter *interpreter, text value.Value) (value.Value, error) {
	t, err := asTextValue(0, text)
	if err != nil {
		return value.NullValue, err
	}
	return value.VoidValue, interpeter.opts.renderer.DrawText(t)
}

func StdFnGraphicsLoadText(ctx context.Context, interpeter *interpreter, text value.Value) (value.Value, error) {
	t, err := asTextValue(0, text)
	if err != nil {
		return value.NullValue, err
	}
	return value.VoidValue, interpeter.opts.renderer.LoadText(t)
}

// asText coerces to string and strips script quoting.
func asText(v value.Value) string {
	return value.Unquote(value.AsString(v))
}

func asChannel(v value.Value) uint8 {
	return uint8(value.Clamp(value.AsFloat(v), 0, 255))
}

// asPrimitive guards arguments that are coerced with value.AsInt,
// value.AsFloat or value.AsString. Composites have no such coercion.
func asPrimitive(idx int, v value.Value) (value.Value, error) {
	if _, ok := v.(value.Composite); ok {
		return value.NullValue, zserrors.ErrRuntimeArgumentError(idx, zserrors.ErrRuntimeOperandMustBePrimitive)
	}
	return v, nil
}

// primitives checks every argument, indexed from 0.
func primitives(args ...value.Value) error {
	return primitivesAt(args, indexes(len(args))...)
}

func primitivesAt(args []value.Value, positions ...int) error {
	for _, idx := range positions {
		if _, err := asPrimitive(idx, args[idx]); err != nil {
			return err
		}
	}
	return nil
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func asVec2(idx int, v value.Value) (value.Vec2, error) {
	if vec, ok := v.(value.Vec2); ok {
		return vec, nil
	}
	return value.Vec2{}, zserrors.ErrRuntimeArgumentError(idx, zserrors.ErrRuntimeOperandMustBeVec2)
}

func asSprite(idx int, v value.Value) (value.Sprite, error) {
	if s, ok := v.(value.Sprite); ok {
		return s, nil
	}
	return value.Sprite{}, zserrors.ErrRuntimeArgumentError(idx, zserrors.ErrRuntimeOperandMustBeSprite)
}

func asTextValue(idx int, v value.Value) (value.Text, error) {
	if t, ok := v.(value.Text); ok {
		return t, nil
	}
	return value.Text{}, zserrors.ErrRuntimeArgumentError(idx, zserrors.ErrRuntimeOperandMustBeText)
}
