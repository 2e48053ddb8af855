package interpreter

import (
	"context"
	"math"

	"github.com/leonardinius/zsharp/internal/value"
)

// Lerp interpolates linearly between a and b.
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

func StdFnSin(ctx context.Context, interpeter *interpreter, x value.Value) (value.Value, error) {
	return floatFn(math.Sin, x)
}

func StdFnCos(ctx context.Context, interpeter *interpreter, x value.Value) (value.Value, error) {
	return floatFn(math.Cos, x)
}

func StdFnTan(ctx context.Context, interpeter *interpreter, x value.Value) (value.Value, error) {
	return floatFn(math.Tan, x)
}

// StdFnRound truncates through integer coercion; 3.7 becomes 3.
func StdFnRound(ctx context.Context, interpeter *interpreter, x value.Value) (value.Value, error) {
	if _, err := asPrimitive(0, x); err != nil {
		return value.NullValue, err
	}
	return value.ValueInt(value.AsInt(x)), nil
}

func StdFnLerp(ctx context.Context, interpeter *interpreter, a, b, f value.Value) (value.Value, error) {
	if err := primitives(a, b, f); err != nil {
		return value.NullValue, err
	}
	return value.ValueFloat(Lerp(value.AsFloat(a), value.AsFloat(b), value.AsFloat(f))), nil
}

func StdFnAbs(ctx context.Context, interpeter *interpreter, x value.Value) (value.Value, error) {
	return floatFn(math.Abs, x)
}

func floatFn(fn func(float64) float64, x value.Value) (value.Value, error) {
	if _, err := asPrimitive(0, x); err != nil {
		return value.NullValue, err
	}
	return value.ValueFloat(fn(value.AsFloat(x))), nil
}
