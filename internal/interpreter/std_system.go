package interpreter

import (
	"context"

	"github.com/leonardinius/zsharp/internal/value"
)

func StdFnGetKey(ctx context.Context, interpeter *interpreter, name value.Value) (value.Value, error) {
	if _, err := asPrimitive(0, name); err != nil {
		return value.NullValue, err
	}
	return value.ValueBool(interpeter.opts.keys.Pressed(asText(name))), nil
}

func StdFnPrint(ctx context.Context, interpeter *interpreter, v value.Value) (value.Value, error) {
	if _, err := asPrimitive(0, v); err != nil {
		return value.NullValue, err
	}
	interpeter.print(asText(v))
	return value.VoidValue, nil
}

func StdFnPrintLine(ctx context.Context, interpeter *interpreter, v value.Value) (value.Value, error) {
	if _, err := asPrimitive(0, v); err != nil {
		return value.NullValue, err
	}
	interpeter.println(asText(v))
	return value.VoidValue, nil
}

func StdFnVec2(ctx context.Context, interpeter *interpreter, x, y value.Value) (value.Value, error) {
	if err := primitives(x, y); err != nil {
		return value.NullValue, err
	}
	return value.NewVec2(value.AsFloat(x), value.AsFloat(y)), nil
}
