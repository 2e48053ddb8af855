package interpreter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leonardinius/zsharp/internal/value"
)

type Arity int

func (a Arity) String() string {
	return strconv.Itoa(int(a))
}

// Callable is a native operation of the ZS namespace.
type Callable interface {
	Arity() Arity
	Call(ctx context.Context, interpreter *interpreter, arguments []value.Value) (value.Value, error)
}

// ========  ========  ========  ========  ========  ========  ========

type NativeFunction1 func(ctx context.Context, interpeter *interpreter, arg1 value.Value) (value.Value, error)
type NativeFunction2 func(ctx context.Context, interpeter *interpreter, arg1, arg2 value.Value) (value.Value, error)
type NativeFunction3 func(ctx context.Context, interpeter *interpreter, arg1, arg2, arg3 value.Value) (value.Value, error)
type nativeFunctionN struct {
	arity Arity
	fn    func(ctx context.Context, interpeter *interpreter, args ...value.Value) (value.Value, error)
}

// Arity implements Callable.
func (n NativeFunction1) Arity() Arity {
	return 1
}

// Call implements Callable.
func (n NativeFunction1) Call(ctx context.Context, interpreter *interpreter, arguments []value.Value) (value.Value, error) {
	return n(ctx, interpreter, arguments[0])
}

// String implements fmt.Stringer.
func (n NativeFunction1) String() string {
	return nativeName(n.Arity())
}

// Arity implements Callable.
func (n NativeFunction2) Arity() Arity {
	return 2
}

// Call implements Callable.
func (n NativeFunction2) Call(ctx context.Context, interpreter *interpreter, arguments []value.Value) (value.Value, error) {
	return n(ctx, interpreter, arguments[0], arguments[1])
}

// String implements fmt.Stringer.
func (n NativeFunction2) String() string {
	return nativeName(n.Arity())
}

// Arity implements Callable.
func (n NativeFunction3) Arity() Arity {
	return 3
}

// Call implements Callable.
func (n NativeFunction3) Call(ctx context.Context, interpreter *interpreter, arguments []value.Value) (value.Value, error) {
	return n(ctx, interpreter, arguments[0], arguments[1], arguments[2])
}

// String implements fmt.Stringer.
func (n NativeFunction3) String() string {
	return nativeName(n.Arity())
}

func nativeN(arity Arity, fn func(ctx context.Context, interpeter *interpreter, args ...value.Value) (value.Value, error)) *nativeFunctionN {
	return &nativeFunctionN{arity: arity, fn: fn}
}

// Arity implements Callable.
func (n *nativeFunctionN) Arity() Arity {
	return n.arity
}

// Call implements Callable.
func (n *nativeFunctionN) Call(ctx context.Context, interpreter *interpreter, arguments []value.Value) (value.Value, error) {
	return n.fn(ctx, interpreter, arguments...)
}

// String implements fmt.Stringer.
func (n *nativeFunctionN) String() string {
	return nativeName(n.Arity())
}

var _ Callable = (NativeFunction1)(nil)
var _ fmt.Stringer = (NativeFunction1)(nil)
var _ Callable = (NativeFunction2)(nil)
var _ fmt.Stringer = (NativeFunction2)(nil)
var _ Callable = (NativeFunction3)(nil)
var _ fmt.Stringer = (NativeFunction3)(nil)
var _ Callable = (*nativeFunctionN)(nil)
var _ fmt.Stringer = (*nativeFunctionN)(nil)

func nativeName(arity Arity) string {
	return "<native fn/" + arity.String() + ">"
}
