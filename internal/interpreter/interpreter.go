package interpreter

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

type Interpreter interface {
	// Call runs the native operation registered under name with already
	// evaluated arguments.
	// An unknown name is reported as a warning and yields Null with a nil
	// error. Arity and argument-type mismatches are returned as errors.
	//
	// Not thread safe.
	Call(ctx context.Context, name string, args ...value.Value) (value.Value, error)

	// GetSubComponent reads a named field of a Sprite, Vec2 or Text.
	// Any other value, or an unknown field, yields Null and a warning.
	GetSubComponent(v value.Value, field string) value.Value

	// EditSubComponent returns a copy of v with op applied to the named
	// field. v itself is never modified.
	EditSubComponent(v value.Value, op string, operand value.Value, field string) value.Value

	// Names returns the native catalogue, sorted.
	Names() []string

	// Builtins returns the symbol table the interpreter was built with.
	Builtins() *parser.Builtins

	// Globals returns the read-only frame of builtin variables.
	Globals() *Environment
}

type interpreter struct {
	natives map[string]Callable
	globals *Environment
	opts    *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		natives: natives(),
		globals: NewGlobals(opts.builtins),
		opts:    opts,
	}
}

// Call implements Interpreter.
func (i *interpreter) Call(ctx context.Context, name string, args ...value.Value) (value.Value, error) {
	fn, ok := i.natives[name]
	if !ok {
		i.opts.reporter.ReportWarning(zserrors.ErrRuntimeUndefinedFunctionName(name))
		return value.NullValue, nil
	}

	if int(fn.Arity()) != len(args) {
		return value.NullValue, zserrors.NewRuntimeError(name, zserrors.ErrRuntimeCalleeArityError(int(fn.Arity()), len(args)))
	}

	result, err := fn.Call(ctx, i, args)
	if err != nil {
		return value.NullValue, zserrors.NewRuntimeError(name, err)
	}
	return result, nil
}

// GetSubComponent implements Interpreter.
func (i *interpreter) GetSubComponent(v value.Value, field string) value.Value {
	result, err := SubComponent(v, field)
	if err != nil {
		i.opts.reporter.ReportWarning(err)
	}
	return result
}

// EditSubComponent implements Interpreter.
func (i *interpreter) EditSubComponent(v value.Value, op string, operand value.Value, field string) value.Value {
	result, err := EditSubComponent(v, op, operand, field)
	if err != nil {
		i.opts.reporter.ReportWarning(err)
	}
	return result
}

// Names implements Interpreter.
func (i *interpreter) Names() []string {
	names := maps.Keys(i.natives)
	slices.Sort(names)
	return names
}

// Builtins implements Interpreter.
func (i *interpreter) Builtins() *parser.Builtins {
	return i.opts.builtins
}

// Globals implements Interpreter.
func (i *interpreter) Globals() *Environment {
	return i.globals
}

func (i *interpreter) print(args ...any) {
	fmt.Fprint(i.opts.stdout, args...)
}

func (i *interpreter) println(args ...any) {
	fmt.Fprintln(i.opts.stdout, args...)
}

func (i *interpreter) log(msg string) {
	i.opts.reporter.Log(msg)
}

var _ Interpreter = (*interpreter)(nil)
