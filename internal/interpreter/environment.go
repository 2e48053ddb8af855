package interpreter

import (
	"fmt"

	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

// Environment is a chain of name bindings. The outermost frame holds the
// builtin variables and is read-only.
type Environment struct {
	enclosing *Environment
	values    map[string]value.Value
	readonly  bool
}

func NewEnvironment() *Environment {
	return &Environment{}
}

// NewGlobals returns a read-only frame with the builtin variables.
func NewGlobals(builtins *parser.Builtins) *Environment {
	env := NewEnvironment()
	for _, name := range builtins.VariableNames() {
		v, _ := builtins.Variable(name)
		env.define(name, v)
	}
	env.readonly = true
	return env
}

func (e *Environment) Define(name string, v value.Value) error {
	if e.readonly {
		return zserrors.ErrRuntimeReadOnlyVariable
	}
	e.define(name, v)
	return nil
}

func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}

	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}

	return value.NullValue, zserrors.ErrRuntimeUndefinedVariableName(name)
}

func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		if e.readonly {
			return zserrors.ErrRuntimeReadOnlyVariable
		}
		e.values[name] = v
		return nil
	}

	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}

	return zserrors.ErrRuntimeUndefinedVariableName(name)
}

func (e *Environment) Nest() *Environment {
	env := NewEnvironment()
	env.enclosing = e
	return env
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

func (e *Environment) define(name string, v value.Value) {
	if e.values == nil {
		e.values = make(map[string]value.Value)
	}
	e.values[name] = v
}

func (e *Environment) String() string {
	w := ""

	for self := e; self != nil; self = self.enclosing {
		w += "{"
		for k, v := range self.values {
			w += fmt.Sprintf("%s=%v,", k, v)
		}
		w += "}"
		if self.enclosing != nil {
			w += " -> "
		}
	}

	return w
}

var _ fmt.Stringer = (*Environment)(nil)
