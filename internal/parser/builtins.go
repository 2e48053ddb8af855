package parser

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/zsharp/internal/value"
)

// Function is a builtin function declaration. Body[0] holds the parameter
// names; every following element is one body line, split into words, with
// the function's own indentation level removed.
type Function struct {
	Name string
	Line int
	Body [][]string
}

// Parameters returns the declared parameter names.
func (f *Function) Parameters() []string {
	return f.Body[0]
}

// Statements returns the body lines without the parameter row.
func (f *Function) Statements() [][]string {
	return f.Body[1:]
}

// String implements fmt.Stringer.
func (f *Function) String() string {
	return fmt.Sprintf("<fn:%s/%d>", f.Name, len(f.Parameters()))
}

// Builtins is the symbol table produced by a load pass. Function and
// variable names live in separate namespaces.
type Builtins struct {
	functions map[string]*Function
	variables map[string]value.Value
}

func NewBuiltins() *Builtins {
	return &Builtins{
		functions: make(map[string]*Function),
		variables: make(map[string]value.Value),
	}
}

func (b *Builtins) Function(name string) (*Function, bool) {
	fn, ok := b.functions[name]
	return fn, ok
}

func (b *Builtins) Variable(name string) (value.Value, bool) {
	v, ok := b.variables[name]
	return v, ok
}

// FunctionNames returns the function names, sorted.
func (b *Builtins) FunctionNames() []string {
	names := maps.Keys(b.functions)
	slices.Sort(names)
	return names
}

// VariableNames returns the variable names, sorted.
func (b *Builtins) VariableNames() []string {
	names := maps.Keys(b.variables)
	slices.Sort(names)
	return names
}

func (b *Builtins) defineFunction(fn *Function) {
	b.functions[fn.Name] = fn
}

func (b *Builtins) defineVariable(name string, v value.Value) {
	b.variables[name] = v
}

var _ fmt.Stringer = (*Function)(nil)
