package interpreter

import (
	"io"
	"os"

	"github.com/leonardinius/zsharp/internal/graphics"
	"github.com/leonardinius/zsharp/internal/input"
	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

type interpreterOpts struct {
	builtins *parser.Builtins
	stdout   io.Writer
	reporter zserrors.ErrReporter
	renderer graphics.Renderer
	keys     input.KeyState
}

var defaultInterpreterOpts = interpreterOpts{
	stdout:   os.Stdout,
	reporter: zserrors.NewErrReporter(os.Stderr),
}

type InterpreterOption func(*interpreterOpts)

// WithBuiltins hands the loaded symbol table to the interpreter.
func WithBuiltins(builtins *parser.Builtins) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.builtins = builtins
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

func WithErrorReporter(r zserrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func WithRenderer(r graphics.Renderer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.renderer = r
	}
}

func WithKeys(keys input.KeyState) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.keys = keys
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.builtins == nil {
		opts.builtins = parser.NewBuiltins()
	}
	if opts.renderer == nil {
		opts.renderer = graphics.NewRecorder()
	}
	if opts.keys == nil {
		opts.keys = input.NewKeys()
	}

	return &opts
}
