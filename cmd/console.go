package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonardinius/zsharp/internal/config"
	"github.com/leonardinius/zsharp/internal/interpreter"
	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/value"
)

var (
	errUnterminatedString = errors.New("unterminated string.")
	errUnknownCommand     = errors.New("unknown command.")
	errExpectedBinding    = errors.New("expect '$name' before '='.")
	errExpectedExpression = errors.New("expect expression.")
)

// console evaluates one line at a time:
//
//	ZS.Math.Lerp 0 10 0.5      call a native operation
//	$v = ZS.System.Vec2 1 2    bind a result
//	$v.x                       read a sub-component
//	$v.x += 3                  edit a sub-component, rebinding $v
//	:funcs :vars :ops :config  listings
//	:init                      open the configured window
type console struct {
	interpreter interpreter.Interpreter
	session     *interpreter.Environment
	config      config.Config
	out         io.Writer
}

func newConsole(in interpreter.Interpreter, cfg config.Config, out io.Writer) *console {
	return &console{
		interpreter: in,
		session:     in.Globals().Nest(),
		config:      cfg,
		out:         out,
	}
}

func (c *console) exec(ctx context.Context, line string) error {
	words, err := splitWords(line)
	if err != nil || len(words) == 0 {
		return err
	}

	if strings.HasPrefix(words[0], ":") {
		return c.command(ctx, words[0])
	}

	if strings.HasPrefix(words[0], "$") {
		name, field, isField := strings.Cut(words[0][1:], ".")
		switch {
		case isField && len(words) == 1:
			return c.show(c.getField(name, field))
		case isField && len(words) == 3:
			return c.editField(name, field, words[1], words[2])
		case len(words) >= 2 && words[1] == "=":
			return c.bind(ctx, name, words[2:])
		}
	}

	if len(words) > 1 && words[1] == "=" {
		return errExpectedBinding
	}

	return c.show(c.eval(ctx, words))
}

func (c *console) command(ctx context.Context, cmd string) error {
	switch cmd {
	case ":funcs":
		for _, name := range c.interpreter.Builtins().FunctionNames() {
			fn, _ := c.interpreter.Builtins().Function(name)
			fmt.Fprintf(c.out, "%s(%s)\n", name, strings.Join(fn.Parameters(), ", "))
		}
	case ":vars":
		for _, name := range c.interpreter.Builtins().VariableNames() {
			v, _ := c.interpreter.Builtins().Variable(name)
			fmt.Fprintf(c.out, "%s %s = %s\n", v.Type(), name, v)
		}
	case ":ops":
		for _, name := range c.interpreter.Names() {
			fmt.Fprintln(c.out, name)
		}
	case ":config":
		data, err := c.config.Encode()
		if err != nil {
			return err
		}
		_, err = c.out.Write(data)
		return err
	case ":init":
		window := c.config.Window
		_, err := c.interpreter.Call(ctx, "ZS.Graphics.Init",
			value.ValueString(window.Title), value.ValueInt(window.Width), value.ValueInt(window.Height))
		return err
	default:
		return fmt.Errorf("%w %s", errUnknownCommand, cmd)
	}
	return nil
}

func (c *console) bind(ctx context.Context, name string, words []string) error {
	v, err := c.eval(ctx, words)
	if err != nil {
		return err
	}
	if err := c.session.Assign(name, v); err == nil {
		return nil
	}
	return c.session.Define(name, v)
}

func (c *console) getField(name, field string) (value.Value, error) {
	v, err := c.session.Get(name)
	if err != nil {
		return nil, err
	}
	return c.interpreter.GetSubComponent(v, field), nil
}

func (c *console) editField(name, field, op, operand string) error {
	v, err := c.session.Get(name)
	if err != nil {
		return err
	}
	other, err := c.resolve(operand)
	if err != nil {
		return err
	}

	edited := c.interpreter.EditSubComponent(v, op, other, field)
	if value.IsNothing(edited) {
		return nil
	}
	return c.session.Assign(name, edited)
}

// eval resolves a single operand, or calls words[0] with the rest as
// arguments.
func (c *console) eval(ctx context.Context, words []string) (value.Value, error) {
	if len(words) == 0 {
		return nil, errExpectedExpression
	}

	if len(words) == 1 && !strings.HasPrefix(words[0], "ZS.") {
		return c.resolve(words[0])
	}

	args := make([]value.Value, 0, len(words)-1)
	for _, word := range words[1:] {
		v, err := c.resolve(word)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return c.interpreter.Call(ctx, words[0], args...)
}

// resolve turns a word into a value: a literal, a $binding, a
// $binding.field or a builtin variable.
func (c *console) resolve(word string) (value.Value, error) {
	if v, ok := parser.ParseLiteral(word); ok {
		return v, nil
	}

	name := strings.TrimPrefix(word, "$")
	if name, field, ok := strings.Cut(name, "."); ok && strings.HasPrefix(word, "$") {
		return c.getField(name, field)
	}
	return c.session.Get(name)
}

func (c *console) show(v value.Value, err error) error {
	if err != nil {
		return err
	}
	if _, void := v.(value.ValueVoid); !void {
		fmt.Fprintln(c.out, v)
	}
	return nil
}

// splitWords splits on whitespace, keeping double-quoted strings whole
// (quotes included).
func splitWords(line string) ([]string, error) {
	var words []string
	var word strings.Builder
	inString, escaped := false, false

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, r := range line {
		switch {
		case inString:
			word.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
		case r == '"':
			inString = true
			word.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			flush()
		default:
			word.WriteRune(r)
		}
	}

	if inString {
		return nil, errUnterminatedString
	}
	flush()
	return words, nil
}
