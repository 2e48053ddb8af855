package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardinius/zsharp/internal/scanner"
	"github.com/leonardinius/zsharp/internal/token"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

// Parser loads builtin declarations into a symbol table.
type Parser interface {
	Parse() (*Builtins, error)
}

type parser struct {
	lines    []scanner.Line
	current  int
	builtins *Builtins
	errs     []error
	opts     *parserOpts
}

func NewParser(lines []scanner.Line, options ...ParserOption) Parser {
	return &parser{
		lines: lines,
		opts:  newParserOpts(options...),
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{lines: %#v, current: %d, errs: %#v}", p.lines, p.current, p.errs)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{lines: %d, errs: %d}", len(p.lines), len(p.errs))
}

// Parse implements Parser.
// A declaration that fails to load does not stop the pass, but any
// failure discards the whole table.
func (p *parser) Parse() (*Builtins, error) {
	p.builtins = NewBuiltins()
	p.errs = nil

	for p.current = 0; p.current < len(p.lines); p.current++ {
		p.declaration()
	}

	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	return p.builtins, nil
}

func (p *parser) declaration() {
	line := p.lines[p.current]
	first, ok := line.At(0)
	if !ok {
		return
	}

	switch {
	case first.Type == token.FUNC:
		p.function(line)
	case first.Type.IsPrimitiveType():
		p.variable(line, first.Type)
	}
}

// function loads `func Name(a, b) {` and its body. The opening brace may
// also stand alone on the following line.
func (p *parser) function(decl scanner.Line) {
	if len(decl.Tokens) < 2 {
		p.reportError(decl, "func", zserrors.ErrLoadExpectedFunctionName)
		return
	}

	signature := strings.Join(decl.Words(decl.Indent)[1:], " ")
	name, rest, ok := strings.Cut(signature, "(")
	name = strings.TrimSpace(name)
	if name == "" {
		p.reportError(decl, "func", zserrors.ErrLoadExpectedFunctionName)
		return
	}
	if !ok {
		p.reportError(decl, strings.Fields(name)[0], zserrors.ErrLoadExpectedLeftParen)
		return
	}

	args, tail, ok := strings.Cut(rest, ")")
	if !ok {
		p.reportError(decl, name, zserrors.ErrLoadExpectedRightParen)
		return
	}

	params, err := p.parameters(args)
	if err != nil {
		p.reportError(decl, name, err)
		return
	}

	start, ok := p.bodyStart(strings.TrimSpace(tail))
	if !ok {
		p.reportError(decl, name, zserrors.ErrLoadExpectedLeftBrace)
		return
	}

	fn := &Function{Name: name, Line: decl.Number, Body: [][]string{params}}

	depth := 1
	for idx := start; idx < len(p.lines); idx++ {
		line := p.lines[idx]
		depth += line.Count(token.LEFT_BRACE) - line.Count(token.RIGHT_BRACE)
		if depth <= 0 {
			p.current = idx
			p.builtins.defineFunction(fn)
			p.opts.reporter.Log("Load builtin function " + name + "...")
			return
		}
		fn.Body = append(fn.Body, line.Words(decl.Indent+1))
	}

	p.current = len(p.lines)
	p.reportError(scanner.Line{Number: decl.Number}, "", zserrors.ErrLoadExpectedRightBrace)
}

// bodyStart returns the index of the first body line.
func (p *parser) bodyStart(tail string) (int, bool) {
	switch tail {
	case "{":
		return p.current + 1, true
	case "":
		next := p.current + 1
		if next < len(p.lines) && len(p.lines[next].Tokens) == 1 && p.lines[next].Tokens[0].Type == token.LEFT_BRACE {
			return next + 1, true
		}
	}
	return 0, false
}

func (p *parser) parameters(args string) ([]string, error) {
	params := []string{}
	if strings.TrimSpace(args) == "" {
		return params, nil
	}

	seen := make(map[string]bool)
	for _, param := range strings.Split(args, ",") {
		param = strings.TrimSpace(param)
		if param == "" || strings.ContainsAny(param, " \t") {
			return nil, zserrors.ErrLoadExpectedParameterName
		}
		if seen[param] {
			return nil, zserrors.ErrLoadDuplicateParameter(param)
		}
		seen[param] = true
		params = append(params, param)
	}
	return params, nil
}

// variable loads `<type> name = <literal>`.
func (p *parser) variable(line scanner.Line, kind token.TokenType) {
	name, ok := line.At(1)
	if !ok || name.Type != token.WORD {
		p.reportError(line, line.Tokens[0].Lexeme, zserrors.ErrLoadExpectedVariableName)
		return
	}

	if eq, ok := line.At(2); !ok || eq.Type != token.EQUAL {
		p.reportError(line, name.Lexeme, zserrors.ErrLoadExpectedEqual)
		return
	}

	literal, ok := line.At(3)
	if !ok {
		p.reportError(line, "=", zserrors.ErrLoadExpectedLiteral)
		return
	}

	text := literal.Lexeme
	if kind == token.STRING {
		_, text, _ = strings.Cut(line.Raw, "=")
		text = strings.TrimSpace(text)
	}

	v, err := ParseTypedLiteral(kind, text)
	if err != nil {
		p.reportError(line, literal.Lexeme, err)
		return
	}

	p.builtins.defineVariable(name.Lexeme, v)
	p.opts.reporter.Log("Load builtin variable " + name.Lexeme + "...")
}

func (p *parser) reportError(line scanner.Line, where string, cause error) {
	p.errs = append(p.errs, zserrors.NewLoadError(line.Number, where, cause))
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
