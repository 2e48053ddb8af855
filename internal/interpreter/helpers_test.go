package interpreter_test

import (
	"strings"
	"testing"

	"github.com/leonardinius/zsharp/internal/graphics"
	"github.com/leonardinius/zsharp/internal/input"
	"github.com/leonardinius/zsharp/internal/interpreter"
	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/scanner"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	warnings []error
	errors   []error
	logs     []string
}

func (r *recordingReporter) ReportWarning(err error) { r.warnings = append(r.warnings, err) }
func (r *recordingReporter) ReportError(err error)   { r.errors = append(r.errors, err) }
func (r *recordingReporter) Log(msg string)          { r.logs = append(r.logs, msg) }

type fixture struct {
	interpreter interpreter.Interpreter
	stdout      *strings.Builder
	reporter    *recordingReporter
	renderer    *graphics.Recorder
	keys        *input.Keys
}

func newFixture(t *testing.T, builtins string) *fixture {
	t.Helper()

	b, err := parser.NewParser(scanner.NewScanner(builtins).Scan()).Parse()
	require.NoError(t, err)

	f := &fixture{
		stdout:   &strings.Builder{},
		reporter: &recordingReporter{},
		renderer: graphics.NewRecorder(),
		keys:     input.NewKeys(),
	}
	f.interpreter = interpreter.NewInterpreter(
		interpreter.WithBuiltins(b),
		interpreter.WithStdout(f.stdout),
		interpreter.WithErrorReporter(f.reporter),
		interpreter.WithRenderer(f.renderer),
		interpreter.WithKeys(f.keys),
	)
	return f
}
