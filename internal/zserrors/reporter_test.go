package zserrors_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leonardinius/zsharp/internal/zserrors"
	"github.com/stretchr/testify/assert"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 5, 6, 9, 5, 7, 0, time.UTC)
}

func TestReporter(t *testing.T) {
	t.Parallel()

	out := strings.Builder{}
	r := zserrors.NewErrReporter(&out, zserrors.WithClock(fixedClock))

	r.ReportWarning(errors.New("careful"))
	r.ReportError(errors.New("boom"))
	r.Log("hidden")

	assert.Equal(t,
		"\x1B[33mWARNING: careful\033[0m\n"+
			"\x1B[34m[9:5:7] \x1B[33mZSharp: \x1B[31mERROR: boom\033[0m\n",
		out.String())
}

func TestReporterDebug(t *testing.T) {
	t.Parallel()

	out := strings.Builder{}
	r := zserrors.NewErrReporter(&out, zserrors.WithClock(fixedClock), zserrors.WithDebug(true))
	r.Log("Load builtin function Add...")

	assert.Equal(t, "\x1B[34m[9:5:7] \x1B[33mZSharp: \x1B[32mLoad builtin function Add...\033[0m\n", out.String())
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	err := zserrors.NewLoadError(3, "int", zserrors.ErrLoadExpectedVariableName)
	assert.EqualError(t, err, "[line 3] load error at 'int': expect variable name.")
	assert.ErrorIs(t, err, zserrors.ErrLoadExpectedVariableName)
	assert.ErrorIs(t, err, zserrors.ErrLoadError)

	var loadErr *zserrors.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, 3, loadErr.Line())

	err = zserrors.NewLoadError(7, "", zserrors.ErrLoadExpectedRightBrace)
	assert.EqualError(t, err, "[line 7] load error at end: expect '}' after function body.")
}

func TestRuntimeError(t *testing.T) {
	t.Parallel()

	err := zserrors.NewRuntimeError("ZS.Math.Sin", zserrors.ErrRuntimeCalleeArityError(1, 0))
	assert.EqualError(t, err, "Expected 1 arguments but got 0.\n[in 'ZS.Math.Sin']")

	err = zserrors.NewRuntimeError("ZS.Graphics.Draw", zserrors.ErrRuntimeArgumentError(0, zserrors.ErrRuntimeOperandMustBeSprite))
	assert.ErrorIs(t, err, zserrors.ErrRuntimeOperandMustBeSprite)
	assert.Contains(t, err.Error(), "argument 0: Operand must be a Sprite.")
}
