package interpreter_test

import (
	"testing"

	"github.com/leonardinius/zsharp/internal/interpreter"
	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/scanner"
	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	t.Parallel()

	b, err := parser.NewParser(scanner.NewScanner("int lives = 3\nstring name = \"zs\"").Scan()).Parse()
	require.NoError(t, err)

	globals := interpreter.NewGlobals(b)

	v, err := globals.Get("lives")
	require.NoError(t, err)
	assert.Equal(t, value.ValueInt(3), v)

	assert.ErrorIs(t, globals.Define("x", value.ValueInt(1)), zserrors.ErrRuntimeReadOnlyVariable)
	assert.ErrorIs(t, globals.Assign("lives", value.ValueInt(1)), zserrors.ErrRuntimeReadOnlyVariable)

	session := globals.Nest()
	assert.Same(t, globals, session.Enclosing())
	require.NoError(t, session.Define("v", value.NewVec2(1, 2)))
	require.NoError(t, session.Assign("v", value.NewVec2(3, 4)))

	v, err = session.Get("v")
	require.NoError(t, err)
	assert.Equal(t, value.NewVec2(3, 4), v)

	v, err = session.Get("name")
	require.NoError(t, err)
	assert.Equal(t, value.ValueString("zs"), v)

	_, err = session.Get("missing")
	assert.EqualError(t, err, "Undefined variable 'missing'.")
	assert.ErrorIs(t, session.Assign("missing", value.NullValue), zserrors.ErrRuntimeUndefinedVariable)

	assert.Equal(t, "{v=Vec2(3, 4),} -> {", session.String()[:len("{v=Vec2(3, 4),} -> {")])
}
