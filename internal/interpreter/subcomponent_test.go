package interpreter_test

import (
	"testing"

	"github.com/leonardinius/zsharp/internal/interpreter"
	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubComponent(t *testing.T) {
	t.Parallel()

	player := value.NewSprite("p.png", value.NewVec2(4, 5), value.NewVec2(2, 3), 10)
	label := value.NewText("Hi", "f.ttf", value.NewVec2(7, 8), 16, 0, 1, 2, 3)

	testcases := []struct {
		name     string
		in       value.Value
		field    string
		expected value.Value
	}{
		{"sprite position", player, "position", value.NewVec2(4, 5)},
		{"sprite position x", player, "position.x", value.ValueFloat(4)},
		{"sprite rotation", player, "rotation", value.ValueFloat(10)},
		{"vec2 y", value.NewVec2(1, 2), "y", value.ValueFloat(2)},
		{"text content", label, "content", value.ValueString("Hi")},
		{"text position y", label, "position.y", value.ValueFloat(8)},
	}

	f := newFixture(t, "")
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.interpreter.GetSubComponent(tc.in, tc.field))
		})
	}
	assert.Empty(t, f.reporter.warnings)
}

func TestGetSubComponentNull(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		in    value.Value
		field string
		err   error
	}{
		{"int", value.ValueInt(1), "x", zserrors.ErrRuntimeNotComposite},
		{"string", value.ValueString("s"), "length", zserrors.ErrRuntimeNotComposite},
		{"null", value.NullValue, "x", zserrors.ErrRuntimeNotComposite},
		{"nil", nil, "x", zserrors.ErrRuntimeNotComposite},
		{"unknown vec2 field", value.NewVec2(0, 0), "z", zserrors.ErrRuntimeUndefinedSubComponent},
	}

	f := newFixture(t, "")
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(f.reporter.warnings)
			assert.Equal(t, value.NullValue, f.interpreter.GetSubComponent(tc.in, tc.field))
			require.Len(t, f.reporter.warnings, before+1)
			assert.ErrorIs(t, f.reporter.warnings[before], tc.err)
		})
	}
}

func TestEditSubComponentValueSemantics(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")

	original := value.NewSprite("p.png", value.NewVec2(4, 5), value.NewVec2(2, 3), 10)
	edited := f.interpreter.EditSubComponent(original, "+=", value.NewVec2(1, 1), "position")

	assert.Equal(t, value.NewSprite("p.png", value.NewVec2(5, 6), value.NewVec2(2, 3), 10), edited)
	assert.Equal(t, value.NewSprite("p.png", value.NewVec2(4, 5), value.NewVec2(2, 3), 10), original)

	vec := value.NewVec2(1, 2)
	assert.Equal(t, value.NewVec2(9, 2), f.interpreter.EditSubComponent(vec, "=", value.ValueInt(9), "x"))
	assert.Equal(t, value.NewVec2(1, 2), vec)

	label := value.NewText("Hi", "f.ttf", value.NewVec2(0, 0), 16, 0, 1, 2, 3)
	assert.Equal(t,
		value.NewText("Hi!", "f.ttf", value.NewVec2(0, 0), 16, 0, 1, 2, 3),
		f.interpreter.EditSubComponent(label, "+=", value.ValueString("!"), "content"))
	assert.Equal(t, "Hi", label.Content)

	assert.Empty(t, f.reporter.warnings)
}

func TestEditSubComponentFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	vec := value.NewVec2(1, 2)

	assert.Equal(t, vec, f.interpreter.EditSubComponent(vec, "=", value.ValueInt(1), "w"))
	assert.Equal(t, vec, f.interpreter.EditSubComponent(vec, "%=", value.ValueInt(1), "x"))
	assert.Equal(t, value.NullValue, f.interpreter.EditSubComponent(value.ValueInt(1), "=", value.ValueInt(2), "x"))

	require.Len(t, f.reporter.warnings, 3)
	assert.ErrorIs(t, f.reporter.warnings[0], zserrors.ErrRuntimeUndefinedSubComponent)
	assert.ErrorIs(t, f.reporter.warnings[1], zserrors.ErrRuntimeUnsupportedOperator)
	assert.ErrorIs(t, f.reporter.warnings[2], zserrors.ErrRuntimeNotComposite)
	assert.EqualError(t, f.reporter.warnings[2], "Only Sprite, Vec2 and Text have sub-components. Got int.")
}

func TestEditSubComponentCompositeOperand(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	vec := value.NewVec2(1, 2)
	player := value.NewSprite("p.png", value.NewVec2(4, 5), value.NewVec2(2, 3), 10)

	assert.Equal(t, vec, f.interpreter.EditSubComponent(vec, "=", value.NewVec2(5, 5), "x"))
	assert.Equal(t, player, f.interpreter.EditSubComponent(player, "=", player, "rotation"))
	assert.Equal(t, player, f.interpreter.EditSubComponent(player, "=", player, "position"))

	require.Len(t, f.reporter.warnings, 3)
	for _, warning := range f.reporter.warnings {
		assert.ErrorIs(t, warning, zserrors.ErrRuntimeOperandMustBePrimitive)
	}
	assert.EqualError(t, f.reporter.warnings[0], "Operand must be a number, string or bool. Got Vec2.")
}

func TestSubComponentFunctions(t *testing.T) {
	t.Parallel()

	v, err := interpreter.SubComponent(value.NewVec2(3, 4), "x")
	require.NoError(t, err)
	assert.Equal(t, value.ValueFloat(3), v)

	edited, err := interpreter.EditSubComponent(value.NewVec2(3, 4), "*=", value.ValueInt(2), "y")
	require.NoError(t, err)
	assert.Equal(t, value.NewVec2(3, 8), edited)

	_, err = interpreter.EditSubComponent(value.VoidValue, "=", value.ValueInt(2), "y")
	assert.EqualError(t, err, "Only Sprite, Vec2 and Text have sub-components. Got void.")
}
