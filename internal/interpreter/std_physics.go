package interpreter

import (
	"context"

	"github.com/leonardinius/zsharp/internal/value"
)

// AxisAlignedCollision tests two sprites for overlap. Positions are
// centers and scales are full sizes. The x-axis right-hand term uses
// the full width of a (a.x - a.w), not half of it; scripts depend on this.
func AxisAlignedCollision(a, b value.Sprite) bool {
	collisionX := a.Position.X+a.Scale.X/2 >= b.Position.X-b.Scale.X/2 &&
		b.Position.X+b.Scale.X/2 >= a.Position.X-a.Scale.X
	collisionY := a.Position.Y+a.Scale.Y/2 >= b.Position.Y-b.Scale.Y/2 &&
		b.Position.Y+b.Scale.Y/2 >= a.Position.Y-a.Scale.Y/2

	return collisionX && collisionY
}

// SymmetricAxisAlignedCollision is the half-extent overlap test on both
// axes. It is the candidate replacement for AxisAlignedCollision and is
// not bound to a ZS name.
func SymmetricAxisAlignedCollision(a, b value.Sprite) bool {
	collisionX := a.Position.X+a.Scale.X/2 >= b.Position.X-b.Scale.X/2 &&
		b.Position.X+b.Scale.X/2 >= a.Position.X-a.Scale.X/2
	collisionY := a.Position.Y+a.Scale.Y/2 >= b.Position.Y-b.Scale.Y/2 &&
		b.Position.Y+b.Scale.Y/2 >= a.Position.Y-a.Scale.Y/2

	return collisionX && collisionY
}

func StdFnAxisAlignedCollision(ctx context.Context, interpeter *interpreter, a, b value.Value) (value.Value, error) {
	sa, err := asSprite(0, a)
	if err != nil {
		return value.NullValue, err
	}
	sb, err := asSprite(1, b)
	if err != nil {
		return value.NullValue, err
	}
	return value.ValueBool(AxisAlignedCollision(sa, sb)), nil
}
