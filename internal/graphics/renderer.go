package graphics

import (
	"github.com/leonardinius/zsharp/internal/value"
)

// Renderer is the windowing and drawing backend behind ZS.Graphics.*.
type Renderer interface {
	Init(title string, width, height int) error
	LoadSprite(s value.Sprite) error
	DrawSprite(s value.Sprite) error
	LoadText(t value.Text) error
	DrawText(t value.Text) error
}
