// internal/ui/button.go
package ui

import (
	"go-gamestate/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
// Нажатие засчитывается, когда указатель отпущен над той же кнопкой,
// над которой был нажат.
type Button struct {
	X, Y          float64
	Width, Height float64
	Text          string
	BgColor       color.Color
	PressedColor  color.Color
	TextColor     color.Color
	font          font.Face
	armed         bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float64, label string, face font.Face) *Button {
	return &Button{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Text:         label,
		BgColor:      config.ButtonColor,
		PressedColor: config.ButtonPressedColor,
		TextColor:    config.TextLightColor,
		font:         face,
	}
}

// Contains проверяет, находится ли точка внутри кнопки.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Press arms the button if the pointer went down inside it.
func (b *Button) Press(x, y float64) {
	b.armed = b.Contains(x, y)
}

// Release disarms the button and reports whether this completes a click.
func (b *Button) Release(x, y float64) bool {
	clicked := b.armed && b.Contains(x, y)
	b.armed = false
	return clicked
}

// Cancel disarms the button without clicking it.
func (b *Button) Cancel() {
	b.armed = false
}

// Armed reports whether the pointer went down on the button and is not yet released.
func (b *Button) Armed() bool {
	return b.armed
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.armed {
		bg = b.PressedColor
	}
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.ButtonStrokeColor, true)

	bounds := text.BoundString(b.font, b.Text)
	textX := int(b.X+b.Width/2) - bounds.Dx()/2 - bounds.Min.X
	textY := int(b.Y+b.Height/2) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.font, textX, textY, b.TextColor)
}
