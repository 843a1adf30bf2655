// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws str horizontally centred on cx with its baseline at y.
func DrawCentered(screen *ebiten.Image, str string, face font.Face, cx, y float64, clr color.Color) {
	bounds := text.BoundString(face, str)
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	text.Draw(screen, str, face, x, int(y), clr)
}

// DrawLeft draws str starting at x with its baseline at y.
func DrawLeft(screen *ebiten.Image, str string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, str, face, int(x), int(y), clr)
}
