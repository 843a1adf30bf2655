// internal/ui/font.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Размеры шрифтов
const (
	RegularFontSize = 18
	TitleFontSize   = 40
)

// Fonts holds the faces the screens draw with.
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// LoadFonts parses the bundled Go Regular font (it covers Latin and Cyrillic)
// at the regular and title sizes.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	regular, err := newFace(tt, RegularFontSize)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, TitleFontSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %v pt face: %w", size, err)
	}
	return face, nil
}
