// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	WindowTitle  = "Game States"
	TPS          = 60
	MaxDeltaTime = 0.06

	RoundSeconds = 30.0

	ButtonWidth   = 240
	ButtonHeight  = 56
	ButtonSpacing = 24

	PauseButtonOffsetX = 40
	PauseButtonY       = 40
	PauseButtonSize    = 14.0

	TargetRadius    = 28.0
	TargetMargin    = 80
	TargetHitScore  = 10
	TargetMissScore = -2
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	PlayBackground     = color.RGBA{30, 40, 55, 255}
	GameOverBackground = color.RGBA{45, 15, 20, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonPressedColor = color.RGBA{40, 90, 140, 255}
	ButtonStrokeColor  = color.RGBA{240, 240, 240, 255}
	PauseColor         = color.RGBA{220, 60, 60, 220}
	PlayColor          = color.RGBA{50, 205, 50, 255}
	TargetColor        = color.RGBA{255, 215, 0, 255}
	StrokeWidth        = float32(2.0)
)
