package ui

import (
	"testing"

	"go-gamestate/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	require.NoError(t, err)
	require.NotNil(t, fonts.Regular)
	require.NotNil(t, fonts.Title)
	assert.Greater(t, fonts.Title.Metrics().Height, fonts.Regular.Metrics().Height)
}

func TestButtonClickNeedsPressAndReleaseInside(t *testing.T) {
	b := NewButton(100, 100, 200, 50, "Start", nil)

	assert.True(t, b.Contains(100, 100))
	assert.False(t, b.Contains(300, 100), "right edge is outside")

	b.Press(150, 120)
	assert.True(t, b.Armed())
	assert.True(t, b.Release(160, 130))
	assert.False(t, b.Armed())

	b.Press(150, 120)
	assert.False(t, b.Release(10, 10), "released outside")

	b.Press(10, 10)
	assert.False(t, b.Armed())
	assert.False(t, b.Release(150, 120), "pressed outside")

	b.Press(150, 120)
	b.Cancel()
	assert.False(t, b.Release(150, 120))
}

func TestPauseButton(t *testing.T) {
	b := NewPauseButton(900, 40, 14, config.PauseColor, config.PlayColor)

	assert.True(t, b.IsClicked(900, 40))
	assert.True(t, b.IsClicked(910, 50))
	assert.False(t, b.IsClicked(930, 40))

	assert.False(t, b.IsPaused)
	b.SetPaused(true)
	assert.True(t, b.IsPaused)
	assert.False(t, b.LastClickTime.IsZero())

	last := b.LastClickTime
	b.SetPaused(true)
	assert.Equal(t, last, b.LastClickTime, "no animation when state does not change")
}
