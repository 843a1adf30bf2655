// cmd/game/game.go
package main

import (
	"time"

	"go-gamestate/internal/config"
	"go-gamestate/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/atomic"
)

// Клавиши без символа, которые состояния получают как руны
var specialKeys = map[ebiten.Key]rune{
	ebiten.KeyEscape:      state.KeyEscape,
	ebiten.KeyEnter:       state.KeyEnter,
	ebiten.KeyNumpadEnter: state.KeyEnter,
	ebiten.KeyBackspace:   state.KeyBackspace,
}

// AppGame adapts the state manager to ebiten.Game.
type AppGame struct {
	manager        *state.Manager
	quit           *atomic.Bool
	width, height  int
	lastUpdateTime time.Time
	err            error

	chars []rune
	keys  []ebiten.Key
}

func NewAppGame(manager *state.Manager, quit *atomic.Bool, width, height int) *AppGame {
	return &AppGame{
		manager:        manager,
		quit:           quit,
		width:          width,
		height:         height,
		lastUpdateTime: time.Now(),
	}
}

func (a *AppGame) Update() error {
	// Ошибка перехода из Draw останавливает игровой цикл
	if a.err != nil {
		return a.err
	}
	if a.quit.Load() {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.forwardInput()
	a.manager.Update(deltaTime)
	return nil
}

func (a *AppGame) forwardInput() {
	a.chars = ebiten.AppendInputChars(a.chars[:0])
	for _, r := range a.chars {
		a.manager.Input(r)
	}
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, key := range a.keys {
		if r, ok := specialKeys[key]; ok {
			a.manager.Input(r)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.manager.Click(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.manager.Clicked(float64(x), float64(y))
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if a.err != nil {
		return
	}
	if err := a.manager.DriveFrame(screen); err != nil {
		a.err = err
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
