// internal/state/gameover_state.go
package state

import (
	"go-gamestate/internal/config"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const GameOverID ID = "gameover"

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог раунда. Любая клавиша или клик возвращает в меню.
type GameOverState struct {
	Base
	env     *Env
	scores  *Scoreboard
	pressed bool
}

func NewGameOverState(env *Env, scores *Scoreboard) *GameOverState {
	return &GameOverState{env: env, scores: scores}
}

func (g *GameOverState) ID() ID {
	return GameOverID
}

func (g *GameOverState) Input(key rune) {
	g.RequestReplace(MenuID)
}

func (g *GameOverState) Enter() {
	g.pressed = false
}

func (g *GameOverState) Click(x, y float64) {
	g.pressed = true
}

func (g *GameOverState) Clicked(x, y float64) {
	if g.pressed {
		g.RequestReplace(MenuID)
	}
	g.pressed = false
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.GameOverBackground)

	cx := g.env.Width / 2
	text := g.env.Text
	ui.DrawCentered(screen, text.T(locale.GameOverTitle), g.env.Fonts.Title, cx, g.env.Height/3, config.TextLightColor)
	ui.DrawCentered(screen, text.Tf(locale.GameOverScore, map[string]any{"Score": g.scores.Last}), g.env.Fonts.Regular, cx, g.env.Height/2, config.TextLightColor)
	ui.DrawCentered(screen, text.Tf(locale.GameOverBest, map[string]any{"Best": g.scores.Best}), g.env.Fonts.Regular, cx, g.env.Height/2+30, config.TextLightColor)
	ui.DrawCentered(screen, text.T(locale.GameOverHint), g.env.Fonts.Regular, cx, g.env.Height-40, config.TextLightColor)
}
