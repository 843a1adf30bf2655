// internal/state/pause_state.go
package state

import (
	"go-gamestate/internal/config"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const PauseID ID = "pause"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PausedGame is the screen a PauseState is drawn over.
type PausedGame interface {
	Draw(screen *ebiten.Image)
	QuitOnResume()
}

// PauseState рисует затемнение поверх замороженной игры.
type PauseState struct {
	Base
	env     *Env
	game    PausedGame
	pressed bool // нажатие началось на этом экране
}

func NewPauseState(env *Env, game PausedGame) *PauseState {
	return &PauseState{
		env:  env,
		game: game,
	}
}

func (s *PauseState) ID() ID {
	return PauseID
}

func (s *PauseState) Input(key rune) {
	switch key {
	case 'p', 'P', KeyEscape:
		s.RequestExit()
	case 'q', 'Q':
		// Игра под паузой сама уйдёт в меню, когда её возобновят
		s.game.QuitOnResume()
		s.RequestExit()
	}
}

func (s *PauseState) Enter() {
	s.pressed = false
}

func (s *PauseState) Click(x, y float64) {
	s.pressed = true
}

// Clicked resumes the game, unless the press that completes here started on
// the screen below (for example on the pause button).
func (s *PauseState) Clicked(x, y float64) {
	if s.pressed {
		s.RequestExit()
	}
	s.pressed = false
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.game != nil {
		s.game.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(s.env.Width), float32(s.env.Height), config.OverlayColor, false)
	ui.DrawCentered(screen, s.env.Text.T(locale.PauseTitle), s.env.Fonts.Title, s.env.Width/2, s.env.Height/2, config.TextLightColor)
	ui.DrawCentered(screen, s.env.Text.T(locale.PauseHint), s.env.Fonts.Regular, s.env.Width/2, s.env.Height/2+40, config.TextLightColor)
}
