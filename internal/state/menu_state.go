// internal/state/menu_state.go
package state

import (
	"go-gamestate/internal/config"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const MenuID ID = "menu"

// Убеждаемся, что MenuState соответствует интерфейсу State
var _ State = (*MenuState)(nil)

// MenuState — главное меню
type MenuState struct {
	Base
	env    *Env
	start  *ui.Button
	quit   *ui.Button
	onQuit func()
}

// NewMenuState creates the menu. onQuit is called when the player chooses Quit.
func NewMenuState(env *Env, onQuit func()) *MenuState {
	x := env.Width/2 - config.ButtonWidth/2
	y := env.Height / 2
	return &MenuState{
		env:    env,
		start:  ui.NewButton(x, y, config.ButtonWidth, config.ButtonHeight, env.Text.T(locale.MenuStart), env.Fonts.Regular),
		quit:   ui.NewButton(x, y+config.ButtonHeight+config.ButtonSpacing, config.ButtonWidth, config.ButtonHeight, env.Text.T(locale.MenuQuit), env.Fonts.Regular),
		onQuit: onQuit,
	}
}

func (m *MenuState) ID() ID {
	return MenuID
}

func (m *MenuState) Enter() {
	m.cancelButtons()
}

func (m *MenuState) Pause() {
	// Кнопка могла остаться нажатой, если переход случился до отпускания
	m.cancelButtons()
}

func (m *MenuState) Input(key rune) {
	switch key {
	case 's', 'S', ' ', KeyEnter:
		m.RequestEnter(PlayID)
	case 'q', 'Q':
		m.quitGame()
	}
}

func (m *MenuState) Click(x, y float64) {
	m.start.Press(x, y)
	m.quit.Press(x, y)
}

func (m *MenuState) Clicked(x, y float64) {
	if m.start.Release(x, y) {
		m.RequestEnter(PlayID)
	}
	if m.quit.Release(x, y) {
		m.quitGame()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, m.env.Text.T(locale.MenuTitle), m.env.Fonts.Title, m.env.Width/2, m.env.Height/3, config.TextLightColor)
	m.start.Draw(screen)
	m.quit.Draw(screen)
	ui.DrawCentered(screen, m.env.Text.T(locale.MenuHint), m.env.Fonts.Regular, m.env.Width/2, m.env.Height-40, config.TextLightColor)
}

func (m *MenuState) quitGame() {
	if m.onQuit != nil {
		m.onQuit()
	}
}

func (m *MenuState) cancelButtons() {
	m.start.Cancel()
	m.quit.Cancel()
}
