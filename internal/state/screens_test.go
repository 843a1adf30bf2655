package state

import (
	"testing"

	"go-gamestate/internal/config"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"
	"go-gamestate/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screens struct {
	env      *Env
	scores   *Scoreboard
	menu     *MenuState
	play     *PlayState
	pause    *PauseState
	gameOver *GameOverState
	quits    int
}

func newScreens(t *testing.T) *screens {
	t.Helper()
	fonts, err := ui.LoadFonts()
	require.NoError(t, err)
	text, err := locale.New("en")
	require.NoError(t, err)

	s := &screens{
		env:    &Env{Fonts: fonts, Text: text, Width: 960, Height: 640},
		scores: &Scoreboard{},
	}
	s.menu = NewMenuState(s.env, func() { s.quits++ })
	s.play = NewPlayState(s.env, utils.NewPRNGService(42), s.scores, 10)
	s.pause = NewPauseState(s.env, s.play)
	s.gameOver = NewGameOverState(s.env, s.scores)
	return s
}

func (s *screens) manager(t *testing.T, first State) *Manager {
	t.Helper()
	all := []State{first}
	for _, st := range []State{s.menu, s.play, s.pause, s.gameOver} {
		if st != first {
			all = append(all, st)
		}
	}
	m, err := NewManager(all)
	require.NoError(t, err)
	return m
}

func TestMenuStartKeys(t *testing.T) {
	for _, key := range []rune{'s', 'S', ' ', KeyEnter} {
		s := newScreens(t)
		s.menu.Input(key)
		assert.Equal(t, Intent{Action: ActionEnter, Target: PlayID}, s.menu.Intent(), "key %q", key)
	}
}

func TestMenuQuit(t *testing.T) {
	s := newScreens(t)
	s.menu.Input('q')
	assert.Equal(t, 1, s.quits)
	assert.Equal(t, Intent{Action: ActionNone}, s.menu.Intent())

	x, y := s.menu.quit.X+1, s.menu.quit.Y+1
	s.menu.Click(x, y)
	s.menu.Clicked(x, y)
	assert.Equal(t, 2, s.quits)
}

func TestMenuStartButtonNeedsPressAndReleaseInside(t *testing.T) {
	s := newScreens(t)
	x, y := s.menu.start.X+5, s.menu.start.Y+5

	s.menu.Click(x, y)
	s.menu.Clicked(0, 0)
	assert.Equal(t, Intent{Action: ActionNone}, s.menu.Intent())

	s.menu.Clicked(x, y) // отпускание без нажатия
	assert.Equal(t, Intent{Action: ActionNone}, s.menu.Intent())

	s.menu.Click(x, y)
	s.menu.Clicked(x, y)
	assert.Equal(t, Intent{Action: ActionEnter, Target: PlayID}, s.menu.Intent())
}

func TestPlayRoundLifecycle(t *testing.T) {
	s := newScreens(t)
	p := s.play
	assert.Equal(t, 10.0, p.TimeLeft())
	assert.Zero(t, p.Score())

	p.Update(4)
	assert.InDelta(t, 6, p.TimeLeft(), 1e-9)

	tx, ty := p.Target()
	p.Click(tx, ty)
	p.Clicked(tx, ty)
	assert.Equal(t, config.TargetHitScore, p.Score())

	// Пауза и возобновление сохраняют раунд
	p.Pause()
	p.Resume()
	assert.Equal(t, config.TargetHitScore, p.Score())
	assert.InDelta(t, 6, p.TimeLeft(), 1e-9)
	assert.Equal(t, Intent{Action: ActionNone}, p.Intent())

	// Новый вход начинает новый раунд
	p.Enter()
	assert.Zero(t, p.Score())
	assert.Equal(t, 10.0, p.TimeLeft())
}

func TestPlayMissCannotGoBelowZero(t *testing.T) {
	s := newScreens(t)
	p := s.play
	tx, ty := p.Target()
	far := tx + config.TargetRadius*3

	p.Click(far, ty)
	p.Clicked(far, ty)
	assert.Zero(t, p.Score())
}

func TestPlayTimeoutRecordsScoreOnce(t *testing.T) {
	s := newScreens(t)
	p := s.play
	tx, ty := p.Target()
	p.Click(tx, ty)
	p.Clicked(tx, ty)

	p.Update(11)
	assert.Equal(t, Intent{Action: ActionReplace, Target: GameOverID}, p.Intent())
	assert.Equal(t, 1, s.scores.Rounds)
	assert.Equal(t, config.TargetHitScore, s.scores.Last)
	assert.Equal(t, config.TargetHitScore, s.scores.Best)

	p.Update(1)
	assert.Equal(t, 1, s.scores.Rounds)
}

func TestPlayPauseRequests(t *testing.T) {
	for _, key := range []rune{'p', 'P', KeyEscape} {
		s := newScreens(t)
		s.play.Input(key)
		assert.Equal(t, Intent{Action: ActionEnter, Target: PauseID}, s.play.Intent())
	}

	s := newScreens(t)
	b := s.play.pauseButton
	s.play.Click(float64(b.X), float64(b.Y))
	assert.Equal(t, Intent{Action: ActionEnter, Target: PauseID}, s.play.Intent())
}

func TestPauseIgnoresReleaseOfPressFromBelow(t *testing.T) {
	s := newScreens(t)
	s.pause.Enter()

	s.pause.Clicked(10, 10)
	assert.Equal(t, Intent{Action: ActionNone}, s.pause.Intent())

	s.pause.Click(10, 10)
	s.pause.Clicked(10, 10)
	assert.Equal(t, Intent{Action: ActionExit}, s.pause.Intent())
}

func TestScreensFlowFromMenu(t *testing.T) {
	s := newScreens(t)
	m := s.manager(t, s.menu)

	s.menu.Input('s')
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{PlayID, MenuID}, m.Stack())

	tx, ty := s.play.Target()
	m.Click(tx, ty)
	m.Clicked(tx, ty)
	m.Input(KeyEscape)
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{PauseID, PlayID, MenuID}, m.Stack())
	assert.True(t, s.play.pauseButton.IsPaused)

	m.Input('p')
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{PlayID, MenuID}, m.Stack())
	assert.Equal(t, config.TargetHitScore, s.play.Score(), "score survives the pause")

	m.Update(11)
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{GameOverID, MenuID}, m.Stack())

	m.Input('x')
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{MenuID}, m.Stack())
}

func TestQuitToMenuFromPause(t *testing.T) {
	tests := []struct {
		name  string
		first func(s *screens) State
		setup func(t *testing.T, m *Manager, s *screens)
	}{
		{
			name:  "started from menu",
			first: func(s *screens) State { return s.menu },
			setup: func(t *testing.T, m *Manager, s *screens) {
				s.menu.Input('s')
				require.NoError(t, m.transition())
			},
		},
		{
			name:  "started from play",
			first: func(s *screens) State { return s.play },
			setup: func(t *testing.T, m *Manager, s *screens) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreens(t)
			m := s.manager(t, tt.first(s))
			tt.setup(t, m, s)

			m.Input('p')
			require.NoError(t, m.transition())
			require.Equal(t, PauseID, m.CurrentID())

			m.Input('q')
			require.NoError(t, m.transition())
			// Play запросил переход в меню из своего Resume
			assert.Equal(t, PlayID, m.CurrentID())
			assert.Equal(t, Intent{Action: ActionReplace, Target: MenuID}, s.play.Intent())

			require.NoError(t, m.transition())
			assert.Equal(t, []ID{MenuID}, m.Stack())
		})
	}
}

func TestGameOverReturnsToMenuWithoutMenuBeneath(t *testing.T) {
	s := newScreens(t)
	m := s.manager(t, s.play)

	m.Update(11)
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{GameOverID}, m.Stack())

	m.Click(1, 1)
	m.Clicked(1, 1)
	require.NoError(t, m.transition())
	assert.Equal(t, []ID{MenuID}, m.Stack())
}
