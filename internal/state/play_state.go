// internal/state/play_state.go
package state

import (
	"fmt"
	"math"

	"go-gamestate/internal/config"
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"
	"go-gamestate/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const PlayID ID = "play"

// Скорость, с которой цель скользит к новой точке (доля пути в секунду)
const targetGlide = 1.5

var _ State = (*PlayState)(nil)
var _ Updater = (*PlayState)(nil)

// PlayState — раунд игры: за отведённое время нужно кликнуть по цели как можно больше раз.
// Очки и таймер переживают паузу: Enter начинает новый раунд, Resume продолжает текущий.
type PlayState struct {
	Base
	env          *Env
	rng          *utils.PRNGService
	scores       *Scoreboard
	pauseButton  *ui.PauseButton
	roundSeconds float64

	score        int
	timeLeft     float64
	targetX      float64
	targetY      float64
	destX        float64
	destY        float64
	aiming       bool // указатель нажат на цели
	quitOnResume bool
}

func NewPlayState(env *Env, rng *utils.PRNGService, scores *Scoreboard, roundSeconds float64) *PlayState {
	p := &PlayState{
		env:    env,
		rng:    rng,
		scores: scores,
		pauseButton: ui.NewPauseButton(
			float32(env.Width-config.PauseButtonOffsetX),
			config.PauseButtonY,
			config.PauseButtonSize,
			config.PauseColor,
			config.PlayColor,
		),
		roundSeconds: roundSeconds,
	}
	// Начальное состояние стека не получает Enter, поэтому раунд готовим здесь
	p.newRound()
	return p
}

func (p *PlayState) ID() ID {
	return PlayID
}

func (p *PlayState) Enter() {
	p.newRound()
}

func (p *PlayState) Pause() {
	p.aiming = false
	p.pauseButton.SetPaused(true)
}

func (p *PlayState) Resume() {
	p.pauseButton.SetPaused(false)
	if p.quitOnResume {
		p.quitOnResume = false
		p.RequestReplace(MenuID)
	}
}

// QuitOnResume makes the round end and return to the menu as soon as the
// state is resumed.
func (p *PlayState) QuitOnResume() {
	p.quitOnResume = true
}

func (p *PlayState) Update(deltaTime float64) {
	if p.Intent().Action != ActionNone {
		// Переход уже запрошен, ждём следующего кадра
		return
	}

	p.timeLeft -= deltaTime
	if p.timeLeft <= 0 {
		p.timeLeft = 0
		p.scores.Record(p.score)
		p.RequestReplace(GameOverID)
		return
	}

	t := utils.Clamp(targetGlide*deltaTime, 0, 1)
	p.targetX = utils.Lerp(p.targetX, p.destX, t)
	p.targetY = utils.Lerp(p.targetY, p.destY, t)
	if utils.Distance(p.targetX, p.targetY, p.destX, p.destY) < 1 {
		p.destX, p.destY = p.randomPoint()
	}
}

func (p *PlayState) Input(key rune) {
	switch key {
	case 'p', 'P', KeyEscape:
		p.RequestEnter(PauseID)
	case 'q', 'Q':
		p.RequestReplace(MenuID)
	}
}

func (p *PlayState) Click(x, y float64) {
	if p.pauseButton.IsClicked(x, y) {
		p.RequestEnter(PauseID)
		return
	}
	if p.onTarget(x, y) {
		p.aiming = true
		return
	}
	p.score = max(0, p.score+config.TargetMissScore)
}

func (p *PlayState) Clicked(x, y float64) {
	if p.aiming && p.onTarget(x, y) {
		p.score += config.TargetHitScore
		p.targetX, p.targetY = p.randomPoint()
		p.destX, p.destY = p.randomPoint()
	}
	p.aiming = false
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PlayBackground)

	radius := float32(config.TargetRadius)
	vector.DrawFilledCircle(screen, float32(p.targetX), float32(p.targetY), radius, config.TargetColor, true)
	vector.StrokeCircle(screen, float32(p.targetX), float32(p.targetY), radius, config.StrokeWidth, config.TextLightColor, true)

	fonts := p.env.Fonts
	text := p.env.Text
	ui.DrawLeft(screen, text.Tf(locale.PlayScore, map[string]any{"Score": p.score}), fonts.Regular, 20, 40, config.TextLightColor)
	ui.DrawLeft(screen, text.Tf(locale.PlayTimeLeft, map[string]any{"Seconds": fmt.Sprintf("%.1f", p.timeLeft)}), fonts.Regular, 20, 70, config.TextLightColor)
	ui.DrawCentered(screen, text.T(locale.PlayHint), fonts.Regular, p.env.Width/2, p.env.Height-30, config.TextLightColor)
	p.pauseButton.Draw(screen)
}

// Score returns the score of the current round.
func (p *PlayState) Score() int {
	return p.score
}

// TimeLeft returns the seconds left in the current round.
func (p *PlayState) TimeLeft() float64 {
	return p.timeLeft
}

// Target returns the centre of the target.
func (p *PlayState) Target() (x, y float64) {
	return p.targetX, p.targetY
}

func (p *PlayState) newRound() {
	p.score = 0
	p.timeLeft = p.roundSeconds
	p.aiming = false
	p.quitOnResume = false
	p.pauseButton.SetPaused(false)
	p.targetX, p.targetY = p.randomPoint()
	p.destX, p.destY = p.randomPoint()
}

func (p *PlayState) onTarget(x, y float64) bool {
	return utils.Distance(x, y, p.targetX, p.targetY) <= config.TargetRadius
}

func (p *PlayState) randomPoint() (float64, float64) {
	margin := float64(config.TargetMargin)
	x := p.rng.Range(margin, p.env.Width-margin)
	y := p.rng.Range(margin, p.env.Height-margin)
	return math.Round(x), math.Round(y)
}
