// cmd/game/screens.go
package main

import (
	"go-gamestate/internal/config"
	"go-gamestate/internal/state"
	"go-gamestate/internal/utils"
)

// buildStates creates every screen once. The first one is the start screen.
func buildStates(env *state.Env, settings config.Settings, onQuit func()) []state.State {
	scores := &state.Scoreboard{}
	rng := utils.NewPRNGService(settings.Game.Seed)

	menu := state.NewMenuState(env, onQuit)
	play := state.NewPlayState(env, rng, scores, settings.Game.RoundSeconds)
	pause := state.NewPauseState(env, play)
	gameOver := state.NewGameOverState(env, scores)

	if settings.Game.Start == config.StartPlay {
		return []state.State{play, menu, pause, gameOver}
	}
	return []state.State{menu, play, pause, gameOver}
}
