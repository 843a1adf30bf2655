// internal/state/env.go
package state

import (
	"go-gamestate/internal/locale"
	"go-gamestate/internal/ui"
)

// Env carries what every screen draws with.
type Env struct {
	Fonts  *ui.Fonts
	Text   *locale.Catalog
	Width  float64
	Height float64
}

// Scoreboard keeps round results between screens.
type Scoreboard struct {
	Last   int
	Best   int
	Rounds int
}

// Record stores the score of a finished round.
func (s *Scoreboard) Record(score int) {
	s.Last = score
	s.Rounds++
	if score > s.Best {
		s.Best = score
	}
}
