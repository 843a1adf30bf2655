// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// ID — идентификатор зарегистрированного состояния.
// Используется и как ключ реестра, и как цель перехода.
type ID string

// Action — запрошенный состоянием переход.
type Action int

const (
	ActionNone Action = iota
	ActionEnter
	ActionReplace
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionEnter:
		return "enter"
	case ActionReplace:
		return "replace"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Intent is a pending transition request. Target is empty unless Action is
// ActionEnter or ActionReplace.
type Intent struct {
	Action Action
	Target ID
}

// State — интерфейс для всех состояний
type State interface {
	ID() ID

	Enter()
	Resume()
	Leave()
	Pause()

	Input(key rune)
	Click(x, y float64)
	Clicked(x, y float64)

	Draw(screen *ebiten.Image)

	// ResetTransition clears the pending intent. It never touches other fields.
	ResetTransition()
	Intent() Intent
}

// Updater is implemented by states that advance with time between frames.
type Updater interface {
	Update(deltaTime float64)
}

// Base implements every State hook except ID and Draw as a no-op and carries
// the intent. Concrete states embed it and request transitions through
// RequestTransition and its helpers.
type Base struct {
	action Action
	target ID
}

func (b *Base) Enter()  {}
func (b *Base) Resume() {}
func (b *Base) Leave()  {}
func (b *Base) Pause()  {}

func (b *Base) Input(key rune)       {}
func (b *Base) Click(x, y float64)   {}
func (b *Base) Clicked(x, y float64) {}

func (b *Base) ResetTransition() {
	b.action = ActionNone
	b.target = ""
}

// Intent returns the pending request. The stored target is reported only for
// actions that need one, so a stale target left next to Exit or None never
// reaches the manager.
func (b *Base) Intent() Intent {
	switch b.action {
	case ActionEnter, ActionReplace:
		return Intent{Action: b.action, Target: b.target}
	default:
		return Intent{Action: b.action}
	}
}

// RequestTransition sets the intent as is. Pairing Enter/Replace with a
// target and Exit/None without one is up to the caller.
func (b *Base) RequestTransition(action Action, target ID) {
	b.action = action
	b.target = target
}

// RequestEnter pushes target above the current state on the next frame.
func (b *Base) RequestEnter(target ID) {
	b.RequestTransition(ActionEnter, target)
}

// RequestReplace swaps the current state for target on the next frame.
func (b *Base) RequestReplace(target ID) {
	b.RequestTransition(ActionReplace, target)
}

// RequestExit pops the current state on the next frame.
func (b *Base) RequestExit() {
	b.RequestTransition(ActionExit, "")
}
