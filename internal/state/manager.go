// internal/state/manager.go
package state

import (
	"fmt"
	"log/slog"

	"go-gamestate/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager — стековая машина состояний.
// Верх стека — текущее состояние. Стек никогда не пуст.
type Manager struct {
	states     map[ID]State
	stack      []State // последний элемент — вершина
	logger     *slog.Logger
	dispatcher *event.Dispatcher
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for transition records.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDispatcher makes the manager publish an event after every transition.
func WithDispatcher(dispatcher *event.Dispatcher) Option {
	return func(m *Manager) {
		m.dispatcher = dispatcher
	}
}

// NewManager registers states and puts the first one on the stack.
// The initial state does not receive Enter.
func NewManager(states []State, opts ...Option) (*Manager, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	m := &Manager{
		states: make(map[ID]State, len(states)),
		logger: slog.New(slog.DiscardHandler),
	}
	for i, s := range states {
		if s == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilState, i)
		}
		id := s.ID()
		if _, exists := m.states[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, id)
		}
		m.states[id] = s
	}
	for _, opt := range opts {
		opt(m)
	}

	m.stack = append(m.stack, states[0])
	return m, nil
}

// DriveFrame performs the pending transition of the current state, if any,
// and draws the new current state. A returned error is fatal: nothing was
// drawn and the game loop must stop.
func (m *Manager) DriveFrame(screen *ebiten.Image) error {
	if err := m.transition(); err != nil {
		return err
	}
	m.current().Draw(screen)
	return nil
}

// Update forwards the elapsed time to the current state if it is an Updater.
func (m *Manager) Update(deltaTime float64) {
	if u, ok := m.current().(Updater); ok {
		u.Update(deltaTime)
	}
}

// Input forwards a key press to the current state.
func (m *Manager) Input(key rune) {
	m.current().Input(key)
}

// Click forwards a pointer press to the current state.
func (m *Manager) Click(x, y float64) {
	m.current().Click(x, y)
}

// Clicked forwards a pointer release to the current state.
func (m *Manager) Clicked(x, y float64) {
	m.current().Clicked(x, y)
}

// Current returns the state on top of the stack.
func (m *Manager) Current() State {
	return m.current()
}

// CurrentID returns the id of the state on top of the stack.
func (m *Manager) CurrentID() ID {
	return m.current().ID()
}

// Stack returns the ids on the stack, top first.
func (m *Manager) Stack() []ID {
	ids := make([]ID, 0, len(m.stack))
	for i := len(m.stack) - 1; i >= 0; i-- {
		ids = append(ids, m.stack[i].ID())
	}
	return ids
}

// Depth returns the number of states on the stack.
func (m *Manager) Depth() int {
	return len(m.stack)
}

func (m *Manager) transition() error {
	current := m.current()
	intent := current.Intent()
	// Сбрасываем до Enter/Resume нового состояния, чтобы не затереть его запрос
	current.ResetTransition()

	switch intent.Action {
	case ActionNone:
		return nil

	case ActionEnter:
		next, err := m.resolve(intent, current)
		if err != nil {
			return err
		}
		if m.indexOf(next.ID()) >= 0 {
			return m.refuse(intent, current, ErrAlreadyOnStack)
		}
		// Текущее состояние останется под новым
		current.Pause()
		m.push(next)
		next.Enter()

	case ActionReplace:
		next, err := m.resolve(intent, current)
		if err != nil {
			return err
		}
		current.Leave()
		m.pop()
		if i := m.indexOf(next.ID()); i >= 0 {
			// Цель уже лежит ниже: снимаем всё, что над ней
			for len(m.stack)-1 > i {
				m.current().Leave()
				m.pop()
			}
		} else {
			m.push(next)
		}
		next.Enter()

	case ActionExit:
		if len(m.stack) < 2 {
			return m.refuse(intent, current, ErrStackUnderflow)
		}
		current.Leave()
		m.pop()
		// Состояние под снятым не покидалось, поэтому Resume, а не Enter
		m.current().Resume()

	default:
		m.logger.Warn("ignoring unknown transition action",
			slog.Int("action", int(intent.Action)),
			slog.String("from", string(current.ID())),
		)
		return nil
	}

	m.record(intent.Action, current.ID())
	return nil
}

func (m *Manager) resolve(intent Intent, current State) (State, error) {
	next, ok := m.states[intent.Target]
	if !ok {
		return nil, m.refuse(intent, current, ErrUnknownState)
	}
	return next, nil
}

func (m *Manager) refuse(intent Intent, current State, err error) error {
	transitionErr := &TransitionError{
		Action: intent.Action,
		From:   current.ID(),
		Target: intent.Target,
		Err:    err,
	}
	m.logger.Error("transition refused",
		slog.String("action", intent.Action.String()),
		slog.String("from", string(current.ID())),
		slog.String("target", string(intent.Target)),
		slog.Any("error", err),
	)
	return transitionErr
}

func (m *Manager) record(action Action, from ID) {
	to := m.current().ID()
	m.logger.Debug("transition",
		slog.String("action", action.String()),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Int("depth", len(m.stack)),
	)
	if m.dispatcher == nil {
		return
	}

	var eventType event.EventType
	switch action {
	case ActionEnter:
		eventType = event.StateEntered
	case ActionReplace:
		eventType = event.StateReplaced
	case ActionExit:
		eventType = event.StateExited
	default:
		return
	}
	m.dispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.Transition{
			Action: action.String(),
			From:   string(from),
			To:     string(to),
			Depth:  len(m.stack),
		},
	})
}

func (m *Manager) current() State {
	return m.stack[len(m.stack)-1]
}

func (m *Manager) push(s State) {
	m.stack = append(m.stack, s)
}

func (m *Manager) pop() State {
	top := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	return top
}

func (m *Manager) indexOf(id ID) int {
	for i, s := range m.stack {
		if s.ID() == id {
			return i
		}
	}
	return -1
}
