// internal/event/types.go
package event

const (
	StateEntered  EventType = "StateEntered"  // Новое состояние положено поверх текущего
	StateReplaced EventType = "StateReplaced" // Текущее состояние заменено
	StateExited   EventType = "StateExited"   // Верхнее состояние снято со стека
)

// TransitionTypes lists every event type the state manager dispatches.
var TransitionTypes = []EventType{StateEntered, StateReplaced, StateExited}

// Transition is the Data of a transition event. From is the state that
// requested it, To is the new top of the stack and Depth the stack depth
// after the transition.
type Transition struct {
	Action string
	From   string
	To     string
	Depth  int
}

// TransitionOf extracts the Transition payload of e.
func TransitionOf(e Event) (Transition, bool) {
	t, ok := e.Data.(Transition)
	return t, ok
}
