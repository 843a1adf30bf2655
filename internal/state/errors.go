// internal/state/errors.go
package state

import (
	"errors"
	"fmt"
)

// Ошибки конфигурации, возвращаемые из NewManager.
var (
	ErrNoStates       = errors.New("state: no states registered")
	ErrNilState       = errors.New("state: nil state")
	ErrDuplicateState = errors.New("state: duplicate state id")
)

// Фатальные ошибки перехода. После них игровой цикл должен остановиться.
var (
	ErrStackUnderflow = errors.New("state: exit from the last state on the stack")
	ErrUnknownState   = errors.New("state: target state not registered")
	ErrAlreadyOnStack = errors.New("state: target state already on the stack")
)

// TransitionError describes a transition the manager refused to perform.
// The stack is unchanged when it is returned.
type TransitionError struct {
	Action Action
	From   ID
	Target ID
	Err    error
}

func (e *TransitionError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %q -> %q: %v", e.Action, e.From, e.Target, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Action, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err came from a refused transition.
func IsFatal(err error) bool {
	var transitionErr *TransitionError
	return errors.As(err, &transitionErr)
}
