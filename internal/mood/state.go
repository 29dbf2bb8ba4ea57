// Package mood implements the affective state machine: a fixed set of
// mood states, unconditional transitions between them, selection of a
// target state from classifier output, and a graph projection of the
// transition relation for rendering.
package mood

import (
	"errors"
	"fmt"
)

// State is one member of the fixed mood enumeration.
type State string

const (
	Neutral   State = "Neutral"
	Happy     State = "Happy"
	Sad       State = "Sad"
	Angry     State = "Angry"
	Surprised State = "Surprised"
	Fearful   State = "Fearful"
	Curious   State = "Curious"
)

// ErrInvalidState reports a state identifier outside the fixed set.
// It indicates a programming error in the caller, not a runtime
// condition worth retrying.
var ErrInvalidState = errors.New("invalid mood state")

var allStates = []State{Neutral, Happy, Sad, Angry, Surprised, Fearful, Curious}

// States returns the fixed state set in declaration order.
func States() []State {
	out := make([]State, len(allStates))
	copy(out, allStates)
	return out
}

// Valid reports whether s is a member of the fixed state set.
func (s State) Valid() bool {
	for _, known := range allStates {
		if s == known {
			return true
		}
	}
	return false
}

// Machine owns the single current mood state. Transitions are total:
// every state has a direct edge to every other state, including itself.
// A Machine is not safe for concurrent use; callers run cycles one at
// a time.
type Machine struct {
	current State
}

// NewMachine returns a Machine starting at Neutral.
func NewMachine() *Machine {
	return &Machine{current: Neutral}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// TransitionTo sets the current state unconditionally and returns it.
// The only failure is an identifier outside the fixed state set, which
// is reported as ErrInvalidState and leaves the machine unchanged.
func (m *Machine) TransitionTo(target State) (State, error) {
	if !target.Valid() {
		return m.current, fmt.Errorf("%w: %q", ErrInvalidState, string(target))
	}
	m.current = target
	return m.current, nil
}
