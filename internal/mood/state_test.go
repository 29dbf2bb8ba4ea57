package mood

import (
	"errors"
	"testing"
)

func TestNewMachineStartsNeutral(t *testing.T) {
	machine := NewMachine()
	if machine.Current() != Neutral {
		t.Fatalf("expected initial state Neutral, got %s", machine.Current())
	}
}

func TestTransitionToEveryOrderedPair(t *testing.T) {
	machine := NewMachine()
	for _, from := range States() {
		for _, to := range States() {
			if from == to {
				continue
			}
			if _, err := machine.TransitionTo(from); err != nil {
				t.Fatalf("failed to reach source state %s: %v", from, err)
			}
			got, err := machine.TransitionTo(to)
			if err != nil {
				t.Fatalf("transition %s->%s failed: %v", from, to, err)
			}
			if got != to || machine.Current() != to {
				t.Fatalf("transition %s->%s left machine at %s", from, to, machine.Current())
			}
		}
	}
}

func TestTransitionToSelfLoop(t *testing.T) {
	machine := NewMachine()
	got, err := machine.TransitionTo(Neutral)
	if err != nil {
		t.Fatalf("self transition failed: %v", err)
	}
	if got != Neutral {
		t.Fatalf("expected Neutral, got %s", got)
	}
}

func TestTransitionToInvalidState(t *testing.T) {
	machine := NewMachine()
	if _, err := machine.TransitionTo(Happy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := machine.TransitionTo(State("Ecstatic"))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if got != Happy || machine.Current() != Happy {
		t.Fatalf("invalid transition mutated machine to %s", machine.Current())
	}
}

func TestCurrentIsIdempotent(t *testing.T) {
	machine := NewMachine()
	if _, err := machine.TransitionTo(Curious); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if machine.Current() != machine.Current() {
		t.Fatal("repeated Current calls disagree")
	}
}

func TestStatesReturnsCopy(t *testing.T) {
	states := States()
	if len(states) != 7 {
		t.Fatalf("expected 7 states, got %d", len(states))
	}
	states[0] = State("Bogus")
	if States()[0] != Neutral {
		t.Fatal("States exposed internal slice")
	}
}
