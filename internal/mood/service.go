package mood

import (
	"context"
	"fmt"

	"github.com/easeaico/emomind/internal/types"
)

// EventRepo persists one record per applied transition. Implementations
// may be absent; the service works without history.
type EventRepo interface {
	RecordEvent(ctx context.Context, event types.MoodEvent) error
}

// Service applies one classification cycle at a time to a single
// Machine and keeps the previous-state record the display layer shows
// next to the current mood. The host invokes it serially.
type Service struct {
	machine  *Machine
	events   EventRepo
	previous State
}

// Result is the outcome of one applied cycle.
type Result struct {
	Previous State
	Current  State
}

// NewService returns a Service driving the given machine. events may be
// nil to disable history.
func NewService(machine *Machine, events EventRepo) *Service {
	return &Service{
		machine:  machine,
		events:   events,
		previous: machine.Current(),
	}
}

// Previous returns the state the machine held before the last applied
// cycle.
func (s *Service) Previous() State {
	return s.previous
}

// Current returns the machine's current state.
func (s *Service) Current() State {
	return s.machine.Current()
}

// Apply selects a target from the two distributions, transitions the
// machine, and records the cycle. The transition has already been
// applied when event recording fails, so callers should treat a
// returned error as a history gap rather than a missed mood update.
func (s *Service) Apply(ctx context.Context, utterance string, emotion, sentiment ScoreDistribution, embedding []float32) (Result, error) {
	if s == nil || s.machine == nil {
		return Result{}, fmt.Errorf("mood service not configured")
	}

	target := Select(emotion, sentiment)

	from := s.machine.Current()
	current, err := s.machine.TransitionTo(target)
	if err != nil {
		return Result{}, fmt.Errorf("failed to transition mood: %w", err)
	}
	s.previous = from

	result := Result{Previous: from, Current: current}
	if s.events == nil {
		return result, nil
	}

	topEmotion, _ := topLabel(emotion)
	topSentiment, _ := topLabel(sentiment)
	event := types.MoodEvent{
		Utterance:    utterance,
		TopEmotion:   topEmotion,
		TopSentiment: topSentiment,
		FromState:    string(from),
		ToState:      string(current),
		Embedding:    embedding,
	}
	if err := s.events.RecordEvent(ctx, event); err != nil {
		return result, fmt.Errorf("failed to record mood event: %w", err)
	}
	return result, nil
}

// Graph returns the machine's graph description.
func (s *Service) Graph() Graph {
	return s.machine.Graph()
}
