package mood

import (
	"reflect"
	"strings"
	"testing"
)

func TestGraphShape(t *testing.T) {
	machine := NewMachine()
	graph := machine.Graph()

	if len(graph.Nodes) != 7 {
		t.Fatalf("expected 7 nodes, got %d", len(graph.Nodes))
	}
	if len(graph.Edges) != 42 {
		t.Fatalf("expected 42 edges, got %d", len(graph.Edges))
	}

	seen := make(map[Edge]bool)
	for _, edge := range graph.Edges {
		if edge.From == edge.To {
			t.Fatalf("unexpected self-loop edge on %s", edge.From)
		}
		if seen[edge] {
			t.Fatalf("duplicate edge %s->%s", edge.From, edge.To)
		}
		seen[edge] = true
	}
}

func TestGraphMarksExactlyCurrentActive(t *testing.T) {
	machine := NewMachine()
	for _, target := range States() {
		if _, err := machine.TransitionTo(target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		active := 0
		for _, node := range machine.Graph().Nodes {
			if node.Active {
				active++
				if node.State != machine.Current() {
					t.Fatalf("active node %s does not match current %s", node.State, machine.Current())
				}
			}
		}
		if active != 1 {
			t.Fatalf("expected exactly one active node, got %d", active)
		}
	}
}

func TestGraphIsIdempotent(t *testing.T) {
	machine := NewMachine()
	if _, err := machine.TransitionTo(Fearful); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := machine.Graph()
	second := machine.Graph()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated Graph calls disagree")
	}
}

func TestGraphDOT(t *testing.T) {
	machine := NewMachine()
	if _, err := machine.TransitionTo(Sad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, err := machine.Graph().DOT()
	if err != nil {
		t.Fatalf("failed to render DOT: %v", err)
	}

	if !strings.Contains(src, "digraph mood") {
		t.Fatalf("missing digraph header in %q", src)
	}
	if !strings.Contains(src, "lightblue") {
		t.Fatal("active node not highlighted")
	}
	if got := strings.Count(src, "->"); got != 42 {
		t.Fatalf("expected 42 edges in DOT source, got %d", got)
	}
	for _, state := range States() {
		if !strings.Contains(src, string(state)) {
			t.Fatalf("state %s missing from DOT source", state)
		}
	}
}
