package mood

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// Node is one state in the graph projection, flagged when it is the
// machine's current state.
type Node struct {
	State  State
	Active bool
}

// Edge is one directed transition between two distinct states.
type Edge struct {
	From State
	To   State
}

// Graph is a declarative description of the complete transition
// digraph: one node per state with exactly one flagged active, and one
// directed edge per ordered pair of distinct states. The full edge set
// reflects that mood change is unconstrained, not that every
// transition is expected.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Graph projects the static state set and the current state into a
// graph description. It reads the machine without mutating it.
func (m *Machine) Graph() Graph {
	states := States()
	g := Graph{
		Nodes: make([]Node, 0, len(states)),
		Edges: make([]Edge, 0, len(states)*(len(states)-1)),
	}
	for _, s := range states {
		g.Nodes = append(g.Nodes, Node{State: s, Active: s == m.current})
	}
	for _, from := range states {
		for _, to := range states {
			if from != to {
				g.Edges = append(g.Edges, Edge{From: from, To: to})
			}
		}
	}
	return g
}

// DOT renders the graph as Graphviz source, left-to-right, with the
// active node filled light blue.
func (g Graph) DOT() (string, error) {
	const name = "mood"

	viz := gographviz.NewGraph()
	if err := viz.SetName(name); err != nil {
		return "", fmt.Errorf("failed to name graph: %w", err)
	}
	if err := viz.SetDir(true); err != nil {
		return "", fmt.Errorf("failed to mark graph directed: %w", err)
	}
	if err := viz.AddAttr(name, "rankdir", "LR"); err != nil {
		return "", fmt.Errorf("failed to set graph direction: %w", err)
	}

	for _, node := range g.Nodes {
		var attrs map[string]string
		if node.Active {
			attrs = map[string]string{"style": "filled", "color": "lightblue"}
		}
		if err := viz.AddNode(name, string(node.State), attrs); err != nil {
			return "", fmt.Errorf("failed to add node %s: %w", node.State, err)
		}
	}

	for _, edge := range g.Edges {
		if err := viz.AddEdge(string(edge.From), string(edge.To), true, map[string]string{"arrowhead": "vee"}); err != nil {
			return "", fmt.Errorf("failed to add edge %s->%s: %w", edge.From, edge.To, err)
		}
	}

	return viz.String(), nil
}
