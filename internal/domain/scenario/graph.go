package scenario

import (
	"errors"
	"fmt"
	"sort"
)

// NodeID identifies a node in the scenario graph. The initial node is 0.
type NodeID int

// InitialNode is where every run starts.
const InitialNode NodeID = 0

// Sentinel errors for runner operations.
var (
	ErrRunComplete   = errors.New("scenario run already complete")
	ErrUnknownChoice = errors.New("unknown choice for current node")
	ErrUnknownNode   = errors.New("unknown scenario node")
)

// Choice is one decision offered at a node. Next is nil for choices that end
// the run: the explicit pointer replaces a relying-on-absence convention.
type Choice struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Explanation string       `json:"explanation"`
	Transitions []Transition `json:"transitions"`
	Next        *NodeID      `json:"next,omitempty"`
}

// Node is one step of the scenario narrative.
type Node struct {
	ID          NodeID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// IsTerminal reports whether the node offers no way forward.
func (n Node) IsTerminal() bool {
	return len(n.Choices) == 0
}

// Graph is a fixed directed set of scenario nodes. Shared destinations and
// revisits are legal; a revisited node recomputes from the current state, not
// the original one.
type Graph struct {
	nodes map[NodeID]Node
}

// NewGraph builds a graph from a node list and checks its integrity: this is
// the build-time data requirement that no choice points at a missing node,
// enforced at construction so bad data fails fast.
func NewGraph(nodes []Node) (*Graph, error) {
	g := &Graph{nodes: make(map[NodeID]Node, len(nodes))}
	for _, n := range nodes {
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario node %d", n.ID)
		}
		g.nodes[n.ID] = n
	}

	if _, ok := g.nodes[InitialNode]; !ok {
		return nil, fmt.Errorf("scenario graph has no initial node %d", InitialNode)
	}

	for _, n := range g.nodes {
		seen := make(map[string]struct{}, len(n.Choices))
		for _, c := range n.Choices {
			if c.ID == "" {
				return nil, fmt.Errorf("node %d has a choice without an id", n.ID)
			}
			if _, dup := seen[c.ID]; dup {
				return nil, fmt.Errorf("node %d has duplicate choice %q", n.ID, c.ID)
			}
			seen[c.ID] = struct{}{}

			if c.Next != nil {
				if _, ok := g.nodes[*c.Next]; !ok {
					return nil, fmt.Errorf("node %d choice %q points at missing node %d", n.ID, c.ID, *c.Next)
				}
			}
		}
	}
	return g, nil
}

// MustGraph builds a graph and panics on integrity errors. Intended for the
// built-in scenario library only.
func MustGraph(nodes []Node) *Graph {
	g, err := NewGraph(nodes)
	if err != nil {
		panic(err)
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node, ordered by id, for display and serialization.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
