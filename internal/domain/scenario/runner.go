package scenario

import (
	"fmt"

	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/service"
)

// Decision is the audit record of one accepted choice.
type Decision struct {
	Node        NodeID
	ChoiceID    string
	Label       string
	Explanation string
	StateAfter  model.LoanState
}

// Runner drives one scenario run. It owns the loan state exclusively: the
// state is replaced wholesale on each transition and nothing else mutates it.
// Runner is not safe for concurrent use; a run belongs to one caller.
type Runner struct {
	graph    *Graph
	engine   *service.Engine
	snapshot model.LoanState
	state    model.LoanState
	current  NodeID
	complete bool
	history  []Decision
}

// NewRunner starts a run at the initial node from the given entry state. The
// entry state is snapshotted so Restart can restore it exactly.
func NewRunner(graph *Graph, engine *service.Engine, entry model.LoanState) *Runner {
	return &Runner{
		graph:    graph,
		engine:   engine,
		snapshot: entry,
		state:    entry,
		current:  InitialNode,
	}
}

// ApplyChoice applies one of the current node's choices: the choice's
// transitions run against the current state, the decision is recorded, and
// the run advances to the choice's next node or completes.
func (r *Runner) ApplyChoice(choiceID string) (Decision, error) {
	if r.complete {
		return Decision{}, ErrRunComplete
	}

	node, ok := r.graph.Node(r.current)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %d", ErrUnknownNode, r.current)
	}

	var choice *Choice
	for i := range node.Choices {
		if node.Choices[i].ID == choiceID {
			choice = &node.Choices[i]
			break
		}
	}
	if choice == nil {
		return Decision{}, fmt.Errorf("%w: %q at node %d", ErrUnknownChoice, choiceID, r.current)
	}

	next := r.state
	for _, t := range choice.Transitions {
		next = t.Apply(r.engine, next)
	}
	r.state = next

	if choice.Next != nil {
		r.current = *choice.Next
	} else {
		r.complete = true
	}

	decision := Decision{
		Node:        node.ID,
		ChoiceID:    choice.ID,
		Label:       choice.Label,
		Explanation: choice.Explanation,
		StateAfter:  next,
	}
	r.history = append(r.history, decision)
	return decision, nil
}

// Restart resets the run to the entry snapshot and the initial node, and
// clears the decision history.
func (r *Runner) Restart() {
	r.state = r.snapshot
	r.current = InitialNode
	r.complete = false
	r.history = nil
}

// State returns the current loan state.
func (r *Runner) State() model.LoanState { return r.state }

// Snapshot returns the entry state the run started from.
func (r *Runner) Snapshot() model.LoanState { return r.snapshot }

// CurrentNode returns the node the run is waiting at. The second return is
// false once the run is complete.
func (r *Runner) CurrentNode() (Node, bool) {
	if r.complete {
		return Node{}, false
	}
	n, ok := r.graph.Node(r.current)
	return n, ok
}

// Complete reports whether a terminal choice has been taken.
func (r *Runner) Complete() bool { return r.complete }

// History returns a copy of the decisions taken so far.
func (r *Runner) History() []Decision {
	out := make([]Decision, len(r.history))
	copy(out, r.history)
	return out
}
