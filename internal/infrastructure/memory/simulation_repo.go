package memory

import (
	"context"
	"sync"

	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

// simEntry pairs a stored run with the lock that serializes access to it. The
// lock is held for the whole of an Update or View callback, so overlapping
// requests on the same run never see it mid-mutation.
type simEntry struct {
	mu  sync.Mutex
	sim *scenario.Simulation
}

// SimulationRepository is the in-memory store for live scenario runs. Runs
// are never persisted beyond the process; that is a feature, not a gap. The
// outer lock guards the map, the per-entry lock guards the run itself.
type SimulationRepository struct {
	mu   sync.RWMutex
	sims map[string]*simEntry
}

// NewSimulationRepository creates an empty in-memory repository.
func NewSimulationRepository() *SimulationRepository {
	return &SimulationRepository{
		sims: make(map[string]*simEntry),
	}
}

// Save stores a new run, or replaces one wholesale. Mutations of a stored run
// go through Update, not Save.
func (r *SimulationRepository) Save(_ context.Context, sim *scenario.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sims[sim.ID()] = &simEntry{sim: sim}
	return nil
}

// Update runs fn against the stored run while holding its lock.
func (r *SimulationRepository) Update(_ context.Context, id string, fn func(*scenario.Simulation) error) error {
	e, ok := r.entry(id)
	if !ok {
		return port.ErrSimulationNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sim)
}

// View runs a read-only fn against the stored run while holding its lock.
func (r *SimulationRepository) View(_ context.Context, id string, fn func(*scenario.Simulation) error) error {
	e, ok := r.entry(id)
	if !ok {
		return port.ErrSimulationNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sim)
}

// Delete removes a run. Deleting an unknown id is not an error.
func (r *SimulationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sims, id)
	return nil
}

func (r *SimulationRepository) entry(id string) (*simEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sims[id]
	return e, ok
}
