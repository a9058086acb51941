package port

import (
	"context"
	"errors"

	"github.com/openfinedu/carfin/internal/domain/event"
	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

// ErrSimulationNotFound is returned by repositories for unknown ids.
var ErrSimulationNotFound = errors.New("simulation not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SimulationRepository stores live scenario runs. A run is mutable shared
// state, so the repository never hands the caller a bare pointer: all access
// goes through Update and View, which hold a per-run lock for the duration of
// the callback. Simulation history is never persisted beyond the life of the
// run.
type SimulationRepository interface {
	Save(ctx context.Context, sim *scenario.Simulation) error
	// Update runs fn against the stored run while holding its lock, so the
	// whole read-modify-write is atomic with respect to other requests.
	Update(ctx context.Context, id string, fn func(*scenario.Simulation) error) error
	// View is Update for read-only callbacks; fn must not mutate the run.
	View(ctx context.Context, id string, fn func(*scenario.Simulation) error) error
	Delete(ctx context.Context, id string) error
}

// QuoteCache caches calculation results by request key. The engine is
// deterministic, so a hit is always exact.
type QuoteCache interface {
	Get(ctx context.Context, key string) (model.CalculationResult, bool)
	Set(ctx context.Context, key string, result model.CalculationResult) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
