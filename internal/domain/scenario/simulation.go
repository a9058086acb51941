package scenario

import (
	"time"

	"github.com/google/uuid"

	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/service"
)

// Simulation gives one scenario run an identity so it can be stored and
// addressed over the API. The run itself still belongs to a single caller at
// a time; the repository serializes access.
type Simulation struct {
	id        string
	request   model.LoanRequest
	result    model.CalculationResult
	runner    *Runner
	createdAt time.Time
	updatedAt time.Time
}

// NewSimulation creates a simulation with a fresh id around an entry state.
func NewSimulation(graph *Graph, engine *service.Engine, req model.LoanRequest, result model.CalculationResult, now time.Time) *Simulation {
	entry := engine.CreateInitialState(req, result)
	return &Simulation{
		id:        uuid.New().String(),
		request:   req,
		result:    result,
		runner:    NewRunner(graph, engine, entry),
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Simulation) ID() string                      { return s.id }
func (s *Simulation) Request() model.LoanRequest      { return s.request }
func (s *Simulation) Result() model.CalculationResult { return s.result }
func (s *Simulation) Runner() *Runner                 { return s.runner }
func (s *Simulation) CreatedAt() time.Time            { return s.createdAt }
func (s *Simulation) UpdatedAt() time.Time            { return s.updatedAt }

// Touch records a mutation time.
func (s *Simulation) Touch(now time.Time) { s.updatedAt = now }
