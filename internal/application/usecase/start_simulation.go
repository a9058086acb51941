package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/event"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
	"github.com/openfinedu/carfin/internal/domain/service"
)

// StartSimulationUseCase calculates a quote and opens a scenario run on it.
type StartSimulationUseCase struct {
	engine    *service.Engine
	graph     *scenario.Graph
	simRepo   port.SimulationRepository
	publisher port.EventPublisher
}

// NewStartSimulationUseCase wires dependencies.
func NewStartSimulationUseCase(
	engine *service.Engine,
	graph *scenario.Graph,
	simRepo port.SimulationRepository,
	publisher port.EventPublisher,
) *StartSimulationUseCase {
	return &StartSimulationUseCase{
		engine:    engine,
		graph:     graph,
		simRepo:   simRepo,
		publisher: publisher,
	}
}

// Execute starts a run from user-entered loan parameters.
func (uc *StartSimulationUseCase) Execute(ctx context.Context, req dto.QuoteRequest) (dto.SimulationResponse, error) {
	now := time.Now().UTC()

	// 1. Validate and calculate; a failed calculation never produces a state.
	domainReq, err := req.ToDomain()
	if err != nil {
		return dto.SimulationResponse{}, err
	}
	result, err := uc.engine.Calculate(domainReq)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("calculate quote: %w", err)
	}

	// 2. Create the run at the initial node.
	sim := scenario.NewSimulation(uc.graph, uc.engine, domainReq, result, now)

	// 3. Persist it.
	if err := uc.simRepo.Save(ctx, sim); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("save simulation: %w", err)
	}

	// 4. Publish.
	evt := event.NewSimulationStarted(
		sim.ID(), domainReq.FinanceType.String(),
		result.AmountFinanced, domainReq.TermMonths,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromSimulation(sim), nil
}
