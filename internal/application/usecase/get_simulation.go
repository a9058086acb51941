package usecase

import (
	"context"
	"fmt"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

// GetSimulationUseCase retrieves a run by id.
type GetSimulationUseCase struct {
	simRepo port.SimulationRepository
}

// NewGetSimulationUseCase wires dependencies.
func NewGetSimulationUseCase(simRepo port.SimulationRepository) *GetSimulationUseCase {
	return &GetSimulationUseCase{simRepo: simRepo}
}

// Execute returns the current view of a run, read under the run's lock so a
// concurrent mutation is never observed halfway.
func (uc *GetSimulationUseCase) Execute(ctx context.Context, simulationID string) (dto.SimulationResponse, error) {
	var resp dto.SimulationResponse
	err := uc.simRepo.View(ctx, simulationID, func(sim *scenario.Simulation) error {
		resp = dto.FromSimulation(sim)
		return nil
	})
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("find simulation: %w", err)
	}
	return resp, nil
}
