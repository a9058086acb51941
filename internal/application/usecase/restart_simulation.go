package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

// RestartSimulationUseCase rewinds a run to its entry snapshot.
type RestartSimulationUseCase struct {
	simRepo port.SimulationRepository
}

// NewRestartSimulationUseCase wires dependencies.
func NewRestartSimulationUseCase(simRepo port.SimulationRepository) *RestartSimulationUseCase {
	return &RestartSimulationUseCase{simRepo: simRepo}
}

// Execute restores the original loan state, moves the run back to the initial
// node and clears the decision history.
func (uc *RestartSimulationUseCase) Execute(ctx context.Context, simulationID string) (dto.SimulationResponse, error) {
	var resp dto.SimulationResponse
	err := uc.simRepo.Update(ctx, simulationID, func(sim *scenario.Simulation) error {
		sim.Runner().Restart()
		sim.Touch(time.Now().UTC())
		resp = dto.FromSimulation(sim)
		return nil
	})
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("restart simulation: %w", err)
	}
	return resp, nil
}
