package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/event"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

// ApplyChoiceUseCase advances a scenario run by one decision.
type ApplyChoiceUseCase struct {
	simRepo   port.SimulationRepository
	publisher port.EventPublisher
}

// NewApplyChoiceUseCase wires dependencies.
func NewApplyChoiceUseCase(
	simRepo port.SimulationRepository,
	publisher port.EventPublisher,
) *ApplyChoiceUseCase {
	return &ApplyChoiceUseCase{
		simRepo:   simRepo,
		publisher: publisher,
	}
}

// Execute applies a choice at the run's current node and returns the updated
// run, including the choice's explanation for display.
func (uc *ApplyChoiceUseCase) Execute(ctx context.Context, req dto.ApplyChoiceRequest) (dto.SimulationResponse, error) {
	now := time.Now().UTC()

	var resp dto.SimulationResponse
	var events []event.DomainEvent

	// 1. Apply the decision and read the updated run back under the run's
	// lock, so concurrent requests on the same simulation serialize.
	err := uc.simRepo.Update(ctx, req.SimulationID, func(sim *scenario.Simulation) error {
		decision, err := sim.Runner().ApplyChoice(req.ChoiceID)
		if err != nil {
			return err
		}
		sim.Touch(now)

		events = []event.DomainEvent{
			event.NewChoiceApplied(
				sim.ID(), int(decision.Node), decision.ChoiceID,
				decision.StateAfter.MonthlyPayment, decision.StateAfter.Principal,
			),
		}
		if sim.Runner().Complete() {
			events = append(events, event.NewSimulationCompleted(sim.ID(), len(sim.Runner().History())))
		}

		resp = dto.FromSimulation(sim)
		return nil
	})
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("apply choice: %w", err)
	}

	// 2. Publish outside the lock.
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return resp, nil
}
