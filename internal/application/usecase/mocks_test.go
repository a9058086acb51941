package usecase_test

import (
	"context"
	"sync"

	"github.com/openfinedu/carfin/internal/domain/event"
	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
)

type mockSimulationRepository struct {
	mu        sync.Mutex
	byID      map[string]*scenario.Simulation
	savedSims []*scenario.Simulation
	saveErr   error
	updateErr error
}

func (m *mockSimulationRepository) Save(_ context.Context, sim *scenario.Simulation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID == nil {
		m.byID = make(map[string]*scenario.Simulation)
	}
	m.byID[sim.ID()] = sim
	m.savedSims = append(m.savedSims, sim)
	return nil
}

func (m *mockSimulationRepository) Update(_ context.Context, id string, fn func(*scenario.Simulation) error) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sim, ok := m.byID[id]
	if !ok {
		return port.ErrSimulationNotFound
	}
	return fn(sim)
}

func (m *mockSimulationRepository) View(_ context.Context, id string, fn func(*scenario.Simulation) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sim, ok := m.byID[id]
	if !ok {
		return port.ErrSimulationNotFound
	}
	return fn(sim)
}

func (m *mockSimulationRepository) Delete(_ context.Context, _ string) error {
	return nil
}

type mockQuoteCache struct {
	entries map[string]model.CalculationResult
	setErr  error
	hits    int
	misses  int
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{entries: make(map[string]model.CalculationResult)}
}

func (m *mockQuoteCache) Get(_ context.Context, key string) (model.CalculationResult, bool) {
	res, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return res, ok
}

func (m *mockQuoteCache) Set(_ context.Context, key string, result model.CalculationResult) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = result
	return nil
}

type mockEventPublisher struct {
	publishedEvents []event.DomainEvent
	publishErr      error
}

func (m *mockEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.publishedEvents = append(m.publishedEvents, events...)
	return nil
}
