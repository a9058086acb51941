package kafka

import (
	"context"

	"github.com/openfinedu/carfin/internal/domain/event"
)

// NoopPublisher discards events. Used when no brokers are configured, so the
// calculator runs standalone without a Kafka dependency.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish discards the events.
func (NoopPublisher) Publish(_ context.Context, _ ...event.DomainEvent) error {
	return nil
}
