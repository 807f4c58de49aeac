package messaging

import (
	"context"
)

// Publisher defines the interface for publishing settlement events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSettlement publishes a committed settlement
	PublishSettlement(ctx context.Context, event *SettlementEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishSettlement(context.Context, *SettlementEvent) error {
	return nil
}

func (noopPublisher) Close() {}
