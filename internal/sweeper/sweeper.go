package sweeper

import (
	"context"
)

// Sweeper is a periodic background job run by cmd/sweeper
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs sweep cycles until ctx is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop waits for the cycle in flight, bounded by ctx
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
