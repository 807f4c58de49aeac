package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
)

// View is a read result tagged with the store that answered it
type View[T any] struct {
	Data           T             `json:"data"`
	Source         domain.Source `json:"source"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
}

type readFunc[T any] func(ctx context.Context) (T, error)

// readWithFallback prefers the ledger and answers from the mirror when the ledger is
// disabled or its read fails. Only a mirror failure is returned as an error.
func readWithFallback[T any](
	ctx context.Context,
	gw ledger.Gateway,
	category domain.ReadCategory,
	ledgerRead readFunc[T],
	mirrorRead readFunc[T],
) (View[T], error) {
	if !gw.Enabled() {
		data, err := mirrorRead(ctx)
		if err != nil {
			return View[T]{}, fmt.Errorf("failed to read %s from mirror: %w", category, err)
		}
		return View[T]{Data: data, Source: domain.SourceMirror}, nil
	}

	data, ledgerErr := ledgerRead(ctx)
	if ledgerErr == nil {
		return View[T]{Data: data, Source: domain.SourceLedger}, nil
	}

	logger.WarnCtx(ctx, "Ledger read failed, falling back to mirror",
		logger.Category(string(category)),
		zap.Error(ledgerErr),
	)

	data, err := mirrorRead(ctx)
	if err != nil {
		return View[T]{}, fmt.Errorf("failed to read %s from mirror after ledger failure (%v): %w", category, ledgerErr, err)
	}
	return View[T]{
		Data:           data,
		Source:         domain.SourceMirrorFallback,
		FallbackReason: ledgerErr.Error(),
	}, nil
}

// mapView converts the data of a view, keeping its provenance
func mapView[T, U any](v View[T], fn func(T) U) View[U] {
	return View[U]{
		Data:           fn(v.Data),
		Source:         v.Source,
		FallbackReason: v.FallbackReason,
	}
}

// fanOut runs fn for every item on a bounded pool and returns the results in item order.
// The first error cancels the remaining calls.
func fanOut[I, O any](ctx context.Context, size int, items []I, fn func(context.Context, I) (O, error)) ([]O, error) {
	if len(items) == 0 {
		return []O{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := pond.NewResultPool[O](size, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, item := range items {
		group.SubmitErr(func() (O, error) {
			return fn(ctx, item)
		})
	}

	results, err := group.Wait()
	if err != nil {
		cancel()
		return nil, err
	}
	return results, nil
}

// isLedgerNotFound reports whether the ledger answered that a record does not exist
func isLedgerNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
