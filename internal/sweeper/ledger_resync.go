package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/settlement"
	"github.com/feral-file/ff-estate-ledger/internal/store"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

const (
	DEFAULT_RESYNC_INTERVAL = 5 * time.Minute // Time to sleep between resync cycles
)

// LedgerResyncSweeperConfig holds configuration for the ledger resync sweeper
type LedgerResyncSweeperConfig struct {
	Interval        time.Duration // Pause between cycles
	MinAge          time.Duration // Only resubmit records older than this
	BatchSize       int           // Records per cycle
	MaxElapsed      time.Duration // Retry budget per record
	WorkerPoolSize  int           // Properties resynced concurrently
	WorkerQueueSize int
}

// ledgerResyncSweeper submits mirror-only settlements to the ledger after the fact
type ledgerResyncSweeper struct {
	config       *LedgerResyncSweeperConfig
	store        store.Store
	gateway      ledger.Gateway
	orchestrator settlement.Orchestrator
	clock        adapter.Clock
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewLedgerResyncSweeper creates a new ledger resync sweeper
func NewLedgerResyncSweeper(
	config *LedgerResyncSweeperConfig,
	st store.Store,
	gateway ledger.Gateway,
	orchestrator settlement.Orchestrator,
	clock adapter.Clock,
) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_RESYNC_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 4
	}
	if config.MaxElapsed <= 0 {
		config.MaxElapsed = 10 * time.Minute
	}
	return &ledgerResyncSweeper{
		config:       config,
		store:        st,
		gateway:      gateway,
		orchestrator: orchestrator,
		clock:        clock,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *ledgerResyncSweeper) Name() string {
	return "ledger-resync-sweeper"
}

// Start runs resync cycles until the context is canceled or Stop is called
func (s *ledgerResyncSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting ledger resync sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("min_age", s.config.MinAge),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Ledger resync sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Ledger resync sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			// The select above notices an interrupted sleep
			s.sleep(ctx, s.config.Interval)
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *ledgerResyncSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping ledger resync sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Ledger resync sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Ledger resync sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation or stop
func (s *ledgerResyncSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

// runSweepCycle registers missing properties, then resubmits unsynced audit records
func (s *ledgerResyncSweeper) runSweepCycle(ctx context.Context) error {
	if !s.gateway.Enabled() {
		logger.DebugCtx(ctx, "Ledger disabled, skipping resync cycle")
		return nil
	}

	startTime := s.clock.Now()

	registered, err := s.registerProperties(ctx)
	if err != nil {
		return err
	}

	records, err := s.store.ListUnsyncedAuditRecords(ctx, startTime.Add(-s.config.MinAge), s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list unsynced audit records: %w", err)
	}
	if len(records) == 0 {
		logger.DebugCtx(ctx, "No unsynced audit records", zap.Int("registered_properties", registered))
		return nil
	}

	logger.InfoCtx(ctx, "Found unsynced audit records", zap.Int("count", len(records)))

	var syncedCount, failedCount, skippedCount atomic.Int32

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	// Records of one property depend on each other, so they go in creation order
	for _, group := range groupByProperty(records) {
		pool.Submit(func() {
			for i, record := range group {
				if err := s.resyncRecord(ctx, record); err != nil {
					failedCount.Add(1)
					skippedCount.Add(int32(len(group) - i - 1))
					logger.ErrorCtx(ctx, fmt.Errorf("failed to resync audit record: %w", err),
						logger.AuditRecordID(record.ID),
						zap.Int("skipped", len(group)-i-1),
					)
					return
				}
				syncedCount.Add(1)
			}
		})
	}

	pool.StopAndWait()

	logger.InfoCtx(ctx, "Resync cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("registered_properties", registered),
		zap.Int("total_records", len(records)),
		zap.Int32("synced", syncedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
		zap.Int32("skipped", skippedCount.Load()),
	)

	return ctx.Err()
}

// registerProperties submits InitProperty for approved properties missing on the ledger
func (s *ledgerResyncSweeper) registerProperties(ctx context.Context) (int, error) {
	properties, err := s.store.ListUnregisteredProperties(ctx, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list unregistered properties: %w", err)
	}

	var registered int
	for _, p := range properties {
		if _, err := s.orchestrator.RegisterProperty(ctx, p.ID); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			logger.WarnCtx(ctx, "Failed to register property on ledger",
				logger.PropertyID(p.ID),
				zap.Error(err),
			)
			continue
		}
		registered++
	}
	return registered, nil
}

// resyncRecord submits one audit record with retry and stores the receipt
func (s *ledgerResyncSweeper) resyncRecord(ctx context.Context, record schema.AuditRecord) error {
	ref, err := s.submitWithRetry(ctx, record)
	if err != nil {
		if reason, ok := syncFailureReason(err); ok {
			if ferr := s.store.CreateSyncFailure(ctx, record.ID, reason, err.Error()); ferr != nil {
				return fmt.Errorf("%w: %w", err, ferr)
			}
			logger.WarnCtx(ctx, "Audit record refused by ledger, excluded from resync",
				logger.AuditRecordID(record.ID),
				zap.String("reason", string(reason)),
				zap.Error(err),
			)
		}
		return err
	}

	if err := s.store.CreateSyncReceipt(ctx, record.ID, ref.String()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("CRITICAL: ledger committed a resync without a mirror receipt: %w", err),
			logger.AuditRecordID(record.ID),
			logger.TxRef(ref.String()),
		)
		return err
	}

	logger.InfoCtx(ctx, "Audit record synced to ledger",
		logger.AuditRecordID(record.ID),
		logger.TxRef(ref.String()),
		zap.String("kind", string(record.Kind)),
	)
	return nil
}

// submitWithRetry resubmits a record with exponential backoff. Only an unreachable ledger is retried.
func (s *ledgerResyncSweeper) submitWithRetry(ctx context.Context, record schema.AuditRecord) (ledger.TxRef, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = s.config.MaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var ref ledger.TxRef
	operation := func() error {
		var err error
		ref, err = s.submit(ctx, record)
		if err != nil && (!domain.IsLedgerFailure(err) || errors.Is(err, domain.ErrLedgerDisabled)) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Ledger resubmission failed, retrying",
			logger.AuditRecordID(record.ID),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return "", fmt.Errorf("failed after %d attempts: %w", attemptCount+1, err)
	}
	return ref, nil
}

func (s *ledgerResyncSweeper) submit(ctx context.Context, record schema.AuditRecord) (ledger.TxRef, error) {
	if record.PropertyID == nil {
		return "", fmt.Errorf("%w: audit record %s has no property", domain.ErrInvalidInput, record.ID)
	}

	switch record.Kind {
	case domain.AuditKindMint:
		return s.gateway.SubmitMint(ctx, *record.PropertyID, record.UserID, record.Amount, record.SettlementKey)
	case domain.AuditKindTransfer:
		if record.CounterpartyID == nil {
			return "", fmt.Errorf("%w: transfer %s has no receiver", domain.ErrInvalidInput, record.ID)
		}
		return s.gateway.SubmitTransfer(ctx, *record.PropertyID, record.UserID, *record.CounterpartyID, record.Amount, record.SettlementKey)
	default:
		return "", fmt.Errorf("%w: audit record %s of kind %s has no ledger operation", domain.ErrInvalidInput, record.ID, record.Kind)
	}
}

// syncFailureReason classifies errors that no later resubmission can fix
func syncFailureReason(err error) (domain.SyncFailureReason, bool) {
	switch {
	case errors.Is(err, domain.ErrLedgerRejected):
		return domain.SyncFailureLedgerRejected, true
	case errors.Is(err, domain.ErrInvalidInput):
		return domain.SyncFailureInvalidRecord, true
	default:
		return "", false
	}
}

// groupByProperty splits records per property, keeping creation order within and across groups
func groupByProperty(records []schema.AuditRecord) [][]schema.AuditRecord {
	index := make(map[string]int)
	var groups [][]schema.AuditRecord
	for _, r := range records {
		var key string
		if r.PropertyID != nil {
			key = *r.PropertyID
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}
