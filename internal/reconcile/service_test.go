package reconcile_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/mocks"
	"github.com/feral-file/ff-estate-ledger/internal/reconcile"
	"github.com/feral-file/ff-estate-ledger/internal/store"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

var errLedgerDown = fmt.Errorf("%w: GetProperty: dial tcp 10.0.0.5:7051: connection refused", domain.ErrLedgerUnavailable)

// testServiceMocks contains all the mocks needed for testing the service
type testServiceMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	gateway *mocks.MockLedgerGateway
	service reconcile.Service
}

// setupTestService creates all the mocks and the service for testing
func setupTestService(t *testing.T) *testServiceMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testServiceMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		gateway: mocks.NewMockLedgerGateway(ctrl),
	}
	tm.service = reconcile.NewService(reconcile.Config{WorkerPoolSize: 2}, tm.store, tm.gateway)
	return tm
}

// tearDownTestService cleans up the test mocks
func tearDownTestService(mocks *testServiceMocks) {
	mocks.ctrl.Finish()
}

func strPtr(s string) *string {
	return &s
}

func approvedProperties() []schema.Property {
	owner := schema.User{ID: "OWNER", Email: "owner@example.com"}
	return []schema.Property{
		{ID: "P1", Title: "Harbour Loft", PriceCents: 50000000, Status: domain.PropertyStatusApproved, TotalTokens: 1000, RemainingTokens: 900, Owner: owner},
		{ID: "P2", Title: "Hillside Villa", PriceCents: 25000000, Status: domain.PropertyStatusApproved, TotalTokens: 500, RemainingTokens: 500, LedgerTxRef: strPtr("tx-init-p2"), Owner: owner},
	}
}

// =============================================================================
// Supply
// =============================================================================

func TestListSupply(t *testing.T) {
	t.Run("ledger disabled reads the mirror", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(false)

		view, err := mocks.service.ListSupply(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirror, view.Source)
		assert.Empty(t, view.FallbackReason)
		require.Len(t, view.Data, 2)
		assert.Equal(t, int64(100), view.Data[0].IssuedTokens)
		assert.False(t, view.Data[0].OnLedger)
		assert.True(t, view.Data[1].OnLedger)
		assert.Equal(t, "owner@example.com", view.Data[1].OwnerEmail)
	})

	t.Run("ledger numbers win and unknown properties stay on the mirror", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P1").
			Return(nil, fmt.Errorf("%w: %w: NOT_FOUND: property P1 does not exist", domain.ErrLedgerRejected, domain.ErrNotFound))
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P2").
			Return(&ledger.Property{ID: "P2", TotalTokens: 500, RemainingTokens: 480}, nil)

		view, err := mocks.service.ListSupply(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		require.Len(t, view.Data, 2)
		assert.Equal(t, "P1", view.Data[0].PropertyID)
		assert.False(t, view.Data[0].OnLedger)
		assert.Equal(t, int64(900), view.Data[0].RemainingTokens)
		assert.True(t, view.Data[1].OnLedger)
		assert.Equal(t, int64(480), view.Data[1].RemainingTokens)
		assert.Equal(t, int64(20), view.Data[1].IssuedTokens)
		assert.Equal(t, "Hillside Villa", view.Data[1].Title)
	})

	t.Run("ledger failure falls back to the mirror", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), gomock.Any()).Return(nil, errLedgerDown).MinTimes(1).MaxTimes(2)

		view, err := mocks.service.ListSupply(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirrorFallback, view.Source)
		assert.Contains(t, view.FallbackReason, "connection refused")
		assert.Equal(t, int64(900), view.Data[0].RemainingTokens)
	})

	t.Run("mirror failure is returned", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(nil, errors.New("connection reset"))

		view, err := mocks.service.ListSupply(context.Background())
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

// =============================================================================
// Holdings
// =============================================================================

func TestListHoldings(t *testing.T) {
	titles := map[string]schema.Property{
		"P1": {ID: "P1", Title: "Harbour Loft"},
		"P2": {ID: "P2", Title: "Hillside Villa"},
	}

	t.Run("ledger holdings enriched with titles", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldings(gomock.Any(), "U1").Return([]ledger.Holding{
			{UserID: "U1", PropertyID: "P2", Tokens: 5},
			{UserID: "U1", PropertyID: "P1", Tokens: 60},
			{UserID: "U1", PropertyID: "P3", Tokens: 0},
		}, nil)
		mocks.store.EXPECT().ListPropertiesByIDs(gomock.Any(), []string{"P1", "P2"}).Return(titles, nil)

		view, err := mocks.service.ListHoldings(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		assert.Equal(t, []reconcile.HoldingItem{
			{PropertyID: "P1", Title: "Harbour Loft", Tokens: 60},
			{PropertyID: "P2", Title: "Hillside Villa", Tokens: 5},
		}, view.Data)
	})

	t.Run("fallback to mirror holdings", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldings(gomock.Any(), "U1").Return(nil, errLedgerDown)
		mocks.store.EXPECT().ListHoldingsByUser(gomock.Any(), "U1").Return([]schema.Holding{
			{UserID: "U1", PropertyID: "P1", Tokens: 60},
		}, nil)
		mocks.store.EXPECT().ListPropertiesByIDs(gomock.Any(), []string{"P1"}).Return(titles, nil)

		view, err := mocks.service.ListHoldings(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirrorFallback, view.Source)
		assert.Equal(t, []reconcile.HoldingItem{{PropertyID: "P1", Title: "Harbour Loft", Tokens: 60}}, view.Data)
	})

	t.Run("missing user id", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		_, err := mocks.service.ListHoldings(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// =============================================================================
// Certificates
// =============================================================================

func TestListCertificates(t *testing.T) {
	certificates := []schema.Certificate{
		{ID: "C1", OrderID: "O1", UserID: "U1", PropertyID: "P1", Tokens: 10, Serial: "EST-P1-C1", AuditRecordID: "A1", LedgerTxRef: strPtr("tx-o1")},
	}

	t.Run("held tokens from the ledger", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListCertificatesByUser(gomock.Any(), "U1").Return(certificates, nil)
		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldings(gomock.Any(), "U1").Return([]ledger.Holding{{UserID: "U1", PropertyID: "P1", Tokens: 4}}, nil)

		view, err := mocks.service.ListCertificates(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		require.Len(t, view.Data, 1)
		assert.Equal(t, "EST-P1-C1", view.Data[0].Serial)
		assert.Equal(t, int64(10), view.Data[0].Tokens)
		assert.Equal(t, int64(4), view.Data[0].HeldTokens)
	})

	t.Run("held tokens from the mirror when disabled", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().ListCertificatesByUser(gomock.Any(), "U1").Return(certificates, nil)
		mocks.gateway.EXPECT().Enabled().Return(false)
		mocks.store.EXPECT().ListHoldingsByUser(gomock.Any(), "U1").Return([]schema.Holding{{PropertyID: "P1", Tokens: 10}}, nil)

		view, err := mocks.service.ListCertificates(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirror, view.Source)
		assert.Equal(t, int64(10), view.Data[0].HeldTokens)
	})
}

// =============================================================================
// Audit trail
// =============================================================================

func TestListAuditTrail(t *testing.T) {
	t0 := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ledger history joined to mirror records", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldingHistory(gomock.Any(), "U1", "P1").Return([]ledger.HistoryEntry{
			{TxRef: "tx-mint", Timestamp: t0, Tokens: 100},
			{TxRef: "tx-transfer", Timestamp: t0.Add(time.Hour), Tokens: 60},
		}, nil)
		mocks.store.EXPECT().GetAuditRecordsByLedgerRefs(gomock.Any(), []string{"tx-mint", "tx-transfer"}).
			Return([]store.AuditRecordWithRef{
				{
					AuditRecord:    schema.AuditRecord{ID: "A1", Kind: domain.AuditKindMint, Note: "order O1"},
					EffectiveTxRef: strPtr("tx-mint"),
				},
			}, nil)

		view, err := mocks.service.ListAuditTrail(context.Background(), "U1", "P1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		require.Len(t, view.Data, 2)

		assert.Equal(t, "A1", view.Data[0].AuditRecordID)
		assert.Equal(t, domain.AuditKindMint, view.Data[0].Kind)
		assert.Equal(t, int64(100), view.Data[0].Amount)
		assert.Equal(t, int64(100), *view.Data[0].Balance)
		assert.Equal(t, "order O1", view.Data[0].Note)

		assert.Empty(t, view.Data[1].AuditRecordID)
		assert.Equal(t, int64(40), view.Data[1].Amount)
		assert.Equal(t, int64(60), *view.Data[1].Balance)
		assert.Equal(t, "tx-transfer", *view.Data[1].LedgerTxRef)
	})

	t.Run("every held property without a filter", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldings(gomock.Any(), "U2").Return([]ledger.Holding{
			{UserID: "U2", PropertyID: "P1", Tokens: 40},
			{UserID: "U2", PropertyID: "P2", Tokens: 3},
		}, nil)
		mocks.gateway.EXPECT().GetHoldingHistory(gomock.Any(), "U2", "P1").
			Return([]ledger.HistoryEntry{{TxRef: "tx-b", Timestamp: t0.Add(2 * time.Hour), Tokens: 40}}, nil)
		mocks.gateway.EXPECT().GetHoldingHistory(gomock.Any(), "U2", "P2").
			Return([]ledger.HistoryEntry{{TxRef: "tx-a", Timestamp: t0, Tokens: 3}}, nil)
		mocks.store.EXPECT().GetAuditRecordsByLedgerRefs(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := mocks.service.ListAuditTrail(context.Background(), "U2", "")
		require.NoError(t, err)
		require.Len(t, view.Data, 2)
		assert.Equal(t, "P2", view.Data[0].PropertyID)
		assert.Equal(t, "P1", view.Data[1].PropertyID)
	})

	t.Run("mirror records on fallback", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetHoldingHistory(gomock.Any(), "U1", "P1").Return(nil, errLedgerDown)
		mocks.store.EXPECT().ListAuditRecords(gomock.Any(), "U1", "P1").Return([]store.AuditRecordWithRef{
			{AuditRecord: schema.AuditRecord{ID: "A1", Kind: domain.AuditKindMint, PropertyID: strPtr("P1"), Amount: 100, CreatedAt: t0}},
		}, nil)

		view, err := mocks.service.ListAuditTrail(context.Background(), "U1", "P1")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirrorFallback, view.Source)
		require.Len(t, view.Data, 1)
		assert.Equal(t, "P1", view.Data[0].PropertyID)
		assert.Nil(t, view.Data[0].LedgerTxRef)
		assert.Nil(t, view.Data[0].Balance)
	})
}

// =============================================================================
// Counters
// =============================================================================

func TestGetCounters(t *testing.T) {
	mirror := &store.Counters{
		Properties:      2,
		TotalTokens:     1500,
		IssuedTokens:    100,
		RemainingTokens: 1400,
		Holders:         3,
		AuditRecords:    7,
		UnsyncedRecords: 2,
	}

	t.Run("ledger totals with mirror counters", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetCounters(gomock.Any()).Return(mirror, nil)
		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P1").Return(&ledger.Property{ID: "P1", TotalTokens: 1000, RemainingTokens: 950}, nil)
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P2").Return(&ledger.Property{ID: "P2", TotalTokens: 500, RemainingTokens: 500}, nil)

		view, err := mocks.service.GetCounters(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		assert.Equal(t, reconcile.Counters{
			Properties:      2,
			TotalTokens:     1500,
			IssuedTokens:    50,
			RemainingTokens: 1450,
			Holders:         3,
			AuditRecords:    7,
			UnsyncedRecords: 2,
		}, view.Data)
	})

	t.Run("properties unknown to the ledger are left out of ledger totals", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetCounters(gomock.Any()).Return(mirror, nil)
		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(true)
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P1").Return(nil, fmt.Errorf("%w: %w: property P1", domain.ErrLedgerRejected, domain.ErrNotFound))
		mocks.gateway.EXPECT().GetProperty(gomock.Any(), "P2").Return(&ledger.Property{ID: "P2", TotalTokens: 500, RemainingTokens: 500}, nil)

		view, err := mocks.service.GetCounters(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLedger, view.Source)
		assert.Equal(t, int64(1), view.Data.Properties)
		assert.Equal(t, int64(500), view.Data.TotalTokens)
		assert.Equal(t, int64(0), view.Data.IssuedTokens)
		assert.Equal(t, int64(500), view.Data.RemainingTokens)
		assert.Equal(t, int64(1), view.Data.UnregisteredProperties)
	})

	t.Run("mirror aggregate when disabled", func(t *testing.T) {
		mocks := setupTestService(t)
		defer tearDownTestService(mocks)

		mocks.store.EXPECT().GetCounters(gomock.Any()).Return(mirror, nil)
		mocks.store.EXPECT().ListApprovedProperties(gomock.Any()).Return(approvedProperties(), nil)
		mocks.gateway.EXPECT().Enabled().Return(false)

		view, err := mocks.service.GetCounters(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMirror, view.Source)
		assert.Equal(t, int64(100), view.Data.IssuedTokens)
		assert.Equal(t, int64(2), view.Data.UnsyncedRecords)
	})
}

// =============================================================================
// VerifySync
// =============================================================================

func TestVerifySync(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	properties := []store.SyncStatus{
		{ID: "P1", Label: "Harbour Loft"},
		{ID: "P2", Label: "Hillside Villa", LedgerTxRef: strPtr("tx-init-p2")},
		{ID: "P4", Label: "Dock Street", LedgerTxRef: strPtr("tx-init-p4")},
	}
	mints := []store.SyncStatus{
		{ID: "A1", Label: "order:O1", LedgerTxRef: strPtr("tx-o1")},
	}

	mocks.store.EXPECT().ListPropertySyncStatus(gomock.Any()).Return(properties, nil).Times(2)
	mocks.store.EXPECT().ListCertificateSyncStatus(gomock.Any()).Return(nil, nil).Times(2)
	mocks.store.EXPECT().ListMintRecordSyncStatus(gomock.Any()).Return(mints, nil).Times(2)
	mocks.gateway.EXPECT().Enabled().Return(true).Times(2)

	report, err := mocks.service.VerifySync(context.Background())
	require.NoError(t, err)
	assert.True(t, report.LedgerEnabled)

	assert.Equal(t, 3, report.Properties.Total)
	assert.Equal(t, 2, report.Properties.Synced)
	assert.Equal(t, 1, report.Properties.Pending)
	assert.Equal(t, 66.67, report.Properties.SyncRate)
	assert.False(t, report.Properties.Records[0].Synced)

	assert.Equal(t, 0, report.Certificates.Total)
	assert.Equal(t, float64(0), report.Certificates.SyncRate)
	assert.Empty(t, report.Certificates.Records)

	assert.Equal(t, 100.0, report.MintRecords.SyncRate)

	again, err := mocks.service.VerifySync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestVerifySync_RejectedRecords(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	rejected := string(domain.SyncFailureLedgerRejected)
	mints := []store.SyncStatus{
		{ID: "A1", Label: "mint-a", FailureReason: &rejected},
		{ID: "A2", Label: "mint-b"},
		{ID: "A3", Label: "mint-c", LedgerTxRef: strPtr("tx-c")},
	}

	mocks.store.EXPECT().ListPropertySyncStatus(gomock.Any()).Return(nil, nil)
	mocks.store.EXPECT().ListCertificateSyncStatus(gomock.Any()).Return(nil, nil)
	mocks.store.EXPECT().ListMintRecordSyncStatus(gomock.Any()).Return(mints, nil)
	mocks.gateway.EXPECT().Enabled().Return(true)

	report, err := mocks.service.VerifySync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.MintRecords.Total)
	assert.Equal(t, 1, report.MintRecords.Synced)
	assert.Equal(t, 2, report.MintRecords.Pending)
	assert.Equal(t, 1, report.MintRecords.Rejected)

	assert.True(t, report.MintRecords.Records[0].Rejected)
	require.NotNil(t, report.MintRecords.Records[0].FailureReason)
	assert.Equal(t, rejected, *report.MintRecords.Records[0].FailureReason)
	assert.False(t, report.MintRecords.Records[1].Rejected)
	assert.Nil(t, report.MintRecords.Records[1].FailureReason)
}

func TestVerifySync_StoreFailure(t *testing.T) {
	mocks := setupTestService(t)
	defer tearDownTestService(mocks)

	mocks.store.EXPECT().ListPropertySyncStatus(gomock.Any()).Return(nil, errors.New("connection reset"))

	report, err := mocks.service.VerifySync(context.Background())
	assert.ErrorContains(t, err, "failed to verify properties")
	assert.Nil(t, report)
}
