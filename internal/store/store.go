package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

// Store defines the interface for mirror database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Reads
	// =============================================================================

	// GetProperty retrieves a property by ID, nil when absent
	GetProperty(ctx context.Context, propertyID string) (*schema.Property, error)
	// ListApprovedProperties retrieves approved properties with their owners, ordered by ID
	ListApprovedProperties(ctx context.Context) ([]schema.Property, error)
	// ListPropertiesByIDs retrieves properties keyed by ID
	ListPropertiesByIDs(ctx context.Context, propertyIDs []string) (map[string]schema.Property, error)
	// GetHolding retrieves a user's holding of a property, nil when absent
	GetHolding(ctx context.Context, userID, propertyID string) (*schema.Holding, error)
	// ListHoldingsByUser retrieves a user's non-empty holdings ordered by property ID
	ListHoldingsByUser(ctx context.Context, userID string) ([]schema.Holding, error)
	// GetWallet retrieves a user's wallet, nil when absent
	GetWallet(ctx context.Context, userID string) (*schema.Wallet, error)
	// ListCertificatesByUser retrieves a user's certificates, newest first
	ListCertificatesByUser(ctx context.Context, userID string) ([]schema.Certificate, error)
	// ListAuditRecords retrieves a user's audit records in creation order, optionally for one property
	ListAuditRecords(ctx context.Context, userID string, propertyID string) ([]AuditRecordWithRef, error)
	// GetAuditRecordsByLedgerRefs retrieves audit records whose effective ledger reference is in refs
	GetAuditRecordsByLedgerRefs(ctx context.Context, refs []string) ([]AuditRecordWithRef, error)
	// GetAuditRecord retrieves the audit record of a settlement key and kind, nil when absent
	GetAuditRecord(ctx context.Context, settlementKey string, kind domain.AuditKind) (*schema.AuditRecord, error)
	// GetCounters aggregates mirror totals
	GetCounters(ctx context.Context) (*Counters, error)

	// =============================================================================
	// Settlements
	// =============================================================================

	// SettleMint applies a mint in one transaction: supply decrement, holding upsert and audit record
	SettleMint(ctx context.Context, input SettleMintInput) (*schema.AuditRecord, error)
	// ClaimOrder moves a pending order to settling
	ClaimOrder(ctx context.Context, orderID string) (*schema.Order, error)
	// ReleaseOrder moves a settling order back to pending
	ReleaseOrder(ctx context.Context, orderID string) error
	// SettleOrder settles a claimed order in one transaction: wallet debit, withdrawal record,
	// mint, certificate and order issuance
	SettleOrder(ctx context.Context, input SettleOrderInput) (*SettleOrderOutput, error)
	// SettleTransfer applies a transfer in one transaction: debit, credit and audit record
	SettleTransfer(ctx context.Context, input SettleTransferInput) (*schema.AuditRecord, error)
	// SetPropertyLedgerRef stamps the InitProperty transaction on a property without one
	SetPropertyLedgerRef(ctx context.Context, propertyID string, ref string) error

	// =============================================================================
	// Ledger sync
	// =============================================================================

	// ListPropertySyncStatus lists approved properties with their ledger reference
	ListPropertySyncStatus(ctx context.Context) ([]SyncStatus, error)
	// ListCertificateSyncStatus lists certificates with their effective ledger reference
	ListCertificateSyncStatus(ctx context.Context) ([]SyncStatus, error)
	// ListMintRecordSyncStatus lists mint audit records with their effective ledger reference
	ListMintRecordSyncStatus(ctx context.Context) ([]SyncStatus, error)
	// ListUnregisteredProperties lists approved properties that have no ledger reference
	ListUnregisteredProperties(ctx context.Context, limit int) ([]schema.Property, error)
	// ListUnsyncedAuditRecords lists mint and transfer records created before olderThan that have
	// no effective ledger reference and no recorded refusal, on properties that exist on the ledger,
	// in creation order
	ListUnsyncedAuditRecords(ctx context.Context, olderThan time.Time, limit int) ([]schema.AuditRecord, error)
	// CreateSyncReceipt records a later ledger confirmation of an audit record
	CreateSyncReceipt(ctx context.Context, auditRecordID string, ref string) error
	// CreateSyncFailure records that the ledger refused an audit record's resubmission
	CreateSyncFailure(ctx context.Context, auditRecordID string, reason domain.SyncFailureReason, message string) error
}

// SettleMintInput represents the input for a mint settlement
type SettleMintInput struct {
	SettlementKey string
	PropertyID    string
	UserID        string
	Tokens        int64
	LedgerTxRef   *string
	Note          string
	Meta          datatypes.JSON
}

// SettleOrderInput represents the input for an order settlement
type SettleOrderInput struct {
	OrderID     string
	LedgerTxRef *string
	Note        string
	Meta        datatypes.JSON
	// SettledAt stamps the order and its certificate
	SettledAt time.Time
}

// SettleOrderOutput represents the records created by an order settlement
type SettleOrderOutput struct {
	Order       schema.Order
	Withdrawal  schema.AuditRecord
	Mint        schema.AuditRecord
	Certificate schema.Certificate
}

// SettleTransferInput represents the input for a transfer settlement
type SettleTransferInput struct {
	SettlementKey string
	PropertyID    string
	FromUserID    string
	ToUserID      string
	Tokens        int64
	LedgerTxRef   *string
	Note          string
	Meta          datatypes.JSON
}

// AuditRecordWithRef is an audit record with the ledger reference from either the record or a
// later sync receipt
type AuditRecordWithRef struct {
	schema.AuditRecord
	EffectiveTxRef *string `gorm:"column:effective_tx_ref"`
}

// Counters holds mirror aggregates
type Counters struct {
	Properties      int64 `gorm:"column:properties"`
	TotalTokens     int64 `gorm:"column:total_tokens"`
	IssuedTokens    int64 `gorm:"column:issued_tokens"`
	RemainingTokens int64 `gorm:"column:remaining_tokens"`
	Holders         int64 `gorm:"column:holders"`
	AuditRecords    int64 `gorm:"column:audit_records"`
	UnsyncedRecords int64 `gorm:"column:unsynced_records"`
}

// SyncStatus is one record of a sync verification
type SyncStatus struct {
	ID          string    `gorm:"column:id"`
	Label       string    `gorm:"column:label"`
	LedgerTxRef *string   `gorm:"column:ledger_tx_ref"`
	CreatedAt   time.Time `gorm:"column:created_at"`

	// FailureReason is set when the ledger refused the record's resubmission
	FailureReason *string `gorm:"column:failure_reason"`
}

// Synced reports whether the record has a ledger reference
func (s SyncStatus) Synced() bool {
	return s.LedgerTxRef != nil && *s.LedgerTxRef != ""
}

// Rejected reports whether the record is unsynced and will not be resubmitted
func (s SyncStatus) Rejected() bool {
	return !s.Synced() && s.FailureReason != nil
}
