package domain

import (
	"fmt"
	"strings"
)

// Source identifies which store answered a read
type Source string

const (
	// SourceLedger means the ledger answered
	SourceLedger Source = "ledger"
	// SourceMirror means the ledger is disabled and the mirror answered
	SourceMirror Source = "mirror"
	// SourceMirrorFallback means the ledger read failed and the mirror answered instead
	SourceMirrorFallback Source = "mirror_fallback"
)

// Outcome is the result class of a settlement
type Outcome string

const (
	// OutcomeSynced means both the ledger and the mirror were updated
	OutcomeSynced Outcome = "synced"
	// OutcomeMirrorOnly means only the mirror was updated and the record carries no ledger reference
	OutcomeMirrorOnly Outcome = "mirror_only"
)

// UnsyncedReason explains why a settlement ended mirror-only
type UnsyncedReason string

const (
	ReasonNone              UnsyncedReason = ""
	ReasonLedgerDisabled    UnsyncedReason = "ledger_disabled"
	ReasonLedgerUnavailable UnsyncedReason = "ledger_unavailable"
	ReasonLedgerRejected    UnsyncedReason = "ledger_rejected"
)

// SyncFailureReason explains why a mirror-only record will not be resubmitted to the ledger
type SyncFailureReason string

const (
	// SyncFailureLedgerRejected means the contract refused the resubmission
	SyncFailureLedgerRejected SyncFailureReason = "ledger_rejected"
	// SyncFailureInvalidRecord means the record has no ledger operation or lacks a party
	SyncFailureInvalidRecord SyncFailureReason = "invalid_record"
)

// SettlementContext is the business flow that triggered a mint
type SettlementContext string

const (
	ContextOrder     SettlementContext = "order"
	ContextAdminMint SettlementContext = "admin_mint"
	ContextOwnerMint SettlementContext = "owner_mint"
	ContextTestMint  SettlementContext = "test_mint"
	ContextTransfer  SettlementContext = "transfer"
)

// ParseSettlementContext parses a settlement context name
func ParseSettlementContext(s string) (SettlementContext, error) {
	c := SettlementContext(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown settlement context %q", ErrInvalidInput, s)
	}
	return c, nil
}

// Valid reports whether c is a known settlement context
func (c SettlementContext) Valid() bool {
	switch c {
	case ContextOrder, ContextAdminMint, ContextOwnerMint, ContextTestMint, ContextTransfer:
		return true
	}
	return false
}

// Policy decides how a settlement behaves when the ledger cannot be reached
type Policy string

const (
	// PolicyDegrade applies the mirror change without a ledger reference
	PolicyDegrade Policy = "degrade"
	// PolicyStrict aborts the settlement without touching the mirror
	PolicyStrict Policy = "strict"
)

// AuditKind classifies an audit record
type AuditKind string

const (
	AuditKindMint       AuditKind = "mint"
	AuditKindTransfer   AuditKind = "transfer"
	AuditKindDeposit    AuditKind = "deposit"
	AuditKindWithdrawal AuditKind = "withdrawal"
)

// PropertyStatus is the listing status of a mirror property
type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusRejected PropertyStatus = "rejected"
)

// OrderStatus is the lifecycle state of a purchase order
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusSettling OrderStatus = "settling"
	OrderStatusIssued   OrderStatus = "issued"
	OrderStatusFailed   OrderStatus = "failed"
)

// ReadCategory names one of the reconciled read views
type ReadCategory string

const (
	CategorySupply       ReadCategory = "supply"
	CategoryHoldings     ReadCategory = "holdings"
	CategoryCertificates ReadCategory = "certificates"
	CategoryAuditTrail   ReadCategory = "audit_trail"
	CategoryCounters     ReadCategory = "counters"
)
