package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// AuditRecord represents the audit_records table - one immutable row per settlement step
type AuditRecord struct {
	// ID is a ULID, time-sortable
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// SettlementKey identifies the business event; unique together with Kind
	SettlementKey string `gorm:"column:settlement_key;not null;type:text;uniqueIndex:idx_audit_records_settlement,priority:1"`
	// Kind is mint, transfer, deposit or withdrawal
	Kind domain.AuditKind `gorm:"column:kind;not null;type:text;uniqueIndex:idx_audit_records_settlement,priority:2"`
	// UserID is the receiving user for mints, the sender for transfers
	UserID string `gorm:"column:user_id;not null;type:text"`
	// PropertyID is nil for cash-only records
	PropertyID *string `gorm:"column:property_id;type:text"`
	// CounterpartyID is the receiver of a transfer
	CounterpartyID *string `gorm:"column:counterparty_id;type:text"`
	// Amount is tokens for mint and transfer, cents for deposit and withdrawal
	Amount int64 `gorm:"column:amount;not null"`
	// LedgerTxRef is nil when the step was settled off-chain only
	LedgerTxRef *string `gorm:"column:ledger_tx_ref;type:text"`
	// Note is free text supplied by the caller
	Note string `gorm:"column:note;not null;type:text;default:''"`
	// Meta holds the settlement context and outcome
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AuditRecord model
func (AuditRecord) TableName() string {
	return "audit_records"
}

// AuditMeta is the JSON document stored in AuditRecord.Meta
type AuditMeta struct {
	Context domain.SettlementContext `json:"context,omitempty"`
	Outcome domain.Outcome           `json:"outcome,omitempty"`
	Reason  domain.UnsyncedReason    `json:"reason,omitempty"`
	OrderID string                   `json:"order_id,omitempty"`
}
