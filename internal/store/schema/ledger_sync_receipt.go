package schema

import "time"

// LedgerSyncReceipt represents the ledger_sync_receipts table - a later ledger confirmation
// of an audit record that was settled off-chain only
type LedgerSyncReceipt struct {
	// AuditRecordID references the confirmed record
	AuditRecordID string `gorm:"column:audit_record_id;primaryKey;type:varchar(26)"`
	// LedgerTxRef is the transaction produced by the resubmission
	LedgerTxRef string `gorm:"column:ledger_tx_ref;not null;type:text"`
	// CreatedAt is the timestamp of the confirmation
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerSyncReceipt model
func (LedgerSyncReceipt) TableName() string {
	return "ledger_sync_receipts"
}
