package schema

import (
	"time"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// LedgerSyncFailure represents the ledger_sync_failures table - a mirror-only audit record
// that the ledger refused on resubmission
type LedgerSyncFailure struct {
	// AuditRecordID references the refused record
	AuditRecordID string `gorm:"column:audit_record_id;primaryKey;type:varchar(26)"`
	// Reason classifies the refusal
	Reason domain.SyncFailureReason `gorm:"column:reason;not null;type:text"`
	// Error is the ledger's message
	Error string `gorm:"column:error;not null;default:'';type:text"`
	// CreatedAt is the timestamp of the refusal
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerSyncFailure model
func (LedgerSyncFailure) TableName() string {
	return "ledger_sync_failures"
}
