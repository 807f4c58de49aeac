package schema

import "time"

// Certificate represents the certificates table - proof of ownership issued with a settled order
type Certificate struct {
	// ID is a ULID
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// OrderID references the settled order; one certificate per order
	OrderID string `gorm:"column:order_id;not null;type:text;uniqueIndex"`
	// UserID references the holder
	UserID string `gorm:"column:user_id;not null;type:text"`
	// PropertyID references the property
	PropertyID string `gorm:"column:property_id;not null;type:text"`
	// Tokens is the number of tokens issued with the order
	Tokens int64 `gorm:"column:tokens;not null"`
	// Serial is the printed certificate number
	Serial string `gorm:"column:serial;not null;type:text;uniqueIndex"`
	// AuditRecordID references the mint record of the order
	AuditRecordID string `gorm:"column:audit_record_id;not null;type:varchar(26)"`
	// LedgerTxRef is the mint transaction, nil when issued off-chain only
	LedgerTxRef *string `gorm:"column:ledger_tx_ref;type:text"`
	// IssuedAt is the settlement timestamp
	IssuedAt time.Time `gorm:"column:issued_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Certificate model
func (Certificate) TableName() string {
	return "certificates"
}
