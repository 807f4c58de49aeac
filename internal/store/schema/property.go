package schema

import (
	"time"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// Property represents the properties table - mirror of the ledger supply record plus listing data
type Property struct {
	// ID is the property identifier shared with the ledger
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Title is the listing title
	Title string `gorm:"column:title;not null;type:text"`
	// OwnerID references the listing owner
	OwnerID string `gorm:"column:owner_id;not null;type:text"`
	// PriceCents is the listing price in cents
	PriceCents int64 `gorm:"column:price_cents;not null"`
	// Status is the approval status: pending, approved, rejected
	Status domain.PropertyStatus `gorm:"column:status;not null;type:text;default:pending"`
	// TotalTokens is fixed at creation
	TotalTokens int64 `gorm:"column:total_tokens;not null"`
	// RemainingTokens only decreases, through mints
	RemainingTokens int64 `gorm:"column:remaining_tokens;not null"`
	// LedgerTxRef is the InitProperty transaction, nil until the property exists on the ledger
	LedgerTxRef *string `gorm:"column:ledger_tx_ref;type:text"`
	// CreatedAt is the timestamp when this property was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this property was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Owner User `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "properties"
}

// IssuedTokens returns the number of tokens already minted
func (p Property) IssuedTokens() int64 {
	return p.TotalTokens - p.RemainingTokens
}
