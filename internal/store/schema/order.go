package schema

import (
	"time"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// Order represents the orders table - a paid request for tokens awaiting settlement
type Order struct {
	// ID is the order identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// UserID references the buyer
	UserID string `gorm:"column:user_id;not null;type:text"`
	// PropertyID references the property being bought
	PropertyID string `gorm:"column:property_id;not null;type:text"`
	// Tokens is the number of tokens to issue
	Tokens int64 `gorm:"column:tokens;not null"`
	// AmountCents is debited from the buyer's wallet on settlement
	AmountCents int64 `gorm:"column:amount_cents;not null"`
	// Status moves pending -> settling -> issued, or back to pending when settlement fails
	Status domain.OrderStatus `gorm:"column:status;not null;type:text;default:pending"`
	// SettledAt is set once the order is issued
	SettledAt *time.Time `gorm:"column:settled_at;type:timestamptz"`
	// CreatedAt is the timestamp when this order was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this order was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
