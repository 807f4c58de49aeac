package schema

import "time"

// Wallet represents the wallets table - a user's cash balance used to pay orders
type Wallet struct {
	// UserID is the wallet owner and primary key
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// BalanceCents is never negative
	BalanceCents int64 `gorm:"column:balance_cents;not null;default:0"`
	// CreatedAt is the timestamp when this wallet was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this wallet was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
