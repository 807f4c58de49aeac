package schema

import "time"

// Holding represents the holdings table - a user's tokens of one property
type Holding struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the holder
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_holdings_user_property,priority:1"`
	// PropertyID references the property
	PropertyID string `gorm:"column:property_id;not null;type:text;uniqueIndex:idx_holdings_user_property,priority:2"`
	// Tokens is never negative
	Tokens int64 `gorm:"column:tokens;not null"`
	// CreatedAt is the timestamp of the first mint or transfer into this holding
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this holding was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Holding model
func (Holding) TableName() string {
	return "holdings"
}
