package schema

import "time"

// User represents the users table - the subset of an account the mirror needs for display
type User struct {
	// ID is the account identifier shared with the ledger
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Email is shown next to supply and holdings listings
	Email string `gorm:"column:email;not null;type:text;uniqueIndex"`
	// DisplayName is the human readable account name
	DisplayName string `gorm:"column:display_name;not null;type:text"`
	// CreatedAt is the timestamp when this user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
