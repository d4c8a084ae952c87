package schema

import (
	"time"
)

// Owner represents the owners table - L1 holders of persona tokens
type Owner struct {
	// Address is the lower-case hex address of the owner
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Balance is the number of personas currently owned
	Balance uint64 `gorm:"column:balance;not null"`
	// CreatedAt is the timestamp when this owner was first seen
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this owner was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Owner model
func (Owner) TableName() string {
	return "owners"
}

// User represents the users table - L2 holders of mirrored personas and their delegations
type User struct {
	// Address is the lower-case hex address of the user
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Balance is the number of mirrored personas currently owned
	Balance uint64 `gorm:"column:balance;not null"`
	// Authorizations lists the authorization IDs granted by this user
	Authorizations Keys `gorm:"column:authorizations;not null"`
	// Impersonations lists the impersonation IDs held by this user
	Impersonations Keys `gorm:"column:impersonations;not null"`
	// CreatedAt is the timestamp when this user was first seen
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// NewUser returns a user row with empty relation lists
func NewUser(address string, balance uint64) *User {
	return &User{
		Address:        address,
		Balance:        balance,
		Authorizations: NewKeys(),
		Impersonations: NewKeys(),
	}
}
