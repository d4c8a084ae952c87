package schema

import (
	"time"
)

// Authorization represents the authorizations table - a grant letting a consumer
// call a restricted set of functions on behalf of a user for one persona
type Authorization struct {
	// ID is derived from the transaction hash and log index (txHash:0xlogIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Persona is the persona token ID
	Persona string `gorm:"column:persona;not null;type:text;index"`
	// User is the granting user address
	User string `gorm:"column:user_address;not null;type:text;index"`
	// Consumer is the authorized consumer address
	Consumer string `gorm:"column:consumer;not null;type:text"`
	// FnSignatures holds the 4-byte function selectors as 0x hex strings
	FnSignatures Keys `gorm:"column:fn_signatures;not null"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Authorization model
func (Authorization) TableName() string {
	return "authorizations"
}

// Impersonation represents the impersonations table - an active impersonation of
// a user by a consumer on one persona
type Impersonation struct {
	// ID is persona:user:consumer
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Persona is the persona token ID
	Persona string `gorm:"column:persona;not null;type:text;index"`
	// User is the impersonated user address
	User string `gorm:"column:user_address;not null;type:text;index"`
	// Consumer is the impersonating consumer address
	Consumer string `gorm:"column:consumer;not null;type:text"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Impersonation model
func (Impersonation) TableName() string {
	return "impersonations"
}

// Matches reports whether the impersonation belongs to the given triple
func (i *Impersonation) Matches(persona, user, consumer string) bool {
	return i.Persona == persona && i.User == user && i.Consumer == consumer
}
