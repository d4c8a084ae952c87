package schema

import (
	"time"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// Persona represents the personas table - one row per persona token per layer
type Persona struct {
	// Layer is the side of the bridge this row mirrors (l1 registry or l2 mirror)
	Layer domain.Layer `gorm:"column:layer;primaryKey;type:text;index:idx_personas_layer_owner,priority:1"`
	// ID is the persona token ID as a decimal string
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Owner is the current owner address
	Owner string `gorm:"column:owner;not null;type:text;index:idx_personas_layer_owner,priority:2"`
	// URI is the token metadata URI (L1 only, nil when never fetched)
	URI *string `gorm:"column:uri;type:text"`
	// Authorizations lists the authorization IDs attached to this persona (L2 only)
	Authorizations Keys `gorm:"column:authorizations;not null"`
	// Impersonations lists the impersonation IDs attached to this persona (L2 only)
	Impersonations Keys `gorm:"column:impersonations;not null"`
	// LastBridgeNonce is the nonce carried by the last bridge message applied to this persona (L2 only)
	LastBridgeNonce *string `gorm:"column:last_bridge_nonce;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Persona model
func (Persona) TableName() string {
	return "personas"
}

// NewPersona returns a persona row with empty relation lists
func NewPersona(layer domain.Layer, id string) *Persona {
	return &Persona{
		Layer:          layer,
		ID:             id,
		Authorizations: NewKeys(),
		Impersonations: NewKeys(),
	}
}
