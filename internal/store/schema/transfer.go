package schema

import (
	"time"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// Transfer represents the transfers table - immutable log of ownership changes per layer
type Transfer struct {
	// Layer is the side of the bridge that emitted the transfer
	Layer domain.Layer `gorm:"column:layer;primaryKey;type:text;index:idx_transfers_layer_persona,priority:1"`
	// ID is derived from the transaction hash and log index (txHash:0xlogIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Persona is the persona token ID
	Persona string `gorm:"column:persona;not null;type:text;index:idx_transfers_layer_persona,priority:2"`
	// From is the previous owner (zero address for mints)
	From string `gorm:"column:from_address;not null;type:text"`
	// To is the new owner (zero address for burns)
	To string `gorm:"column:to_address;not null;type:text"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	// Block is the block number
	Block uint64 `gorm:"column:block;not null"`
	// TransactionHash is the hash of the emitting transaction
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
