package schema

import (
	"time"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// ProcessedEvent records every event the projector has applied, keyed like the event itself.
// A row is written in the same transaction as the event's effects.
type ProcessedEvent struct {
	// Layer is the side of the bridge that emitted the event
	Layer domain.Layer `gorm:"column:layer;primaryKey;type:text"`
	// ID is the event ID (txHash:0xlogIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Kind is the event kind
	Kind domain.EventKind `gorm:"column:kind;not null;type:text"`
	// Block is the block number of the event
	Block uint64 `gorm:"column:block;not null"`
	// CreatedAt is the timestamp when the event was applied
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the ProcessedEvent model
func (ProcessedEvent) TableName() string {
	return "processed_events"
}
