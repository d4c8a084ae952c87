package schema

import "time"

// KeyValueStore stores arbitrary key-value pairs for indexer state.
// Used for the per-layer block cursors of the emitters.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

// All returns every model managed by the indexer, in migration order
func All() []interface{} {
	return []interface{}{
		&Persona{},
		&Owner{},
		&User{},
		&Transfer{},
		&Authorization{},
		&Impersonation{},
		&ProcessedEvent{},
		&KeyValueStore{},
	}
}
