package models

import "time"

// KVEntry is the persistence substrate backing the metric ledgers: one
// row per storage key, holding an entire JSON-encoded collection.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
