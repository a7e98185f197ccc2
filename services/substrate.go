package services

import (
	"errors"
	"sync"

	"github.com/OtaoDavis/Tfit-app/models"

	"gorm.io/gorm"
)

// Substrate is the key→string store the ledgers and goal preferences
// flush to. One key holds an entire JSON-encoded collection.
type Substrate interface {
	Read(key string) (value string, ok bool, err error)
	Write(key, value string) error
	Delete(key string) error
}

// GormSubstrate keeps each collection as a row in the kv_entries table.
type GormSubstrate struct {
	db *gorm.DB
}

func NewGormSubstrate(db *gorm.DB) *GormSubstrate {
	return &GormSubstrate{db: db}
}

func (s *GormSubstrate) Read(key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormSubstrate) Write(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.
		Where("key = ?", key).
		Assign(models.KVEntry{Value: value}).
		FirstOrCreate(&entry).Error
}

func (s *GormSubstrate) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.KVEntry{}).Error
}

// MemorySubstrate backs the ledgers without a database; used in tests
// and local development.
type MemorySubstrate struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{data: make(map[string]string)}
}

func (s *MemorySubstrate) Read(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemorySubstrate) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemorySubstrate) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
