package services

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/adiashrafff-private/calorie-trackerv1/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence port for the tracker's keyed JSON records.
//
// Load fills out from the stored record and reports whether it succeeded.
// A missing record and an unparsable one both return false — corruption is
// logged, never surfaced — and the caller falls back to its default for that
// key. Save and Delete are fire-and-forget: failures are logged and must
// never take the tracker down.
type Store interface {
	Load(key string, out any) bool
	Save(key string, v any)
	Delete(key string)
}

// RecordStore keeps each record as one row in the local database.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) Load(key string, out any) bool {
	var rec models.Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		log.Printf("Failed to parse %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

func (s *RecordStore) Save(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %s: %v", key, err)
		return
	}
	rec := models.Record{Key: key, Value: datatypes.JSON(b)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		log.Printf("Failed to save %s: %v", key, err)
	}
}

func (s *RecordStore) Delete(key string) {
	if err := s.db.Delete(&models.Record{}, "key = ?", key).Error; err != nil {
		log.Printf("Failed to delete %s: %v", key, err)
	}
}

// MemoryStore implements the same port without a database. Used by tests and
// handy for throwaway runs.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string, out any) bool {
	s.mu.Lock()
	b, ok := s.records[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Printf("Failed to parse %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

func (s *MemoryStore) Save(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %s: %v", key, err)
		return
	}
	s.mu.Lock()
	s.records[key] = b
	s.mu.Unlock()
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
}
