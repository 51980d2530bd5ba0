package cart

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Store persists cart snapshots. A snapshot is the JSON-serialized
// array of line items, written whole on every mutation.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// SnapshotRecord is the database row backing one stored cart.
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey"`
	Payload   string    `gorm:"not null"`
	UpdatedAt time.Time
}

func (SnapshotRecord) TableName() string { return "cart_snapshots" }

// GormStore keeps snapshots in the application database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(key string) ([]byte, error) {
	var rec SnapshotRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(rec.Payload), nil
}

func (s *GormStore) Save(key string, data []byte) error {
	rec := SnapshotRecord{Key: key, Payload: string(data)}
	return s.db.Save(&rec).Error
}

// MemoryStore is an in-process store used by tests.
type MemoryStore struct {
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: map[string][]byte{}}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	return s.snapshots[key], nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.snapshots[key] = append([]byte(nil), data...)
	return nil
}
