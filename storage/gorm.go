package storage

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted collection, stored whole as a JSON blob under its
// key. Rewriting the full value on every mutation keeps the substrate's
// per-key put atomicity as the only consistency requirement.
type Entry struct {
	Key   string         `gorm:"primaryKey;size:64;column:entry_key"`
	Value datatypes.JSON `gorm:"column:value"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormStore persists entries through GORM (SQLite for single-device use,
// MySQL when pointed at a server).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).Where(&Entry{Key: key}).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(e.Value), nil
}

func (s *GormStore) Save(ctx context.Context, key string, payload []byte) error {
	e := Entry{Key: key, Value: datatypes.JSON(payload)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&e).Error
}
