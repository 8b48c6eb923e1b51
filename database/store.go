package database

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection, stored as a JSON blob under its key.
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}

// Store is a durable key-value store with JSON values. Reads that fail for
// any reason leave the caller's default in place; writes are best-effort.
// Failures never propagate to callers.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Read unmarshals the value stored under key into dest. The caller
// pre-fills dest with its default; a missing key, query failure, or corrupt
// value leaves it untouched.
func (s *Store) Read(ctx context.Context, key string, dest interface{}) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("store read failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := json.Unmarshal([]byte(rec.Value), dest); err != nil {
		s.logger.Warn("store value corrupt", zap.String("key", key), zap.Error(err))
	}
}

// Write marshals value and upserts it under key. Failures are logged and
// swallowed.
func (s *Store) Write(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("store marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	rec := Record{Key: key, Value: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		s.logger.Error("store write failed", zap.String("key", key), zap.Error(err))
	}
}

// Has reports whether anything has ever been written under key.
func (s *Store) Has(ctx context.Context, key string) bool {
	var count int64
	err := s.db.WithContext(ctx).Model(&Record{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		s.logger.Warn("store probe failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return count > 0
}
