package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the kv_entries table.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name shared with the SQL migrations.
func (Entry) TableName() string { return "kv_entries" }

// Gorm stores blobs in a SQL table through GORM. It works on any dialect GORM
// supports; the application uses SQLite locally and Postgres when hosted.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an open database. The kv_entries table must already exist.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	return upsert(g.db.WithContext(ctx), key, value)
}

// SetMany writes every value inside one transaction.
func (g *Gorm) SetMany(ctx context.Context, values map[string][]byte) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range sortedKeys(values) {
			if err := upsert(tx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, key string, value []byte) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
