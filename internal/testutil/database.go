// Package testutil provides test helpers for setting up in-memory snapshot
// stores and SQLite key-value tables, creating fixtures, and making assertions.
package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moneytracker/internal/kvstore"
	"moneytracker/internal/snapshot"
)

var dbCounter atomic.Int64

// SetupTestDB creates an in-memory SQLite database with the key-value table
// migrated. Each call gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&kvstore.Entry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// NewTestStore opens a snapshot store over a fresh in-memory backend and
// applies the default list and seed categories, as startup would.
func NewTestStore(t *testing.T) (*snapshot.Store, *kvstore.Memory) {
	t.Helper()

	kv := kvstore.NewMemory()
	store, err := snapshot.Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("failed to open snapshot store: %v", err)
	}

	err = store.Update(func(s *snapshot.State) error {
		s.EnsureDefaultList()
		s.SeedCategories()
		snapshot.Reconcile(s)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to initialise snapshot store: %v", err)
	}

	return store, kv
}
