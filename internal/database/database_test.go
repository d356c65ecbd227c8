package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"moneytracker/internal/config"
)

func TestNewManager(t *testing.T) {
	t.Run("sqlite_creates_kv_table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "store.db")
		m, err := NewManager(&Config{Driver: config.BackendSQLite, SQLitePath: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.RunMigrations(); err != nil {
			t.Fatalf("unexpected migration error: %v", err)
		}

		kv := m.KVStore()
		defer kv.Close()
		if err := kv.Set(context.Background(), "lists_v1", []byte("[]")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := kv.Get(context.Background(), "lists_v1")
		if err != nil || string(got) != "[]" {
			t.Errorf("expected [] back, got %q (%v)", got, err)
		}
	})

	t.Run("unsupported_driver", func(t *testing.T) {
		if _, err := NewManager(&Config{Driver: config.BackendRedis}); err == nil {
			t.Fatal("expected error for redis driver")
		}
	})
}

func TestConfig(t *testing.T) {
	cfg := NewConfig(&config.Config{
		StoreBackend: config.BackendPostgres,
		DBHost:       "db",
		DBPort:       "5432",
		DBUser:       "u",
		DBPassword:   "p",
		DBName:       "n",
		DBSSLMode:    "disable",
	})

	if !strings.Contains(cfg.DSN(), "host=db") {
		t.Errorf("unexpected DSN %s", cfg.DSN())
	}
	if cfg.MigrateURL() != "postgres://u:p@db:5432/n?sslmode=disable" {
		t.Errorf("unexpected migrate URL %s", cfg.MigrateURL())
	}
}
