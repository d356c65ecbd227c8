package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"moneytracker/internal/config"
	"moneytracker/internal/kvstore"
)

func TestOpenKV(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, err := OpenKV(ctx, &config.Config{StoreBackend: config.BackendMemory})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer kv.Close()
		if _, err := kv.Get(ctx, "lists_v1"); err != kvstore.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("sqlite_with_prefix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kv.db")
		kv, err := OpenKV(ctx, &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path, KeyPrefix: "test:"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer kv.Close()

		if _, ok := kv.(*kvstore.Prefixed); !ok {
			t.Fatalf("expected prefixed store, got %T", kv)
		}
		if err := kv.Set(ctx, "cards_v1", []byte("[]")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := kv.Get(ctx, "cards_v1")
		if err != nil || string(got) != "[]" {
			t.Errorf("expected [] back, got %q (%v)", got, err)
		}
	})

	t.Run("unknown_backend", func(t *testing.T) {
		if _, err := OpenKV(ctx, &config.Config{StoreBackend: "etcd"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestOpenKVReadOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_sqlite_file_is_not_created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.db")
		kv, err := OpenKVReadOnly(ctx, &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer kv.Close()

		if _, err := kv.Get(ctx, "lists_v1"); !errors.Is(err, kvstore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected no database file, stat returned %v", err)
		}
	})

	t.Run("unmigrated_database_is_left_alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bare.db")
		cfg := &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path}
		bare, err := NewManager(NewConfig(cfg))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bare.DB().Exec("CREATE TABLE other (id INTEGER)").Error; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		kv, err := OpenKVReadOnly(ctx, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer kv.Close()

		if bare.DB().Migrator().HasTable(&kvstore.Entry{}) {
			t.Error("read-only open must not create kv_entries")
		}
		_ = bare.KVStore().Close()
	})

	t.Run("migrated_database_is_read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kv.db")
		cfg := &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path, KeyPrefix: "p:"}
		writer, err := OpenKV(ctx, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := writer.Set(ctx, "lists_v1", []byte("[]")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = writer.Close()

		kv, err := OpenKVReadOnly(ctx, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer kv.Close()
		got, err := kv.Get(ctx, "lists_v1")
		if err != nil || string(got) != "[]" {
			t.Errorf("expected [] back, got %q (%v)", got, err)
		}
	})
}
