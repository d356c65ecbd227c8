package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"moneytracker/internal/config"
	"moneytracker/internal/kvstore"
	"moneytracker/internal/logger"
)

// OpenKV opens the snapshot backend named by cfg.StoreBackend, migrating SQL
// backends first, and applies cfg.KeyPrefix. Callers own the returned store
// and must Close it.
func OpenKV(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	var kv kvstore.Store

	switch cfg.StoreBackend {
	case config.BackendMemory:
		kv = kvstore.NewMemory()
	case config.BackendSQLite, config.BackendPostgres:
		manager, err := NewManager(NewConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := manager.RunMigrations(); err != nil {
			_ = manager.KVStore().Close()
			return nil, err
		}
		kv = manager.KVStore()
	case config.BackendRedis:
		r, err := kvstore.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		kv = r
	default:
		return nil, fmt.Errorf("unsupported store backend %q (use memory, sqlite, postgres or redis)", cfg.StoreBackend)
	}

	return kvstore.WithPrefix(kv, cfg.KeyPrefix), nil
}

// OpenKVReadOnly opens the backend for readers such as the CLI. It never
// creates or migrates anything: a SQLite file or kv_entries table that does
// not exist yet reads as an empty store.
func OpenKVReadOnly(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite, config.BackendPostgres:
	default:
		return OpenKV(ctx, cfg)
	}

	if cfg.StoreBackend == config.BackendSQLite {
		if _, err := os.Stat(cfg.SQLitePath); errors.Is(err, os.ErrNotExist) {
			logger.Named("database").Infow("no snapshot database yet, reading empty state", "path", cfg.SQLitePath)
			return kvstore.NewMemory(), nil
		}
	}

	manager, err := NewManager(NewConfig(cfg))
	if err != nil {
		return nil, err
	}
	if !manager.DB().Migrator().HasTable(&kvstore.Entry{}) {
		_ = manager.KVStore().Close()
		logger.Named("database").Infow("snapshot table not migrated yet, reading empty state", "backend", cfg.StoreBackend)
		return kvstore.NewMemory(), nil
	}
	return kvstore.WithPrefix(manager.KVStore(), cfg.KeyPrefix), nil
}
