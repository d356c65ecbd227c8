package database

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"moneytracker/internal/config"
	"moneytracker/internal/kvstore"
	"moneytracker/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database named by config.Driver (sqlite or postgres).
func NewManager(cfg *Config) (*Manager, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case config.BackendPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.Driver == config.BackendSQLite {
		// One connection keeps SQLite writes serialised.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, config: cfg}, nil
}

// RunMigrations brings the kv_entries table up to date. Postgres uses the
// embedded SQL migrations; SQLite uses GORM auto-migration.
func (m *Manager) RunMigrations() error {
	log := logger.Get()

	if m.config.Driver == config.BackendSQLite {
		if err := m.db.AutoMigrate(&kvstore.Entry{}); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
		return nil
	}

	log.Info("Running database migrations...")
	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// NewMigrator builds a golang-migrate instance over the embedded migrations.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// KVStore returns the kv_entries table as a kvstore.Store.
func (m *Manager) KVStore() *kvstore.Gorm {
	return kvstore.NewGorm(m.db)
}
