package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"moneytracker/internal/kvstore"
	"moneytracker/internal/logger"
)

const defaultWriteTimeout = 5 * time.Second

// Store is the single writer of the shared snapshot. All mutations run
// through Update, one at a time; readers get a consistent view through Read.
type Store struct {
	mu        sync.RWMutex
	kv        kvstore.Store
	state     *State
	persisted map[string][]byte
	timeout   time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithWriteTimeout bounds each Update's writes to the backend.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Open reads every blob from kv and decodes it through the migration chain.
// Nothing is written until the first Update; callers run the startup steps
// (see services.Startup) to persist the migrated shape.
func Open(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	raw, err := readAll(ctx, kv)
	if err != nil {
		return nil, err
	}

	st, report := Decode(raw)
	logDecode(report)

	s := &Store{
		kv:        kv,
		state:     st,
		persisted: raw,
		timeout:   defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load is the read-only path used by the widget: it decodes the blobs, applies
// the same ensure and reconcile steps in memory, and never writes back.
func Load(ctx context.Context, kv kvstore.Store) (*State, error) {
	raw, err := readAll(ctx, kv)
	if err != nil {
		return nil, err
	}
	st, report := Decode(raw)
	logDecode(report)

	st.EnsureDefaultList()
	st.SeedCategories()
	Reconcile(st)
	return st, nil
}

func readAll(ctx context.Context, kv kvstore.Store) (map[string][]byte, error) {
	raw := make(map[string][]byte, len(Keys))
	for _, key := range Keys {
		b, err := kv.Get(ctx, key)
		if err != nil {
			if errors.Is(err, kvstore.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		raw[key] = b
	}
	return raw, nil
}

func logDecode(report DecodeReport) {
	log := logger.Named("snapshot")
	for _, key := range report.Reset {
		log.Warnw("persisted blob matched no known shape, starting empty", "key", key)
	}
	if report.LegacyExpenses > 0 {
		log.Infow("migrated legacy expense records", "count", report.LegacyExpenses)
	}
}

// Read calls fn with the current state under a read lock. fn must not retain
// or modify the state.
func (s *Store) Read(fn func(*State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Snapshot returns a private copy of the current state.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the state and persists every blob whose
// encoding changed as one batch. The copy replaces the current state only
// when fn returns nil and the batch succeeds; a failed batch leaves both the
// visible state and the backend as they were.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}

	encoded, err := Encode(next)
	if err != nil {
		return err
	}

	changed := make(map[string][]byte, len(Keys))
	for _, key := range Keys {
		if !bytes.Equal(encoded[key], s.persisted[key]) {
			changed[key] = encoded[key]
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := kvstore.SetMany(ctx, s.kv, changed); err != nil {
		logger.Named("snapshot").Errorw("persist snapshot failed", "keys", len(changed), "error", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}

	for key, blob := range changed {
		s.persisted[key] = blob
	}
	s.state = next
	return nil
}
