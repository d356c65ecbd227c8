// Package kvstore abstracts the persistent key-value backend the snapshot is
// written to. Each value is one blob, written atomically per key; concurrent
// writers to the same key resolve as last-write-wins.
package kvstore

import (
	"context"
	"errors"
	"time"
)

const rollbackTimeout = 5 * time.Second

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a blob-per-key persistent map.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Prefixed namespaces every key of an underlying store, so several
// installations can share one backend.
type Prefixed struct {
	Store
	prefix string
}

// WithPrefix wraps s so that every key is prefixed. An empty prefix returns s.
func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &Prefixed{Store: s, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.Store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.Store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.Store.Delete(ctx, p.prefix+key)
}

// SetMany forwards to the wrapped store with every key prefixed, keeping the
// wrapped store's atomicity.
func (p *Prefixed) SetMany(ctx context.Context, values map[string][]byte) error {
	if b, ok := p.Store.(Batcher); ok {
		prefixed := make(map[string][]byte, len(values))
		for k, v := range values {
			prefixed[p.prefix+k] = v
		}
		return b.SetMany(ctx, prefixed)
	}
	return setSequential(ctx, p, values)
}
