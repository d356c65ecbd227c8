package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Batcher is implemented by stores that can write several keys as one
// atomic unit.
type Batcher interface {
	SetMany(ctx context.Context, values map[string][]byte) error
}

// SetMany writes every value to s so that either all keys are updated or
// none are. Stores implementing Batcher do this natively; for the rest the
// keys are written one by one and, on failure, the keys already written are
// restored to the values they held before the call.
func SetMany(ctx context.Context, s Store, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	if b, ok := s.(Batcher); ok {
		return b.SetMany(ctx, values)
	}
	return setSequential(ctx, s, values)
}

type previous struct {
	key    string
	value  []byte
	absent bool
}

func setSequential(ctx context.Context, s Store, values map[string][]byte) error {
	written := make([]previous, 0, len(values))
	for _, key := range sortedKeys(values) {
		prev := previous{key: key}
		v, err := s.Get(ctx, key)
		switch {
		case errors.Is(err, ErrNotFound):
			prev.absent = true
		case err != nil:
			return rollback(s, written, fmt.Errorf("read %s before write: %w", key, err))
		default:
			prev.value = v
		}

		if err := s.Set(ctx, key, values[key]); err != nil {
			return rollback(s, written, err)
		}
		written = append(written, prev)
	}
	return nil
}

// rollback restores written in reverse order. The caller's context may be the
// reason the write failed, so the restore runs on its own deadline.
func rollback(s Store, written []previous, cause error) error {
	if len(written) == 0 {
		return cause
	}
	ctx, cancel := context.WithTimeout(context.Background(), rollbackTimeout)
	defer cancel()

	errs := []error{cause}
	for i := len(written) - 1; i >= 0; i-- {
		p := written[i]
		var err error
		if p.absent {
			err = s.Delete(ctx, p.key)
		} else {
			err = s.Set(ctx, p.key, p.value)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", p.key, err))
		}
	}
	return errors.Join(errs...)
}

func sortedKeys(values map[string][]byte) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
