package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a single JSON document stored under one key.
type Value[T any] struct {
	db  *DB
	key string
}

func NewValue[T any](db *DB, key string) *Value[T] {
	return &Value[T]{db: db, key: key}
}

// Load returns ok=false when the key is absent or its content is unusable.
func (v *Value[T]) Load(ctx context.Context) (T, bool, error) {
	var zero T

	raw, ok, err := v.db.Get(ctx, v.key)
	if err != nil {
		return zero, false, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return zero, false, nil
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		v.db.log.Warn(ctx, "discarding unreadable value", "key", v.key, "error", err)
		return zero, false, nil
	}
	if err := validateRecord(out); err != nil {
		v.db.log.Warn(ctx, "discarding invalid value", "key", v.key, "error", err)
		return zero, false, nil
	}

	return out, true, nil
}

func (v *Value[T]) Save(ctx context.Context, value T) error {
	unlock := v.db.Lock(v.key)
	defer unlock()
	return v.save(ctx, value)
}

func (v *Value[T]) save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", v.key, err)
	}
	return v.db.Set(ctx, v.key, string(data))
}

// Update loads the current value (ok=false if absent), applies fn and saves
// the result under the key's lock.
func (v *Value[T]) Update(ctx context.Context, fn func(current T, ok bool) (T, error)) error {
	unlock := v.db.Lock(v.key)
	defer unlock()

	current, ok, err := v.Load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(current, ok)
	if err != nil {
		return err
	}

	return v.save(ctx, next)
}

func (v *Value[T]) Remove(ctx context.Context) error {
	unlock := v.db.Lock(v.key)
	defer unlock()
	return v.db.Remove(ctx, v.key)
}
