package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Collection is a JSON array of T stored whole under one key. Every
// mutation reads the full collection, applies a change and writes it back
// while holding the key's lock.
type Collection[T any] struct {
	db  *DB
	key string
}

func NewCollection[T any](db *DB, key string) *Collection[T] {
	return &Collection[T]{db: db, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load decodes the collection. Records that fail to decode or validate are
// dropped and reported once; an unreadable collection loads as empty.
// Only store I/O failures are returned.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.db.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		c.db.log.Warn(ctx, "discarding unreadable collection", "key", c.key, "error", err)
		return []T{}, nil
	}

	items := make([]T, 0, len(elems))
	skipped := 0
	var firstErr error
	for _, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			skipped++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := validateRecord(item); err != nil {
			skipped++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		items = append(items, item)
	}

	if skipped > 0 {
		c.db.log.Warn(ctx, "skipped malformed records",
			"key", c.key, "skipped", skipped, "error", firstErr)
	}

	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.db.Set(ctx, c.key, string(data))
}

// Mutate runs fn over the current collection and persists its result.
// Nothing is written when fn returns an error.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	unlock := c.db.Lock(c.key)
	defer unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	return c.save(ctx, next)
}
