package kv

import (
	"errors"
	"sync"

	"github.com/go-playground/validator"

	"github.com/Paintersrp/cheats/internal/logging"
)

var validate = validator.New()

// DB pairs a Store with the per-key locks that serialize read-modify-write
// cycles. All typed collections over one Store must share one DB.
type DB struct {
	Store
	log logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func Open(store Store, log logging.Logger) *DB {
	if log == nil {
		log = logging.Discard()
	}
	return &DB{Store: store, log: log, locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its release func.
func (db *DB) Lock(key string) func() {
	db.mu.Lock()
	l, ok := db.locks[key]
	if !ok {
		l = &sync.Mutex{}
		db.locks[key] = l
	}
	db.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// validateRecord applies `validate` struct tags. Non-struct values pass.
func validateRecord(v any) error {
	err := validate.Struct(v)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return err
}
