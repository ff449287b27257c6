// Package scratch persists in-progress form fields so an interrupted or
// rejected edit can be resumed.
package scratch

import (
	"context"
	"strings"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
)

// NewSheet scopes drafts of a sheet that does not exist yet.
const NewSheet = "new"

// Key builds the storage key of one draft field.
func Key(scope, field string) string {
	return strings.Join([]string{constants.DraftPrefix, scope, field}, ":")
}

// Field is one persisted draft value.
type Field struct {
	db    *kv.DB
	key   string
	value string
	saved bool
}

// Acquire loads the draft stored under key, or def when there is none.
func Acquire(ctx context.Context, db *kv.DB, key, def string) (*Field, error) {
	value, ok, err := db.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		value = def
	}
	return &Field{db: db, key: key, value: value, saved: ok}, nil
}

func (f *Field) Value() string {
	return f.value
}

// Restored reports whether the value came from a saved draft.
func (f *Field) Restored() bool {
	return f.saved
}

func (f *Field) Set(ctx context.Context, value string) error {
	unlock := f.db.Lock(f.key)
	defer unlock()

	if err := f.db.Set(ctx, f.key, value); err != nil {
		return err
	}
	f.value = value
	f.saved = true
	return nil
}

// Clear discards the draft. Call it only after a successful submit.
func (f *Field) Clear(ctx context.Context) error {
	unlock := f.db.Lock(f.key)
	defer unlock()

	if err := f.db.Remove(ctx, f.key); err != nil {
		return err
	}
	f.saved = false
	return nil
}

// Form groups the draft fields of one sheet editor.
type Form struct {
	fields map[string]*Field
}

// AcquireForm loads every named field of scope. defaults maps field name to
// its value when no draft exists.
func AcquireForm(ctx context.Context, db *kv.DB, scope string, defaults map[string]string) (*Form, error) {
	form := &Form{fields: make(map[string]*Field, len(defaults))}
	for name, def := range defaults {
		field, err := Acquire(ctx, db, Key(scope, name), def)
		if err != nil {
			return nil, err
		}
		form.fields[name] = field
	}
	return form, nil
}

// Field returns the named field. It panics on a name the form was not
// acquired with.
func (f *Form) Field(name string) *Field {
	field, ok := f.fields[name]
	if !ok {
		panic("scratch: unknown field " + name)
	}
	return field
}

// Restored reports whether any field came from a saved draft.
func (f *Form) Restored() bool {
	for _, field := range f.fields {
		if field.Restored() {
			return true
		}
	}
	return false
}

// Save persists values for the named fields.
func (f *Form) Save(ctx context.Context, values map[string]string) error {
	for name, value := range values {
		if err := f.Field(name).Set(ctx, value); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every draft of the form.
func (f *Form) Clear(ctx context.Context) error {
	for _, field := range f.fields {
		if err := field.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}
