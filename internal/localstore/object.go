package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// Object persists a single JSON document, used for the system config
// and session singletons.
type Object[T any] struct {
	store *Store
	name  string
	mu    sync.Mutex
}

// NewObject binds a singleton document name within the store.
func NewObject[T any](s *Store, name string) *Object[T] {
	return &Object[T]{store: s, name: name}
}

// Load returns the stored document. The second result is false when the
// document is absent or unreadable.
func (o *Object[T]) Load() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	var v T
	data, err := afero.ReadFile(o.store.fs, o.store.path(o.name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("localstore: read singleton", "name", o.name, "error", err)
		}
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("localstore: discarding corrupt singleton", "name", o.name, "error", err)
		return v, false
	}
	return v, true
}

// Save writes the document.
func (o *Object[T]) Save(v T) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", o.name, err)
	}
	if err := afero.WriteFile(o.store.fs, o.store.path(o.name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.name, err)
	}
	return nil
}

// Clear removes the document. Clearing an absent document is a no-op.
func (o *Object[T]) Clear() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	err := o.store.fs.Remove(o.store.path(o.name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", o.name, err)
	}
	return nil
}
