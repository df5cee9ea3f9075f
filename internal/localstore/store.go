package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Record is any entity persisted in a table.
type Record interface {
	RecordID() string
}

// Store owns the data directory holding one JSON file per table plus
// the singleton documents. All tables of a Store share its filesystem.
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a store rooted at dir on the given filesystem. Tests pass
// afero.NewMemMapFs(); production passes afero.NewOsFs().
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Table is a JSON-array-per-file collection of records. Every write
// rewrites the whole serialized blob; reads tolerate a missing or
// corrupt file by returning an empty list.
type Table[T Record] struct {
	store *Store
	name  string
	mu    sync.Mutex
}

// NewTable binds a table name within the store. The on-disk file is
// db_<name>.json, matching the key scheme the data was migrated from.
func NewTable[T Record](s *Store, name string) *Table[T] {
	return &Table[T]{store: s, name: "db_" + name}
}

func (t *Table[T]) load() []T {
	data, err := afero.ReadFile(t.store.fs, t.store.path(t.name))
	if err != nil {
		return nil
	}
	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		slog.Warn("localstore: discarding corrupt table", "table", t.name, "error", err)
		return nil
	}
	return recs
}

func (t *Table[T]) write(recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	if err := afero.WriteFile(t.store.fs, t.store.path(t.name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.name, err)
	}
	return nil
}

// Save appends the record and rewrites the table.
func (t *Table[T]) Save(rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(append(t.load(), rec))
}

// Upsert replaces the record with the same id, or appends when absent.
func (t *Table[T]) Upsert(rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs := t.load()
	for i := range recs {
		if recs[i].RecordID() == rec.RecordID() {
			recs[i] = rec
			return t.write(recs)
		}
	}
	return t.write(append(recs, rec))
}

// Update applies fn to the record with the given id and rewrites the
// table. A missing id is not an error; the table is left as it was.
func (t *Table[T]) Update(id string, fn func(T) T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs := t.load()
	for i := range recs {
		if recs[i].RecordID() == id {
			recs[i] = fn(recs[i])
			return t.write(recs)
		}
	}
	return nil
}

// Delete removes the record with the given id and rewrites the table.
func (t *Table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs := t.load()
	kept := recs[:0]
	for _, r := range recs {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	return t.write(kept)
}

// LoadAll returns every record in the table. Absent and corrupt files
// both read as empty.
func (t *Table[T]) LoadAll() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs := t.load()
	if recs == nil {
		return []T{}
	}
	return recs
}

// Get returns the record with the given id.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.load() {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Replace overwrites the table wholesale. Reconciliation uses this to
// adopt a remote snapshot in one shot.
func (t *Table[T]) Replace(recs []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(recs)
}
