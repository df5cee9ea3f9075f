package remote

import "context"

// Backend is the single seam to the hosted store. Two implementations
// exist: Client speaks to a real PostgREST backend, Disabled serves a
// purely local deployment. Which one runs is a configuration decision
// made once at startup.
type Backend interface {
	// Enabled reports whether calls reach a real backend. The Disabled
	// implementation returns false and turns every operation into a
	// successful no-op so the rest of the system degrades silently.
	Enabled() bool

	// Upsert creates or replaces a full row, keyed by its id.
	Upsert(ctx context.Context, table string, row any) error

	// Update applies a partial row to the record with the given id.
	Update(ctx context.Context, table, id string, patch any) error

	// Delete removes the record with the given id. Hard delete, no
	// tombstone.
	Delete(ctx context.Context, table, id string) error

	// Snapshot decodes the full contents of a table into dest, which
	// must be a pointer to a slice of the table's row type.
	Snapshot(ctx context.Context, table string, dest any) error

	// FindActiveUser returns the active user with the given email, or
	// nil when no such user exists. Absence is not an error.
	FindActiveUser(ctx context.Context, email string) (*UserRow, error)
}
