package remote

import "context"

// Disabled is the backend used when the remote configuration is absent.
// Every operation succeeds without doing anything, which lets the rest
// of the system run local-only without special-casing the caller.
type Disabled struct{}

var _ Backend = Disabled{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Upsert(context.Context, string, any) error { return nil }

func (Disabled) Update(context.Context, string, string, any) error { return nil }

func (Disabled) Delete(context.Context, string, string) error { return nil }

// Snapshot leaves dest untouched: an unconfigured backend reads as an
// empty table, which reconciliation treats as "nothing to adopt".
func (Disabled) Snapshot(context.Context, string, any) error { return nil }

func (Disabled) FindActiveUser(context.Context, string) (*UserRow, error) { return nil, nil }

// Select returns the configured client when both values are present,
// and the Disabled backend otherwise. Missing configuration is not an
// error; it simply means a local-only deployment.
func Select(baseURL, apiKey string) Backend {
	if baseURL == "" || apiKey == "" {
		return Disabled{}
	}
	return NewClient(baseURL, apiKey)
}
