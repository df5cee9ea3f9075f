package sync_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"managerpro/internal/localstore"
	"managerpro/internal/remote"
	"managerpro/models"
	syncsvc "managerpro/services/sync"
)

// stubBackend is an in-memory remote. Snapshots serve pre-planted JSON
// per table; failures are switched on wholesale.
type stubBackend struct {
	snapshots map[string]string
	fail      bool

	upserts []string
	deletes []string
	updates []string
}

var _ remote.Backend = (*stubBackend)(nil)

var errBackendDown = errors.New("backend down")

func (b *stubBackend) Enabled() bool { return true }

func (b *stubBackend) Upsert(_ context.Context, table string, _ any) error {
	if b.fail {
		return errBackendDown
	}
	b.upserts = append(b.upserts, table)
	return nil
}

func (b *stubBackend) Update(_ context.Context, table, id string, _ any) error {
	if b.fail {
		return errBackendDown
	}
	b.updates = append(b.updates, table+"/"+id)
	return nil
}

func (b *stubBackend) Delete(_ context.Context, table, id string) error {
	if b.fail {
		return errBackendDown
	}
	b.deletes = append(b.deletes, table+"/"+id)
	return nil
}

func (b *stubBackend) Snapshot(_ context.Context, table string, dest any) error {
	if b.fail {
		return errBackendDown
	}
	raw, ok := b.snapshots[table]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (b *stubBackend) FindActiveUser(context.Context, string) (*remote.UserRow, error) {
	if b.fail {
		return nil, errBackendDown
	}
	return nil, nil
}

func newService(t *testing.T, backend remote.Backend) *syncsvc.Service {
	t.Helper()
	store, err := localstore.New(afero.NewMemMapFs(), "data")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return syncsvc.New(store, backend, 0)
}

func TestSaveCustomerSurvivesRemoteFailure(t *testing.T) {
	backend := &stubBackend{fail: true}
	svc := newService(t, backend)

	c := models.Customer{ID: "c1", Name: "Maria", Status: models.StatusActive}
	if err := svc.SaveCustomer(context.Background(), c); err != nil {
		t.Fatalf("remote failure must not surface to the caller: %v", err)
	}

	got, ok := svc.Customers().Get("c1")
	if !ok {
		t.Fatalf("expected customer persisted locally despite remote failure")
	}
	if got.Name != "Maria" {
		t.Fatalf("unexpected stored customer: %+v", got)
	}
}

func TestUpdateCustomerPatchesLocally(t *testing.T) {
	backend := &stubBackend{}
	svc := newService(t, backend)

	c := models.Customer{ID: "c1", Name: "Maria", Plan: "Basic"}
	if err := svc.SaveCustomer(context.Background(), c); err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	plan := "Premium"
	if err := svc.UpdateCustomer(context.Background(), "c1", models.CustomerPatch{Plan: &plan}); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	got, _ := svc.Customers().Get("c1")
	if got.Plan != "Premium" {
		t.Fatalf("expected patched plan, got %q", got.Plan)
	}
	if got.Name != "Maria" {
		t.Fatalf("patch must not clear untouched fields, got %+v", got)
	}
	if len(backend.updates) != 1 || backend.updates[0] != remote.TableCustomers+"/c1" {
		t.Fatalf("expected one mirrored update, got %v", backend.updates)
	}
}

func TestDeleteMirrorsUpstream(t *testing.T) {
	backend := &stubBackend{}
	svc := newService(t, backend)

	svc.SaveServer(context.Background(), models.Server{ID: "s1", Name: "Main"})
	if err := svc.DeleteServer(context.Background(), "s1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	if _, ok := svc.Servers().Get("s1"); ok {
		t.Fatalf("expected server removed locally")
	}
	if len(backend.deletes) != 1 || backend.deletes[0] != remote.TableServers+"/s1" {
		t.Fatalf("expected one mirrored delete, got %v", backend.deletes)
	}
}

func TestReconcileAdoptsNonEmptySnapshot(t *testing.T) {
	backend := &stubBackend{snapshots: map[string]string{
		remote.TableCustomers: `[{"id":"r1","name":"Remote One","status":"active","monthly_amount":49.9}]`,
	}}
	svc := newService(t, backend)
	svc.Customers().Save(models.Customer{ID: "local", Name: "Stale"})

	if err := svc.Reconcile(context.Background()); err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}

	all := svc.Customers().LoadAll()
	if len(all) != 1 || all[0].ID != "r1" {
		t.Fatalf("expected the snapshot to replace local contents, got %+v", all)
	}
	if all[0].MonthlyAmount != 49.9 {
		t.Fatalf("expected wire fields decoded, got %+v", all[0])
	}
}

func TestReconcileEmptySnapshotLeavesLocalAlone(t *testing.T) {
	backend := &stubBackend{snapshots: map[string]string{
		remote.TableCustomers: `[]`,
	}}
	svc := newService(t, backend)
	svc.Customers().Save(models.Customer{ID: "keep", Name: "Local Only"})

	if err := svc.Reconcile(context.Background()); err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}

	if _, ok := svc.Customers().Get("keep"); !ok {
		t.Fatalf("an empty remote snapshot must never clear local data")
	}
}

func TestInitializeSeedsFreshInstall(t *testing.T) {
	svc := newService(t, &stubBackend{})

	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize returned error: %v", err)
	}
	if got := svc.Status(); got != syncsvc.StatusOnline {
		t.Fatalf("expected online after initialize, got %q", got)
	}

	admin, ok := svc.Users().Get(models.AdminSeedID)
	if !ok {
		t.Fatalf("expected seeded admin user")
	}
	if !admin.IsAdmin() || !admin.Active {
		t.Fatalf("seeded admin must be an active admin: %+v", admin)
	}
	if admin.PasswordHash == "" || admin.PasswordHash == "admin123" {
		t.Fatalf("seeded admin password must be stored hashed")
	}
	if n := len(svc.Customers().LoadAll()); n != 3 {
		t.Fatalf("expected three demo customers, got %d", n)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	svc := newService(t, &stubBackend{})

	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("first initialize returned error: %v", err)
	}
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("second initialize returned error: %v", err)
	}

	if n := len(svc.Users().LoadAll()); n != 1 {
		t.Fatalf("expected exactly one admin after repeated bootstrap, got %d", n)
	}
	if n := len(svc.Customers().LoadAll()); n != 3 {
		t.Fatalf("expected three demo customers after repeated bootstrap, got %d", n)
	}
}

func TestInitializeSeedSkippedWhenDataExists(t *testing.T) {
	backend := &stubBackend{snapshots: map[string]string{
		remote.TableUsers: `[{"id":"u9","name":"Existing","email":"e@x.com","role":"admin","active":true}]`,
	}}
	svc := newService(t, backend)

	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize returned error: %v", err)
	}

	users := svc.Users().LoadAll()
	if len(users) != 1 || users[0].ID != "u9" {
		t.Fatalf("seeding must not run over reconciled data, got %+v", users)
	}
}

func TestInitializeGoesOfflineOnSnapshotFailure(t *testing.T) {
	svc := newService(t, &stubBackend{fail: true})

	if err := svc.Initialize(context.Background()); err == nil {
		t.Fatalf("expected initialize to report the snapshot failure")
	}
	if got := svc.Status(); got != syncsvc.StatusOffline {
		t.Fatalf("expected offline after failed initialize, got %q", got)
	}
}
