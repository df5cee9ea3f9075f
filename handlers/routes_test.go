package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"managerpro/internal/database"
	"managerpro/internal/localstore"
	"managerpro/internal/remote"
	"managerpro/models"
	"managerpro/services/auth"
	"managerpro/services/billing"
	"managerpro/services/catalog"
	"managerpro/services/plans"
	syncsvc "managerpro/services/sync"
	"managerpro/utils"
)

// stubGate serves a fixed signed-in user, or rejects when none is set.
type stubGate struct {
	user *models.User
}

func (g *stubGate) Restore() (models.User, error) {
	if g.user == nil {
		return models.User{}, auth.ErrNoSession
	}
	return *g.user, nil
}

type testEnv struct {
	router http.Handler
	gate   *stubGate
	sync   *syncsvc.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := localstore.New(afero.NewMemMapFs(), "data")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	sync := syncsvc.New(store, remote.Disabled{}, 0)

	db, err := database.NewDB(database.Config{DatabasePath: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	authSvc := auth.NewService(sync, store)
	billingSvc := billing.NewService(sync, db.Payments)
	systemConfig := localstore.NewObject[models.SystemConfig](store, "manager_pro_config")
	gate := &stubGate{}

	router := utils.NewRouter()
	RegisterRoutes(router, Deps{
		Auth:     NewAuthHandler(authSvc),
		Users:    NewUsersHandler(sync, authSvc),
		Customer: NewCustomersHandler(sync, db.Payments),
		Servers:  NewServersHandler(sync),
		Banners:  NewBannersHandler(sync),
		Billing:  NewBillingHandler(sync, billingSvc, db.Payments, systemConfig),
		Plans:    NewPlansHandler(plans.NewService()),
		Catalog:  NewCatalogHandler(catalog.NewService()),
		Settings: NewSettingsHandler(systemConfig),
		Stats:    NewStatsHandler(sync),
		Gate:     gate,
	})
	return &testEnv{router: router, gate: gate, sync: sync}
}

func (e *testEnv) signIn(u models.User) { e.gate.user = &u }

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

var (
	adminUser   = models.User{ID: "admin", Name: "Admin", Role: models.RoleAdmin, Active: true}
	regularUser = models.User{ID: "op1", Name: "Operator", Role: models.RoleRegular, Active: true}
)

func dateIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/customers", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	// The sync probe stays open.
	rec = env.do(t, http.MethodGet, "/api/sync/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected open sync probe, got %d", rec.Code)
	}
}

func TestCustomerCreateAndSearch(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(adminUser)

	rec := env.do(t, http.MethodPost, "/api/customers",
		`{"name":"João Silva","whatsapp":"(11) 99999-9999","plan":"Premium","dueDate":"2030-01-15","monthlyAmount":49.9}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Status != models.StatusActive {
		t.Fatalf("expected default active status, got %q", created.Status)
	}
	if created.UserID != adminUser.ID {
		t.Fatalf("expected ownership stamped, got %q", created.UserID)
	}

	// Accent-insensitive search.
	rec = env.do(t, http.MethodGet, "/api/customers?q=joao", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []models.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created customer in search results, got %+v", listed)
	}
}

func TestCustomerOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)

	env.signIn(adminUser)
	rec := env.do(t, http.MethodPost, "/api/customers", `{"name":"Admin Owned"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var adminOwned models.Customer
	json.Unmarshal(rec.Body.Bytes(), &adminOwned)

	env.signIn(regularUser)
	rec = env.do(t, http.MethodGet, "/api/customers", "")
	var listed []models.Customer
	json.Unmarshal(rec.Body.Bytes(), &listed)
	if len(listed) != 0 {
		t.Fatalf("a regular operator must not see other owners' customers, got %+v", listed)
	}

	rec = env.do(t, http.MethodPatch, "/api/customers/"+adminOwned.ID, `{"notes":"mine now"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 patching another owner's customer, got %d", rec.Code)
	}

	env.signIn(adminUser)
	rec = env.do(t, http.MethodGet, "/api/customers", "")
	json.Unmarshal(rec.Body.Bytes(), &listed)
	if len(listed) != 1 {
		t.Fatalf("admin must see every customer, got %+v", listed)
	}
}

func TestExpiringAndExpiredViews(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(adminUser)

	env.do(t, http.MethodPost, "/api/customers", `{"name":"Due Soon","dueDate":"`+dateIn(2)+`"}`)
	env.do(t, http.MethodPost, "/api/customers", `{"name":"Long Gone","dueDate":"2020-01-01"}`)
	env.do(t, http.MethodPost, "/api/customers", `{"name":"Far Out","dueDate":"`+dateIn(30)+`"}`)

	rec := env.do(t, http.MethodGet, "/api/customers/expiring", "")
	var listed []models.Customer
	json.Unmarshal(rec.Body.Bytes(), &listed)
	if len(listed) != 1 || listed[0].Name != "Due Soon" {
		t.Fatalf("unexpected expiring view: %+v", listed)
	}

	rec = env.do(t, http.MethodGet, "/api/customers/expired", "")
	json.Unmarshal(rec.Body.Bytes(), &listed)
	if len(listed) != 1 || listed[0].Name != "Long Gone" {
		t.Fatalf("unexpected expired view: %+v", listed)
	}
	if listed[0].Status != models.StatusActive {
		t.Fatalf("the expired view must not rewrite the stored status, got %q", listed[0].Status)
	}
}

func TestAdminGateOnUserRoutes(t *testing.T) {
	env := newTestEnv(t)

	env.signIn(regularUser)
	rec := env.do(t, http.MethodGet, "/api/users", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a regular operator, got %d", rec.Code)
	}

	env.signIn(adminUser)
	rec = env.do(t, http.MethodPost, "/api/users",
		`{"name":"New Op","email":"new@iptv.com","password":"secret1","role":"regular","active":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("user responses must not carry the password hash: %s", rec.Body.String())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(adminUser)

	rec := env.do(t, http.MethodGet, "/api/settings", "")
	var cfg models.SystemConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if cfg.SystemName != "Manager Pro" {
		t.Fatalf("expected default branding, got %+v", cfg)
	}

	rec = env.do(t, http.MethodPut, "/api/settings",
		`{"logoUrl":"","systemName":"My IPTV","primaryColor":"#000","secondaryColor":"#fff","billingTemplate":"{name}: {amount}"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/settings", "")
	json.Unmarshal(rec.Body.Bytes(), &cfg)
	if cfg.SystemName != "My IPTV" {
		t.Fatalf("expected stored branding, got %+v", cfg)
	}
}

func TestCatalogSearchRoute(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(regularUser)

	rec := env.do(t, http.MethodGet, "/api/catalog?category=series&q=papel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []catalog.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0].Title != "La Casa de Papel" {
		t.Fatalf("unexpected catalog results: %+v", items)
	}

	rec = env.do(t, http.MethodGet, "/api/catalog?category=cartoons", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown category, got %d", rec.Code)
	}
}

func TestPlanUpdateIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	env.signIn(regularUser)
	rec := env.do(t, http.MethodPut, "/api/plans/1", `{"name":"Hacked","price":0.01,"channels":"","description":"","active":true}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a regular operator, got %d", rec.Code)
	}

	env.signIn(adminUser)
	rec = env.do(t, http.MethodPut, "/api/plans/1", `{"name":"Basic+","price":34.9,"channels":"120+ channels","description":"","active":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Plan
	json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.ID != "1" || updated.Price != 34.9 {
		t.Fatalf("unexpected updated plan: %+v", updated)
	}
}
