package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Deps bundles the handlers mounted by RegisterRoutes.
type Deps struct {
	Auth     *AuthHandler
	Users    *UsersHandler
	Customer *CustomersHandler
	Servers  *ServersHandler
	Banners  *BannersHandler
	Billing  *BillingHandler
	Plans    *PlansHandler
	Catalog  *CatalogHandler
	Settings *SettingsHandler
	Stats    *StatsHandler
	Gate     sessionRestorer
}

// RegisterRoutes mounts the API under /api. Everything except login and
// the sync probe sits behind the session gate; user management, plan
// edits and branding are admin-only.
func RegisterRoutes(r *mux.Router, d Deps) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", d.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/sync/status", d.Stats.SyncStatus).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(RequireUser(d.Gate))

	authed.HandleFunc("/auth/logout", d.Auth.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/session", d.Auth.Session).Methods(http.MethodGet)
	authed.HandleFunc("/auth/credentials", d.Auth.ChangeCredentials).Methods(http.MethodPut)

	authed.HandleFunc("/customers", d.Customer.List).Methods(http.MethodGet)
	authed.HandleFunc("/customers", d.Customer.Create).Methods(http.MethodPost)
	authed.HandleFunc("/customers/expiring", d.Customer.Expiring).Methods(http.MethodGet)
	authed.HandleFunc("/customers/expired", d.Customer.Expired).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id}", d.Customer.Update).Methods(http.MethodPatch)
	authed.HandleFunc("/customers/{id}", d.Customer.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/customers/{id}/charge-message", d.Billing.ChargeMessage).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id}/reminder", d.Billing.Reminder).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id}/payments", d.Billing.RegisterPayment).Methods(http.MethodPost)

	authed.HandleFunc("/payments", d.Billing.ListPayments).Methods(http.MethodGet)

	authed.HandleFunc("/servers", d.Servers.List).Methods(http.MethodGet)
	authed.HandleFunc("/servers", d.Servers.Create).Methods(http.MethodPost)
	authed.HandleFunc("/servers/{id}", d.Servers.Update).Methods(http.MethodPatch)
	authed.HandleFunc("/servers/{id}", d.Servers.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/banners", d.Banners.List).Methods(http.MethodGet)
	authed.HandleFunc("/banners", d.Banners.Create).Methods(http.MethodPost)
	authed.HandleFunc("/banners/{id}", d.Banners.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/catalog", d.Catalog.Search).Methods(http.MethodGet)
	authed.HandleFunc("/plans", d.Plans.List).Methods(http.MethodGet)
	authed.HandleFunc("/stats", d.Stats.Dashboard).Methods(http.MethodGet)
	authed.HandleFunc("/settings", d.Settings.Get).Methods(http.MethodGet)

	admin := authed.NewRoute().Subrouter()
	admin.Use(RequireAdmin)

	admin.HandleFunc("/users", d.Users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", d.Users.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", d.Users.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}", d.Users.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/reset-password", d.Users.ResetPassword).Methods(http.MethodPost)
	admin.HandleFunc("/plans/{id}", d.Plans.Update).Methods(http.MethodPut)
	admin.HandleFunc("/settings", d.Settings.Put).Methods(http.MethodPut)
}
