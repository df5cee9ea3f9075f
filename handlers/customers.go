package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"managerpro/internal/database"
	"managerpro/models"
	syncsvc "managerpro/services/sync"
	"managerpro/utils"
)

// CustomersHandler serves subscriber CRUD plus the due-date views.
type CustomersHandler struct {
	Sync     *syncsvc.Service
	Payments *database.PaymentRepository
}

func NewCustomersHandler(sync *syncsvc.Service, payments *database.PaymentRepository) *CustomersHandler {
	return &CustomersHandler{Sync: sync, Payments: payments}
}

// visibleCustomers applies ownership, search and status filters.
func (h *CustomersHandler) visibleCustomers(r *http.Request) []models.Customer {
	user, _ := currentUser(r)
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	out := []models.Customer{}
	for _, c := range h.Sync.Customers().LoadAll() {
		if !canSee(user, c.UserID) {
			continue
		}
		if status != "" && status != "all" && string(c.Status) != status {
			continue
		}
		if !utils.MatchesSearch(c.Name, query) && !utils.MatchesSearch(c.WhatsApp, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// List returns the customers visible to the caller, with optional
// ?q= search (accent-insensitive) and ?status= filters.
func (h *CustomersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.visibleCustomers(r))
}

// Expiring returns visible customers due within the next three days.
func (h *CustomersHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	out := []models.Customer{}
	for _, c := range h.visibleCustomers(r) {
		if d := c.DaysUntilDue(now); d >= 0 && d <= 3 {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Expired returns visible customers whose due date has passed. This is
// the derived notion of overdue; the stored status field is not
// consulted and not modified.
func (h *CustomersHandler) Expired(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	out := []models.Customer{}
	for _, c := range h.visibleCustomers(r) {
		if c.Expired(now) {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Create stores a new customer owned by the caller.
func (h *CustomersHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	var request struct {
		Name            string                `json:"name"`
		WhatsApp        string                `json:"whatsapp"`
		Plan            string                `json:"plan"`
		Status          models.CustomerStatus `json:"status"`
		DueDate         string                `json:"dueDate"`
		MonthlyAmount   float64               `json:"monthlyAmount"`
		LastPaymentDate string                `json:"lastPaymentDate"`
		Notes           string                `json:"notes"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	if request.Status == "" {
		request.Status = models.StatusActive
	}
	customer := models.Customer{
		ID:              models.NewID(),
		Name:            request.Name,
		WhatsApp:        request.WhatsApp,
		Plan:            request.Plan,
		Status:          request.Status,
		DueDate:         request.DueDate,
		MonthlyAmount:   request.MonthlyAmount,
		LastPaymentDate: request.LastPaymentDate,
		Notes:           request.Notes,
		CreatedAt:       time.Now().UTC().Format("2006-01-02"),
		UserID:          user.ID,
	}

	if err := h.Sync.SaveCustomer(r.Context(), customer); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// Update applies a typed patch to one customer.
func (h *CustomersHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	existing, found := h.Sync.Customers().Get(id)
	if !found {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	if !canSee(user, existing.UserID) {
		http.Error(w, "not your customer", http.StatusForbidden)
		return
	}

	var patch models.CustomerPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.Sync.UpdateCustomer(r.Context(), id, patch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	updated, _ := h.Sync.Customers().Get(id)
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a customer and its payment ledger rows. Hard delete,
// no undo.
func (h *CustomersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	existing, found := h.Sync.Customers().Get(id)
	if !found {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	if !canSee(user, existing.UserID) {
		http.Error(w, "not your customer", http.StatusForbidden)
		return
	}

	if err := h.Sync.DeleteCustomer(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.Payments.DeleteByCustomer(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
