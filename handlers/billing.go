package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"managerpro/internal/database"
	"managerpro/internal/localstore"
	"managerpro/models"
	"managerpro/services/billing"
	syncsvc "managerpro/services/sync"
)

// BillingHandler builds charge messages and records payments.
type BillingHandler struct {
	Sync     *syncsvc.Service
	Billing  *billing.Service
	Payments *database.PaymentRepository
	Config   *localstore.Object[models.SystemConfig]
}

func NewBillingHandler(sync *syncsvc.Service, bill *billing.Service, payments *database.PaymentRepository, config *localstore.Object[models.SystemConfig]) *BillingHandler {
	return &BillingHandler{Sync: sync, Billing: bill, Payments: payments, Config: config}
}

// customerFor resolves the path id, enforcing ownership for regular
// accounts. A nil return means the response was already written.
func (h *BillingHandler) customerFor(w http.ResponseWriter, r *http.Request) *models.Customer {
	c, ok := h.Sync.Customers().Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "customer not found", http.StatusNotFound)
		return nil
	}
	user, _ := currentUser(r)
	if !canSee(user, c.UserID) {
		http.Error(w, "not your customer", http.StatusForbidden)
		return nil
	}
	return &c
}

func (h *BillingHandler) systemConfig() models.SystemConfig {
	cfg, ok := h.Config.Load()
	if !ok {
		cfg = models.DefaultSystemConfig()
	}
	return cfg
}

type messageResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsappLink"`
}

// ChargeMessage renders the configured billing template for a customer
// along with the pre-filled wa.me link.
func (h *BillingHandler) ChargeMessage(w http.ResponseWriter, r *http.Request) {
	c := h.customerFor(w, r)
	if c == nil {
		return
	}
	msg := h.Billing.ChargeMessage(h.systemConfig(), *c, time.Now())
	writeJSON(w, http.StatusOK, messageResponse{
		Message:      msg,
		WhatsAppLink: billing.WhatsAppLink(*c, msg),
	})
}

// Reminder renders the canned due-date reminder for a customer.
func (h *BillingHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	c := h.customerFor(w, r)
	if c == nil {
		return
	}
	msg := billing.ReminderMessage(*c, time.Now())
	writeJSON(w, http.StatusOK, messageResponse{
		Message:      msg,
		WhatsAppLink: billing.WhatsAppLink(*c, msg),
	})
}

type registerPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// RegisterPayment records a payment for a customer and stamps their
// last payment date.
func (h *BillingHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	c := h.customerFor(w, r)
	if c == nil {
		return
	}
	var req registerPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount := req.Amount
	if amount <= 0 {
		amount = c.MonthlyAmount
	}
	method := req.Method
	if method == "" {
		method = "pix"
	}
	user, _ := currentUser(r)
	p, err := h.Billing.RegisterPayment(r.Context(), *c, method, amount, user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListPayments returns ledger rows. Admins see everything, optionally
// narrowed by ?customerId=; regular accounts see their own records.
func (h *BillingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	var (
		payments []models.Payment
		err      error
	)
	switch {
	case !u.IsAdmin():
		payments, err = h.Payments.ListByUser(r.Context(), u.ID)
	case r.URL.Query().Get("customerId") != "":
		payments, err = h.Payments.ListByCustomer(r.Context(), r.URL.Query().Get("customerId"))
	default:
		payments, err = h.Payments.ListAll(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
