// Package billing builds reminder messages and payment records. Message
// delivery is a pre-filled wa.me link the operator opens themselves;
// nothing here talks to a messaging API.
package billing

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"managerpro/internal/database"
	"managerpro/models"
	syncsvc "managerpro/services/sync"
)

// Service renders billing messages and records ledger entries.
type Service struct {
	sync     *syncsvc.Service
	payments *database.PaymentRepository
}

// NewService wires billing over the synchronizer and the ledger.
func NewService(sync *syncsvc.Service, payments *database.PaymentRepository) *Service {
	return &Service{sync: sync, payments: payments}
}

// RenderTemplate substitutes the {name}, {plan}, {days} and {amount}
// tokens of a billing template for one customer. Unknown tokens pass
// through unchanged.
func RenderTemplate(template string, c models.Customer, now time.Time) string {
	r := strings.NewReplacer(
		"{name}", c.Name,
		"{plan}", c.Plan,
		"{days}", fmt.Sprintf("%d", c.DaysUntilDue(now)),
		"{amount}", fmt.Sprintf("%.2f", c.MonthlyAmount),
	)
	return r.Replace(template)
}

// ReminderMessage builds the canned reminder, which switches wording
// depending on whether the plan already expired.
func ReminderMessage(c models.Customer, now time.Time) string {
	days := c.DaysUntilDue(now)
	if days < 0 {
		return fmt.Sprintf(
			"Hello %s! Your %s plan expired %d days ago. Renew now to keep watching! Amount: R$ %.2f",
			c.Name, c.Plan, -days, c.MonthlyAmount)
	}
	return fmt.Sprintf(
		"Hello %s! Reminder: your %s plan is due in %d days. Renew early and avoid interruptions! Amount: R$ %.2f",
		c.Name, c.Plan, days, c.MonthlyAmount)
}

// WhatsAppLink returns the pre-filled wa.me URL for a message to the
// customer's number. Everything but digits is stripped from the handle.
// Spaces encode as %20, not +; wa.me renders a literal plus otherwise.
func WhatsAppLink(c models.Customer, message string) string {
	var digits strings.Builder
	for _, r := range c.WhatsApp {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits.String() + "?text=" + text
}

// ChargeMessage renders the operator-configured billing template for a
// customer.
func (s *Service) ChargeMessage(cfg models.SystemConfig, c models.Customer, now time.Time) string {
	return RenderTemplate(cfg.BillingTemplate, c, now)
}

// RegisterPayment appends a ledger row and stamps the customer's last
// payment date through the dual-write path.
func (s *Service) RegisterPayment(ctx context.Context, c models.Customer, method string, amount float64, operatorID string) (models.Payment, error) {
	now := time.Now().UTC()
	p := models.Payment{
		ID:           uuid.NewString(),
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Amount:       amount,
		Date:         now,
		Status:       models.PaymentPaid,
		Method:       method,
		UserID:       operatorID,
	}
	if err := s.payments.Insert(ctx, p); err != nil {
		return models.Payment{}, err
	}

	paid := now.Format("2006-01-02")
	patch := models.CustomerPatch{LastPaymentDate: &paid}
	if err := s.sync.UpdateCustomer(ctx, c.ID, patch); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
