package models

import "time"

// CustomerStatus is the operator-set subscription state. It is never
// recomputed from the due date; expiry derived from DaysUntilDue is a
// separate, read-only notion.
type CustomerStatus string

const (
	StatusActive    CustomerStatus = "active"
	StatusInactive  CustomerStatus = "inactive"
	StatusSuspended CustomerStatus = "suspended"
	StatusOverdue   CustomerStatus = "overdue"
)

// Customer models a subscriber. Plan is a free-text label, not a
// foreign key into the plan catalog.
type Customer struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	WhatsApp        string         `json:"whatsapp"`
	Plan            string         `json:"plan"`
	Status          CustomerStatus `json:"status"`
	DueDate         string         `json:"dueDate"`
	MonthlyAmount   float64        `json:"monthlyAmount"`
	LastPaymentDate string         `json:"lastPaymentDate"`
	Notes           string         `json:"notes"`
	CreatedAt       string         `json:"createdAt"`
	UserID          string         `json:"userId"`
}

// RecordID implements localstore.Record.
func (c Customer) RecordID() string { return c.ID }

// DaysUntilDue returns the number of whole days from now until the due
// date, negative when the plan is already past due. A malformed due
// date counts as due today.
func (c Customer) DaysUntilDue(now time.Time) int {
	due, err := time.Parse("2006-01-02", c.DueDate)
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}

// Expired reports whether the due date has passed. This is derived
// display state; it does not feed back into Status.
func (c Customer) Expired(now time.Time) bool {
	return c.DaysUntilDue(now) < 0
}

// CustomerPatch is a typed partial update for Customer.
type CustomerPatch struct {
	Name            *string         `json:"name,omitempty"`
	WhatsApp        *string         `json:"whatsapp,omitempty"`
	Plan            *string         `json:"plan,omitempty"`
	Status          *CustomerStatus `json:"status,omitempty"`
	DueDate         *string         `json:"dueDate,omitempty"`
	MonthlyAmount   *float64        `json:"monthlyAmount,omitempty"`
	LastPaymentDate *string         `json:"lastPaymentDate,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

// Apply merges the patch into a copy of the record.
func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.WhatsApp != nil {
		c.WhatsApp = *p.WhatsApp
	}
	if p.Plan != nil {
		c.Plan = *p.Plan
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.DueDate != nil {
		c.DueDate = *p.DueDate
	}
	if p.MonthlyAmount != nil {
		c.MonthlyAmount = *p.MonthlyAmount
	}
	if p.LastPaymentDate != nil {
		c.LastPaymentDate = *p.LastPaymentDate
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}
