package models

import "time"

// PaymentStatus tracks whether a recorded charge settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentLate    PaymentStatus = "late"
)

// Payment is one row of the ledger kept alongside a customer record.
type Payment struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName"`
	Amount       float64       `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`
	Method       string        `json:"method"`
	UserID       string        `json:"userId"`
}
