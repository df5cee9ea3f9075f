package database

import (
	"context"
	"database/sql"
	"fmt"

	"managerpro/models"
)

// PaymentRepository persists the payment ledger.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a repository over an open connection.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Insert records one payment.
func (r *PaymentRepository) Insert(ctx context.Context, p models.Payment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, customer_id, customer_name, amount, date, status, method, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CustomerID, p.CustomerName, p.Amount, p.Date, p.Status, p.Method, p.UserID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByCustomer returns the ledger rows for one customer, newest first.
func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	return r.list(ctx,
		`SELECT id, customer_id, customer_name, amount, date, status, method, user_id
		 FROM payments WHERE customer_id = ? ORDER BY date DESC`, customerID)
}

// ListByUser returns the ledger rows recorded by one operator, newest first.
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return r.list(ctx,
		`SELECT id, customer_id, customer_name, amount, date, status, method, user_id
		 FROM payments WHERE user_id = ? ORDER BY date DESC`, userID)
}

// ListAll returns every ledger row, newest first.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	return r.list(ctx,
		`SELECT id, customer_id, customer_name, amount, date, status, method, user_id
		 FROM payments ORDER BY date DESC`)
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.CustomerName, &p.Amount, &p.Date, &p.Status, &p.Method, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

// DeleteByCustomer removes the ledger rows for a deleted customer.
func (r *PaymentRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE customer_id = ?`, customerID); err != nil {
		return fmt.Errorf("delete payments for customer %s: %w", customerID, err)
	}
	return nil
}
