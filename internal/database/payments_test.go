package database

import (
	"context"
	"testing"
	"time"

	"managerpro/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(Config{DatabasePath: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func payment(id, customerID, userID string, age time.Duration) models.Payment {
	return models.Payment{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: "Customer " + customerID,
		Amount:       49.90,
		Date:         time.Now().UTC().Add(-age),
		Status:       models.PaymentPaid,
		Method:       "pix",
		UserID:       userID,
	}
}

func TestPaymentsInsertAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Payments.Insert(ctx, payment("p1", "c1", "admin", 2*time.Hour)); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if err := db.Payments.Insert(ctx, payment("p2", "c1", "op", time.Hour)); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if err := db.Payments.Insert(ctx, payment("p3", "c2", "admin", 0)); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	byCustomer, err := db.Payments.ListByCustomer(ctx, "c1")
	if err != nil {
		t.Fatalf("list by customer returned error: %v", err)
	}
	if len(byCustomer) != 2 {
		t.Fatalf("expected two payments for c1, got %d", len(byCustomer))
	}
	if byCustomer[0].ID != "p2" {
		t.Fatalf("expected newest first, got %q", byCustomer[0].ID)
	}

	byUser, err := db.Payments.ListByUser(ctx, "admin")
	if err != nil {
		t.Fatalf("list by user returned error: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("expected two payments recorded by admin, got %d", len(byUser))
	}

	all, err := db.Payments.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected three payments in total, got %d", len(all))
	}
}

func TestPaymentsDeleteByCustomer(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	db.Payments.Insert(ctx, payment("p1", "c1", "admin", time.Hour))
	db.Payments.Insert(ctx, payment("p2", "c2", "admin", 0))

	if err := db.Payments.DeleteByCustomer(ctx, "c1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	all, err := db.Payments.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all returned error: %v", err)
	}
	if len(all) != 1 || all[0].CustomerID != "c2" {
		t.Fatalf("unexpected remaining payments: %+v", all)
	}
}
