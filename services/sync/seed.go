package sync

import (
	"context"
	"fmt"
	"log"
	"time"

	"managerpro/internal/convert"
	"managerpro/internal/remote"
	"managerpro/models"
	"managerpro/utils"
)

// seedAdminPassword is the initial credential handed to a fresh
// install. Operators are expected to change it on first login.
const seedAdminPassword = "admin123"

// Seed synthesizes the bootstrap records when, after reconciliation,
// the corresponding tables are still empty. The admin row carries a
// fixed literal id, so a concurrent or repeated bootstrap upserts over
// itself instead of multiplying admins.
func (s *Service) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	if len(s.users.LoadAll()) == 0 {
		hash, err := utils.HashPassword(seedAdminPassword)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		admin := models.User{
			ID:           models.AdminSeedID,
			Name:         "Administrator",
			Email:        models.AdminSeedEmail,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Active:       true,
			CreatedAt:    "2024-01-01",
			LastAccess:   now.Format(time.RFC3339),
		}
		if err := dualUpsert(ctx, s, remote.TableUsers, s.users, convert.UserToRemote, admin); err != nil {
			return err
		}
		log.Printf("[sync] seeded default admin user")
	}

	if len(s.customers.LoadAll()) == 0 {
		for _, c := range demoCustomers(now) {
			if err := dualUpsert(ctx, s, remote.TableCustomers, s.customers, convert.CustomerToRemote, c); err != nil {
				return err
			}
		}
		log.Printf("[sync] seeded demo customers")
	}

	return nil
}

func demoCustomers(now time.Time) []models.Customer {
	day := func(d int) string { return now.AddDate(0, 0, d).Format("2006-01-02") }
	return []models.Customer{
		{
			ID: "1", Name: "João Silva", WhatsApp: "(11) 99999-9999",
			Plan: "Premium", Status: models.StatusActive,
			DueDate: "2024-01-15", MonthlyAmount: 49.90,
			LastPaymentDate: "2023-12-15", Notes: "Pays on time",
			CreatedAt: "2023-06-10", UserID: models.AdminSeedID,
		},
		{
			ID: "2", Name: "Maria Santos", WhatsApp: "(11) 88888-8888",
			Plan: "Basic", Status: models.StatusActive,
			DueDate: day(2), MonthlyAmount: 29.90,
			LastPaymentDate: "2023-11-20", Notes: "Regular customer",
			CreatedAt: "2023-08-15", UserID: models.AdminSeedID,
		},
		{
			ID: "3", Name: "Carlos Oliveira", WhatsApp: "(11) 77777-7777",
			Plan: "Ultra", Status: models.StatusActive,
			DueDate: day(1), MonthlyAmount: 79.90,
			LastPaymentDate: "2023-12-01", Notes: "VIP customer",
			CreatedAt: "2023-05-20", UserID: models.AdminSeedID,
		},
	}
}
