// Package convert maps between the camelCase records the local store
// keeps and the snake_case rows the hosted backend keeps. The mappings
// are pure field renames: no validation, no normalization, and
// ToLocal(ToRemote(x)) == x for every well-formed record.
package convert

import (
	"managerpro/internal/remote"
	"managerpro/models"
)

// UserToRemote renames a local user into its wire row.
func UserToRemote(u models.User) remote.UserRow {
	return remote.UserRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		LastAccess:   u.LastAccess,
	}
}

// UserToLocal renames a wire row back into a local user.
func UserToLocal(r remote.UserRow) models.User {
	return models.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         models.Role(r.Role),
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		LastAccess:   r.LastAccess,
	}
}

// CustomerToRemote renames a local customer into its wire row.
func CustomerToRemote(c models.Customer) remote.CustomerRow {
	return remote.CustomerRow{
		ID:              c.ID,
		Name:            c.Name,
		WhatsApp:        c.WhatsApp,
		Plan:            c.Plan,
		Status:          string(c.Status),
		DueDate:         c.DueDate,
		MonthlyAmount:   c.MonthlyAmount,
		LastPaymentDate: c.LastPaymentDate,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UserID:          c.UserID,
	}
}

// CustomerToLocal renames a wire row back into a local customer.
func CustomerToLocal(r remote.CustomerRow) models.Customer {
	return models.Customer{
		ID:              r.ID,
		Name:            r.Name,
		WhatsApp:        r.WhatsApp,
		Plan:            r.Plan,
		Status:          models.CustomerStatus(r.Status),
		DueDate:         r.DueDate,
		MonthlyAmount:   r.MonthlyAmount,
		LastPaymentDate: r.LastPaymentDate,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UserID:          r.UserID,
	}
}

// ServerToRemote renames a local server into its wire row.
func ServerToRemote(s models.Server) remote.ServerRow {
	return remote.ServerRow{
		ID:          s.ID,
		Name:        s.Name,
		URL:         s.URL,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UserID:      s.UserID,
	}
}

// ServerToLocal renames a wire row back into a local server.
func ServerToLocal(r remote.ServerRow) models.Server {
	return models.Server{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UserID:      r.UserID,
	}
}

// BannerToRemote renames a local banner into its wire row. Absent
// optional fields stay absent on the wire.
func BannerToRemote(b models.Banner) remote.BannerRow {
	return remote.BannerRow{
		ID:           b.ID,
		Category:     string(b.Category),
		ImageURL:     b.ImageURL,
		LogoURL:      b.LogoURL,
		Synopsis:     b.Synopsis,
		EventDate:    b.EventDate,
		CustomLogo:   b.CustomLogo,
		LogoPosition: string(b.LogoPosition),
		CreatedAt:    b.CreatedAt,
		UserID:       b.UserID,
	}
}

// BannerToLocal renames a wire row back into a local banner.
func BannerToLocal(r remote.BannerRow) models.Banner {
	return models.Banner{
		ID:           r.ID,
		Category:     models.BannerCategory(r.Category),
		ImageURL:     r.ImageURL,
		LogoURL:      r.LogoURL,
		Synopsis:     r.Synopsis,
		EventDate:    r.EventDate,
		CustomLogo:   r.CustomLogo,
		LogoPosition: models.LogoPosition(r.LogoPosition),
		CreatedAt:    r.CreatedAt,
		UserID:       r.UserID,
	}
}
