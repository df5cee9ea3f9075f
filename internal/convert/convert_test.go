package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"managerpro/internal/convert"
	"managerpro/models"
)

func TestUserRoundTrip(t *testing.T) {
	u := models.User{
		ID:           "u1",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    "2024-01-01",
		LastAccess:   "2024-02-02T10:00:00Z",
	}
	require.Equal(t, u, convert.UserToLocal(convert.UserToRemote(u)))
}

func TestCustomerRoundTrip(t *testing.T) {
	c := models.Customer{
		ID:              "c1",
		Name:            "João Silva",
		WhatsApp:        "(11) 99999-9999",
		Plan:            "Premium",
		Status:          models.StatusOverdue,
		DueDate:         "2024-01-15",
		MonthlyAmount:   49.90,
		LastPaymentDate: "2023-12-15",
		Notes:           "Pays on time",
		CreatedAt:       "2023-06-10",
		UserID:          "admin",
	}
	require.Equal(t, c, convert.CustomerToLocal(convert.CustomerToRemote(c)))
}

func TestServerRoundTrip(t *testing.T) {
	s := models.Server{
		ID:          "s1",
		Name:        "Main",
		URL:         "http://server.example.com:8080",
		Description: "primary",
		Active:      true,
		CreatedAt:   "2024-03-01",
		UserID:      "admin",
	}
	require.Equal(t, s, convert.ServerToLocal(convert.ServerToRemote(s)))
}

func TestBannerRoundTripKeepsAbsentOptionals(t *testing.T) {
	b := models.Banner{
		ID:        "b1",
		Category:  models.CategoryMovie,
		ImageURL:  "https://example.com/poster.jpg",
		LogoURL:   "https://example.com/logo.png",
		CreatedAt: "2024-04-01T00:00:00Z",
		UserID:    "admin",
	}
	got := convert.BannerToLocal(convert.BannerToRemote(b))
	require.Equal(t, b, got)
	require.Empty(t, got.Synopsis)
	require.Empty(t, got.EventDate)
	require.Empty(t, got.CustomLogo)
	require.Empty(t, got.LogoPosition)
}

func TestCustomerPatchToRemoteOmitsNilFields(t *testing.T) {
	due := "2024-05-01"
	p := models.CustomerPatch{DueDate: &due}
	row := convert.CustomerPatchToRemote(p)

	require.NotNil(t, row.DueDate)
	require.Equal(t, due, *row.DueDate)
	require.Nil(t, row.Name)
	require.Nil(t, row.Status)
	require.Nil(t, row.MonthlyAmount)
}

func TestUserPatchToRemoteMapsRole(t *testing.T) {
	role := models.RoleRegular
	active := false
	row := convert.UserPatchToRemote(models.UserPatch{Role: &role, Active: &active})

	require.NotNil(t, row.Role)
	require.Equal(t, "regular", *row.Role)
	require.NotNil(t, row.Active)
	require.False(t, *row.Active)
	require.Nil(t, row.Email)
}
