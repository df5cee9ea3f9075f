package convert

import (
	"managerpro/internal/remote"
	"managerpro/models"
)

func roleptr(r *models.Role) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func statusptr(s *models.CustomerStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// UserPatchToRemote renames a typed user patch into its wire shape.
// Nil fields stay nil so the backend only touches what the patch names.
func UserPatchToRemote(p models.UserPatch) remote.UserPatchRow {
	return remote.UserPatchRow{
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Role:         roleptr(p.Role),
		Active:       p.Active,
		LastAccess:   p.LastAccess,
	}
}

// CustomerPatchToRemote renames a typed customer patch into its wire shape.
func CustomerPatchToRemote(p models.CustomerPatch) remote.CustomerPatchRow {
	return remote.CustomerPatchRow{
		Name:            p.Name,
		WhatsApp:        p.WhatsApp,
		Plan:            p.Plan,
		Status:          statusptr(p.Status),
		DueDate:         p.DueDate,
		MonthlyAmount:   p.MonthlyAmount,
		LastPaymentDate: p.LastPaymentDate,
		Notes:           p.Notes,
	}
}

// ServerPatchToRemote renames a typed server patch into its wire shape.
func ServerPatchToRemote(p models.ServerPatch) remote.ServerPatchRow {
	return remote.ServerPatchRow{
		Name:        p.Name,
		URL:         p.URL,
		Description: p.Description,
		Active:      p.Active,
	}
}
