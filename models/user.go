package models

const (
	// AdminSeedID is the fixed id of the bootstrap administrator record.
	// Seeding reuses the literal id so repeated bootstraps upsert over
	// themselves instead of accumulating admins.
	AdminSeedID = "admin"
	// AdminSeedEmail is the login of the bootstrap administrator.
	AdminSeedEmail = "admin@iptv.com"
)

// Role describes the access level of an operator account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// User models an operator account. Passwords are stored as argon2id
// hashes, never in the clear.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt"`
	LastAccess   string `json:"lastAccess"`
}

// RecordID implements localstore.Record.
func (u User) RecordID() string { return u.ID }

// IsAdmin reports whether the account may manage other users and see
// every record regardless of ownership.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserPatch is a typed partial update for User. Nil fields are left
// untouched; a patch cannot introduce fields the entity does not have.
type UserPatch struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"passwordHash,omitempty"`
	Role         *Role   `json:"role,omitempty"`
	Active       *bool   `json:"active,omitempty"`
	LastAccess   *string `json:"lastAccess,omitempty"`
}

// Apply merges the patch into a copy of the record.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.LastAccess != nil {
		u.LastAccess = *p.LastAccess
	}
	return u
}
