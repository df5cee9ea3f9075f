package remote

// Table names on the hosted backend.
const (
	TableUsers     = "usuarios"
	TableCustomers = "clientes"
	TableServers   = "servidores"
	TableBanners   = "banners"
)

// UserRow is the snake_case wire shape of a user record.
type UserRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
	LastAccess   string `json:"last_access"`
}

// CustomerRow is the snake_case wire shape of a customer record.
type CustomerRow struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	WhatsApp        string  `json:"whatsapp"`
	Plan            string  `json:"plan"`
	Status          string  `json:"status"`
	DueDate         string  `json:"due_date"`
	MonthlyAmount   float64 `json:"monthly_amount"`
	LastPaymentDate string  `json:"last_payment_date"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
	UserID          string  `json:"user_id"`
}

// ServerRow is the snake_case wire shape of a server record.
type ServerRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UserID      string `json:"user_id"`
}

// BannerRow is the snake_case wire shape of a banner record.
type BannerRow struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url"`
	LogoURL      string `json:"logo_url"`
	Synopsis     string `json:"synopsis,omitempty"`
	EventDate    string `json:"event_date,omitempty"`
	CustomLogo   string `json:"custom_logo,omitempty"`
	LogoPosition string `json:"logo_position,omitempty"`
	CreatedAt    string `json:"created_at"`
	UserID       string `json:"user_id"`
}

// UserPatchRow is a snake_case partial update; nil fields are omitted
// from the request body.
type UserPatchRow struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"password_hash,omitempty"`
	Role         *string `json:"role,omitempty"`
	Active       *bool   `json:"active,omitempty"`
	LastAccess   *string `json:"last_access,omitempty"`
}

// CustomerPatchRow is a snake_case partial update for customers.
type CustomerPatchRow struct {
	Name            *string  `json:"name,omitempty"`
	WhatsApp        *string  `json:"whatsapp,omitempty"`
	Plan            *string  `json:"plan,omitempty"`
	Status          *string  `json:"status,omitempty"`
	DueDate         *string  `json:"due_date,omitempty"`
	MonthlyAmount   *float64 `json:"monthly_amount,omitempty"`
	LastPaymentDate *string  `json:"last_payment_date,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// ServerPatchRow is a snake_case partial update for servers.
type ServerPatchRow struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
