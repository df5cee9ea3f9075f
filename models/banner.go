package models

// BannerCategory classifies promotional artwork.
type BannerCategory string

const (
	CategoryMovie  BannerCategory = "movie"
	CategorySeries BannerCategory = "series"
	CategorySport  BannerCategory = "sport"
)

// LogoPosition places the overlaid logo on a rendered banner.
type LogoPosition string

const (
	LogoRight  LogoPosition = "right"
	LogoCenter LogoPosition = "center"
)

// Banner models a promotional image. ImageURL may be a data URL from a
// local upload, stored inline.
type Banner struct {
	ID           string         `json:"id"`
	Category     BannerCategory `json:"category"`
	ImageURL     string         `json:"imageUrl"`
	LogoURL      string         `json:"logoUrl"`
	Synopsis     string         `json:"synopsis,omitempty"`
	EventDate    string         `json:"eventDate,omitempty"`
	CustomLogo   string         `json:"customLogo,omitempty"`
	LogoPosition LogoPosition   `json:"logoPosition,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	UserID       string         `json:"userId"`
}

// RecordID implements localstore.Record.
func (b Banner) RecordID() string { return b.ID }
