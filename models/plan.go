package models

// Plan is an entry of the static pricing catalog. Plans are not routed
// through the sync layer; customers reference them by label only.
type Plan struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Channels    string  `json:"channels"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
}
