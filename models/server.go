package models

// Server models an IPTV source link handed out to subscribers.
type Server struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
	UserID      string `json:"userId"`
}

// RecordID implements localstore.Record.
func (s Server) RecordID() string { return s.ID }

// ServerPatch is a typed partial update for Server.
type ServerPatch struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Apply merges the patch into a copy of the record.
func (p ServerPatch) Apply(s Server) Server {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.URL != nil {
		s.URL = *p.URL
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	return s
}
