// Package plans holds the static pricing catalog. Plans are edited in
// memory only; they are deliberately not routed through the sync layer,
// and customers reference them by label rather than by id.
package plans

import (
	"errors"
	"sync"

	"managerpro/models"
)

// ErrNotFound is returned when no plan has the requested id.
var ErrNotFound = errors.New("plan not found")

// Service serves and edits the in-memory plan catalog.
type Service struct {
	mu    sync.RWMutex
	plans []models.Plan
}

// NewService returns the catalog seeded with the four standard tiers.
func NewService() *Service {
	return &Service{plans: []models.Plan{
		{ID: "1", Name: "Basic", Price: 29.90, Channels: "100+ channels", Description: "Essential channel lineup", Active: true},
		{ID: "2", Name: "Premium", Price: 49.90, Channels: "200+ channels + movies", Description: "Premium lineup with movies included", Active: true},
		{ID: "3", Name: "Ultra", Price: 79.90, Channels: "300+ channels + movies + series", Description: "Full lineup with series", Active: true},
		{ID: "4", Name: "Family", Price: 99.90, Channels: "400+ channels + multiple screens", Description: "Family plan with multiple screens", Active: true},
	}}
}

// List returns a copy of the catalog.
func (s *Service) List() []models.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Update replaces a plan's editable fields by id.
func (s *Service) Update(id string, plan models.Plan) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plans {
		if s.plans[i].ID == id {
			plan.ID = id
			s.plans[i] = plan
			return plan, nil
		}
	}
	return models.Plan{}, ErrNotFound
}
