package handlers

import (
	"net/http"
	"time"

	"managerpro/models"
	syncsvc "managerpro/services/sync"
)

// StatsHandler serves the dashboard summary and the sync status probe.
type StatsHandler struct {
	Sync *syncsvc.Service
}

func NewStatsHandler(sync *syncsvc.Service) *StatsHandler {
	return &StatsHandler{Sync: sync}
}

type dashboardStats struct {
	TotalCustomers    int     `json:"totalCustomers"`
	ActiveCustomers   int     `json:"activeCustomers"`
	ExpiringCustomers int     `json:"expiringCustomers"`
	ExpiredCustomers  int     `json:"expiredCustomers"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	TotalServers      int     `json:"totalServers"`
	TotalBanners      int     `json:"totalBanners"`
}

// Dashboard aggregates the caller's visible records into the summary
// card counters. Expiring means due within the next three days.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	now := time.Now()

	var stats dashboardStats
	for _, c := range h.Sync.Customers().LoadAll() {
		if !canSee(user, c.UserID) {
			continue
		}
		stats.TotalCustomers++
		if c.Status == models.StatusActive {
			stats.ActiveCustomers++
			stats.MonthlyRevenue += c.MonthlyAmount
		}
		if d := c.DaysUntilDue(now); d >= 0 && d <= 3 {
			stats.ExpiringCustomers++
		} else if d < 0 {
			stats.ExpiredCustomers++
		}
	}
	for _, s := range h.Sync.Servers().LoadAll() {
		if canSee(user, s.UserID) {
			stats.TotalServers++
		}
	}
	for _, b := range h.Sync.Banners().LoadAll() {
		if canSee(user, b.UserID) {
			stats.TotalBanners++
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

// SyncStatus reports the connectivity state machine and whether a
// remote backend is configured at all.
func (h *StatsHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        h.Sync.Status(),
		"remoteEnabled": h.Sync.Backend().Enabled(),
	})
}
