package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"managerpro/models"
	syncsvc "managerpro/services/sync"
)

// BannersHandler serves promotional banner create/list/delete. Banners
// are immutable once created; there is no partial update.
type BannersHandler struct {
	Sync *syncsvc.Service
}

func NewBannersHandler(sync *syncsvc.Service) *BannersHandler {
	return &BannersHandler{Sync: sync}
}

// List returns the banners visible to the caller, optionally filtered
// by ?category=.
func (h *BannersHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	category := r.URL.Query().Get("category")

	out := []models.Banner{}
	for _, b := range h.Sync.Banners().LoadAll() {
		if !canSee(user, b.UserID) {
			continue
		}
		if category != "" && string(b.Category) != category {
			continue
		}
		out = append(out, b)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create stores a new banner. ImageURL may be a data URL from a local
// upload; it is stored inline as-is.
func (h *BannersHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	var request struct {
		Category     models.BannerCategory `json:"category"`
		ImageURL     string                `json:"imageUrl"`
		LogoURL      string                `json:"logoUrl"`
		Synopsis     string                `json:"synopsis"`
		EventDate    string                `json:"eventDate"`
		CustomLogo   string                `json:"customLogo"`
		LogoPosition models.LogoPosition   `json:"logoPosition"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	switch request.Category {
	case models.CategoryMovie, models.CategorySeries, models.CategorySport:
	default:
		http.Error(w, "unknown banner category", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(request.ImageURL) == "" {
		http.Error(w, "imageUrl is required", http.StatusBadRequest)
		return
	}

	banner := models.Banner{
		ID:           models.NewID(),
		Category:     request.Category,
		ImageURL:     request.ImageURL,
		LogoURL:      request.LogoURL,
		Synopsis:     request.Synopsis,
		EventDate:    request.EventDate,
		CustomLogo:   request.CustomLogo,
		LogoPosition: request.LogoPosition,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		UserID:       user.ID,
	}
	if err := h.Sync.SaveBanner(r.Context(), banner); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, banner)
}

// Delete removes a banner.
func (h *BannersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	existing := false
	for _, b := range h.Sync.Banners().LoadAll() {
		if b.ID == id {
			if !canSee(user, b.UserID) {
				http.Error(w, "not your banner", http.StatusForbidden)
				return
			}
			existing = true
			break
		}
	}
	if !existing {
		http.Error(w, "banner not found", http.StatusNotFound)
		return
	}

	if err := h.Sync.DeleteBanner(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
