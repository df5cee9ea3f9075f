package handlers

import (
	"net/http"

	"managerpro/models"
	"managerpro/services/catalog"
)

// CatalogHandler serves artwork lookups for the banner editor.
type CatalogHandler struct {
	Catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// Search filters the catalog by ?category= and ?q=.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	category := models.BannerCategory(r.URL.Query().Get("category"))
	switch category {
	case "", models.CategoryMovie, models.CategorySeries, models.CategorySport:
	default:
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.Search(category, r.URL.Query().Get("q")))
}
