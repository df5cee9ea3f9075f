package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"managerpro/models"
	"managerpro/services/plans"
)

// PlansHandler serves the static pricing catalog.
type PlansHandler struct {
	Plans *plans.Service
}

func NewPlansHandler(svc *plans.Service) *PlansHandler {
	return &PlansHandler{Plans: svc}
}

func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Plans.List())
}

func (h *PlansHandler) Update(w http.ResponseWriter, r *http.Request) {
	var plan models.Plan
	if !decodeBody(w, r, &plan) {
		return
	}
	updated, err := h.Plans.Update(mux.Vars(r)["id"], plan)
	if err != nil {
		if errors.Is(err, plans.ErrNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
