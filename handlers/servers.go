package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"managerpro/models"
	syncsvc "managerpro/services/sync"
)

// ServersHandler serves IPTV server-link CRUD.
type ServersHandler struct {
	Sync *syncsvc.Service
}

func NewServersHandler(sync *syncsvc.Service) *ServersHandler {
	return &ServersHandler{Sync: sync}
}

// List returns the servers visible to the caller.
func (h *ServersHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	out := []models.Server{}
	for _, s := range h.Sync.Servers().LoadAll() {
		if canSee(user, s.UserID) {
			out = append(out, s)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Create stores a new server link owned by the caller.
func (h *ServersHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	var request struct {
		Name        string `json:"name"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Active      bool   `json:"active"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	server := models.Server{
		ID:          models.NewID(),
		Name:        request.Name,
		URL:         request.URL,
		Description: request.Description,
		Active:      request.Active,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		UserID:      user.ID,
	}
	if err := h.Sync.SaveServer(r.Context(), server); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, server)
}

// Update applies a typed patch to one server.
func (h *ServersHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	existing, found := h.Sync.Servers().Get(id)
	if !found {
		http.Error(w, "server not found", http.StatusNotFound)
		return
	}
	if !canSee(user, existing.UserID) {
		http.Error(w, "not your server", http.StatusForbidden)
		return
	}

	var patch models.ServerPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if err := h.Sync.UpdateServer(r.Context(), id, patch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	updated, _ := h.Sync.Servers().Get(id)
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a server link.
func (h *ServersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	existing, found := h.Sync.Servers().Get(id)
	if !found {
		http.Error(w, "server not found", http.StatusNotFound)
		return
	}
	if !canSee(user, existing.UserID) {
		http.Error(w, "not your server", http.StatusForbidden)
		return
	}

	if err := h.Sync.DeleteServer(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
