package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"managerpro/models"
	"managerpro/services/auth"
	syncsvc "managerpro/services/sync"
	"managerpro/utils"
)

// UsersHandler serves operator-account management. All routes here sit
// behind the admin gate.
type UsersHandler struct {
	Sync *syncsvc.Service
	Auth *auth.Service
}

func NewUsersHandler(sync *syncsvc.Service, authSvc *auth.Service) *UsersHandler {
	return &UsersHandler{Sync: sync, Auth: authSvc}
}

// userView strips the password hash before a record leaves the API.
type userView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	Active     bool        `json:"active"`
	CreatedAt  string      `json:"createdAt"`
	LastAccess string      `json:"lastAccess"`
}

func toView(u models.User) userView {
	return userView{
		ID: u.ID, Name: u.Name, Email: u.Email,
		Role: u.Role, Active: u.Active,
		CreatedAt: u.CreatedAt, LastAccess: u.LastAccess,
	}
}

// List returns every operator account.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	out := []userView{}
	for _, u := range h.Sync.Users().LoadAll() {
		out = append(out, toView(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create registers a new operator account.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
		Active   bool        `json:"active"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if len(request.Password) < 6 {
		http.Error(w, "password must have at least 6 characters", http.StatusBadRequest)
		return
	}
	if request.Role != models.RoleAdmin {
		request.Role = models.RoleRegular
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := models.User{
		ID:           models.NewID(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         request.Role,
		Active:       request.Active,
		CreatedAt:    now,
		LastAccess:   now,
	}
	if err := h.Sync.SaveUser(r.Context(), user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toView(user))
}

// Update applies a typed patch to an account. The caller cannot
// deactivate or demote itself; the seat you are sitting on stays put.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	if _, found := h.Sync.Users().Get(id); !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	var request struct {
		Name   *string      `json:"name"`
		Email  *string      `json:"email"`
		Role   *models.Role `json:"role"`
		Active *bool        `json:"active"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	if id == caller.ID {
		if request.Active != nil && !*request.Active {
			http.Error(w, "you cannot deactivate your own account", http.StatusBadRequest)
			return
		}
		if request.Role != nil && *request.Role != models.RoleAdmin {
			http.Error(w, "you cannot demote your own account", http.StatusBadRequest)
			return
		}
	}

	patch := models.UserPatch{
		Name:   request.Name,
		Email:  request.Email,
		Role:   request.Role,
		Active: request.Active,
	}
	if err := h.Sync.UpdateUser(r.Context(), id, patch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	updated, _ := h.Sync.Users().Get(id)
	writeJSON(w, http.StatusOK, toView(updated))
}

// Delete removes an account. Self-deletion is rejected.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, _ := currentUser(r)
	id := mux.Vars(r)["id"]

	if id == caller.ID {
		http.Error(w, "you cannot delete your own account", http.StatusBadRequest)
		return
	}
	if _, found := h.Sync.Users().Get(id); !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	if err := h.Sync.DeleteUser(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetPassword generates a new password for the account and returns
// the cleartext once, for the admin to hand over.
func (h *UsersHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, found := h.Sync.Users().Get(id); !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	generated, err := h.Auth.ResetPassword(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"password": generated})
}
