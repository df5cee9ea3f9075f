package handlers

import (
	"errors"
	"net/http"

	"managerpro/services/auth"
)

// AuthHandler exposes login, logout and session endpoints.
type AuthHandler struct {
	Service *auth.Service
}

func NewAuthHandler(s *auth.Service) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Login checks credentials and persists a session on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	user, err := h.Service.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toView(user))
}

// Logout clears the session; domain data is untouched.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session returns the currently signed-in user, restoring it from the
// persisted session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.Restore()
	if err != nil {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toView(user))
}

// ChangeCredentials updates the caller's own email and password.
func (h *AuthHandler) ChangeCredentials(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if len(request.Password) < 6 {
		http.Error(w, "password must have at least 6 characters", http.StatusBadRequest)
		return
	}

	if err := h.Service.ChangeCredentials(r.Context(), user.ID, request.Email, request.Password); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
