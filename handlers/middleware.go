package handlers

import (
	"context"
	"net/http"

	"managerpro/models"
	"managerpro/services/auth"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// sessionRestorer resolves the persisted session to its user.
type sessionRestorer interface {
	Restore() (models.User, error)
}

var _ sessionRestorer = (*auth.Service)(nil)

// RequireUser rejects requests when no valid session exists and
// otherwise stores the current user in the request context.
func RequireUser(gate sessionRestorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := gate.Restore()
			if err != nil {
				http.Error(w, "not signed in", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates privileged routes on the single admin predicate.
// There is no finer-grained permission model.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(r)
		if !ok || !user.IsAdmin() {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(models.User)
	return user, ok
}

// canSee applies the ownership rule: admins see everything, regular
// operators see only records they created.
func canSee(u models.User, ownerID string) bool {
	return u.IsAdmin() || u.ID == ownerID
}
