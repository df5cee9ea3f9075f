// Package auth implements the credential gate and the persisted login
// session. Remote authentication is preferred; the local user table is
// the fallback with identical matching criteria.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sethvargo/go-password/password"

	"managerpro/internal/convert"
	"managerpro/internal/localstore"
	"managerpro/internal/remote"
	"managerpro/models"
	syncsvc "managerpro/services/sync"
	"managerpro/utils"
)

// ErrInvalidCredentials is returned when no active user matches the
// supplied email and password. A miss is expected behavior, not a
// fault; handlers map it to 401.
var ErrInvalidCredentials = errors.New("invalid credentials or inactive account")

// ErrNoSession is returned when no persisted session exists or the
// session no longer resolves to an active user.
var ErrNoSession = errors.New("no valid session")

// Service is the auth gate over the synced user table and the hosted
// backend.
type Service struct {
	sync    *syncsvc.Service
	session *localstore.Object[models.Session]
}

// NewService wires the gate. The session singleton is persisted in the
// same local store as the domain tables.
func NewService(sync *syncsvc.Service, store *localstore.Store) *Service {
	return &Service{
		sync:    sync,
		session: localstore.NewObject[models.Session](store, "iptv_sessao_universal"),
	}
}

// Login authenticates against the hosted backend first, then falls back
// to the local user table with the same email, password and active
// criteria. On success the session singleton is (re)written.
func (s *Service) Login(ctx context.Context, email, pass string) (models.User, error) {
	user, ok := s.authenticateRemote(ctx, email, pass)
	if !ok {
		user, ok = s.authenticateLocal(ctx, email, pass)
	}
	if !ok {
		log.Printf("[auth] login rejected email=%s", email)
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.persistSession(user); err != nil {
		return models.User{}, err
	}
	log.Printf("[auth] login ok user=%s", user.ID)
	return user, nil
}

// authenticateRemote matches email + active on the backend and verifies
// the password hash here. On a hit, the last-access stamp is written in
// a separate round trip; a crash in between leaves it stale, which is
// tolerated.
func (s *Service) authenticateRemote(ctx context.Context, email, pass string) (models.User, bool) {
	row, err := s.sync.Backend().FindActiveUser(ctx, email)
	if err != nil {
		log.Printf("[auth] remote authenticate failed, trying local: %v", err)
		return models.User{}, false
	}
	if row == nil || !utils.VerifyPassword(pass, row.PasswordHash) {
		return models.User{}, false
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	if err := s.sync.Backend().Update(ctx, remote.TableUsers, row.ID, remote.UserPatchRow{LastAccess: &ts}); err != nil {
		log.Printf("[auth] last-access update failed: %v", err)
	}
	return convert.UserToLocal(*row), true
}

// authenticateLocal scans the local user table with criteria identical
// to the remote path.
func (s *Service) authenticateLocal(ctx context.Context, email, pass string) (models.User, bool) {
	for _, u := range s.sync.Users().LoadAll() {
		if u.Email == email && u.Active && utils.VerifyPassword(pass, u.PasswordHash) {
			ts := time.Now().UTC().Format(time.RFC3339)
			if err := s.sync.UpdateUser(ctx, u.ID, models.UserPatch{LastAccess: &ts}); err != nil {
				log.Printf("[auth] local last-access update failed: %v", err)
			}
			u.LastAccess = ts
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Service) persistSession(user models.User) error {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return s.session.Save(models.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Restore resolves the persisted session back to its user. A session
// pointing at a missing or deactivated user is discarded.
func (s *Service) Restore() (models.User, error) {
	sess, ok := s.session.Load()
	if !ok {
		return models.User{}, ErrNoSession
	}
	user, found := s.sync.Users().Get(sess.UserID)
	if !found || !user.Active {
		_ = s.session.Clear()
		return models.User{}, ErrNoSession
	}
	return user, nil
}

// Session returns the raw persisted session, if any.
func (s *Service) Session() (models.Session, bool) {
	return s.session.Load()
}

// Logout clears only the session singleton; domain data stays intact.
func (s *Service) Logout() error {
	log.Printf("[auth] logout")
	return s.session.Clear()
}

// ChangeCredentials updates the caller's own login and rewrites the
// session under a fresh token so the new credentials take effect
// everywhere.
func (s *Service) ChangeCredentials(ctx context.Context, userID, newEmail, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	patch := models.UserPatch{Email: &newEmail, PasswordHash: &hash}
	if err := s.sync.UpdateUser(ctx, userID, patch); err != nil {
		return err
	}

	user, found := s.sync.Users().Get(userID)
	if !found {
		return fmt.Errorf("user %s vanished during credential change", userID)
	}
	return s.persistSession(user)
}

// ResetPassword generates a fresh password for the given user, stores
// its hash, and returns the cleartext once so an admin can hand it over.
func (s *Service) ResetPassword(ctx context.Context, userID string) (string, error) {
	generated, err := password.Generate(12, 3, 0, false, false)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	hash, err := utils.HashPassword(generated)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.sync.UpdateUser(ctx, userID, models.UserPatch{PasswordHash: &hash}); err != nil {
		return "", err
	}
	return generated, nil
}
