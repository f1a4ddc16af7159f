// Package auth holds the per-session sign-in state: who is logged in and
// the operations that change it.
package auth

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/address"
	"github.com/petparadise/storefront/internal/notify"
	"github.com/petparadise/storefront/internal/user"
)

// Session tracks the current user for one client session. Login also pulls
// the user's address book so checkout can offer a shipping address right
// away.
type Session struct {
	api       API
	addresses *address.Store
	notifier  *notify.Center
	log       *logrus.Entry

	mu      sync.RWMutex
	current *user.User
}

func NewSession(api API, addresses *address.Store, notifier *notify.Center) *Session {
	return &Session{
		api:       api,
		addresses: addresses,
		notifier:  notifier,
		log:       logrus.WithField("store", "auth"),
	}
}

// CurrentUser returns the signed-in user, or false when anonymous.
func (s *Session) CurrentUser() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return user.User{}, false
	}
	return *s.current, true
}

// Login authenticates against the backend. Locked accounts never become the
// session user, whatever the backend answered.
func (s *Session) Login(ctx context.Context, req LoginRequest) error {
	u, err := s.api.Login(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "auth.login_failed")
		return err
	}
	if u.Status != user.StatusActive {
		s.notifier.Error("auth.locked")
		return ErrAccountLocked
	}
	u.Password = ""
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	if err := s.addresses.Load(ctx, u.ID); err != nil {
		// The session is still valid; the address book retries on demand.
		s.log.WithError(err).WithField("userId", u.ID).Warn("could not preload addresses")
	}
	s.notifier.Success("auth.login_ok")
	return nil
}

// Register creates a customer account. The caller cannot choose a role.
func (s *Session) Register(ctx context.Context, req RegisterRequest) error {
	req.RoleID = user.RoleCustomer
	if err := s.api.Register(ctx, req); err != nil {
		s.notifier.Failure(err, "auth.register_failed")
		return err
	}
	s.notifier.Success("auth.registered")
	return nil
}

// Logout clears the session user. The backend call is best-effort; local
// state drops either way.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	cur := s.current
	s.current = nil
	s.mu.Unlock()
	if cur == nil {
		return
	}
	if err := s.api.Logout(ctx, cur.ID); err != nil {
		s.log.WithError(err).WithField("userId", cur.ID).Warn("logout call failed")
	}
}

// UpdateProfile edits the signed-in user's own record.
func (s *Session) UpdateProfile(ctx context.Context, req user.UpdateRequest) error {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur == nil {
		return ErrNotSignedIn
	}
	req.ID = cur.ID
	req.RoleID = nil // profile edits never change the role
	if err := s.api.UpdateProfile(ctx, req); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	if s.current != nil {
		if req.Username != nil {
			s.current.Username = *req.Username
		}
		if req.Name != nil {
			s.current.Name = *req.Name
		}
		if req.Email != nil {
			s.current.Email = *req.Email
		}
		if req.Phone != nil {
			s.current.Phone = *req.Phone
		}
	}
	s.mu.Unlock()
	s.notifier.Success("auth.profile_updated")
	return nil
}
