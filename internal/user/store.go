package user

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/notify"
)

// Store is the admin-side account directory. Mutations go to the backend
// first; local state changes only after the call succeeds.
type Store struct {
	api      API
	notifier *notify.Center
	log      *logrus.Entry

	mu    sync.RWMutex
	users []User
	roles []Role
}

func NewStore(api API, notifier *notify.Center) *Store {
	return &Store{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "users"),
	}
}

// Load refreshes the account and role lists. A fetch failure keeps whatever
// was loaded before.
func (s *Store) Load(ctx context.Context) error {
	users, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("load users")
		return err
	}
	roles, err := s.api.Roles(ctx)
	if err != nil {
		s.log.WithError(err).Warn("load roles")
		return err
	}
	s.mu.Lock()
	s.users = users
	s.roles = roles
	s.mu.Unlock()
	return nil
}

func (s *Store) All() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) Roles() []Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// RoleName resolves a role id for display; unseen ids come back empty.
func (s *Store) RoleName(id int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.roles {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

func (s *Store) Create(ctx context.Context, req CreateRequest) error {
	if req.RoleID == 0 {
		req.RoleID = RoleCustomer
	}
	if err := s.api.Create(ctx, req); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.reload(ctx)
	s.notifier.Success("user.created")
	return nil
}

func (s *Store) Update(ctx context.Context, req UpdateRequest) error {
	if err := s.api.Update(ctx, req); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID != req.ID {
			continue
		}
		if req.Username != nil {
			s.users[i].Username = *req.Username
		}
		if req.Name != nil {
			s.users[i].Name = *req.Name
		}
		if req.Email != nil {
			s.users[i].Email = *req.Email
		}
		if req.RoleID != nil {
			s.users[i].RoleID = *req.RoleID
		}
		if req.Phone != nil {
			s.users[i].Phone = *req.Phone
		}
		break
	}
	s.mu.Unlock()
	s.notifier.Success("user.updated")
	return nil
}

// Lock disables sign-in for the account without deleting it.
func (s *Store) Lock(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusLocked, "user.locked")
}

func (s *Store) Unlock(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusActive, "user.unlocked")
}

func (s *Store) setStatus(ctx context.Context, id, status int, key string) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Success(key)
	return nil
}

// reload refetches after a create since the backend assigns the id. Failure
// here only logs; the create itself already succeeded.
func (s *Store) reload(ctx context.Context) {
	users, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("reload users")
		return
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
}
