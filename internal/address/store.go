package address

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/notify"
)

// Store owns the signed-in user's address list.
type Store struct {
	api      API
	notifier *notify.Center
	log      *logrus.Entry

	mu        sync.Mutex
	userID    int
	addresses []Address
}

func NewStore(api API, notifier *notify.Center) *Store {
	return &Store{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "address"),
	}
}

// Load fetches the address list for userID; called on login and when the
// profile page opens.
func (s *Store) Load(ctx context.Context, userID int) error {
	data, err := s.api.ListByUser(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("userId", userID).Warn("could not load addresses")
		return err
	}
	s.mu.Lock()
	s.userID = userID
	s.addresses = data
	s.mu.Unlock()
	return nil
}

func (s *Store) All() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

// Default returns the user's default address, if one is set.
func (s *Store) Default() (Address, bool) {
	for _, a := range s.All() {
		if a.IsDefault == DefaultYes {
			return a, true
		}
	}
	return Address{}, false
}

// Add validates the full address client-side before any network call; an
// incomplete form costs no round-trip.
func (s *Store) Add(ctx context.Context, req CreateRequest) error {
	if err := validate(req.Province, req.District, req.Ward, req.Info); err != nil {
		s.notifier.Error("address.incomplete")
		return backend.Validation("addresses.create", err)
	}
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.addresses = append(s.addresses, created)
	s.mu.Unlock()
	s.notifier.Success("address.added")
	return nil
}

func (s *Store) Update(ctx context.Context, req UpdateRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.addresses {
		if s.addresses[i].ID == updated.ID {
			// keep the local default flag; Update never touches it
			updated.IsDefault = s.addresses[i].IsDefault
			s.addresses[i] = updated
		}
	}
	s.mu.Unlock()
	s.notifier.Success("address.updated")
	return nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.addresses {
		if s.addresses[i].ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Success("address.deleted")
	return nil
}

// SetDefault makes addressID the user's one default address. The backend
// clears-and-sets atomically; on success the local list is reconciled so
// exactly one entry carries the flag.
func (s *Store) SetDefault(ctx context.Context, addressID int) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if err := s.api.SetDefault(ctx, userID, addressID); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.addresses {
		if s.addresses[i].ID == addressID {
			s.addresses[i].IsDefault = DefaultYes
		} else {
			s.addresses[i].IsDefault = DefaultNo
		}
	}
	s.mu.Unlock()
	s.notifier.Success("address.default_set")
	return nil
}

func validate(province, district, ward, info string) error {
	for _, part := range []string{province, district, ward, info} {
		if strings.TrimSpace(part) == "" {
			return errors.New("province, district, ward and info are all required")
		}
	}
	return nil
}
