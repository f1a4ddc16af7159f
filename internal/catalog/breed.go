package catalog

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/notify"
)

type Breed struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
	// CategoryCode is denormalized for display, mirroring what list
	// endpoints return.
	CategoryCode string `json:"categoryCode,omitempty"`
	Status       int    `json:"status"`
	CreatedAt    string `json:"createdAt,omitempty"`
	CreatedBy    string `json:"createdBy,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	UpdatedBy    string `json:"updatedBy,omitempty"`
}

type CreateBreedRequest struct {
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

type UpdateBreedRequest struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

type BreedAPI interface {
	GetAll(ctx context.Context) ([]Breed, error)
	Create(ctx context.Context, req CreateBreedRequest) (Breed, error)
	Update(ctx context.Context, req UpdateBreedRequest) (Breed, error)
	SetStatus(ctx context.Context, id, status int) error
}

type httpBreedAPI struct{ c *backend.Client }

func NewBreedAPI(c *backend.Client) BreedAPI { return &httpBreedAPI{c: c} }

func (a *httpBreedAPI) GetAll(ctx context.Context) ([]Breed, error) {
	var out []Breed
	err := a.c.GetJSON(ctx, "breeds.getAll", "/breeds", &out)
	return out, err
}

func (a *httpBreedAPI) Create(ctx context.Context, req CreateBreedRequest) (Breed, error) {
	var out Breed
	err := a.c.PostJSON(ctx, "breeds.create", "/breeds/create", nil, req, &out)
	return out, err
}

func (a *httpBreedAPI) Update(ctx context.Context, req UpdateBreedRequest) (Breed, error) {
	var out Breed
	err := a.c.PostJSON(ctx, "breeds.update", "/breeds/update", nil, req, &out)
	return out, err
}

func (a *httpBreedAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "breeds.setStatus", "/breeds/status", q, nil)
}

type BreedStore struct {
	api      BreedAPI
	notifier *notify.Center
	log      *logrus.Entry

	mu     sync.Mutex
	breeds []Breed
}

func NewBreedStore(api BreedAPI, notifier *notify.Center) *BreedStore {
	return &BreedStore{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "breed"),
	}
}

func (s *BreedStore) Load(ctx context.Context) error {
	data, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not load breeds")
		return err
	}
	s.mu.Lock()
	s.breeds = data
	s.mu.Unlock()
	return nil
}

func (s *BreedStore) All() []Breed {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Breed, len(s.breeds))
	copy(out, s.breeds)
	return out
}

func (s *BreedStore) Active() []Breed {
	var out []Breed
	for _, b := range s.All() {
		if b.Status == StatusActive {
			out = append(out, b)
		}
	}
	return out
}

// ByCategory returns the active breeds under one category, for the admin
// product form's dependent dropdown.
func (s *BreedStore) ByCategory(categoryID int) []Breed {
	var out []Breed
	for _, b := range s.Active() {
		if b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BreedStore) Get(id int) (Breed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.breeds {
		if b.ID == id {
			return b, true
		}
	}
	return Breed{}, false
}

func (s *BreedStore) Create(ctx context.Context, req CreateBreedRequest) error {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.breeds = append(s.breeds, created)
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *BreedStore) Update(ctx context.Context, req UpdateBreedRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.breeds {
		if s.breeds[i].ID == updated.ID {
			s.breeds[i] = updated
		}
	}
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *BreedStore) Retire(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusRetired, "catalog.retired")
}

func (s *BreedStore) Restore(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusActive, "catalog.restored")
}

func (s *BreedStore) setStatus(ctx context.Context, id, status int, key string) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.breeds {
		if s.breeds[i].ID == id {
			s.breeds[i].Status = status
		}
	}
	s.mu.Unlock()
	s.notifier.Success(key)
	return nil
}
