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

type Origin struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    int    `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

type CreateOriginRequest struct {
	Name string `json:"name"`
}

type UpdateOriginRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OriginAPI interface {
	GetAll(ctx context.Context) ([]Origin, error)
	Create(ctx context.Context, req CreateOriginRequest) (Origin, error)
	Update(ctx context.Context, req UpdateOriginRequest) (Origin, error)
	SetStatus(ctx context.Context, id, status int) error
}

type httpOriginAPI struct{ c *backend.Client }

func NewOriginAPI(c *backend.Client) OriginAPI { return &httpOriginAPI{c: c} }

func (a *httpOriginAPI) GetAll(ctx context.Context) ([]Origin, error) {
	var out []Origin
	err := a.c.GetJSON(ctx, "origins.getAll", "/origins", &out)
	return out, err
}

func (a *httpOriginAPI) Create(ctx context.Context, req CreateOriginRequest) (Origin, error) {
	var out Origin
	err := a.c.PostJSON(ctx, "origins.create", "/origins/create", nil, req, &out)
	return out, err
}

func (a *httpOriginAPI) Update(ctx context.Context, req UpdateOriginRequest) (Origin, error) {
	var out Origin
	err := a.c.PostJSON(ctx, "origins.update", "/origins/update", nil, req, &out)
	return out, err
}

func (a *httpOriginAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "origins.setStatus", "/origins/status", q, nil)
}

type OriginStore struct {
	api      OriginAPI
	notifier *notify.Center
	log      *logrus.Entry

	mu      sync.Mutex
	origins []Origin
}

func NewOriginStore(api OriginAPI, notifier *notify.Center) *OriginStore {
	return &OriginStore{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "origin"),
	}
}

func (s *OriginStore) Load(ctx context.Context) error {
	data, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not load origins")
		return err
	}
	s.mu.Lock()
	s.origins = data
	s.mu.Unlock()
	return nil
}

func (s *OriginStore) All() []Origin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Origin, len(s.origins))
	copy(out, s.origins)
	return out
}

func (s *OriginStore) Active() []Origin {
	var out []Origin
	for _, o := range s.All() {
		if o.Status == StatusActive {
			out = append(out, o)
		}
	}
	return out
}

func (s *OriginStore) Get(id int) (Origin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.origins {
		if o.ID == id {
			return o, true
		}
	}
	return Origin{}, false
}

func (s *OriginStore) Create(ctx context.Context, req CreateOriginRequest) error {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.origins = append(s.origins, created)
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *OriginStore) Update(ctx context.Context, req UpdateOriginRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.origins {
		if s.origins[i].ID == updated.ID {
			s.origins[i] = updated
		}
	}
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *OriginStore) Retire(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusRetired, "catalog.retired")
}

func (s *OriginStore) Restore(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusActive, "catalog.restored")
}

func (s *OriginStore) setStatus(ctx context.Context, id, status int, key string) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.origins {
		if s.origins[i].ID == id {
			s.origins[i].Status = status
		}
	}
	s.mu.Unlock()
	s.notifier.Success(key)
	return nil
}
