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

// PetService is a bookable care service (spa, vet check, training).
type PetService struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description,omitempty"`
	Status      int    `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
}

type CreatePetServiceRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Description string `json:"description,omitempty"`
}

type UpdatePetServiceRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Description string `json:"description,omitempty"`
}

type PetServiceAPI interface {
	GetAll(ctx context.Context) ([]PetService, error)
	Create(ctx context.Context, req CreatePetServiceRequest) (PetService, error)
	Update(ctx context.Context, req UpdatePetServiceRequest) (PetService, error)
	SetStatus(ctx context.Context, id, status int) error
}

type httpPetServiceAPI struct{ c *backend.Client }

func NewPetServiceAPI(c *backend.Client) PetServiceAPI { return &httpPetServiceAPI{c: c} }

func (a *httpPetServiceAPI) GetAll(ctx context.Context) ([]PetService, error) {
	var out []PetService
	err := a.c.GetJSON(ctx, "services.getAll", "/services", &out)
	return out, err
}

func (a *httpPetServiceAPI) Create(ctx context.Context, req CreatePetServiceRequest) (PetService, error) {
	var out PetService
	err := a.c.PostJSON(ctx, "services.create", "/services/create", nil, req, &out)
	return out, err
}

func (a *httpPetServiceAPI) Update(ctx context.Context, req UpdatePetServiceRequest) (PetService, error) {
	var out PetService
	err := a.c.PostJSON(ctx, "services.update", "/services/update", nil, req, &out)
	return out, err
}

func (a *httpPetServiceAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "services.setStatus", "/services/status", q, nil)
}

type PetServiceStore struct {
	api      PetServiceAPI
	notifier *notify.Center
	log      *logrus.Entry

	mu       sync.Mutex
	services []PetService
}

func NewPetServiceStore(api PetServiceAPI, notifier *notify.Center) *PetServiceStore {
	return &PetServiceStore{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "petservice"),
	}
}

func (s *PetServiceStore) Load(ctx context.Context) error {
	data, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not load services")
		return err
	}
	s.mu.Lock()
	s.services = data
	s.mu.Unlock()
	return nil
}

func (s *PetServiceStore) All() []PetService {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PetService, len(s.services))
	copy(out, s.services)
	return out
}

func (s *PetServiceStore) Active() []PetService {
	var out []PetService
	for _, sv := range s.All() {
		if sv.Status == StatusActive {
			out = append(out, sv)
		}
	}
	return out
}

func (s *PetServiceStore) Get(id int) (PetService, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sv := range s.services {
		if sv.ID == id {
			return sv, true
		}
	}
	return PetService{}, false
}

func (s *PetServiceStore) Create(ctx context.Context, req CreatePetServiceRequest) error {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.services = append(s.services, created)
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *PetServiceStore) Update(ctx context.Context, req UpdatePetServiceRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.services {
		if s.services[i].ID == updated.ID {
			s.services[i] = updated
		}
	}
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *PetServiceStore) Retire(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusRetired, "catalog.retired")
}

func (s *PetServiceStore) Restore(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusActive, "catalog.restored")
}

func (s *PetServiceStore) setStatus(ctx context.Context, id, status int, key string) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].Status = status
		}
	}
	s.mu.Unlock()
	s.notifier.Success(key)
	return nil
}
