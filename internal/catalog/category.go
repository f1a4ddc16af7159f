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

type Category struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      int    `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
}

type CreateCategoryRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryAPI maps one-to-one onto the backend category endpoints.
type CategoryAPI interface {
	GetAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, req CreateCategoryRequest) (Category, error)
	Update(ctx context.Context, req UpdateCategoryRequest) (Category, error)
	SetStatus(ctx context.Context, id, status int) error
}

type httpCategoryAPI struct{ c *backend.Client }

func NewCategoryAPI(c *backend.Client) CategoryAPI { return &httpCategoryAPI{c: c} }

func (a *httpCategoryAPI) GetAll(ctx context.Context) ([]Category, error) {
	var out []Category
	err := a.c.GetJSON(ctx, "categories.getAll", "/categories", &out)
	return out, err
}

func (a *httpCategoryAPI) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	var out Category
	err := a.c.PostJSON(ctx, "categories.create", "/categories/create", nil, req, &out)
	return out, err
}

func (a *httpCategoryAPI) Update(ctx context.Context, req UpdateCategoryRequest) (Category, error) {
	var out Category
	err := a.c.PostJSON(ctx, "categories.update", "/categories/update", nil, req, &out)
	return out, err
}

func (a *httpCategoryAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "categories.setStatus", "/categories/status", q, nil)
}

// CategoryStore owns the in-memory category collection for one session.
type CategoryStore struct {
	api      CategoryAPI
	notifier *notify.Center
	log      *logrus.Entry

	mu         sync.Mutex
	categories []Category
}

func NewCategoryStore(api CategoryAPI, notifier *notify.Center) *CategoryStore {
	return &CategoryStore{
		api:      api,
		notifier: notifier,
		log:      logrus.WithField("store", "category"),
	}
}

// Load refreshes the collection. A fetch failure is logged and the previous
// snapshot kept, so browsing degrades to stale data instead of an error page.
func (s *CategoryStore) Load(ctx context.Context) error {
	data, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not load categories")
		return err
	}
	s.mu.Lock()
	s.categories = data
	s.mu.Unlock()
	return nil
}

func (s *CategoryStore) All() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Active returns only the not-retired entries, the set shown to customers.
func (s *CategoryStore) Active() []Category {
	var out []Category
	for _, c := range s.All() {
		if c.Status == StatusActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *CategoryStore) Get(id int) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (s *CategoryStore) Create(ctx context.Context, req CreateCategoryRequest) error {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.categories = append(s.categories, created)
	s.mu.Unlock()
	s.notifier.Success("catalog.saved")
	return nil
}

func (s *CategoryStore) Update(ctx context.Context, req UpdateCategoryRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.replace(updated)
	s.notifier.Success("catalog.saved")
	return nil
}

// Retire soft-deletes a category; Restore brings it back. Neither removes
// the row.
func (s *CategoryStore) Retire(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusRetired, "catalog.retired")
}

func (s *CategoryStore) Restore(ctx context.Context, id int) error {
	return s.setStatus(ctx, id, StatusActive, "catalog.restored")
}

func (s *CategoryStore) setStatus(ctx context.Context, id, status int, key string) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Status = status
		}
	}
	s.mu.Unlock()
	s.notifier.Success(key)
	return nil
}

func (s *CategoryStore) replace(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return
		}
	}
	s.categories = append(s.categories, c)
}
