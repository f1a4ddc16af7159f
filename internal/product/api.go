package product

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
)

// API maps one-to-one onto the backend product endpoints. No business logic
// lives here, only parameter marshaling.
type API interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	Create(ctx context.Context, req CreateRequest) (Product, error)
	Update(ctx context.Context, req UpdateRequest) (Product, error)
	SetStatus(ctx context.Context, id, status int) error
}

type httpAPI struct{ c *backend.Client }

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) GetAll(ctx context.Context) ([]Product, error) {
	var out []Product
	err := a.c.GetJSON(ctx, "products.getAll", "/products", &out)
	return out, err
}

func (a *httpAPI) GetByID(ctx context.Context, id int) (Product, error) {
	var out Product
	q := url.Values{"id": {strconv.Itoa(id)}}
	err := a.c.PostJSON(ctx, "products.getById", "/products/get", q, nil, &out)
	return out, err
}

func (a *httpAPI) Create(ctx context.Context, req CreateRequest) (Product, error) {
	var out Product
	err := a.c.PostJSON(ctx, "products.create", "/products/create", nil, req, &out)
	return out, err
}

func (a *httpAPI) Update(ctx context.Context, req UpdateRequest) (Product, error) {
	var out Product
	err := a.c.PostJSON(ctx, "products.update", "/products/update", nil, req, &out)
	return out, err
}

func (a *httpAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "products.setStatus", "/products/status", q, nil)
}

// FakeAPI is the in-memory stand-in used by tests.
type FakeAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []Product
	Err    error // when set, every call fails with it
}

func NewFakeAPI(seed []Product) *FakeAPI {
	f := &FakeAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakeAPI) GetAll(context.Context) ([]Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Product, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeAPI) GetByID(_ context.Context, id int) (Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Product{}, f.Err
	}
	for _, p := range f.Rows {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, backend.NotFound("products.getById")
}

func (f *FakeAPI) Create(_ context.Context, req CreateRequest) (Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Product{}, f.Err
	}
	f.nextID++
	p := Product{
		ID:          f.nextID,
		Code:        req.Code,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		BreedID:     req.BreedID,
		OriginID:    req.OriginID,
		Age:         req.Age,
		Gender:      req.Gender,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Status:      StatusAvailable,
	}
	f.Rows = append(f.Rows, p)
	return p, nil
}

func (f *FakeAPI) Update(_ context.Context, req UpdateRequest) (Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Product{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID != req.ID {
			continue
		}
		p := &f.Rows[i]
		if req.Code != nil {
			p.Code = *req.Code
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.CategoryID != nil {
			p.CategoryID = *req.CategoryID
		}
		if req.BreedID != nil {
			p.BreedID = *req.BreedID
		}
		if req.OriginID != nil {
			p.OriginID = *req.OriginID
		}
		if req.Age != nil {
			p.Age = *req.Age
		}
		if req.Gender != nil {
			p.Gender = *req.Gender
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		return *p, nil
	}
	return Product{}, backend.NotFound("products.update")
}

func (f *FakeAPI) SetStatus(_ context.Context, id, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows[i].Status = status
			return nil
		}
	}
	return backend.NotFound("products.setStatus")
}
