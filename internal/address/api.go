package address

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/petparadise/storefront/internal/backend"
)

// API maps one-to-one onto the backend address endpoints. The default swap
// is a single atomic backend call: the server clears the previous default
// and sets the new one in one transaction, so there is no two-call race to
// compensate for on this side.
type API interface {
	ListByUser(ctx context.Context, userID int) ([]Address, error)
	Create(ctx context.Context, req CreateRequest) (Address, error)
	Update(ctx context.Context, req UpdateRequest) (Address, error)
	Delete(ctx context.Context, id int) error
	SetDefault(ctx context.Context, userID, addressID int) error
}

type httpAPI struct{ c *backend.Client }

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) ListByUser(ctx context.Context, userID int) ([]Address, error) {
	var out []Address
	q := url.Values{"userId": {strconv.Itoa(userID)}}
	err := a.c.PostJSON(ctx, "addresses.listByUser", "/addresses/by-user", q, nil, &out)
	return out, err
}

func (a *httpAPI) Create(ctx context.Context, req CreateRequest) (Address, error) {
	var out Address
	err := a.c.PostJSON(ctx, "addresses.create", "/addresses/create", nil, req, &out)
	return out, err
}

func (a *httpAPI) Update(ctx context.Context, req UpdateRequest) (Address, error) {
	var out Address
	err := a.c.PostJSON(ctx, "addresses.update", "/addresses/update", nil, req, &out)
	return out, err
}

func (a *httpAPI) Delete(ctx context.Context, id int) error {
	q := url.Values{"id": {strconv.Itoa(id)}}
	return a.c.PostCode(ctx, "addresses.delete", "/addresses/delete", q, nil)
}

func (a *httpAPI) SetDefault(ctx context.Context, userID, addressID int) error {
	q := url.Values{
		"userId":    {strconv.Itoa(userID)},
		"addressId": {strconv.Itoa(addressID)},
	}
	return a.c.PostCode(ctx, "addresses.setDefault", "/addresses/set-default", q, nil)
}

// FakeAPI is the in-memory stand-in used by tests.
type FakeAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []Address
	Err    error
}

func NewFakeAPI(seed []Address) *FakeAPI {
	f := &FakeAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakeAPI) ListByUser(_ context.Context, userID int) ([]Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []Address
	for _, a := range f.Rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *FakeAPI) Create(_ context.Context, req CreateRequest) (Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Address{}, f.Err
	}
	f.nextID++
	a := Address{
		ID:        f.nextID,
		UserID:    req.UserID,
		Province:  req.Province,
		District:  req.District,
		Ward:      req.Ward,
		Info:      req.Info,
		Phone:     req.Phone,
		IsDefault: DefaultNo,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	f.Rows = append(f.Rows, a)
	return a, nil
}

func (f *FakeAPI) Update(_ context.Context, req UpdateRequest) (Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Address{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID != req.ID {
			continue
		}
		a := &f.Rows[i]
		if req.Province != nil {
			a.Province = *req.Province
		}
		if req.District != nil {
			a.District = *req.District
		}
		if req.Ward != nil {
			a.Ward = *req.Ward
		}
		if req.Info != nil {
			a.Info = *req.Info
		}
		if req.Phone != nil {
			a.Phone = *req.Phone
		}
		return *a, nil
	}
	return Address{}, backend.NotFound("addresses.update")
}

func (f *FakeAPI) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
			return nil
		}
	}
	return backend.NotFound("addresses.delete")
}

func (f *FakeAPI) SetDefault(_ context.Context, userID, addressID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	found := false
	for i := range f.Rows {
		if f.Rows[i].UserID != userID {
			continue
		}
		if f.Rows[i].ID == addressID {
			f.Rows[i].IsDefault = DefaultYes
			found = true
		} else {
			f.Rows[i].IsDefault = DefaultNo
		}
	}
	if !found {
		return backend.NotFound("addresses.setDefault")
	}
	return nil
}
