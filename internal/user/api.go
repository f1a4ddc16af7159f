package user

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
)

// API is the user-management slice of the remote backend.
type API interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (User, error)
	Create(ctx context.Context, req CreateRequest) error
	Update(ctx context.Context, req UpdateRequest) error
	SetStatus(ctx context.Context, id, status int) error
	Roles(ctx context.Context) ([]Role, error)
}

type httpAPI struct {
	c *backend.Client
}

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) GetAll(ctx context.Context) ([]User, error) {
	var users []User
	if err := a.c.GetJSON(ctx, "users.list", "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *httpAPI) GetByID(ctx context.Context, id int) (User, error) {
	var u User
	q := url.Values{"id": {strconv.Itoa(id)}}
	if err := a.c.PostJSON(ctx, "users.get", "/users/get", q, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (a *httpAPI) Create(ctx context.Context, req CreateRequest) error {
	return a.c.PostCode(ctx, "users.create", "/users/create", nil, req)
}

func (a *httpAPI) Update(ctx context.Context, req UpdateRequest) error {
	return a.c.PostCode(ctx, "users.update", "/users/update", nil, req)
}

func (a *httpAPI) SetStatus(ctx context.Context, id, status int) error {
	q := url.Values{"id": {strconv.Itoa(id)}, "status": {strconv.Itoa(status)}}
	return a.c.PostCode(ctx, "users.status", "/users/status", q, nil)
}

func (a *httpAPI) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := a.c.GetJSON(ctx, "roles.list", "/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// FakeAPI is an in-memory API used by tests and by the session fakes.
type FakeAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []User
	Err    error
}

func NewFakeAPI(seed []User) *FakeAPI {
	f := &FakeAPI{nextID: 1}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = f.nextID
		}
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
		f.Rows = append(f.Rows, u)
	}
	return f
}

func (f *FakeAPI) GetAll(context.Context) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]User, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeAPI) GetByID(_ context.Context, id int) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return User{}, f.Err
	}
	for _, u := range f.Rows {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, backend.NotFound("users.get")
}

func (f *FakeAPI) Create(_ context.Context, req CreateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Rows = append(f.Rows, User{
		ID:       f.nextID,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		RoleID:   req.RoleID,
		Phone:    req.Phone,
		Status:   StatusActive,
	})
	f.nextID++
	return nil
}

func (f *FakeAPI) Update(_ context.Context, req UpdateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID != req.ID {
			continue
		}
		if req.Username != nil {
			f.Rows[i].Username = *req.Username
		}
		if req.Name != nil {
			f.Rows[i].Name = *req.Name
		}
		if req.Email != nil {
			f.Rows[i].Email = *req.Email
		}
		if req.RoleID != nil {
			f.Rows[i].RoleID = *req.RoleID
		}
		if req.Phone != nil {
			f.Rows[i].Phone = *req.Phone
		}
		return nil
	}
	return backend.NotFound("users.update")
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
	return backend.NotFound("users.status")
}

func (f *FakeAPI) Roles(context.Context) ([]Role, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return []Role{
		{ID: RoleCustomer, Code: "CUSTOMER", Name: "Customer"},
		{ID: RoleStaff, Code: "STAFF", Name: "Staff"},
		{ID: RoleAdmin, Code: "ADMIN", Name: "Admin"},
	}, nil
}
