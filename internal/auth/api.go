package auth

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
}

// API is the sign-in slice of the backend. Login returns the full user
// record; register and logout answer with sentinel codes.
type API interface {
	Login(ctx context.Context, req LoginRequest) (user.User, error)
	Register(ctx context.Context, req RegisterRequest) error
	Logout(ctx context.Context, userID int) error
	UpdateProfile(ctx context.Context, req user.UpdateRequest) error
}

type httpAPI struct {
	c *backend.Client
}

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) Login(ctx context.Context, req LoginRequest) (user.User, error) {
	var u user.User
	if err := a.c.PostJSON(ctx, "auth.login", "/users/login", nil, req, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (a *httpAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.c.PostCode(ctx, "auth.register", "/users/register", nil, req)
}

func (a *httpAPI) Logout(ctx context.Context, userID int) error {
	q := url.Values{"id": {strconv.Itoa(userID)}}
	return a.c.PostCode(ctx, "auth.logout", "/users/logout", q, nil)
}

func (a *httpAPI) UpdateProfile(ctx context.Context, req user.UpdateRequest) error {
	return a.c.PostCode(ctx, "users.update", "/users/update", nil, req)
}

// FakeAPI authenticates against an in-memory account list.
type FakeAPI struct {
	mu     sync.Mutex
	nextID int
	// Passwords maps email to the cleartext password the fake accepts.
	Passwords map[string]string
	Rows      []user.User
	Err       error
}

func NewFakeAPI(seed []user.User) *FakeAPI {
	f := &FakeAPI{nextID: 1, Passwords: make(map[string]string)}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = f.nextID
		}
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
		if u.Password != "" {
			f.Passwords[u.Email] = u.Password
			u.Password = ""
		}
		f.Rows = append(f.Rows, u)
	}
	return f
}

func (f *FakeAPI) Login(_ context.Context, req LoginRequest) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return user.User{}, f.Err
	}
	for _, u := range f.Rows {
		if u.Email == req.Email && f.Passwords[u.Email] == req.Password {
			return u, nil
		}
	}
	return user.User{}, backend.NotFound("auth.login")
}

func (f *FakeAPI) Register(_ context.Context, req RegisterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for _, u := range f.Rows {
		if u.Email == req.Email {
			return backend.Unknownf("auth.register", "email already registered")
		}
	}
	f.Rows = append(f.Rows, user.User{
		ID:       f.nextID,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Status:   user.StatusActive,
	})
	f.Passwords[req.Email] = req.Password
	f.nextID++
	return nil
}

func (f *FakeAPI) Logout(_ context.Context, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Err
}

func (f *FakeAPI) UpdateProfile(_ context.Context, req user.UpdateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID != req.ID {
			continue
		}
		if req.Name != nil {
			f.Rows[i].Name = *req.Name
		}
		if req.Email != nil {
			f.Rows[i].Email = *req.Email
		}
		if req.Phone != nil {
			f.Rows[i].Phone = *req.Phone
		}
		return nil
	}
	return backend.NotFound("users.update")
}
