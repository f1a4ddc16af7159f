package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/config"
	"github.com/petparadise/storefront/internal/user"
)

// stubBackend answers just enough of the REST contract for the shell to
// sign in and hydrate: a login endpoint plus empty collections.
func stubBackend(t *testing.T, accounts map[string]user.User) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		u, ok := accounts[req.Email]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	})
	empty := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}
	for _, p := range []string{
		"/categories", "/breeds", "/origins", "/services", "/products",
		"/roles", "/users",
		"/orders", "/orders/by-customer",
		"/appointments", "/appointments/by-customer",
		"/addresses/by-user",
		"/order-items/by-order", "/order-status-logs/by-order",
		"/appointment-status-logs/by-appointment",
	} {
		mux.HandleFunc(p, empty)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, accounts map[string]user.User) *App {
	t.Helper()
	srv := stubBackend(t, accounts)
	cfg := config.Config{
		Addr:           ":0",
		BackendURL:     srv.URL,
		BackendTimeout: 5 * time.Second,
		JWTSecret:      "test-secret",
		NotifyTTL:      time.Hour,
		DefaultLocale:  "en",
	}
	return New(cfg, backend.NewClient(cfg.BackendURL, cfg.BackendTimeout))
}

func signIn(t *testing.T, a *App, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func customerAccount() map[string]user.User {
	return map[string]user.User{
		"lan@example.com": {
			ID: 5, Email: "lan@example.com", Username: "lan",
			RoleID: user.RoleCustomer, Status: user.StatusActive,
		},
		"admin@example.com": {
			ID: 1, Email: "admin@example.com", Username: "admin",
			RoleID: user.RoleAdmin, Status: user.StatusActive,
		},
		"locked@example.com": {
			ID: 7, Email: "locked@example.com", Username: "locked",
			RoleID: user.RoleCustomer, Status: user.StatusLocked,
		},
	}
}

func TestSignInIssuesToken(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "lan@example.com", "secret")
	assert.NotEmpty(t, token)
}

func TestSignInLockedAccountRejected(t *testing.T) {
	a := newTestApp(t, customerAccount())
	body, _ := json.Marshal(map[string]string{"email": "locked@example.com", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	a := newTestApp(t, customerAccount())
	req := httptest.NewRequest(http.MethodGet, "/api/shop/products", nil)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCustomerCannotReachAdminRoutes(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "lan@example.com", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminReachesAdminRoutes(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "admin@example.com", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCartRoundTrip(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "lan@example.com", "secret")

	get := func(path string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := a.Fiber().Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := get("/api/shop/cart")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(raw))

	// Unknown product ids are rejected before touching the cart.
	req := httptest.NewRequest(http.MethodPost, "/api/shop/cart/add?productId=99", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckoutRequiresShippingAddress(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "lan@example.com", "secret")

	// No shipping address in the payload and no saved default either.
	body, _ := json.Marshal(map[string]any{"paymentMethod": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/shop/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignOutEvictsSession(t *testing.T) {
	a := newTestApp(t, customerAccount())
	token := signIn(t, a, "lan@example.com", "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The token still verifies but its session is gone.
	req = httptest.NewRequest(http.MethodGet, "/api/shop/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignUpDefaultsToCustomer(t *testing.T) {
	// The registration endpoint checks the role the shell actually sends:
	// anything but customer answers the failure sentinel.
	mux := http.NewServeMux()
	mux.HandleFunc("/users/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RoleID int `json:"roleId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.RoleID != user.RoleCustomer {
			_, _ = w.Write([]byte("0"))
			return
		}
		_, _ = w.Write([]byte("1"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		BackendURL:     srv.URL,
		BackendTimeout: 5 * time.Second,
		JWTSecret:      "test-secret",
		NotifyTTL:      time.Hour,
		DefaultLocale:  "en",
	}
	a := New(cfg, backend.NewClient(cfg.BackendURL, cfg.BackendTimeout))

	body, _ := json.Marshal(map[string]any{
		"username": "thu", "email": "thu@example.com",
		"password": "secret", "phone": "0901",
		"roleId": user.RoleAdmin, // must be ignored
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
