package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/address"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
	"github.com/petparadise/storefront/internal/user"
)

func newSession(api API, seed ...address.Address) (*Session, *address.Store) {
	center := notify.NewCenter(i18n.New(i18n.LangEN), time.Hour)
	addrs := address.NewStore(address.NewFakeAPI(seed), center)
	return NewSession(api, addrs, center), addrs
}

func TestLoginLoadsAddresses(t *testing.T) {
	api := NewFakeAPI([]user.User{{
		ID: 5, Email: "lan@example.com", Password: "secret",
		RoleID: user.RoleCustomer, Status: user.StatusActive,
	}})
	s, addrs := newSession(api, address.Address{
		ID: 1, UserID: 5, Province: "Hà Nội", District: "Cầu Giấy",
		Ward: "Dịch Vọng", Info: "12 Trần Thái Tông", IsDefault: address.DefaultYes,
	})

	require.NoError(t, s.Login(context.Background(), LoginRequest{Email: "lan@example.com", Password: "secret"}))

	got, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 5, got.ID)
	assert.Empty(t, got.Password)

	def, ok := addrs.Default()
	require.True(t, ok)
	assert.Equal(t, 1, def.ID)
}

func TestLoginRejectsLockedAccount(t *testing.T) {
	api := NewFakeAPI([]user.User{{
		ID: 2, Email: "minh@example.com", Password: "secret",
		RoleID: user.RoleCustomer, Status: user.StatusLocked,
	}})
	s, _ := newSession(api)

	err := s.Login(context.Background(), LoginRequest{Email: "minh@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrAccountLocked)

	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestLoginWrongPassword(t *testing.T) {
	api := NewFakeAPI([]user.User{{
		ID: 2, Email: "minh@example.com", Password: "secret",
		RoleID: user.RoleCustomer, Status: user.StatusActive,
	}})
	s, _ := newSession(api)

	err := s.Login(context.Background(), LoginRequest{Email: "minh@example.com", Password: "wrong"})
	require.Error(t, err)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestRegisterForcesCustomerRole(t *testing.T) {
	api := NewFakeAPI(nil)
	s, _ := newSession(api)

	err := s.Register(context.Background(), RegisterRequest{
		Username: "thu", Email: "thu@example.com", Phone: "0901",
		Password: "secret", RoleID: user.RoleAdmin,
	})
	require.NoError(t, err)
	require.Len(t, api.Rows, 1)
	assert.Equal(t, user.RoleCustomer, api.Rows[0].RoleID)
	assert.Equal(t, user.StatusActive, api.Rows[0].Status)
}

func TestUpdateProfileKeepsRole(t *testing.T) {
	api := NewFakeAPI([]user.User{{
		ID: 3, Email: "ha@example.com", Password: "secret", Name: "Hà",
		RoleID: user.RoleStaff, Status: user.StatusActive,
	}})
	s, _ := newSession(api)
	require.NoError(t, s.Login(context.Background(), LoginRequest{Email: "ha@example.com", Password: "secret"}))

	name := "Hà Trần"
	require.NoError(t, s.UpdateProfile(context.Background(), user.UpdateRequest{Name: &name}))

	got, _ := s.CurrentUser()
	assert.Equal(t, "Hà Trần", got.Name)
	assert.Equal(t, user.RoleStaff, got.RoleID)
}

func TestLogoutClearsSession(t *testing.T) {
	api := NewFakeAPI([]user.User{{
		ID: 3, Email: "ha@example.com", Password: "secret",
		RoleID: user.RoleCustomer, Status: user.StatusActive,
	}})
	s, _ := newSession(api)
	require.NoError(t, s.Login(context.Background(), LoginRequest{Email: "ha@example.com", Password: "secret"}))

	s.Logout(context.Background())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}
