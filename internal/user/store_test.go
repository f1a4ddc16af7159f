package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
)

func newCenter() *notify.Center {
	return notify.NewCenter(i18n.New(i18n.LangEN), time.Hour)
}

func TestStoreCreateDefaultsRoleToCustomer(t *testing.T) {
	api := NewFakeAPI(nil)
	s := NewStore(api, newCenter())

	err := s.Create(context.Background(), CreateRequest{
		Username: "lan", Name: "Lan", Email: "lan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	users := s.All()
	require.Len(t, users, 1)
	assert.Equal(t, RoleCustomer, users[0].RoleID)
	assert.Equal(t, StatusActive, users[0].Status)
}

func TestStoreLockUnlock(t *testing.T) {
	api := NewFakeAPI([]User{{ID: 7, Username: "minh", RoleID: RoleCustomer, Status: StatusActive}})
	s := NewStore(api, newCenter())
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Lock(context.Background(), 7))
	got, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, StatusLocked, got.Status)
	assert.Equal(t, StatusLocked, api.Rows[0].Status)

	require.NoError(t, s.Unlock(context.Background(), 7))
	got, _ = s.Get(7)
	assert.Equal(t, StatusActive, got.Status)
}

func TestStoreUpdatePartial(t *testing.T) {
	api := NewFakeAPI([]User{{ID: 3, Username: "thu", Name: "Thu", Email: "thu@example.com", Phone: "0901", RoleID: RoleStaff, Status: StatusActive}})
	s := NewStore(api, newCenter())
	require.NoError(t, s.Load(context.Background()))

	phone := "0902"
	require.NoError(t, s.Update(context.Background(), UpdateRequest{ID: 3, Phone: &phone}))

	got, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, "0902", got.Phone)
	assert.Equal(t, "Thu", got.Name)
	assert.Equal(t, RoleStaff, got.RoleID)
}

func TestStoreFailedMutationKeepsState(t *testing.T) {
	api := NewFakeAPI([]User{{ID: 1, Username: "ha", RoleID: RoleCustomer, Status: StatusActive}})
	s := NewStore(api, newCenter())
	require.NoError(t, s.Load(context.Background()))

	api.Err = backend.ServerError("users.status")
	err := s.Lock(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, backend.KindServerError, backend.KindOf(err))

	got, _ := s.Get(1)
	assert.Equal(t, StatusActive, got.Status)
}

func TestStoreRoleName(t *testing.T) {
	api := NewFakeAPI(nil)
	s := NewStore(api, newCenter())
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, "Admin", s.RoleName(RoleAdmin))
	assert.Equal(t, "", s.RoleName(99))
}
