package address

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

func testNotifier() *notify.Center {
	return notify.NewCenter(i18n.New(i18n.LangEN), time.Hour)
}

func seedStore(t *testing.T, rows []Address) (*Store, *FakeAPI) {
	t.Helper()
	api := NewFakeAPI(rows)
	s := NewStore(api, testNotifier())
	require.NoError(t, s.Load(context.Background(), 3))
	return s, api
}

func TestSetDefault_Exclusivity(t *testing.T) {
	ctx := context.Background()
	s, _ := seedStore(t, []Address{
		{ID: 1, UserID: 3, Province: "Hồ Chí Minh", IsDefault: DefaultYes},
		{ID: 2, UserID: 3, Province: "Hà Nội", IsDefault: DefaultNo},
	})

	require.NoError(t, s.SetDefault(ctx, 2))

	defaults := 0
	for _, a := range s.All() {
		if a.IsDefault == DefaultYes {
			defaults++
			assert.Equal(t, 2, a.ID)
		}
	}
	assert.Equal(t, 1, defaults, "exactly one default after the swap")

	got, ok := s.Default()
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)
}

func TestSetDefault_FailureKeepsPreviousDefault(t *testing.T) {
	ctx := context.Background()
	s, api := seedStore(t, []Address{
		{ID: 1, UserID: 3, IsDefault: DefaultYes},
		{ID: 2, UserID: 3, IsDefault: DefaultNo},
	})

	api.Err = backend.ServerError("addresses.setDefault")
	require.Error(t, s.SetDefault(ctx, 2))

	got, ok := s.Default()
	require.True(t, ok)
	assert.Equal(t, 1, got.ID, "failed swap must not move the flag locally")
}

func TestAdd_ValidatesBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	api := NewFakeAPI(nil)
	s := NewStore(api, testNotifier())
	require.NoError(t, s.Load(ctx, 3))

	err := s.Add(ctx, CreateRequest{UserID: 3, Province: "Hồ Chí Minh", Ward: "Bến Nghé"})
	require.Error(t, err)
	assert.True(t, backend.IsValidation(err))
	assert.Empty(t, api.Rows, "no network call may be issued for an incomplete form")

	require.NoError(t, s.Add(ctx, CreateRequest{
		UserID: 3, Province: "Hồ Chí Minh", District: "Quận 1", Ward: "Bến Nghé", Info: "123 Đường Chính", Phone: "0909000333",
	}))
	assert.Len(t, s.All(), 1)
}

func TestUpdate_KeepsDefaultFlag(t *testing.T) {
	ctx := context.Background()
	s, _ := seedStore(t, []Address{{ID: 1, UserID: 3, Province: "Hồ Chí Minh", IsDefault: DefaultYes}})

	info := "456 Đường Phụ"
	require.NoError(t, s.Update(ctx, UpdateRequest{ID: 1, Info: &info}))

	got := s.All()[0]
	assert.Equal(t, "456 Đường Phụ", got.Info)
	assert.Equal(t, DefaultYes, got.IsDefault)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, api := seedStore(t, []Address{
		{ID: 1, UserID: 3},
		{ID: 2, UserID: 3},
	})

	require.NoError(t, s.Delete(ctx, 1))
	assert.Len(t, s.All(), 1)
	assert.Len(t, api.Rows, 1)
}
