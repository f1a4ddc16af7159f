package product

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

type staticLookup struct{}

func (staticLookup) CategoryCode(id int) string {
	if id == 1 {
		return "Dog"
	}
	return ""
}
func (staticLookup) BreedName(id int) string {
	if id == 3 {
		return "Corgi"
	}
	return ""
}
func (staticLookup) OriginName(id int) string {
	if id == 2 {
		return "Thái Lan"
	}
	return ""
}

func testNotifier() *notify.Center {
	return notify.NewCenter(i18n.New(i18n.LangEN), time.Hour)
}

func seedStore(t *testing.T, rows []Product) (*Store, *FakeAPI) {
	t.Helper()
	api := NewFakeAPI(rows)
	s := NewStore(api, staticLookup{}, testNotifier())
	require.NoError(t, s.Load(context.Background()))
	return s, api
}

func TestAll_JoinsCatalogNames(t *testing.T) {
	s, _ := seedStore(t, []Product{
		{ID: 1, Name: "Bun", CategoryID: 1, BreedID: 3, OriginID: 2, Price: 18000000, Status: StatusAvailable},
	})

	got := s.All()
	require.Len(t, got, 1)
	assert.Equal(t, "Dog", got[0].Category)
	assert.Equal(t, "Corgi", got[0].Breed)
	assert.Equal(t, "Thái Lan", got[0].Origin)
}

func TestAvailable_ExcludesSoldPets(t *testing.T) {
	s, _ := seedStore(t, []Product{
		{ID: 1, Name: "Bun", CategoryID: 1, Status: StatusAvailable},
		{ID: 2, Name: "Micky", CategoryID: 1, Status: StatusUnavailable},
	})

	avail := s.Available()
	require.Len(t, avail, 1)
	assert.Equal(t, 1, avail[0].ID)
}

func TestSetAvailability_TogglesBothWays(t *testing.T) {
	ctx := context.Background()
	s, api := seedStore(t, []Product{{ID: 5, Name: "Luna", CategoryID: 1, Status: StatusAvailable}})

	require.NoError(t, s.SetAvailability(ctx, 5, false))
	got, _ := s.Get(5)
	assert.Equal(t, StatusUnavailable, got.Status)
	assert.Equal(t, StatusUnavailable, api.Rows[0].Status, "backend must be told first")

	require.NoError(t, s.SetAvailability(ctx, 5, true))
	got, _ = s.Get(5)
	assert.Equal(t, StatusAvailable, got.Status)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	ctx := context.Background()
	s, _ := seedStore(t, []Product{{ID: 1, Name: "Bun", CategoryID: 1, Price: 18000000, Status: StatusAvailable}})

	newPrice := 17000000
	require.NoError(t, s.Update(ctx, UpdateRequest{ID: 1, Price: &newPrice}))

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 17000000, got.Price)
	assert.Equal(t, "Bun", got.Name, "unset fields must be left alone")
}

func TestFailedMutationLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	s, api := seedStore(t, []Product{{ID: 1, Name: "Bun", CategoryID: 1, Status: StatusAvailable}})

	api.Err = backend.ServerError("products.setStatus")
	err := s.SetAvailability(ctx, 1, false)
	require.Error(t, err)

	got, _ := s.Get(1)
	assert.Equal(t, StatusAvailable, got.Status)
}

func TestRetire_IsSoftDelete(t *testing.T) {
	ctx := context.Background()
	s, api := seedStore(t, []Product{{ID: 1, Name: "Bun", CategoryID: 1, Status: StatusAvailable}})

	require.NoError(t, s.Retire(ctx, 1))
	assert.Len(t, api.Rows, 1, "row must survive")
	assert.Empty(t, s.Available())
	assert.Len(t, s.All(), 1)
}
