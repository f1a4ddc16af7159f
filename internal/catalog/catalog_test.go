package catalog

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

func TestCategoryStore_SoftDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	api := NewFakeCategoryAPI([]Category{
		{ID: 1, Code: "Dog", Name: "Chó Cảnh", Status: StatusActive},
		{ID: 2, Code: "Cat", Name: "Mèo Cảnh", Status: StatusActive},
	})
	s := NewCategoryStore(api, testNotifier())
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.Retire(ctx, 2))
	assert.Len(t, s.All(), 2, "retire must never remove the row")
	require.Len(t, s.Active(), 1)
	assert.Equal(t, "Dog", s.Active()[0].Code)

	require.NoError(t, s.Restore(ctx, 2))
	assert.Len(t, s.Active(), 2)
}

func TestCategoryStore_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore(NewFakeCategoryAPI(nil), testNotifier())

	require.NoError(t, s.Create(ctx, CreateCategoryRequest{Code: "Bird", Name: "Chim Cảnh"}))
	require.Len(t, s.All(), 1)
	id := s.All()[0].ID

	require.NoError(t, s.Update(ctx, UpdateCategoryRequest{ID: id, Code: "Bird", Name: "Chim"}))
	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Chim", got.Name)
}

func TestCategoryStore_FailedMutationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	api := NewFakeCategoryAPI([]Category{{ID: 1, Code: "Dog", Status: StatusActive}})
	s := NewCategoryStore(api, testNotifier())
	require.NoError(t, s.Load(ctx))

	api.Err = backend.ServerError("categories.setStatus")
	err := s.Retire(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, backend.KindServerError, backend.KindOf(err))

	got, _ := s.Get(1)
	assert.Equal(t, StatusActive, got.Status, "failed call must not mutate local state")
}

func TestBreedStore_ByCategory(t *testing.T) {
	ctx := context.Background()
	api := NewFakeBreedAPI([]Breed{
		{ID: 1, Name: "Golden Retriever", CategoryID: 1, Status: StatusActive},
		{ID: 2, Name: "Corgi", CategoryID: 1, Status: StatusActive},
		{ID: 3, Name: "British Shorthair", CategoryID: 2, Status: StatusActive},
		{ID: 4, Name: "Alaskan", CategoryID: 1, Status: StatusRetired},
	})
	s := NewBreedStore(api, testNotifier())
	require.NoError(t, s.Load(ctx))

	dogs := s.ByCategory(1)
	require.Len(t, dogs, 2, "retired breeds must not appear")
	assert.Equal(t, "Golden Retriever", dogs[0].Name)
}

func TestStores_LookupJoins(t *testing.T) {
	stores := &Stores{
		Categories: NewCategoryStore(NewFakeCategoryAPI([]Category{{ID: 1, Code: "Dog", Status: StatusActive}}), testNotifier()),
		Breeds:     NewBreedStore(NewFakeBreedAPI([]Breed{{ID: 3, Name: "Corgi", CategoryID: 1, Status: StatusActive}}), testNotifier()),
		Origins:    NewOriginStore(NewFakeOriginAPI([]Origin{{ID: 2, Name: "Thái Lan", Status: StatusActive}}), testNotifier()),
		Services:   NewPetServiceStore(NewFakePetServiceAPI(nil), testNotifier()),
	}
	require.NoError(t, stores.Load(context.Background()))

	assert.Equal(t, "Dog", stores.CategoryCode(1))
	assert.Equal(t, "Corgi", stores.BreedName(3))
	assert.Equal(t, "Thái Lan", stores.OriginName(2))
	assert.Equal(t, "", stores.BreedName(99))
}

func TestPetServiceStore_ActiveFiltersRetired(t *testing.T) {
	ctx := context.Background()
	api := NewFakePetServiceAPI([]PetService{
		{ID: 1, Name: "Spa - Cắt tỉa trọn gói", Price: 400000, Duration: 60, Status: StatusActive},
		{ID: 2, Name: "Khám sức khỏe thú y", Price: 300000, Duration: 30, Status: StatusRetired},
	})
	s := NewPetServiceStore(api, testNotifier())
	require.NoError(t, s.Load(ctx))

	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)
}
