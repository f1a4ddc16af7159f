package catalog

import (
	"context"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
)

// In-memory API fakes for tests and local development. They accept every
// request and hand out sequential ids, like the backend would.

type FakeCategoryAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []Category
	Err    error // when set, every call fails with it
}

func NewFakeCategoryAPI(seed []Category) *FakeCategoryAPI {
	f := &FakeCategoryAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakeCategoryAPI) GetAll(context.Context) ([]Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Category, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeCategoryAPI) Create(_ context.Context, req CreateCategoryRequest) (Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Category{}, f.Err
	}
	f.nextID++
	c := Category{ID: f.nextID, Code: req.Code, Name: req.Name, Description: req.Description, Status: StatusActive}
	f.Rows = append(f.Rows, c)
	return c, nil
}

func (f *FakeCategoryAPI) Update(_ context.Context, req UpdateCategoryRequest) (Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Category{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == req.ID {
			f.Rows[i].Code = req.Code
			f.Rows[i].Name = req.Name
			f.Rows[i].Description = req.Description
			return f.Rows[i], nil
		}
	}
	return Category{}, backend.NotFound("categories.update")
}

func (f *FakeCategoryAPI) SetStatus(_ context.Context, id, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows[i].Status = status
		}
	}
	return nil
}

type FakeBreedAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []Breed
	Err    error
}

func NewFakeBreedAPI(seed []Breed) *FakeBreedAPI {
	f := &FakeBreedAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakeBreedAPI) GetAll(context.Context) ([]Breed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Breed, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeBreedAPI) Create(_ context.Context, req CreateBreedRequest) (Breed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Breed{}, f.Err
	}
	f.nextID++
	b := Breed{ID: f.nextID, Name: req.Name, CategoryID: req.CategoryID, Status: StatusActive}
	f.Rows = append(f.Rows, b)
	return b, nil
}

func (f *FakeBreedAPI) Update(_ context.Context, req UpdateBreedRequest) (Breed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Breed{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == req.ID {
			f.Rows[i].Name = req.Name
			f.Rows[i].CategoryID = req.CategoryID
			return f.Rows[i], nil
		}
	}
	return Breed{}, backend.NotFound("breeds.update")
}

func (f *FakeBreedAPI) SetStatus(_ context.Context, id, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows[i].Status = status
		}
	}
	return nil
}

type FakeOriginAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []Origin
	Err    error
}

func NewFakeOriginAPI(seed []Origin) *FakeOriginAPI {
	f := &FakeOriginAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakeOriginAPI) GetAll(context.Context) ([]Origin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Origin, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeOriginAPI) Create(_ context.Context, req CreateOriginRequest) (Origin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Origin{}, f.Err
	}
	f.nextID++
	o := Origin{ID: f.nextID, Name: req.Name, Status: StatusActive}
	f.Rows = append(f.Rows, o)
	return o, nil
}

func (f *FakeOriginAPI) Update(_ context.Context, req UpdateOriginRequest) (Origin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Origin{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == req.ID {
			f.Rows[i].Name = req.Name
			return f.Rows[i], nil
		}
	}
	return Origin{}, backend.NotFound("origins.update")
}

func (f *FakeOriginAPI) SetStatus(_ context.Context, id, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows[i].Status = status
		}
	}
	return nil
}

type FakePetServiceAPI struct {
	mu     sync.Mutex
	nextID int
	Rows   []PetService
	Err    error
}

func NewFakePetServiceAPI(seed []PetService) *FakePetServiceAPI {
	f := &FakePetServiceAPI{Rows: seed}
	for _, r := range seed {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *FakePetServiceAPI) GetAll(context.Context) ([]PetService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]PetService, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakePetServiceAPI) Create(_ context.Context, req CreatePetServiceRequest) (PetService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return PetService{}, f.Err
	}
	f.nextID++
	sv := PetService{ID: f.nextID, Name: req.Name, Price: req.Price, Duration: req.Duration, Description: req.Description, Status: StatusActive}
	f.Rows = append(f.Rows, sv)
	return sv, nil
}

func (f *FakePetServiceAPI) Update(_ context.Context, req UpdatePetServiceRequest) (PetService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return PetService{}, f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == req.ID {
			f.Rows[i].Name = req.Name
			f.Rows[i].Price = req.Price
			f.Rows[i].Duration = req.Duration
			f.Rows[i].Description = req.Description
			return f.Rows[i], nil
		}
	}
	return PetService{}, backend.NotFound("services.update")
}

func (f *FakePetServiceAPI) SetStatus(_ context.Context, id, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Rows {
		if f.Rows[i].ID == id {
			f.Rows[i].Status = status
		}
	}
	return nil
}
