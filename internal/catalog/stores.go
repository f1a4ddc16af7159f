package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/notify"
)

// Stores bundles the four lookup containers so consumers can take one
// dependency, and implements the display-name joins product listings need.
type Stores struct {
	Categories *CategoryStore
	Breeds     *BreedStore
	Origins    *OriginStore
	Services   *PetServiceStore
}

func NewStores(c *backend.Client, notifier *notify.Center) *Stores {
	return &Stores{
		Categories: NewCategoryStore(NewCategoryAPI(c), notifier),
		Breeds:     NewBreedStore(NewBreedAPI(c), notifier),
		Origins:    NewOriginStore(NewOriginAPI(c), notifier),
		Services:   NewPetServiceStore(NewPetServiceAPI(c), notifier),
	}
}

// Load fetches all four collections concurrently; the lookups are
// independent of each other.
func (s *Stores) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Categories.Load(ctx) })
	g.Go(func() error { return s.Breeds.Load(ctx) })
	g.Go(func() error { return s.Origins.Load(ctx) })
	g.Go(func() error { return s.Services.Load(ctx) })
	return g.Wait()
}

// CategoryCode resolves the display code for a category id, empty when the
// id is unknown.
func (s *Stores) CategoryCode(id int) string {
	if c, ok := s.Categories.Get(id); ok {
		return c.Code
	}
	return ""
}

// BreedName resolves the display name for a breed id.
func (s *Stores) BreedName(id int) string {
	if b, ok := s.Breeds.Get(id); ok {
		return b.Name
	}
	return ""
}

// OriginName resolves the display name for an origin id.
func (s *Stores) OriginName(id int) string {
	if o, ok := s.Origins.Get(id); ok {
		return o.Name
	}
	return ""
}
