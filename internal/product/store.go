package product

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/notify"
)

// Lookup resolves catalog display names for enrichment. Implemented by
// catalog.Stores; declared here so the dependency points downward only.
type Lookup interface {
	CategoryCode(id int) string
	BreedName(id int) string
	OriginName(id int) string
}

// Store owns the in-memory product collection. Mutations go through the
// API first; local state only changes when the backend confirmed.
type Store struct {
	api      API
	lookup   Lookup
	notifier *notify.Center
	log      *logrus.Entry

	mu       sync.Mutex
	products []Product
}

func NewStore(api API, lookup Lookup, notifier *notify.Center) *Store {
	return &Store{
		api:      api,
		lookup:   lookup,
		notifier: notifier,
		log:      logrus.WithField("store", "product"),
	}
}

// Load refreshes the listing collection; on failure the previous snapshot
// is kept so browsing degrades to stale data.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not load products")
		return err
	}
	s.mu.Lock()
	s.products = data
	s.mu.Unlock()
	return nil
}

// All returns every listing with catalog names joined in.
func (s *Store) All() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	for i := range out {
		s.enrich(&out[i])
	}
	return out
}

// Available returns the listings a customer can still buy.
func (s *Store) Available() []Product {
	var out []Product
	for _, p := range s.All() {
		if p.Status == StatusAvailable {
			out = append(out, p)
		}
	}
	return out
}

// Get returns one listing from the local collection.
func (s *Store) Get(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			s.enrich(&p)
			return p, true
		}
	}
	return Product{}, false
}

// Create lists a new pet (admin).
func (s *Store) Create(ctx context.Context, req CreateRequest) error {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	s.notifier.Success("product.created")
	return nil
}

// Update edits a listing (admin).
func (s *Store) Update(ctx context.Context, req UpdateRequest) error {
	updated, err := s.api.Update(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.replace(updated)
	s.notifier.Success("product.updated")
	return nil
}

// Retire soft-deletes a listing: the admin "delete" action is a status
// flip, the row survives for order history.
func (s *Store) Retire(ctx context.Context, id int) error {
	if err := s.setStatus(ctx, id, StatusUnavailable); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.notifier.Success("product.retired")
	return nil
}

// Restore relists a retired pet.
func (s *Store) Restore(ctx context.Context, id int) error {
	if err := s.setStatus(ctx, id, StatusAvailable); err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	s.notifier.Success("product.restored")
	return nil
}

// SetAvailability is the inventory hook used by the order flow: placing an
// order marks each purchased pet unavailable, cancelling restores it. It
// raises no notification of its own; the order flow owns the one toast per
// operation.
func (s *Store) SetAvailability(ctx context.Context, id int, available bool) error {
	status := StatusUnavailable
	if available {
		status = StatusAvailable
	}
	return s.setStatus(ctx, id, status)
}

func (s *Store) setStatus(ctx context.Context, id, status int) error {
	if err := s.api.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Status = status
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) replace(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
	s.products = append(s.products, p)
}

// enrich joins catalog display names onto a listing, keeping whatever the
// backend already denormalized when the lookup cannot resolve an id.
func (s *Store) enrich(p *Product) {
	if s.lookup == nil {
		return
	}
	if code := s.lookup.CategoryCode(p.CategoryID); code != "" {
		p.Category = code
	}
	if name := s.lookup.BreedName(p.BreedID); name != "" {
		p.Breed = name
	}
	if name := s.lookup.OriginName(p.OriginID); name != "" {
		p.Origin = name
	}
}
