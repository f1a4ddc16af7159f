package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/petparadise/storefront/internal/address"
	"github.com/petparadise/storefront/internal/appointment"
	"github.com/petparadise/storefront/internal/auth"
	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/cart"
	"github.com/petparadise/storefront/internal/catalog"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
	"github.com/petparadise/storefront/internal/order"
	"github.com/petparadise/storefront/internal/product"
	"github.com/petparadise/storefront/internal/user"
)

// Containers is the full per-session container set, wired once over the
// shared backend client at sign-in and dropped at sign-out.
type Containers struct {
	Translator   *i18n.Translator
	Notifier     *notify.Center
	Cart         *cart.Cart
	Catalog      *catalog.Stores
	Products     *product.Store
	Addresses    *address.Store
	Users        *user.Store
	Auth         *auth.Session
	Orders       *order.Store
	Appointments *appointment.Store
}

func newContainers(c *backend.Client, ttl time.Duration, locale string) *Containers {
	tr := i18n.New(locale)
	center := notify.NewCenter(tr, ttl)
	cat := catalog.NewStores(c, center)
	prods := product.NewStore(product.NewAPI(c), cat, center)
	addrs := address.NewStore(address.NewAPI(c), center)
	ct := cart.New()
	return &Containers{
		Translator:   tr,
		Notifier:     center,
		Cart:         ct,
		Catalog:      cat,
		Products:     prods,
		Addresses:    addrs,
		Users:        user.NewStore(user.NewAPI(c), center),
		Auth:         auth.NewSession(auth.NewAPI(c), addrs, center),
		Orders:       order.NewStore(order.NewAPI(c), order.NewItemsAPI(c), order.NewLogsAPI(c), prods, ct, center, tr),
		Appointments: appointment.NewStore(appointment.NewAPI(c), appointment.NewLogsAPI(c), center, tr),
	}
}

// hydrate fills the stores a fresh session needs; catalog and products for
// everyone, plus the role-scoped lists. Fetch failures degrade to empty
// lists, each store logs its own warning.
func (s *Containers) hydrate(ctx context.Context, u user.User) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Catalog.Load(gctx) })
	g.Go(func() error { return s.Products.Load(gctx) })

	if u.IsStaffLevel() {
		g.Go(func() error { return s.Orders.Load(gctx) })
		g.Go(func() error { return s.Appointments.Load(gctx) })
	} else {
		g.Go(func() error { return s.Orders.LoadByCustomer(gctx, u.ID) })
		g.Go(func() error { return s.Appointments.LoadByCustomer(gctx, u.ID) })
	}
	if u.IsAdmin() {
		g.Go(func() error { return s.Users.Load(gctx) })
	}
	_ = g.Wait()
}

// Registry maps live session ids to their container sets. One entry per
// signed-in user; eviction happens on sign-out.
type Registry struct {
	client *backend.Client
	ttl    time.Duration
	locale string

	mu       sync.Mutex
	sessions map[string]*Containers
}

func NewRegistry(client *backend.Client, ttl time.Duration, locale string) *Registry {
	return &Registry{
		client:   client,
		ttl:      ttl,
		locale:   locale,
		sessions: make(map[string]*Containers),
	}
}

// Create wires a fresh container set and returns its session id.
func (r *Registry) Create() (string, *Containers) {
	id := uuid.NewString()
	set := newContainers(r.client, r.ttl, r.locale)
	r.mu.Lock()
	r.sessions[id] = set
	r.mu.Unlock()
	return id, set
}

func (r *Registry) Get(id string) (*Containers, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sessions[id]
	return set, ok
}

func (r *Registry) Drop(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
