package order

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/cart"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
	"github.com/petparadise/storefront/internal/product"
)

// systemActor attributes unattended log entries.
const systemActor = "System"

// Store owns the session's order list and the flows that change it. Every
// mutation talks to the backend first; local state only moves on success,
// and each flow raises exactly one notification.
type Store struct {
	api      API
	items    ItemsAPI
	logs     LogsAPI
	products *product.Store
	cart     *cart.Cart
	notifier *notify.Center
	tr       *i18n.Translator
	log      *logrus.Entry
	now      func() time.Time

	mu     sync.Mutex
	orders []Order
}

func NewStore(api API, items ItemsAPI, logs LogsAPI, products *product.Store, ct *cart.Cart, notifier *notify.Center, tr *i18n.Translator) *Store {
	return &Store{
		api:      api,
		items:    items,
		logs:     logs,
		products: products,
		cart:     ct,
		notifier: notifier,
		tr:       tr,
		log:      logrus.WithField("store", "orders"),
		now:      time.Now,
	}
}

// Load fetches every order; the staff board needs the full list.
func (s *Store) Load(ctx context.Context) error {
	orders, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("load orders")
		return err
	}
	s.setAll(orders)
	return nil
}

// LoadByCustomer fetches one customer's order history.
func (s *Store) LoadByCustomer(ctx context.Context, customerID int) error {
	orders, err := s.api.ByCustomer(ctx, customerID)
	if err != nil {
		s.log.WithError(err).WithField("customerId", customerID).Warn("load customer orders")
		return err
	}
	s.setAll(orders)
	return nil
}

func (s *Store) setAll(orders []Order) {
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

func (s *Store) All() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Get(id int) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Place runs the checkout saga: total from live prices, header create, one
// item row per cart line with the price snapshot, the initial PENDING log,
// then inventory flips. A failure after the header exists cancels the header
// and restores any inventory already flipped, so the customer never sees a
// half-created order in their history.
func (s *Store) Place(ctx context.Context, customerID int, lines []cart.Item, paymentMethod int, shippingAddress, note string) (Order, error) {
	if len(lines) == 0 {
		s.notifier.Error("order.empty")
		return Order{}, backend.Validation("orders.place", fmt.Errorf("no items to order"))
	}

	// Live prices, never user-supplied.
	total := 0
	snapshot := make(map[int]product.Product, len(lines))
	for _, line := range lines {
		p, ok := s.products.Get(line.ProductID)
		if !ok {
			s.notifier.Error("order.place_failed")
			return Order{}, backend.Validation("orders.place", fmt.Errorf("unknown product %d", line.ProductID))
		}
		snapshot[line.ProductID] = p
		total += p.Price * line.Quantity
	}

	header, err := s.api.Create(ctx, CreateRequest{
		CustomerID:      customerID,
		TotalAmount:     total,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		Note:            note,
	})
	if err != nil {
		s.notifier.Failure(err, "order.place_failed")
		return Order{}, err
	}

	created := make([]Item, 0, len(lines))
	for _, line := range lines {
		item, err := s.items.Create(ctx, CreateItemRequest{
			OrderID:       header.ID,
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			PriceSnapshot: snapshot[line.ProductID].Price,
		})
		if err != nil {
			s.compensate(ctx, header.ID, nil)
			s.notifier.Failure(err, "order.place_failed")
			return Order{}, err
		}
		created = append(created, item)
	}

	initialLog, err := s.logs.Create(ctx, CreateLogRequest{
		OrderID:   header.ID,
		Status:    StatusPending,
		Timestamp: s.timestamp(),
		Note:      s.tr.T("note.order_placed"),
		UpdatedBy: fmt.Sprint(customerID),
	})
	if err != nil {
		s.compensate(ctx, header.ID, nil)
		s.notifier.Failure(err, "order.place_failed")
		return Order{}, err
	}

	var flipped []int
	for _, line := range lines {
		if err := s.products.SetAvailability(ctx, line.ProductID, false); err != nil {
			s.compensate(ctx, header.ID, flipped)
			s.notifier.Failure(err, "order.place_failed")
			return Order{}, err
		}
		flipped = append(flipped, line.ProductID)
	}

	hydrated := header
	hydrated.StatusHistory = []StatusLog{initialLog}
	hydrated.Items = created
	s.mergeProducts(hydrated.Items)

	s.mu.Lock()
	s.orders = append([]Order{hydrated}, s.orders...)
	s.mu.Unlock()

	s.cart.RemoveOrdered(lines)
	s.notifier.Success("order.placed")
	return hydrated, nil
}

// compensate undoes a partially placed order: the header is cancelled and
// any products already marked sold go back on sale. Best effort; a failure
// here is logged for manual reconciliation.
func (s *Store) compensate(ctx context.Context, orderID int, flipped []int) {
	err := s.api.UpdateStatus(ctx, UpdateStatusRequest{
		ID:     orderID,
		Status: StatusCancelled,
		Note:   "order placement failed",
	})
	if err != nil {
		s.log.WithError(err).WithField("orderId", orderID).Error("could not cancel partial order")
	}
	for _, id := range flipped {
		if err := s.products.SetAvailability(ctx, id, true); err != nil {
			s.log.WithError(err).WithField("productId", id).Error("could not restore product availability")
		}
	}
}

// UpdateStatus moves an order through the lifecycle. The transition is
// guarded locally, then the backend decides; only a success mutates local
// state: append the log, restore inventory when cancelling, and re-hydrate
// the entry wholesale.
func (s *Store) UpdateStatus(ctx context.Context, orderID, status int, reason string, staffID int) error {
	current, ok := s.Get(orderID)
	if !ok {
		s.notifier.Error("common.not_found")
		return backend.NotFound("orders.status")
	}
	if !CanTransition(current.Status, status) {
		s.notifier.Error("order.invalid_transition")
		return backend.Validation("orders.status",
			fmt.Errorf("transition %d -> %d not permitted", current.Status, status))
	}

	err := s.api.UpdateStatus(ctx, UpdateStatusRequest{ID: orderID, Status: status, Note: reason, StaffID: staffID})
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}

	note := reason
	if note == "" {
		note = s.tr.T("note.status_updated")
	}
	actor := systemActor
	if staffID != 0 {
		actor = fmt.Sprint(staffID)
	}
	if _, err := s.logs.Create(ctx, CreateLogRequest{
		OrderID:   orderID,
		Status:    status,
		Timestamp: s.timestamp(),
		Note:      note,
		UpdatedBy: actor,
	}); err != nil {
		s.log.WithError(err).WithField("orderId", orderID).Error("could not append status log")
	}

	if status == StatusCancelled {
		for _, item := range current.Items {
			if err := s.products.SetAvailability(ctx, item.ProductID, true); err != nil {
				s.log.WithError(err).WithField("productId", item.ProductID).Error("could not restore product availability")
			}
		}
	}

	hydrated, err := s.hydrate(ctx, orderID, status, reason, staffID, current)
	if err != nil {
		s.log.WithError(err).WithField("orderId", orderID).Warn("could not re-hydrate order")
	}
	s.replace(hydrated)
	s.notifier.Success("order.status_updated")
	return nil
}

// CancelByCustomer is the customer-side cancel action. While the order sits
// unassigned it cancels outright; once a staff member holds it the customer
// can only file a cancellation request for triage.
func (s *Store) CancelByCustomer(ctx context.Context, orderID int, reason string) error {
	current, ok := s.Get(orderID)
	if !ok {
		s.notifier.Error("common.not_found")
		return backend.NotFound("orders.cancel")
	}
	if current.StaffID == 0 {
		return s.UpdateStatus(ctx, orderID, StatusCancelled, reason, 0)
	}

	if !CanTransition(current.Status, StatusReqCancel) {
		s.notifier.Error("order.invalid_transition")
		return backend.Validation("orders.cancel",
			fmt.Errorf("transition %d -> %d not permitted", current.Status, StatusReqCancel))
	}
	err := s.api.UpdateStatus(ctx, UpdateStatusRequest{ID: orderID, Status: StatusReqCancel, Note: reason})
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	if _, err := s.logs.Create(ctx, CreateLogRequest{
		OrderID:   orderID,
		Status:    StatusReqCancel,
		Timestamp: s.timestamp(),
		Note:      reason,
		UpdatedBy: fmt.Sprint(current.CustomerID),
	}); err != nil {
		s.log.WithError(err).WithField("orderId", orderID).Error("could not append status log")
	}

	hydrated, err := s.hydrate(ctx, orderID, StatusReqCancel, reason, current.StaffID, current)
	if err != nil {
		s.log.WithError(err).WithField("orderId", orderID).Warn("could not re-hydrate order")
	}
	s.replace(hydrated)
	s.notifier.Success("order.cancel_requested")
	return nil
}

// NeedsTriage lists the orders waiting on staff attention: fresh PENDING
// orders plus unassigned cancellation requests, which triage treats the
// same way.
func (s *Store) NeedsTriage() []Order {
	var out []Order
	for _, o := range s.All() {
		if o.Status == StatusPending || (o.Status == StatusReqCancel && o.StaffID == 0) {
			out = append(out, o)
		}
	}
	return out
}

// hydrate re-derives items and history from the collaborators, fetched
// concurrently, and merges product display data. The entry is replaced
// wholesale, never patched field-by-field. On fetch failure it falls back
// to patching the known fields so the list still reflects the transition.
func (s *Store) hydrate(ctx context.Context, orderID, status int, reason string, staffID int, prev Order) (Order, error) {
	var (
		items []Item
		logs  []StatusLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.items.ByOrder(gctx, orderID)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.logs.ByOrder(gctx, orderID)
		return err
	})
	if err := g.Wait(); err != nil {
		fallback := prev
		fallback.Status = status
		if staffID != 0 {
			fallback.StaffID = staffID
		}
		if status == StatusCancelled {
			fallback.CancelReason = reason
		}
		return fallback, err
	}

	sortLogs(logs)
	s.mergeProducts(items)

	next := prev
	next.Status = status
	if staffID != 0 {
		next.StaffID = staffID
	}
	if status == StatusCancelled {
		next.CancelReason = reason
	}
	next.Items = items
	next.StatusHistory = logs
	return next, nil
}

func (s *Store) replace(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			return
		}
	}
}

func (s *Store) mergeProducts(items []Item) {
	for i := range items {
		if p, ok := s.products.Get(items[i].ProductID); ok {
			cp := p
			items[i].Product = &cp
		}
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// sortLogs orders a history oldest-first, ties broken by id, matching
// creation order.
func sortLogs(logs []StatusLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp != logs[j].Timestamp {
			return logs[i].Timestamp < logs[j].Timestamp
		}
		return logs[i].ID < logs[j].ID
	})
}
