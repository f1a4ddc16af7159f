package order

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
)

type CreateRequest struct {
	CustomerID      int    `json:"customerId"`
	TotalAmount     int    `json:"totalAmount"`
	PaymentMethod   int    `json:"paymentMethod"`
	ShippingAddress string `json:"shippingAddress"`
	Note            string `json:"note,omitempty"`
}

type UpdateStatusRequest struct {
	ID      int    `json:"id"`
	Status  int    `json:"status"`
	Note    string `json:"note,omitempty"`
	StaffID int    `json:"staffId,omitempty"`
}

type CreateItemRequest struct {
	OrderID       int `json:"orderId"`
	ProductID     int `json:"productId"`
	Quantity      int `json:"quantity"`
	PriceSnapshot int `json:"priceSnapshot"`
}

type CreateLogRequest struct {
	OrderID   int    `json:"orderId"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
	UpdatedBy string `json:"updatedBy"`
}

// API covers the order header endpoints.
type API interface {
	GetAll(ctx context.Context) ([]Order, error)
	ByCustomer(ctx context.Context, customerID int) ([]Order, error)
	Create(ctx context.Context, req CreateRequest) (Order, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
}

// ItemsAPI covers the order-item collaborator.
type ItemsAPI interface {
	ByOrder(ctx context.Context, orderID int) ([]Item, error)
	Create(ctx context.Context, req CreateItemRequest) (Item, error)
}

// LogsAPI covers the status-log collaborator. Retrieval order is not
// guaranteed; the store re-sorts for display.
type LogsAPI interface {
	ByOrder(ctx context.Context, orderID int) ([]StatusLog, error)
	Create(ctx context.Context, req CreateLogRequest) (StatusLog, error)
}

type httpAPI struct {
	c *backend.Client
}

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) GetAll(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := a.c.GetJSON(ctx, "orders.list", "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *httpAPI) ByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	var orders []Order
	q := url.Values{"customerId": {strconv.Itoa(customerID)}}
	if err := a.c.PostJSON(ctx, "orders.by_customer", "/orders/by-customer", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *httpAPI) Create(ctx context.Context, req CreateRequest) (Order, error) {
	var o Order
	if err := a.c.PostJSON(ctx, "orders.create", "/orders/create", nil, req, &o); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (a *httpAPI) UpdateStatus(ctx context.Context, req UpdateStatusRequest) error {
	return a.c.PostCode(ctx, "orders.status", "/orders/status", nil, req)
}

type httpItemsAPI struct {
	c *backend.Client
}

func NewItemsAPI(c *backend.Client) ItemsAPI { return &httpItemsAPI{c: c} }

func (a *httpItemsAPI) ByOrder(ctx context.Context, orderID int) ([]Item, error) {
	var items []Item
	q := url.Values{"orderId": {strconv.Itoa(orderID)}}
	if err := a.c.PostJSON(ctx, "order_items.by_order", "/order-items/by-order", q, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *httpItemsAPI) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	var item Item
	if err := a.c.PostJSON(ctx, "order_items.create", "/order-items/create", nil, req, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

type httpLogsAPI struct {
	c *backend.Client
}

func NewLogsAPI(c *backend.Client) LogsAPI { return &httpLogsAPI{c: c} }

func (a *httpLogsAPI) ByOrder(ctx context.Context, orderID int) ([]StatusLog, error) {
	var logs []StatusLog
	q := url.Values{"orderId": {strconv.Itoa(orderID)}}
	if err := a.c.PostJSON(ctx, "order_logs.by_order", "/order-status-logs/by-order", q, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *httpLogsAPI) Create(ctx context.Context, req CreateLogRequest) (StatusLog, error) {
	var l StatusLog
	if err := a.c.PostJSON(ctx, "order_logs.create", "/order-status-logs/create", nil, req, &l); err != nil {
		return StatusLog{}, err
	}
	return l, nil
}

// FakeBackend keeps orders, items and logs in one in-memory table set, so a
// test sees the same cross-collection consistency the real backend gives.
type FakeBackend struct {
	mu         sync.Mutex
	nextOrder  int
	nextItem   int
	nextLog    int
	Orders     []Order
	Items      []Item
	Logs       []StatusLog
	Err        error // fails every call when set
	CreateErr  error // fails order creation only
	ItemErr    error // fails item creation only
	StatusErr  error // fails status updates only
	HydrateErr error // fails item/log retrieval only
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{nextOrder: 1, nextItem: 1, nextLog: 1}
}

func (f *FakeBackend) GetAll(context.Context) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Order, len(f.Orders))
	copy(out, f.Orders)
	return out, nil
}

func (f *FakeBackend) ByCustomer(_ context.Context, customerID int) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []Order
	for _, o := range f.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *FakeBackend) Create(_ context.Context, req CreateRequest) (Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Order{}, f.Err
	}
	if f.CreateErr != nil {
		return Order{}, f.CreateErr
	}
	o := Order{
		ID:              f.nextOrder,
		CustomerID:      req.CustomerID,
		TotalAmount:     req.TotalAmount,
		Status:          StatusPending,
		PaymentMethod:   req.PaymentMethod,
		IsPaid:          NotPaid,
		Note:            req.Note,
		ShippingAddress: req.ShippingAddress,
	}
	f.nextOrder++
	f.Orders = append(f.Orders, o)
	return o, nil
}

func (f *FakeBackend) UpdateStatus(_ context.Context, req UpdateStatusRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if f.StatusErr != nil {
		return f.StatusErr
	}
	for i := range f.Orders {
		if f.Orders[i].ID != req.ID {
			continue
		}
		f.Orders[i].Status = req.Status
		if req.StaffID != 0 {
			f.Orders[i].StaffID = req.StaffID
		}
		if req.Status == StatusCancelled {
			f.Orders[i].CancelReason = req.Note
		}
		return nil
	}
	return backend.NotFound("orders.status")
}

func (f *FakeBackend) ItemsAPI() ItemsAPI { return fakeItems{f} }
func (f *FakeBackend) LogsAPI() LogsAPI   { return fakeLogs{f} }

type fakeItems struct{ f *FakeBackend }

func (a fakeItems) ByOrder(_ context.Context, orderID int) ([]Item, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if a.f.Err != nil {
		return nil, a.f.Err
	}
	if a.f.HydrateErr != nil {
		return nil, a.f.HydrateErr
	}
	var out []Item
	for _, it := range a.f.Items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (a fakeItems) Create(_ context.Context, req CreateItemRequest) (Item, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if a.f.Err != nil {
		return Item{}, a.f.Err
	}
	if a.f.ItemErr != nil {
		return Item{}, a.f.ItemErr
	}
	it := Item{
		ID:            a.f.nextItem,
		OrderID:       req.OrderID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PriceSnapshot: req.PriceSnapshot,
	}
	a.f.nextItem++
	a.f.Items = append(a.f.Items, it)
	return it, nil
}

type fakeLogs struct{ f *FakeBackend }

func (a fakeLogs) ByOrder(_ context.Context, orderID int) ([]StatusLog, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if a.f.Err != nil {
		return nil, a.f.Err
	}
	if a.f.HydrateErr != nil {
		return nil, a.f.HydrateErr
	}
	var out []StatusLog
	for _, l := range a.f.Logs {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (a fakeLogs) Create(_ context.Context, req CreateLogRequest) (StatusLog, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if a.f.Err != nil {
		return StatusLog{}, a.f.Err
	}
	l := StatusLog{
		ID:        a.f.nextLog,
		OrderID:   req.OrderID,
		Status:    req.Status,
		Timestamp: req.Timestamp,
		Note:      req.Note,
		UpdatedBy: req.UpdatedBy,
	}
	a.f.nextLog++
	a.f.Logs = append(a.f.Logs, l)
	return l, nil
}
