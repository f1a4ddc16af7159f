package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/cart"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
	"github.com/petparadise/storefront/internal/product"
)

type noopLookup struct{}

func (noopLookup) CategoryCode(int) string { return "" }
func (noopLookup) BreedName(int) string    { return "" }
func (noopLookup) OriginName(int) string   { return "" }

type fixture struct {
	store    *Store
	backend  *FakeBackend
	products *product.FakeAPI
	catalog  *product.Store
	cart     *cart.Cart
	notifier *notify.Center
}

func newFixture(t *testing.T, rows []product.Product) *fixture {
	t.Helper()
	tr := i18n.New(i18n.LangEN)
	center := notify.NewCenter(tr, time.Hour)
	prodAPI := product.NewFakeAPI(rows)
	prods := product.NewStore(prodAPI, noopLookup{}, center)
	require.NoError(t, prods.Load(context.Background()))

	ct := cart.New()
	fb := NewFakeBackend()
	s := NewStore(fb, fb.ItemsAPI(), fb.LogsAPI(), prods, ct, center, tr)
	return &fixture{store: s, backend: fb, products: prodAPI, catalog: prods, cart: ct, notifier: center}
}

func availableProduct(id, price int) product.Product {
	return product.Product{ID: id, Name: "Cún con", Price: price, Status: product.StatusAvailable}
}

func TestPlaceComputesTotalFromLivePrices(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000), availableProduct(2, 250000)})
	fx.cart.Add(1)
	fx.cart.Add(2)

	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "12 Trần Thái Tông", "")
	require.NoError(t, err)
	assert.Equal(t, 350000, o.TotalAmount)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 100000, o.Items[0].PriceSnapshot)
	assert.Equal(t, 250000, o.Items[1].PriceSnapshot)

	// Snapshots survive later catalog price changes.
	price := 999999
	require.NoError(t, fx.catalog.Update(context.Background(), product.UpdateRequest{ID: 1, Price: &price}))
	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, 100000, got.Items[0].PriceSnapshot)
	assert.Equal(t, 350000, got.TotalAmount)
}

func TestPlaceEmptyCartRejected(t *testing.T) {
	fx := newFixture(t, nil)
	_, err := fx.store.Place(context.Background(), 9, nil, PaymentCOD, "addr", "")
	require.Error(t, err)
	assert.Equal(t, backend.KindValidation, backend.KindOf(err))
	assert.Empty(t, fx.backend.Orders)
}

func TestPlaceFlipsInventoryAndStripsCart(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000), availableProduct(2, 50000)})
	fx.cart.Add(1)
	fx.cart.Add(2)
	ordered := []cart.Item{{ProductID: 1, Quantity: 1}}

	_, err := fx.store.Place(context.Background(), 9, ordered, PaymentQR, "addr", "")
	require.NoError(t, err)

	p1, _ := fx.catalog.Get(1)
	p2, _ := fx.catalog.Get(2)
	assert.Equal(t, product.StatusUnavailable, p1.Status)
	assert.Equal(t, product.StatusAvailable, p2.Status)

	// Only the purchased line leaves the cart.
	left := fx.cart.Items()
	require.Len(t, left, 1)
	assert.Equal(t, 2, left[0].ProductID)
}

func TestPlaceCompensatesOnItemFailure(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	fx.backend.ItemErr = backend.ServerError("order_items.create")

	_, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.Error(t, err)

	// The half-created header was cancelled, inventory untouched, cart kept.
	require.Len(t, fx.backend.Orders, 1)
	assert.Equal(t, StatusCancelled, fx.backend.Orders[0].Status)
	p, _ := fx.catalog.Get(1)
	assert.Equal(t, product.StatusAvailable, p.Status)
	assert.Len(t, fx.cart.Items(), 1)
	assert.Empty(t, fx.store.All())
}

func TestUpdateStatusAppendsExactlyOneLog(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)
	require.Len(t, fx.backend.Logs, 1)

	require.NoError(t, fx.store.UpdateStatus(context.Background(), o.ID, StatusAccepted, "", 4))
	require.Len(t, fx.backend.Logs, 2)
	assert.Equal(t, StatusAccepted, fx.backend.Logs[1].Status)
	assert.Equal(t, "4", fx.backend.Logs[1].UpdatedBy)

	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusAccepted, got.Status)
	assert.Equal(t, 4, got.StaffID)
	require.Len(t, got.StatusHistory, 2)
}

func TestUpdateStatusGuardsTransitions(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)

	// PENDING cannot jump straight to COMPLETED.
	err = fx.store.UpdateStatus(context.Background(), o.ID, StatusCompleted, "", 4)
	require.Error(t, err)
	assert.Equal(t, backend.KindValidation, backend.KindOf(err))
	require.Len(t, fx.backend.Logs, 1)
	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusPending, got.Status)
}

func TestUpdateStatusSentinelFailureLeavesStateUntouched(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)

	fx.backend.StatusErr = backend.ServerError("orders.status")
	err = fx.store.UpdateStatus(context.Background(), o.ID, StatusAccepted, "", 4)
	require.Error(t, err)

	require.Len(t, fx.backend.Logs, 1)
	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusPending, got.Status)
	require.Len(t, got.StatusHistory, 1)
}

func TestPlaceThenCancelRestoresInventory(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)

	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)
	assert.Equal(t, 100000, o.TotalAmount)
	assert.Empty(t, fx.cart.Items())
	p, _ := fx.catalog.Get(1)
	assert.Equal(t, product.StatusUnavailable, p.Status)

	require.NoError(t, fx.store.UpdateStatus(context.Background(), o.ID, StatusCancelled, "changed mind", 4))

	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "changed mind", got.CancelReason)
	p, _ = fx.catalog.Get(1)
	assert.Equal(t, product.StatusAvailable, p.Status)

	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, StatusPending, got.StatusHistory[0].Status)
	assert.Equal(t, StatusCancelled, got.StatusHistory[1].Status)

	display := got.HistoryNewestFirst()
	assert.Equal(t, StatusCancelled, display[0].Status)
}

func TestCancelByCustomerUnassignedCancelsDirectly(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)

	require.NoError(t, fx.store.CancelByCustomer(context.Background(), o.ID, "ordered by mistake"))
	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusCancelled, got.Status)
	p, _ := fx.catalog.Get(1)
	assert.Equal(t, product.StatusAvailable, p.Status)
}

func TestCancelByCustomerAssignedBecomesRequest(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000)})
	fx.cart.Add(1)
	o, err := fx.store.Place(context.Background(), 9, fx.cart.Items(), PaymentCOD, "addr", "")
	require.NoError(t, err)
	require.NoError(t, fx.store.UpdateStatus(context.Background(), o.ID, StatusAccepted, "", 4))

	require.NoError(t, fx.store.CancelByCustomer(context.Background(), o.ID, "too slow"))
	got, _ := fx.store.Get(o.ID)
	assert.Equal(t, StatusReqCancel, got.Status)

	// Not cancelled yet, so the product stays sold until staff approve.
	p, _ := fx.catalog.Get(1)
	assert.Equal(t, product.StatusUnavailable, p.Status)

	// Staff approval completes the cancellation and restores inventory.
	require.NoError(t, fx.store.UpdateStatus(context.Background(), o.ID, StatusCancelled, "approved", 4))
	p, _ = fx.catalog.Get(1)
	assert.Equal(t, product.StatusAvailable, p.Status)
}

func TestNeedsTriage(t *testing.T) {
	fx := newFixture(t, []product.Product{availableProduct(1, 100000), availableProduct(2, 50000)})
	fx.cart.Add(1)
	fx.cart.Add(2)

	o1, err := fx.store.Place(context.Background(), 9, []cart.Item{{ProductID: 1, Quantity: 1}}, PaymentCOD, "addr", "")
	require.NoError(t, err)
	o2, err := fx.store.Place(context.Background(), 9, []cart.Item{{ProductID: 2, Quantity: 1}}, PaymentCOD, "addr", "")
	require.NoError(t, err)

	// o2 gets picked up by staff, o1 stays pending.
	require.NoError(t, fx.store.UpdateStatus(context.Background(), o2.ID, StatusAccepted, "", 4))

	triage := fx.store.NeedsTriage()
	require.Len(t, triage, 1)
	assert.Equal(t, o1.ID, triage[0].ID)

	// Cancelling the unassigned order clears the queue.
	require.NoError(t, fx.store.CancelByCustomer(context.Background(), o1.ID, "mind changed"))
	assert.Empty(t, fx.store.NeedsTriage())
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for from := StatusCancelled; from <= StatusReDelivery; from++ {
		assert.False(t, CanTransition(StatusCompleted, from), "COMPLETED must be terminal")
		assert.False(t, CanTransition(StatusCancelled, from), "CANCELLED must be terminal")
	}
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusShipping))
}
