// Package order implements the checkout flow and the order lifecycle: the
// placement saga, staff status transitions, and the append-only status
// history shown to both sides.
package order

import "github.com/petparadise/storefront/internal/product"

// Order status codes, shared with the backend.
const (
	StatusCancelled  = 0
	StatusCompleted  = 1
	StatusPending    = 2
	StatusAccepted   = 3
	StatusReqCancel  = 4
	StatusShipping   = 5
	StatusReDelivery = 6
)

// Payment methods.
const (
	PaymentCOD = 1
	PaymentQR  = 2
)

// Paid flag values on the order header.
const (
	NotPaid = 0
	Paid    = 1
)

// Order is the header record. Items and StatusHistory are populated by
// hydration, not stored on the backend order row itself.
type Order struct {
	ID              int    `json:"id"`
	CustomerID      int    `json:"customerId"`
	StaffID         int    `json:"staffId,omitempty"`
	TotalAmount     int    `json:"totalAmount"`
	Status          int    `json:"status"`
	PaymentMethod   int    `json:"paymentMethod"`
	IsPaid          int    `json:"isPaid"`
	Note            string `json:"note,omitempty"`
	ShippingAddress string `json:"shippingAddress"`
	CancelReason    string `json:"cancelReason,omitempty"`
	IsLate          int    `json:"isLate,omitempty"`

	Items         []Item      `json:"items,omitempty"`
	StatusHistory []StatusLog `json:"statusHistory,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// Item is one purchased line. PriceSnapshot is the unit price at placement
// time and is never recomputed afterwards.
type Item struct {
	ID            int `json:"id"`
	OrderID       int `json:"orderId"`
	ProductID     int `json:"productId"`
	Quantity      int `json:"quantity"`
	PriceSnapshot int `json:"priceSnapshot"`

	Product *product.Product `json:"product,omitempty"`
}

// StatusLog is one entry of the append-only transition history. UpdatedBy
// records the acting party: a user id, or "System" for unattended changes.
type StatusLog struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"orderId"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// HistoryNewestFirst returns the status history in display order. The
// stored history stays oldest-first.
func (o Order) HistoryNewestFirst() []StatusLog {
	out := make([]StatusLog, len(o.StatusHistory))
	for i, l := range o.StatusHistory {
		out[len(out)-1-i] = l
	}
	return out
}

// validTransitions drives the lifecycle guard. COMPLETED and CANCELLED are
// terminal. REQ_CANCEL needs staff triage: accept the order anyway or
// approve the cancellation.
var validTransitions = map[int][]int{
	StatusPending:    {StatusAccepted, StatusCancelled, StatusReqCancel},
	StatusAccepted:   {StatusShipping, StatusCancelled, StatusReqCancel},
	StatusShipping:   {StatusCompleted, StatusReDelivery, StatusCancelled},
	StatusReDelivery: {StatusCompleted, StatusCancelled},
	StatusReqCancel:  {StatusAccepted, StatusCancelled},
}

// CanTransition reports whether the lifecycle permits from → to.
func CanTransition(from, to int) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from status.
func IsTerminal(status int) bool {
	return status == StatusCompleted || status == StatusCancelled
}
