// Package appointment implements grooming-service bookings and their
// lifecycle. The flow mirrors orders without the inventory coupling: book,
// staff triage, transition with an append-only status history.
package appointment

// Appointment status codes.
const (
	StatusCancelled      = 0
	StatusCompleted      = 1
	StatusPending        = 2
	StatusReqCancel      = 3
	StatusInProgress     = 4
	StatusWaitingPayment = 5
)

// Payment methods, shared vocabulary with orders.
const (
	PaymentCOD = 1
	PaymentQR  = 2
)

// Appointment is one service booking with the pet details the groomer
// needs on arrival.
type Appointment struct {
	ID              int    `json:"id"`
	CustomerID      int    `json:"customerId"`
	StaffID         int    `json:"staffId,omitempty"`
	ServiceID       int    `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          int    `json:"status"`
	PetName         string `json:"petName"`
	PetSpecies      string `json:"petSpecies"`
	PetBreed        string `json:"petBreed"`
	PetAge          int    `json:"petAge"`
	Note            string `json:"note,omitempty"`
	CancelReason    string `json:"cancelReason,omitempty"`
	PaymentMethod   int    `json:"paymentMethod"`
	IsPaid          int    `json:"isPaid"`

	StatusHistory []StatusLog `json:"statusHistory,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// StatusLog mirrors the order history entry, keyed by appointment.
type StatusLog struct {
	ID            int    `json:"id"`
	AppointmentID int    `json:"appointmentId"`
	Status        int    `json:"status"`
	Timestamp     string `json:"timestamp"`
	Note          string `json:"note,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// HistoryNewestFirst returns the history in display order; storage stays
// oldest-first.
func (a Appointment) HistoryNewestFirst() []StatusLog {
	out := make([]StatusLog, len(a.StatusHistory))
	for i, l := range a.StatusHistory {
		out[len(out)-1-i] = l
	}
	return out
}

// validTransitions guards the lifecycle. Once the groomer has started there
// is no cancellation path: IN_PROGRESS and WAITING_PAYMENT only move
// forward.
var validTransitions = map[int][]int{
	StatusPending:        {StatusInProgress, StatusCancelled, StatusReqCancel},
	StatusInProgress:     {StatusWaitingPayment, StatusCompleted},
	StatusWaitingPayment: {StatusCompleted},
	StatusReqCancel:      {StatusInProgress, StatusCancelled},
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
