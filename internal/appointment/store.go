package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/i18n"
	"github.com/petparadise/storefront/internal/notify"
)

const systemActor = "System"

// Store owns the session's appointment list. Same discipline as orders:
// backend first, one notification per state change, wholesale history
// re-hydration after a transition.
type Store struct {
	api      API
	logs     LogsAPI
	notifier *notify.Center
	tr       *i18n.Translator
	log      *logrus.Entry
	now      func() time.Time

	mu   sync.Mutex
	apps []Appointment
}

func NewStore(api API, logs LogsAPI, notifier *notify.Center, tr *i18n.Translator) *Store {
	return &Store{
		api:      api,
		logs:     logs,
		notifier: notifier,
		tr:       tr,
		log:      logrus.WithField("store", "appointments"),
		now:      time.Now,
	}
}

func (s *Store) Load(ctx context.Context) error {
	apps, err := s.api.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("load appointments")
		return err
	}
	s.setAll(apps)
	return nil
}

func (s *Store) LoadByCustomer(ctx context.Context, customerID int) error {
	apps, err := s.api.ByCustomer(ctx, customerID)
	if err != nil {
		s.log.WithError(err).WithField("customerId", customerID).Warn("load customer appointments")
		return err
	}
	s.setAll(apps)
	return nil
}

func (s *Store) setAll(apps []Appointment) {
	s.mu.Lock()
	s.apps = apps
	s.mu.Unlock()
}

func (s *Store) All() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Appointment, len(s.apps))
	copy(out, s.apps)
	return out
}

func (s *Store) Get(id int) (Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.apps {
		if a.ID == id {
			return a, true
		}
	}
	return Appointment{}, false
}

// Book creates the appointment at PENDING and appends the customer-authored
// opening log. The new booking is prepended for display.
func (s *Store) Book(ctx context.Context, req CreateRequest) (Appointment, error) {
	if req.ServiceID == 0 || req.AppointmentDate == "" || req.AppointmentTime == "" || req.PetName == "" {
		s.notifier.Error("appointment.incomplete")
		return Appointment{}, backend.Validation("appointments.book", fmt.Errorf("missing booking fields"))
	}

	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.notifier.Failure(err, "appointment.book_failed")
		return Appointment{}, err
	}

	opening, err := s.logs.Create(ctx, CreateLogRequest{
		AppointmentID: created.ID,
		Status:        StatusPending,
		Timestamp:     s.timestamp(),
		Note:          s.tr.T("note.appointment_booked"),
		UpdatedBy:     fmt.Sprint(req.CustomerID),
	})
	if err != nil {
		s.log.WithError(err).WithField("appointmentId", created.ID).Error("could not append opening log")
	} else {
		created.StatusHistory = []StatusLog{opening}
	}

	s.mu.Lock()
	s.apps = append([]Appointment{created}, s.apps...)
	s.mu.Unlock()

	s.notifier.Success("appointment.booked")
	return created, nil
}

// UpdateStatus transitions an appointment. Guarded locally, decided by the
// backend, and only a success appends the log and re-hydrates the entry.
func (s *Store) UpdateStatus(ctx context.Context, appointmentID, status int, reason string, staffID int) error {
	current, ok := s.Get(appointmentID)
	if !ok {
		s.notifier.Error("common.not_found")
		return backend.NotFound("appointments.status")
	}
	if !CanTransition(current.Status, status) {
		s.notifier.Error("appointment.invalid_transition")
		return backend.Validation("appointments.status",
			fmt.Errorf("transition %d -> %d not permitted", current.Status, status))
	}

	err := s.api.UpdateStatus(ctx, UpdateStatusRequest{ID: appointmentID, Status: status, Note: reason, StaffID: staffID})
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
		AppointmentID: appointmentID,
		Status:        status,
		Timestamp:     s.timestamp(),
		Note:          note,
		UpdatedBy:     actor,
	}); err != nil {
		s.log.WithError(err).WithField("appointmentId", appointmentID).Error("could not append status log")
	}

	s.rehydrate(ctx, appointmentID, status, reason, staffID, current)
	s.notifier.Success("appointment.status_updated")
	return nil
}

// CancelByCustomer mirrors the order-side rule: outright cancel while
// unassigned, a triage request once staff hold it. There is no customer
// path at all once the service is in progress.
func (s *Store) CancelByCustomer(ctx context.Context, appointmentID int, reason string) error {
	current, ok := s.Get(appointmentID)
	if !ok {
		s.notifier.Error("common.not_found")
		return backend.NotFound("appointments.cancel")
	}
	if current.StaffID == 0 {
		return s.UpdateStatus(ctx, appointmentID, StatusCancelled, reason, 0)
	}

	if !CanTransition(current.Status, StatusReqCancel) {
		s.notifier.Error("appointment.invalid_transition")
		return backend.Validation("appointments.cancel",
			fmt.Errorf("transition %d -> %d not permitted", current.Status, StatusReqCancel))
	}
	err := s.api.UpdateStatus(ctx, UpdateStatusRequest{ID: appointmentID, Status: StatusReqCancel, Note: reason})
	if err != nil {
		s.notifier.Failure(err, "common.failed")
		return err
	}
	if _, err := s.logs.Create(ctx, CreateLogRequest{
		AppointmentID: appointmentID,
		Status:        StatusReqCancel,
		Timestamp:     s.timestamp(),
		Note:          reason,
		UpdatedBy:     fmt.Sprint(current.CustomerID),
	}); err != nil {
		s.log.WithError(err).WithField("appointmentId", appointmentID).Error("could not append status log")
	}

	s.rehydrate(ctx, appointmentID, StatusReqCancel, reason, current.StaffID, current)
	s.notifier.Success("appointment.cancel_requested")
	return nil
}

// NeedsTriage lists bookings waiting on staff: PENDING plus unassigned
// cancellation requests.
func (s *Store) NeedsTriage() []Appointment {
	var out []Appointment
	for _, a := range s.All() {
		if a.Status == StatusPending || (a.Status == StatusReqCancel && a.StaffID == 0) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) rehydrate(ctx context.Context, appointmentID, status int, reason string, staffID int, prev Appointment) {
	next := prev
	next.Status = status
	if staffID != 0 {
		next.StaffID = staffID
	}
	if status == StatusCancelled {
		next.CancelReason = reason
	}

	logs, err := s.logs.ByAppointment(ctx, appointmentID)
	if err != nil {
		s.log.WithError(err).WithField("appointmentId", appointmentID).Warn("could not re-hydrate history")
	} else {
		sortLogs(logs)
		next.StatusHistory = logs
	}

	s.mu.Lock()
	for i := range s.apps {
		if s.apps[i].ID == appointmentID {
			s.apps[i] = next
			break
		}
	}
	s.mu.Unlock()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func sortLogs(logs []StatusLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp != logs[j].Timestamp {
			return logs[i].Timestamp < logs[j].Timestamp
		}
		return logs[i].ID < logs[j].ID
	})
}
