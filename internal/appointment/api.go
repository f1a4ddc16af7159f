package appointment

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/petparadise/storefront/internal/backend"
)

type CreateRequest struct {
	CustomerID      int    `json:"customerId"`
	ServiceID       int    `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	PetName         string `json:"petName"`
	PetSpecies      string `json:"petSpecies"`
	PetBreed        string `json:"petBreed"`
	PetAge          int    `json:"petAge"`
	PaymentMethod   int    `json:"paymentMethod"`
	Note            string `json:"note,omitempty"`
}

type UpdateStatusRequest struct {
	ID      int    `json:"id"`
	Status  int    `json:"status"`
	Note    string `json:"note,omitempty"`
	StaffID int    `json:"staffId,omitempty"`
}

type CreateLogRequest struct {
	AppointmentID int    `json:"appointmentId"`
	Status        int    `json:"status"`
	Timestamp     string `json:"timestamp"`
	Note          string `json:"note,omitempty"`
	UpdatedBy     string `json:"updatedBy"`
}

type API interface {
	GetAll(ctx context.Context) ([]Appointment, error)
	ByCustomer(ctx context.Context, customerID int) ([]Appointment, error)
	Create(ctx context.Context, req CreateRequest) (Appointment, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
}

type LogsAPI interface {
	ByAppointment(ctx context.Context, appointmentID int) ([]StatusLog, error)
	Create(ctx context.Context, req CreateLogRequest) (StatusLog, error)
}

type httpAPI struct {
	c *backend.Client
}

func NewAPI(c *backend.Client) API { return &httpAPI{c: c} }

func (a *httpAPI) GetAll(ctx context.Context) ([]Appointment, error) {
	var apps []Appointment
	if err := a.c.GetJSON(ctx, "appointments.list", "/appointments", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *httpAPI) ByCustomer(ctx context.Context, customerID int) ([]Appointment, error) {
	var apps []Appointment
	q := url.Values{"customerId": {strconv.Itoa(customerID)}}
	if err := a.c.PostJSON(ctx, "appointments.by_customer", "/appointments/by-customer", q, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *httpAPI) Create(ctx context.Context, req CreateRequest) (Appointment, error) {
	var app Appointment
	if err := a.c.PostJSON(ctx, "appointments.create", "/appointments/create", nil, req, &app); err != nil {
		return Appointment{}, err
	}
	return app, nil
}

func (a *httpAPI) UpdateStatus(ctx context.Context, req UpdateStatusRequest) error {
	return a.c.PostCode(ctx, "appointments.status", "/appointments/status", nil, req)
}

type httpLogsAPI struct {
	c *backend.Client
}

func NewLogsAPI(c *backend.Client) LogsAPI { return &httpLogsAPI{c: c} }

func (a *httpLogsAPI) ByAppointment(ctx context.Context, appointmentID int) ([]StatusLog, error) {
	var logs []StatusLog
	q := url.Values{"appointmentId": {strconv.Itoa(appointmentID)}}
	if err := a.c.PostJSON(ctx, "appointment_logs.by_appointment", "/appointment-status-logs/by-appointment", q, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *httpLogsAPI) Create(ctx context.Context, req CreateLogRequest) (StatusLog, error) {
	var l StatusLog
	if err := a.c.PostJSON(ctx, "appointment_logs.create", "/appointment-status-logs/create", nil, req, &l); err != nil {
		return StatusLog{}, err
	}
	return l, nil
}

// FakeBackend keeps appointments and logs together for tests.
type FakeBackend struct {
	mu        sync.Mutex
	nextApp   int
	nextLog   int
	Rows      []Appointment
	Logs      []StatusLog
	Err       error
	StatusErr error
}

func NewFakeBackend() *FakeBackend { return &FakeBackend{nextApp: 1, nextLog: 1} }

func (f *FakeBackend) GetAll(context.Context) ([]Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]Appointment, len(f.Rows))
	copy(out, f.Rows)
	return out, nil
}

func (f *FakeBackend) ByCustomer(_ context.Context, customerID int) ([]Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []Appointment
	for _, a := range f.Rows {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *FakeBackend) Create(_ context.Context, req CreateRequest) (Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return Appointment{}, f.Err
	}
	a := Appointment{
		ID:              f.nextApp,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          StatusPending,
		PetName:         req.PetName,
		PetSpecies:      req.PetSpecies,
		PetBreed:        req.PetBreed,
		PetAge:          req.PetAge,
		Note:            req.Note,
		PaymentMethod:   req.PaymentMethod,
	}
	f.nextApp++
	f.Rows = append(f.Rows, a)
	return a, nil
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
	for i := range f.Rows {
		if f.Rows[i].ID != req.ID {
			continue
		}
		f.Rows[i].Status = req.Status
		if req.StaffID != 0 {
			f.Rows[i].StaffID = req.StaffID
		}
		if req.Status == StatusCancelled {
			f.Rows[i].CancelReason = req.Note
		}
		return nil
	}
	return backend.NotFound("appointments.status")
}

func (f *FakeBackend) LogsAPI() LogsAPI { return fakeLogs{f} }

type fakeLogs struct{ f *FakeBackend }

func (a fakeLogs) ByAppointment(_ context.Context, appointmentID int) ([]StatusLog, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if a.f.Err != nil {
		return nil, a.f.Err
	}
	var out []StatusLog
	for _, l := range a.f.Logs {
		if l.AppointmentID == appointmentID {
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
		ID:            a.f.nextLog,
		AppointmentID: req.AppointmentID,
		Status:        req.Status,
		Timestamp:     req.Timestamp,
		Note:          req.Note,
		UpdatedBy:     req.UpdatedBy,
	}
	a.f.nextLog++
	a.f.Logs = append(a.f.Logs, l)
	return l, nil
}
