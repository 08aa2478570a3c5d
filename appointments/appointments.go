// Package appointments is the portal's in-memory appointment book. Seeded
// with sample bookings; locally scheduled entries live only for the life of
// the process.
package appointments

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Status of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrNotFound = errors.New("appointment not found")

// Appointment is one calendar entry.
type Appointment struct {
	ID          string
	PatientName string
	Type        string
	Date        time.Time
	TimeOfDay   string // display slot, e.g. "10:30 AM"
	Status      Status
	Notes       string
}

// Draft collects the new-appointment form. It is owned by the caller and
// discarded whole when validation fails.
type Draft struct {
	PatientName string
	Type        string
	Date        time.Time
	TimeOfDay   string
	Notes       string
}

// Validate returns one message per missing required field.
func (d Draft) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.PatientName) == "" {
		errs["patient_name"] = "Patient name is required"
	}
	if d.Date.IsZero() {
		errs["date"] = "Appointment date is required"
	}
	if strings.TrimSpace(d.TimeOfDay) == "" {
		errs["time"] = "Appointment time is required"
	}
	return errs
}

// Book is the in-memory appointment store.
type Book struct {
	mu      sync.RWMutex
	entries []Appointment
	now     func() time.Time
}

type Option func(*Book)

func WithNowTime(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

func NewBook(options ...Option) *Book {
	b := &Book{entries: sampleAppointments(), now: time.Now}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// All returns every appointment ordered by date then slot.
func (b *Book) All() []Appointment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Appointment, len(b.entries))
	copy(out, b.entries)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].TimeOfDay < out[j].TimeOfDay
	})
	return out
}

// ByStatus filters the book.
func (b *Book) ByStatus(status Status) []Appointment {
	var out []Appointment
	for _, a := range b.All() {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// Today returns appointments on the current date.
func (b *Book) Today() []Appointment {
	today := b.now().Truncate(24 * time.Hour)
	var out []Appointment
	for _, a := range b.All() {
		if a.Date.Equal(today) {
			out = append(out, a)
		}
	}
	return out
}

// Search matches patient name or type, case-insensitively.
func (b *Book) Search(term string) []Appointment {
	needle := strings.ToLower(term)
	var out []Appointment
	for _, a := range b.All() {
		if strings.Contains(strings.ToLower(a.PatientName), needle) ||
			strings.Contains(strings.ToLower(a.Type), needle) {
			out = append(out, a)
		}
	}
	return out
}

// Schedule validates the draft and appends a pending appointment.
func (b *Book) Schedule(d Draft) (Appointment, error) {
	if errs := d.Validate(); len(errs) > 0 {
		for _, msg := range errs {
			return Appointment{}, errors.Wrap(errors.New(msg), "[Book.Schedule] invalid draft")
		}
	}

	appt := Appointment{
		ID:          uuid.New().String(),
		PatientName: d.PatientName,
		Type:        d.Type,
		Date:        d.Date,
		TimeOfDay:   d.TimeOfDay,
		Status:      StatusPending,
		Notes:       d.Notes,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, appt)
	return appt, nil
}

// Cancel marks an appointment cancelled.
func (b *Book) Cancel(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries[i].Status = StatusCancelled
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "[Book.Cancel] id %s", id)
}

func sampleAppointments() []Appointment {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return []Appointment{
		{ID: "apt-1", PatientName: "John Doe", Type: "Follow-up", Date: d(2024, time.February, 20), TimeOfDay: "10:30 AM", Status: StatusConfirmed, Notes: "Blood pressure review."},
		{ID: "apt-2", PatientName: "Sarah Miller", Type: "Initial Consultation", Date: d(2024, time.February, 20), TimeOfDay: "2:00 PM", Status: StatusPending},
		{ID: "apt-3", PatientName: "Robert Chen", Type: "Routine Check-up", Date: d(2024, time.February, 21), TimeOfDay: "9:00 AM", Status: StatusConfirmed},
		{ID: "apt-4", PatientName: "Maria Garcia", Type: "Specialist Referral", Date: d(2024, time.February, 21), TimeOfDay: "11:00 AM", Status: StatusConfirmed},
		{ID: "apt-5", PatientName: "David Wilson", Type: "Medication Review", Date: d(2024, time.February, 22), TimeOfDay: "3:30 PM", Status: StatusPending},
		{ID: "apt-6", PatientName: "Emily Johnson", Type: "Emergency", Date: d(2024, time.February, 19), TimeOfDay: "4:00 PM", Status: StatusCompleted},
		{ID: "apt-7", PatientName: "John Doe", Type: "Lab Results Review", Date: d(2024, time.February, 23), TimeOfDay: "1:00 PM", Status: StatusConfirmed},
	}
}
