// Package roster holds the doctor portal's patient list. Records are
// in-memory sample data, exactly as the portal ships them; they vanish on
// restart and no backend call is involved.
package roster

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Patient is one roster row plus the detail-panel fields.
type Patient struct {
	ID               int
	Name             string
	Age              int
	Gender           string
	BloodType        string
	LastVisit        time.Time
	NextAppointment  time.Time
	Status           string // Active | Inactive
	Condition        string
	Severity         string // Mild | Moderate | Severe
	Phone            string
	Email            string
	Address          string
	EmergencyContact string
	Allergies        []string
	Medications      []string
	Notes            string
}

// Filter selects a roster subset.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterActive       Filter = "active"
	FilterInactive     Filter = "inactive"
	FilterHighPriority Filter = "high-priority"
	FilterNew          Filter = "new"
)

// Stats summarizes the roster for the header cards.
type Stats struct {
	Total          int
	Active         int
	NewThisMonth   int
	PendingReviews int
}

// Store is the in-memory roster.
type Store struct {
	mu       sync.RWMutex
	patients []Patient
	now      func() time.Time
}

// Option modifies a Store.
type Option func(*Store)

// WithNowTime sets the clock (primarily for testing the "new this month"
// window).
func WithNowTime(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore seeds the roster with the portal's sample patients.
func NewStore(options ...Option) *Store {
	s := &Store{patients: samplePatients(), now: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// All returns every patient ordered by ID.
func (s *Store) All() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Patient, len(s.patients))
	copy(out, s.patients)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns one patient by ID.
func (s *Store) Get(id int) (Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// Search matches the term case-insensitively against name, condition, and
// email, then applies the status filter. The patient table re-runs this on
// every keystroke.
func (s *Store) Search(term string, filter Filter) []Patient {
	results := s.All()

	if term != "" {
		needle := strings.ToLower(term)
		matched := results[:0]
		for _, p := range results {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Condition), needle) ||
				strings.Contains(strings.ToLower(p.Email), needle) {
				matched = append(matched, p)
			}
		}
		results = matched
	}

	switch filter {
	case FilterActive:
		results = keep(results, func(p Patient) bool { return p.Status == "Active" })
	case FilterInactive:
		results = keep(results, func(p Patient) bool { return p.Status == "Inactive" })
	case FilterHighPriority:
		results = keep(results, func(p Patient) bool { return p.Severity == "Severe" })
	case FilterNew:
		now := s.now()
		results = keep(results, func(p Patient) bool { return sameMonth(p.LastVisit, now) })
	}
	return results
}

// Stats computes the header cards. PendingReviews mirrors the portal's
// hard-coded placeholder.
func (s *Store) Stats() Stats {
	now := s.now()
	all := s.All()

	st := Stats{Total: len(all), PendingReviews: 3}
	for _, p := range all {
		if p.Status == "Active" {
			st.Active++
		}
		if sameMonth(p.LastVisit, now) {
			st.NewThisMonth++
		}
	}
	return st
}

func keep(in []Patient, fn func(Patient) bool) []Patient {
	out := in[:0]
	for _, p := range in {
		if fn(p) {
			out = append(out, p)
		}
	}
	return out
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
