// Package meds tracks the patient app's medication list: active
// prescriptions, remaining supply, and refill requests. State is
// in-memory and seeded with the sample prescriptions.
package meds

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrMedicationNotFound = errors.New("medication not found")

// Supply level bands used to colour the remaining-pills bar.
type SupplyLevel string

const (
	SupplyOK       SupplyLevel = "ok"       // above 50%
	SupplyLow      SupplyLevel = "low"      // 25% to 50%
	SupplyCritical SupplyLevel = "critical" // below 25%
)

// Medication is one prescription row.
type Medication struct {
	ID        string
	Name      string
	Dosage    string
	Frequency string
	Purpose   string
	StartDate string
	EndDate   string // "Ongoing" for open-ended prescriptions
	Remaining int
	Total     int
	Active    bool
	Time      string
	WithFood  bool
	Doctor    string
	Notes     string
}

// Progress is the remaining supply as a percentage of the original fill.
func (m Medication) Progress() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Remaining) / float64(m.Total) * 100
}

// Supply classifies the remaining amount into the display bands.
func (m Medication) Supply() SupplyLevel {
	switch p := m.Progress(); {
	case p > 50:
		return SupplyOK
	case p > 25:
		return SupplyLow
	default:
		return SupplyCritical
	}
}

// Cabinet is the in-memory medication list.
type Cabinet struct {
	mu   sync.Mutex
	meds []Medication
}

func NewCabinet() *Cabinet {
	return &Cabinet{meds: sampleMedications()}
}

// All returns every medication in list order.
func (c *Cabinet) All() []Medication {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Medication, len(c.meds))
	copy(out, c.meds)
	return out
}

// Active returns only medications the patient has not paused.
func (c *Cabinet) Active() []Medication {
	var out []Medication
	for _, m := range c.All() {
		if m.Active {
			out = append(out, m)
		}
	}
	return out
}

// Toggle flips a medication between active and paused.
func (c *Cabinet) Toggle(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meds {
		if c.meds[i].ID == id {
			c.meds[i].Active = !c.meds[i].Active
			return nil
		}
	}
	return errors.Wrapf(ErrMedicationNotFound, "[Cabinet.Toggle] %s", id)
}

// MarkTaken decrements the remaining count for one dose, never below zero.
func (c *Cabinet) MarkTaken(id string) (Medication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meds {
		if c.meds[i].ID == id {
			if c.meds[i].Remaining > 0 {
				c.meds[i].Remaining--
			}
			return c.meds[i], nil
		}
	}
	return Medication{}, errors.Wrapf(ErrMedicationNotFound, "[Cabinet.MarkTaken] %s", id)
}

// RequestRefill resets the remaining count to a full fill. The pharmacy
// round-trip is simulated; the request always succeeds.
func (c *Cabinet) RequestRefill(id string) (Medication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meds {
		if c.meds[i].ID == id {
			c.meds[i].Remaining = c.meds[i].Total
			return c.meds[i], nil
		}
	}
	return Medication{}, errors.Wrapf(ErrMedicationNotFound, "[Cabinet.RequestRefill] %s", id)
}

// Summary is the adherence overview shown at the top of the screen.
type Summary struct {
	Active      int
	Paused      int
	NeedsRefill int // supply at or below the low band
}

func (c *Cabinet) Summarize() Summary {
	var s Summary
	for _, m := range c.All() {
		if m.Active {
			s.Active++
		} else {
			s.Paused++
		}
		if m.Supply() != SupplyOK {
			s.NeedsRefill++
		}
	}
	return s
}

func sampleMedications() []Medication {
	return []Medication{
		{
			ID: "med-1", Name: "Amoxicillin", Dosage: "500mg", Frequency: "3 times daily",
			Purpose: "Bronchitis infection", StartDate: "2024-01-15", EndDate: "2024-01-25",
			Remaining: 15, Total: 30, Active: true, Time: "Morning, Afternoon, Night",
			WithFood: true, Doctor: "Dr. Sarah Johnson", Notes: "Take with plenty of water",
		},
		{
			ID: "med-2", Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily",
			Purpose: "Blood pressure", StartDate: "2023-12-01", EndDate: "Ongoing",
			Remaining: 60, Total: 90, Active: true, Time: "Morning",
			WithFood: false, Doctor: "Dr. Michael Chen", Notes: "Monitor blood pressure weekly",
		},
		{
			ID: "med-3", Name: "Metformin", Dosage: "1000mg", Frequency: "Twice daily",
			Purpose: "Diabetes management", StartDate: "2023-11-15", EndDate: "Ongoing",
			Remaining: 45, Total: 90, Active: true, Time: "Morning, Evening",
			WithFood: true, Doctor: "Dr. Lisa Wang", Notes: "Take with meals",
		},
		{
			ID: "med-4", Name: "Ibuprofen", Dosage: "400mg", Frequency: "As needed",
			Purpose: "Pain relief", StartDate: "2024-01-20", EndDate: "2024-02-20",
			Remaining: 8, Total: 20, Active: true, Time: "When needed",
			WithFood: true, Doctor: "Dr. Sarah Johnson", Notes: "Maximum 3 times daily",
		},
	}
}
