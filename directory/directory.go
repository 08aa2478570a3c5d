// Package directory holds the patient app's doctor directory: a fixed
// roster of providers browsable by specialty or free-text search.
package directory

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Specialty is a directory filter. FilterAll matches everyone; the rest
// match by substring against the doctor's specialty, so "orthopedic"
// catches "Orthopedic Surgeon".
type Specialty string

const (
	FilterAll         Specialty = "all"
	FilterCardiology  Specialty = "cardiologist"
	FilterDermatology Specialty = "dermatologist"
	FilterNeurology   Specialty = "neurologist"
	FilterOrthopedics Specialty = "orthopedic"
	FilterPediatrics  Specialty = "pediatrician"
	FilterPsychiatry  Specialty = "psychiatrist"
)

// Filters in display order.
var Filters = []Specialty{
	FilterAll, FilterCardiology, FilterDermatology, FilterNeurology,
	FilterOrthopedics, FilterPediatrics, FilterPsychiatry,
}

// Contact details for a doctor.
type Contact struct {
	Phone string
	Email string
}

// Doctor is one directory entry.
type Doctor struct {
	ID            string
	Name          string
	Specialty     string
	Hospital      string
	Rating        float64
	Reviews       int
	Experience    string
	NextAvailable string
	Price         string
	About         string
	Education     string
	Languages     []string
	Availability  []string
	Contact       Contact
}

// Directory serves the fixed provider roster.
type Directory struct {
	doctors []Doctor
}

func New() *Directory {
	return &Directory{doctors: sampleDoctors()}
}

// All returns every doctor, highest rated first.
func (d *Directory) All() []Doctor {
	out := make([]Doctor, len(d.doctors))
	copy(out, d.doctors)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

// BySpecialty filters by the directory's specialty chips.
func (d *Directory) BySpecialty(filter Specialty) []Doctor {
	var out []Doctor
	for _, doc := range d.All() {
		if filter == FilterAll ||
			strings.Contains(strings.ToLower(doc.Specialty), string(filter)) {
			out = append(out, doc)
		}
	}
	return out
}

// Search matches name, specialty or hospital.
func (d *Directory) Search(term string) []Doctor {
	needle := strings.ToLower(term)
	var out []Doctor
	for _, doc := range d.All() {
		if strings.Contains(strings.ToLower(doc.Name), needle) ||
			strings.Contains(strings.ToLower(doc.Specialty), needle) ||
			strings.Contains(strings.ToLower(doc.Hospital), needle) {
			out = append(out, doc)
		}
	}
	return out
}

// Get looks a doctor up by ID.
func (d *Directory) Get(id string) (Doctor, error) {
	for _, doc := range d.doctors {
		if doc.ID == id {
			return doc, nil
		}
	}
	return Doctor{}, errors.Wrapf(ErrDoctorNotFound, "[Directory.Get] %s", id)
}
