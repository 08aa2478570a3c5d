// Package intake implements the patient app's symptom-intake flow and the
// canned analysis behind it. The "AI" is a fixed-delay stub returning a
// constant result set; it performs no inference and is not a diagnosis.
package intake

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// AnalysisDelay is the simulated processing time before results appear.
const AnalysisDelay = 2 * time.Second

var ErrNoSymptoms = errors.New("no symptoms provided")

// CommonSymptoms is the tap-to-select grid.
var CommonSymptoms = []string{
	"Fever", "Headache", "Cough", "Fatigue", "Nausea", "Dizziness",
	"Chest Pain", "Shortness of Breath", "Muscle Aches", "Sore Throat",
	"Runny Nose", "Abdominal Pain",
}

// Severity levels a patient can report.
var SeverityOptions = []string{"mild", "moderate", "severe", "emergency"}

// DurationOptions a patient can pick from.
var DurationOptions = []string{
	"Few hours", "1-2 days", "3-7 days", "1-2 weeks", "1+ month", "Chronic",
}

// Demographics are the optional intake fields.
type Demographics struct {
	Age    string
	Gender string
	Weight string
	Height string
}

// Draft is the symptom-intake form. It is owned by the intake screen and
// discarded after submission.
type Draft struct {
	Selected     []string // picks from CommonSymptoms
	FreeText     string   // comma-separated description
	Duration     string
	Severity     string
	Notes        string
	Demographics Demographics
}

// Symptoms merges the tapped selections with the typed description,
// splitting the free text on commas and dropping blanks.
func (d Draft) Symptoms() []string {
	out := make([]string, 0, len(d.Selected))
	out = append(out, d.Selected...)
	for _, s := range strings.Split(d.FreeText, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Condition is one ranked result row.
type Condition struct {
	Name       string
	Confidence float64
	Severity   string
}

// Diagnosis is the analysis output shown on the results screen.
type Diagnosis struct {
	Conditions      []Condition
	Recommendations []string
	Emergency       bool
	Notes           string
	Symptoms        []string
	Duration        string
	Severity        string
}

// Analyzer runs the stub analysis.
type Analyzer struct {
	delay time.Duration
}

type Option func(*Analyzer)

// WithDelay overrides the simulated processing time (tests).
func WithDelay(d time.Duration) Option {
	return func(a *Analyzer) { a.delay = d }
}

func NewAnalyzer(options ...Option) *Analyzer {
	a := &Analyzer{delay: AnalysisDelay}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Analyze validates the draft, waits the simulated processing time, and
// returns the canned result. An empty draft fails immediately without
// starting the delay.
func (a *Analyzer) Analyze(ctx context.Context, d Draft) (*Diagnosis, error) {
	symptoms := d.Symptoms()
	if len(symptoms) == 0 {
		return nil, errors.Wrap(ErrNoSymptoms, "[Analyzer.Analyze]")
	}

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "[Analyzer.Analyze]")
	case <-time.After(a.delay):
	}

	return &Diagnosis{
		Conditions: []Condition{
			{Name: "Common Cold", Confidence: 0.85, Severity: "low"},
			{Name: "Influenza", Confidence: 0.72, Severity: "medium"},
			{Name: "Sinus Infection", Confidence: 0.65, Severity: "low"},
		},
		Recommendations: []string{
			"Rest and drink plenty of fluids",
			"Over-the-counter pain relievers if needed",
			"Monitor temperature every 4 hours",
			"See a doctor if symptoms worsen or persist beyond 7 days",
		},
		Emergency: false,
		Notes: "Based on your symptoms, these are the most likely conditions. " +
			"This is not a medical diagnosis - please consult with a healthcare professional.",
		Symptoms: symptoms,
		Duration: d.Duration,
		Severity: d.Severity,
	}, nil
}
