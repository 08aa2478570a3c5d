// Package documents is the patient app's document vault. Files are not
// actually transferred anywhere: Upload walks a simulated progress
// ticker and then files the record in the in-memory vault.
package documents

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrMissingTitle     = errors.New("document title is required")
)

// Category groups vault entries.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryLab          Category = "lab"
	CategoryScan         Category = "scan"
	CategoryPrescription Category = "prescription"
	CategoryInsurance    Category = "insurance"
	CategoryVaccination  Category = "vaccination"
	CategoryHistory      Category = "history"
)

// Categories in display order.
var Categories = []Category{
	CategoryAll, CategoryLab, CategoryScan, CategoryPrescription,
	CategoryInsurance, CategoryVaccination, CategoryHistory,
}

// Upload pacing: the progress bar advances 10% every 200ms, then a short
// settle delay passes before the record appears.
const (
	ProgressStep     = 10
	ProgressInterval = 200 * time.Millisecond
	SettleDelay      = time.Second
)

// Document is one vault entry.
type Document struct {
	ID          string
	Title       string
	Type        string // "pdf" or "image"
	Category    Category
	Date        string // YYYY-MM-DD
	Size        string
	Doctor      string
	Description string
}

// Draft describes a pending upload.
type Draft struct {
	Title       string
	Category    Category
	Description string
	Filename    string
}

// Vault is the in-memory document store.
type Vault struct {
	mu   sync.Mutex
	docs []Document
	now  func() time.Time
	// step pacing is injectable so tests need not wait out the animation.
	interval time.Duration
	settle   time.Duration
}

type Option func(*Vault)

func WithNowTime(now func() time.Time) Option {
	return func(v *Vault) { v.now = now }
}

func WithUploadPacing(interval, settle time.Duration) Option {
	return func(v *Vault) {
		v.interval = interval
		v.settle = settle
	}
}

func NewVault(options ...Option) *Vault {
	v := &Vault{
		docs:     sampleDocuments(),
		now:      time.Now,
		interval: ProgressInterval,
		settle:   SettleDelay,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// All returns every document, newest first.
func (v *Vault) All() []Document {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Document, len(v.docs))
	copy(out, v.docs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// ByCategory filters the vault by category chip.
func (v *Vault) ByCategory(cat Category) []Document {
	var out []Document
	for _, d := range v.All() {
		if cat == CategoryAll || d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Search matches title, doctor or category.
func (v *Vault) Search(term string) []Document {
	needle := strings.ToLower(term)
	var out []Document
	for _, d := range v.All() {
		if strings.Contains(strings.ToLower(d.Title), needle) ||
			strings.Contains(strings.ToLower(d.Doctor), needle) ||
			strings.Contains(string(d.Category), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Delete removes a document from the vault.
func (v *Vault) Delete(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, d := range v.docs {
		if d.ID == id {
			v.docs = append(v.docs[:i], v.docs[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrDocumentNotFound, "[Vault.Delete] %s", id)
}

// Upload simulates the transfer, reporting progress in ProgressStep
// increments through onProgress (nil is allowed), then files the
// document. A draft without a title fails before any progress is made.
// Cancelling ctx abandons the upload; nothing is filed.
func (v *Vault) Upload(ctx context.Context, draft Draft, onProgress func(percent int)) (Document, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return Document{}, errors.Wrap(ErrMissingTitle, "[Vault.Upload]")
	}
	if draft.Category == "" || draft.Category == CategoryAll {
		draft.Category = CategoryLab
	}

	for pct := ProgressStep; pct <= 100; pct += ProgressStep {
		select {
		case <-ctx.Done():
			return Document{}, errors.Wrap(ctx.Err(), "[Vault.Upload]")
		case <-time.After(v.interval):
		}
		if onProgress != nil {
			onProgress(pct)
		}
	}

	select {
	case <-ctx.Done():
		return Document{}, errors.Wrap(ctx.Err(), "[Vault.Upload]")
	case <-time.After(v.settle):
	}

	docType := "image"
	if strings.HasSuffix(strings.ToLower(draft.Filename), ".pdf") {
		docType = "pdf"
	}
	doc := Document{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Type:        docType,
		Category:    draft.Category,
		Date:        v.now().Format("2006-01-02"),
		Size:        "Uploading...",
		Description: draft.Description,
	}

	v.mu.Lock()
	v.docs = append([]Document{doc}, v.docs...)
	v.mu.Unlock()
	return doc, nil
}

func sampleDocuments() []Document {
	return []Document{
		{ID: "doc-1", Title: "Blood Test Results", Type: "pdf", Category: CategoryLab, Date: "2024-01-15", Size: "2.4 MB", Doctor: "Dr. Johnson"},
		{ID: "doc-2", Title: "X-Ray Scan - Chest", Type: "image", Category: CategoryScan, Date: "2024-01-10", Size: "4.8 MB", Doctor: "Dr. Patel"},
		{ID: "doc-3", Title: "Prescription - Antibiotics", Type: "pdf", Category: CategoryPrescription, Date: "2024-01-05", Size: "1.2 MB", Doctor: "Dr. Lee"},
		{ID: "doc-4", Title: "MRI Scan - Brain", Type: "image", Category: CategoryScan, Date: "2023-12-20", Size: "15.2 MB", Doctor: "Dr. Rodriguez"},
		{ID: "doc-5", Title: "Insurance Claim Form", Type: "pdf", Category: CategoryInsurance, Date: "2023-12-15", Size: "3.1 MB"},
		{ID: "doc-6", Title: "Vaccination Record", Type: "pdf", Category: CategoryVaccination, Date: "2023-12-01", Size: "1.8 MB", Doctor: "Dr. Chen"},
		{ID: "doc-7", Title: "Ultrasound - Abdomen", Type: "image", Category: CategoryScan, Date: "2023-11-25", Size: "8.5 MB", Doctor: "Dr. Wilson"},
		{ID: "doc-8", Title: "Medical History Summary", Type: "pdf", Category: CategoryHistory, Date: "2023-11-10", Size: "5.3 MB"},
	}
}
