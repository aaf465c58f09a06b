package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type DocumentFilter struct {
	Status     string
	Type       string
	SupplierID string
}

type DocumentsRepository interface {
	List(filter DocumentFilter) []models.Document
	Review(id, status, reason string) (*models.Document, error)
}

// Documents is the supplier verification document queue.
var Documents DocumentsRepository = &memoryDocuments{docs: seedDocuments()}

type memoryDocuments struct {
	mu   sync.Mutex
	docs []models.Document
}

func (r *memoryDocuments) List(filter DocumentFilter) []models.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Document
	for _, d := range r.docs {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.SupplierID != "" && d.SupplierID != filter.SupplierID {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (r *memoryDocuments) Review(id, status, reason string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.docs {
		if r.docs[i].ID == id {
			now := time.Now()
			r.docs[i].Status = status
			r.docs[i].RejectReason = reason
			r.docs[i].ReviewedAt = &now
			updated := r.docs[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func seedDocuments() []models.Document {
	return []models.Document{
		{
			ID: "doc-001", SupplierID: "sup-001", SupplierName: "Shenzhen Electro Manufacture Co.",
			Type: models.DocBusinessLicense, Name: "Licence commerciale 2025",
			FileURL: "/uploads/docs/doc-001.pdf", Status: models.DocVerified,
			SubmittedAt: time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "doc-002", SupplierID: "sup-003", SupplierName: "Ningbo Precision Tools",
			Type: models.DocCertification, Name: "Certification CE outillage",
			FileURL: "/uploads/docs/doc-002.pdf", Status: models.DocPending,
			SubmittedAt: time.Now().AddDate(0, 0, -4),
		},
		{
			ID: "doc-003", SupplierID: "sup-004", SupplierName: "Yiwu Gift & Packaging",
			Type: models.DocBusinessLicense, Name: "Licence commerciale",
			FileURL: "/uploads/docs/doc-003.pdf", Status: models.DocPending,
			SubmittedAt: time.Now().AddDate(0, 0, -1),
		},
		{
			ID: "doc-004", SupplierID: "sup-002", SupplierName: "Guangzhou Textile Works",
			Type: models.DocTaxRegistration, Name: "Enregistrement fiscal",
			FileURL: "/uploads/docs/doc-004.pdf", Status: models.DocRejected,
			RejectReason: "Document illisible, merci de soumettre un scan complet.",
			SubmittedAt:  time.Date(2025, time.March, 2, 14, 30, 0, 0, time.UTC),
		},
	}
}
