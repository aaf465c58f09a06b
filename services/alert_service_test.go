package services

import (
	"testing"
	"time"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAlerts captures raised alerts without touching the shared feed.
type recordingAlerts struct {
	raised []models.Alert
}

func (r *recordingAlerts) List(unreadOnly bool) []models.Alert { return r.raised }

func (r *recordingAlerts) Add(severity, category, title, message, source string) models.Alert {
	alert := models.Alert{
		Severity: severity,
		Category: category,
		Title:    title,
		Message:  message,
		Source:   source,
	}
	r.raised = append(r.raised, alert)
	return alert
}

func (r *recordingAlerts) MarkRead(id string) (*models.Alert, error) { return nil, nil }

func (r *recordingAlerts) MarkAllRead() int { return 0 }

type stubDocuments struct{ docs []models.Document }

func (s *stubDocuments) List(filter repositories.DocumentFilter) []models.Document {
	var out []models.Document
	for _, d := range s.docs {
		if filter.Status == "" || d.Status == filter.Status {
			out = append(out, d)
		}
	}
	return out
}

func (s *stubDocuments) Review(id, status, reason string) (*models.Document, error) {
	return nil, repositories.ErrNotFound
}

type stubOrders struct{ orders []models.Order }

func (s *stubOrders) List(filter repositories.OrderFilter) []models.Order {
	var out []models.Order
	for _, o := range s.orders {
		if filter.Status == "" || o.Status == filter.Status {
			out = append(out, o)
		}
	}
	return out
}

func (s *stubOrders) Get(id string) (*models.Order, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubOrders) UpdateStatus(id, status string) (*models.Order, error) {
	return nil, repositories.ErrNotFound
}

type stubSuppliers struct{ suppliers []models.Supplier }

func (s *stubSuppliers) List(filter repositories.SupplierFilter) []models.Supplier {
	var out []models.Supplier
	for _, sup := range s.suppliers {
		if filter.Status == "" || sup.Status == filter.Status {
			out = append(out, sup)
		}
	}
	return out
}

func (s *stubSuppliers) Get(id string) (*models.Supplier, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubSuppliers) SetStatus(id, status string) (*models.Supplier, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubSuppliers) UpdateProfile(id string, patch repositories.SupplierProfilePatch) (*models.Supplier, error) {
	return nil, repositories.ErrNotFound
}

func newTestService(docs []models.Document, orders []models.Order, suppliers []models.Supplier) (*AlertService, *recordingAlerts) {
	sink := &recordingAlerts{}
	return &AlertService{
		alerts:    sink,
		documents: &stubDocuments{docs: docs},
		orders:    &stubOrders{orders: orders},
		suppliers: &stubSuppliers{suppliers: suppliers},
	}, sink
}

func TestSweepRaisesPendingDocumentAlert(t *testing.T) {
	s, sink := newTestService([]models.Document{
		{ID: "d1", Status: models.DocPending},
		{ID: "d2", Status: models.DocVerified},
		{ID: "d3", Status: models.DocPending},
	}, nil, nil)

	s.sweepPendingDocuments()

	require.Len(t, sink.raised, 1)
	alert := sink.raised[0]
	assert.Equal(t, models.AlertWarning, alert.Severity)
	assert.Equal(t, "documents", alert.Category)
	assert.Equal(t, "scheduler", alert.Source)
	assert.Contains(t, alert.Message, "2 document(s)")
}

func TestSweepSkipsWhenNoPendingDocuments(t *testing.T) {
	s, sink := newTestService([]models.Document{
		{ID: "d1", Status: models.DocVerified},
	}, nil, nil)

	s.sweepPendingDocuments()

	assert.Empty(t, sink.raised)
}

func TestSweepRaisesStaleOrderAlert(t *testing.T) {
	now := time.Now()
	s, sink := newTestService(nil, []models.Order{
		{ID: "o1", Status: models.OrderPending, CreatedAt: now.AddDate(0, 0, -10)},
		{ID: "o2", Status: models.OrderPending, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "o3", Status: models.OrderDelivered, CreatedAt: now.AddDate(0, 0, -30)},
	}, nil)

	s.sweepStaleOrders()

	require.Len(t, sink.raised, 1)
	assert.Equal(t, "orders", sink.raised[0].Category)
	assert.Equal(t, models.AlertWarning, sink.raised[0].Severity)
	assert.Contains(t, sink.raised[0].Message, "1 commande(s)")
}

func TestSweepFlagsLowRatedSuppliers(t *testing.T) {
	s, sink := newTestService(nil, nil, []models.Supplier{
		{ID: "s1", Name: "Atelier Correct", Status: models.SupplierActive, Rating: 4.2, ReviewCount: 50},
		{ID: "s2", Name: "Usine Douteuse", Status: models.SupplierActive, Rating: 1.8, ReviewCount: 12},
		{ID: "s3", Name: "Jamais Notée", Status: models.SupplierActive, Rating: 0, ReviewCount: 0},
		{ID: "s4", Name: "Suspendue", Status: models.SupplierSuspended, Rating: 1.0, ReviewCount: 9},
	})

	// No operator phone configured, so no outbound notification attempt.
	t.Setenv("OPERATOR_PHONE", "")

	s.sweepLowRatedSuppliers()

	require.Len(t, sink.raised, 1)
	alert := sink.raised[0]
	assert.Equal(t, models.AlertCritical, alert.Severity)
	assert.Equal(t, "suppliers", alert.Category)
	assert.Contains(t, alert.Message, "Usine Douteuse")
}
