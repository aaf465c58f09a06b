package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"

	"github.com/google/uuid"
)

type AlertsRepository interface {
	List(unreadOnly bool) []models.Alert
	Add(severity, category, title, message, source string) models.Alert
	MarkRead(id string) (*models.Alert, error)
	MarkAllRead() int
}

// Alerts is the platform alert feed, fed by admins and the scheduler sweep.
var Alerts AlertsRepository = &memoryAlerts{alerts: seedAlerts()}

type memoryAlerts struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func (r *memoryAlerts) List(unreadOnly bool) []models.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Alert
	// newest first
	for i := len(r.alerts) - 1; i >= 0; i-- {
		if unreadOnly && r.alerts[i].Read {
			continue
		}
		out = append(out, r.alerts[i])
	}
	return out
}

func (r *memoryAlerts) Add(severity, category, title, message, source string) models.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert := models.Alert{
		ID:        uuid.NewString(),
		Severity:  severity,
		Category:  category,
		Title:     title,
		Message:   message,
		Source:    source,
		CreatedAt: time.Now(),
	}
	r.alerts = append(r.alerts, alert)
	return alert
}

func (r *memoryAlerts) MarkRead(id string) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Read = true
			updated := r.alerts[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAlerts) MarkAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for i := range r.alerts {
		if !r.alerts[i].Read {
			r.alerts[i].Read = true
			count++
		}
	}
	return count
}

func seedAlerts() []models.Alert {
	return []models.Alert{
		{
			ID: "alert-001", Severity: models.AlertInfo, Category: "system",
			Title:     "Maintenance planifiée",
			Message:   "Une fenêtre de maintenance est prévue dimanche 03:00-04:00 UTC.",
			Source:    "manual",
			Read:      true,
			CreatedAt: time.Now().AddDate(0, 0, -6),
		},
		{
			ID: "alert-002", Severity: models.AlertWarning, Category: "documents",
			Title:     "Documents en attente",
			Message:   "2 documents fournisseurs attendent une vérification depuis plus de 24h.",
			Source:    "scheduler",
			CreatedAt: time.Now().AddDate(0, 0, -1),
		},
	}
}
