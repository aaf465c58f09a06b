package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type ModerationRepository interface {
	List(status string) []models.ModerationItem
	Resolve(id, status string) (*models.ModerationItem, error)
}

// Moderation is the reported-content queue.
var Moderation ModerationRepository = &memoryModeration{items: seedModeration()}

type memoryModeration struct {
	mu    sync.Mutex
	items []models.ModerationItem
}

func (r *memoryModeration) List(status string) []models.ModerationItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ModerationItem
	for _, m := range r.items {
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (r *memoryModeration) Resolve(id, status string) (*models.ModerationItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			now := time.Now()
			r.items[i].Status = status
			r.items[i].ResolvedAt = &now
			updated := r.items[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func seedModeration() []models.ModerationItem {
	return []models.ModerationItem{
		{
			ID: "mod-001", ContentType: "review", ContentID: "rev-004", SupplierID: "sup-003",
			ReportedBy: "sup-003", Reason: "Propos insultants",
			Excerpt: "Fournisseur catastrophique, à fuir [...]",
			Status:  models.ModerationPending, CreatedAt: time.Now().AddDate(0, 0, -2),
		},
		{
			ID: "mod-002", ContentType: "product", ContentID: "prod-118", SupplierID: "sup-002",
			ReportedBy: "user-buyer-77", Reason: "Photo trompeuse",
			Excerpt: "Sac cabas premium cuir véritable",
			Status:  models.ModerationPending, CreatedAt: time.Now().AddDate(0, 0, -1),
		},
		{
			ID: "mod-003", ContentType: "profile", ContentID: "sup-004", SupplierID: "sup-004",
			ReportedBy: "user-buyer-12", Reason: "Coordonnées suspectes",
			Excerpt: "Yiwu Gift & Packaging",
			Status:  models.ModerationApproved, CreatedAt: time.Date(2025, time.May, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}
