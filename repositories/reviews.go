package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type ReviewsRepository interface {
	ListBySupplier(supplierID string, minRating int) []models.Review
	Reply(id, reply string) (*models.Review, error)
}

// Reviews holds buyer reviews of suppliers.
var Reviews ReviewsRepository = &memoryReviews{reviews: seedReviews()}

type memoryReviews struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (r *memoryReviews) ListBySupplier(supplierID string, minRating int) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Review
	for _, rev := range r.reviews {
		if rev.SupplierID != supplierID {
			continue
		}
		if minRating > 0 && rev.Rating < minRating {
			continue
		}
		out = append(out, rev)
	}
	return out
}

func (r *memoryReviews) Reply(id, reply string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			now := time.Now()
			r.reviews[i].Reply = reply
			r.reviews[i].RepliedAt = &now
			updated := r.reviews[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID: "rev-001", SupplierID: "sup-001", Author: "Marie D.", Country: "France",
			Rating: 5, Comment: "Production rapide et conforme, communication excellente.",
			CreatedAt: time.Now().AddDate(0, -1, 0),
		},
		{
			ID: "rev-002", SupplierID: "sup-001", Author: "Paul M.", Country: "Belgique",
			Rating: 4, Comment: "Bonne qualité, délai un peu long sur la personnalisation.",
			CreatedAt: time.Now().AddDate(0, 0, -12),
		},
		{
			ID: "rev-003", SupplierID: "sup-002", Author: "Lucas M.", Country: "France",
			Rating: 4, Comment: "Coton conforme à l'échantillon.",
			CreatedAt: time.Now().AddDate(0, 0, -20),
		},
		{
			ID: "rev-004", SupplierID: "sup-003", Author: "Anonyme", Country: "France",
			Rating: 1, Comment: "Fournisseur catastrophique, à fuir, outillage rouillé à la réception.",
			CreatedAt: time.Now().AddDate(0, 0, -3),
		},
	}
}
