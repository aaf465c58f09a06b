package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type CollaborationsRepository interface {
	ListByInfluencer(influencerID, status string) []models.Collaboration
	UpdateStatus(id, status string) (*models.Collaboration, error)
	ReferralFor(influencerID string) (*models.Referral, error)
}

// Collaborations tracks influencer campaigns and referral programs.
var Collaborations CollaborationsRepository = &memoryCollaborations{
	collabs:   seedCollaborations(),
	referrals: seedReferrals(),
}

type memoryCollaborations struct {
	mu        sync.Mutex
	collabs   []models.Collaboration
	referrals []models.Referral
}

func (r *memoryCollaborations) ListByInfluencer(influencerID, status string) []models.Collaboration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Collaboration
	for _, c := range r.collabs {
		if c.InfluencerID != influencerID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *memoryCollaborations) UpdateStatus(id, status string) (*models.Collaboration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.collabs {
		if r.collabs[i].ID == id {
			r.collabs[i].Status = status
			if status == models.CollabCompleted || status == models.CollabDeclined {
				now := time.Now()
				r.collabs[i].EndedAt = &now
			}
			updated := r.collabs[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCollaborations) ReferralFor(influencerID string) (*models.Referral, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ref := range r.referrals {
		if ref.InfluencerID == influencerID {
			found := ref
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func seedCollaborations() []models.Collaboration {
	return []models.Collaboration{
		{
			ID: "col-001", InfluencerID: "inf-001",
			SupplierID: "sup-001", SupplierName: "Shenzhen Electro Manufacture Co.",
			Campaign: "Lancement chargeurs GaN", Status: models.CollabActive,
			CommissionRate: 0.08, Earnings: 1240.50,
			StartedAt: time.Now().AddDate(0, -2, 0),
		},
		{
			ID: "col-002", InfluencerID: "inf-001",
			SupplierID: "sup-002", SupplierName: "Guangzhou Textile Works",
			Campaign: "Collection été", Status: models.CollabCompleted,
			CommissionRate: 0.05, Earnings: 860.00,
			StartedAt: time.Now().AddDate(0, -5, 0),
		},
		{
			ID: "col-003", InfluencerID: "inf-001",
			SupplierID: "sup-004", SupplierName: "Yiwu Gift & Packaging",
			Campaign: "Packaging fêtes", Status: models.CollabPending,
			CommissionRate: 0.10,
			StartedAt:      time.Now().AddDate(0, 0, -3),
		},
	}
}

func seedReferrals() []models.Referral {
	return []models.Referral{
		{
			InfluencerID: "inf-001", Code: "CTU-INF001",
			Clicks: 3480, Signups: 212,
			Earnings: 2100.50, PendingEarnings: 430.00,
		},
	}
}
