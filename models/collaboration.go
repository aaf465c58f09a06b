package models

import "time"

// Collaboration statuses between an influencer and a supplier.
const (
	CollabPending   = "pending"
	CollabActive    = "active"
	CollabCompleted = "completed"
	CollabDeclined  = "declined"
)

// ValidCollabStatus reports whether s is a known collaboration status.
func ValidCollabStatus(s string) bool {
	switch s {
	case CollabPending, CollabActive, CollabCompleted, CollabDeclined:
		return true
	}
	return false
}

type Collaboration struct {
	ID           string `json:"id"`
	InfluencerID string `json:"influencerId"`

	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Campaign     string `json:"campaign"`

	Status         string  `json:"status"`
	CommissionRate float64 `json:"commissionRate"` // fraction of referred sales
	Earnings       float64 `json:"earnings"`

	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// Referral summarises an influencer's referral program performance.
type Referral struct {
	InfluencerID string `json:"influencerId"`
	Code         string `json:"code"`

	Clicks  int `json:"clicks"`
	Signups int `json:"signups"`

	Earnings        float64 `json:"earnings"`
	PendingEarnings float64 `json:"pendingEarnings"`
}
