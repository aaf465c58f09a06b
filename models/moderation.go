package models

import "time"

// Moderation queue statuses.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

type ModerationItem struct {
	ID string `json:"id"`

	ContentType string `json:"contentType"` // 'product', 'review', 'profile' or 'message'
	ContentID   string `json:"contentId"`
	SupplierID  string `json:"supplierId,omitempty"`

	ReportedBy string `json:"reportedBy"`
	Reason     string `json:"reason"`
	Excerpt    string `json:"excerpt"`

	Status string `json:"status"`

	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}
