package models

import "time"

// Platform alert severities.
const (
	AlertInfo     = "info"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

type Alert struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Category string `json:"category"` // 'documents', 'orders', 'suppliers', 'system'

	Title   string `json:"title"`
	Message string `json:"message"`
	Source  string `json:"source"` // 'scheduler' or 'manual'

	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
