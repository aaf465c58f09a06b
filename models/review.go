package models

import "time"

type Review struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`

	Author  string `json:"author"`
	Country string `json:"country"`
	Rating  int    `json:"rating"` // 1 to 5
	Comment string `json:"comment"`

	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
