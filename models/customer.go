package models

import "time"

// Customer is a buyer in a supplier's customer book.
type Customer struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`

	Name    string `json:"name"`
	Company string `json:"company"`
	Country string `json:"country"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`

	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`

	LastOrder *time.Time `json:"lastOrder,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
