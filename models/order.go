package models

import "time"

// Order statuses, in rough lifecycle order.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`

	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`

	BuyerName    string `json:"buyerName"`
	BuyerCompany string `json:"buyerCompany"`
	BuyerCountry string `json:"buyerCountry"`

	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"` // 'unpaid', 'partial' or 'paid'

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
