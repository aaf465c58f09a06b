package models

import "time"

// Supplier account statuses.
const (
	SupplierActive    = "active"
	SupplierPending   = "pending"
	SupplierSuspended = "suspended"
)

// ValidSupplierStatus reports whether s is a known supplier status.
func ValidSupplierStatus(s string) bool {
	return s == SupplierActive || s == SupplierPending || s == SupplierSuspended
}

type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Country  string `json:"country"`
	City     string `json:"city"`
	Category string `json:"category"`

	Description string `json:"description"`
	LogoURL     string `json:"logoUrl,omitempty"`

	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Website      string `json:"website,omitempty"`

	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	ProductCount int     `json:"productCount"`

	EstablishedYear int    `json:"establishedYear"`
	Verified        bool   `json:"verified"`
	Status          string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
