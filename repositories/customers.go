package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type CustomersRepository interface {
	ListBySupplier(supplierID, query string) []models.Customer
}

// Customers holds each supplier's buyer book.
var Customers CustomersRepository = &memoryCustomers{customers: seedCustomers()}

type memoryCustomers struct {
	mu        sync.Mutex
	customers []models.Customer
}

func (r *memoryCustomers) ListBySupplier(supplierID, query string) []models.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Customer
	for _, c := range r.customers {
		if c.SupplierID != supplierID {
			continue
		}
		if !matches(query, c.Name, c.Company, c.Country, c.Email) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func seedCustomers() []models.Customer {
	lastOrder := func(daysAgo int) *time.Time {
		t := time.Now().AddDate(0, 0, -daysAgo)
		return &t
	}
	return []models.Customer{
		{
			ID: "cus-001", SupplierID: "sup-001", Name: "Marie Dubois", Company: "TechImport SARL",
			Country: "France", Email: "marie@techimport.example", Phone: "+33 6 12 34 56 78",
			TotalOrders: 8, TotalSpent: 14250.00, LastOrder: lastOrder(32),
			CreatedAt: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "cus-002", SupplierID: "sup-001", Name: "Paul Martin", Company: "Distrimax",
			Country: "Belgique", Email: "paul@distrimax.example", Phone: "+32 470 11 22 33",
			TotalOrders: 3, TotalSpent: 4680.00, LastOrder: lastOrder(9),
			CreatedAt: time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "cus-003", SupplierID: "sup-001", Name: "Sophie Bernard", Company: "NovaRetail",
			Country: "France", Email: "sophie@novaretail.example", Phone: "+33 7 98 76 54 32",
			TotalOrders: 1, TotalSpent: 3100.00, LastOrder: lastOrder(2),
			CreatedAt: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "cus-004", SupplierID: "sup-002", Name: "Lucas Moreau", Company: "ModeExpress",
			Country: "France", Email: "lucas@modeexpress.example", Phone: "+33 6 55 44 33 22",
			TotalOrders: 5, TotalSpent: 9400.00, LastOrder: lastOrder(5),
			CreatedAt: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
