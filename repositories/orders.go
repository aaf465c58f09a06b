package repositories

import (
	"fmt"
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type OrderFilter struct {
	Query      string
	Status     string
	SupplierID string
	MinTotal   float64
}

type OrdersRepository interface {
	List(filter OrderFilter) []models.Order
	Get(id string) (*models.Order, error)
	UpdateStatus(id, status string) (*models.Order, error)
}

// Orders is the process-wide order book.
var Orders OrdersRepository = &memoryOrders{orders: seedOrders()}

type memoryOrders struct {
	mu     sync.Mutex
	orders []models.Order
}

func (r *memoryOrders) List(filter OrderFilter) []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Order
	for _, o := range r.orders {
		if filter.SupplierID != "" && o.SupplierID != filter.SupplierID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.MinTotal > 0 && o.Total < filter.MinTotal {
			continue
		}
		if !matches(filter.Query, o.OrderNumber, o.BuyerName, o.BuyerCompany, o.ProductName, o.SupplierName) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (r *memoryOrders) Get(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryOrders) UpdateStatus(id, status string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			updated := r.orders[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func seedOrders() []models.Order {
	now := time.Now()
	mk := func(n int, supID, supName, buyer, company, country, product string, qty int, unit float64, status, payment string, daysAgo int) models.Order {
		created := now.AddDate(0, 0, -daysAgo)
		return models.Order{
			ID:            fmt.Sprintf("ord-%03d", n),
			OrderNumber:   fmt.Sprintf("CTU-2025-%04d", 1000+n),
			SupplierID:    supID,
			SupplierName:  supName,
			BuyerName:     buyer,
			BuyerCompany:  company,
			BuyerCountry:  country,
			ProductName:   product,
			Quantity:      qty,
			UnitPrice:     unit,
			Total:         float64(qty) * unit,
			Currency:      "EUR",
			Status:        status,
			PaymentStatus: payment,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
	}
	return []models.Order{
		mk(1, "sup-001", "Shenzhen Electro Manufacture Co.", "Marie Dubois", "TechImport SARL", "France", "Chargeurs USB-C 65W", 500, 4.20, models.OrderDelivered, "paid", 32),
		mk(2, "sup-001", "Shenzhen Electro Manufacture Co.", "Paul Martin", "Distrimax", "Belgique", "Batteries externes 20000mAh", 200, 7.80, models.OrderShipped, "paid", 9),
		mk(3, "sup-001", "Shenzhen Electro Manufacture Co.", "Sophie Bernard", "NovaRetail", "France", "Écouteurs sans fil", 1000, 3.10, models.OrderPending, "unpaid", 2),
		mk(4, "sup-002", "Guangzhou Textile Works", "Lucas Moreau", "ModeExpress", "France", "T-shirts coton bio", 2000, 1.95, models.OrderConfirmed, "partial", 5),
		mk(5, "sup-002", "Guangzhou Textile Works", "Emma Petit", "Atelier Nord", "Suisse", "Sacs cabas personnalisés", 300, 2.60, models.OrderCancelled, "unpaid", 21),
		mk(6, "sup-003", "Ningbo Precision Tools", "Hugo Lefevre", "BricoPro", "France", "Jeux de clés hexagonales", 800, 2.30, models.OrderPending, "unpaid", 11),
	}
}
