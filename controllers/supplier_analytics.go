package controllers

import (
	"net/http"
	"sort"
	"time"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"

	"github.com/gin-gonic/gin"
)

type ProductSales struct {
	Product  string  `json:"product"`
	Orders   int     `json:"orders"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GetSupplierAnalytics computes sales analytics over the supplier's own
// orders: monthly revenue with growth against the previous month, the
// order status breakdown and the best selling products.
func GetSupplierAnalytics(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	orders := repositories.Orders.List(repositories.OrderFilter{SupplierID: supplierID})

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var totalRevenue, monthRevenue, lastMonthRevenue float64
	statusCounts := map[string]int{}
	byProduct := map[string]*ProductSales{}

	for _, o := range orders {
		statusCounts[o.Status]++
		if o.Status == models.OrderCancelled {
			continue
		}
		totalRevenue += o.Total
		if o.CreatedAt.After(monthStart) {
			monthRevenue += o.Total
		} else if o.CreatedAt.After(lastMonthStart) {
			lastMonthRevenue += o.Total
		}

		p, exists := byProduct[o.ProductName]
		if !exists {
			p = &ProductSales{Product: o.ProductName}
			byProduct[o.ProductName] = p
		}
		p.Orders++
		p.Quantity += o.Quantity
		p.Revenue += o.Total
	}

	topProducts := make([]ProductSales, 0, len(byProduct))
	for _, p := range byProduct {
		topProducts = append(topProducts, *p)
	}
	sort.Slice(topProducts, func(i, j int) bool {
		return topProducts[i].Revenue > topProducts[j].Revenue
	})
	if len(topProducts) > 5 {
		topProducts = topProducts[:5]
	}

	avgOrderValue := 0.0
	delivered := statusCounts[models.OrderDelivered]
	nonCancelled := len(orders) - statusCounts[models.OrderCancelled]
	if nonCancelled > 0 {
		avgOrderValue = totalRevenue / float64(nonCancelled)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":     totalRevenue,
		"monthRevenue":     monthRevenue,
		"lastMonthRevenue": lastMonthRevenue,
		"revenueGrowth":    growthPercentage(monthRevenue, lastMonthRevenue),
		"avgOrderValue":    avgOrderValue,
		"deliveredOrders":  delivered,
		"statusCounts":     statusCounts,
		"topProducts":      topProducts,
	})
}
