package controllers

import (
	"net/http"
	"sort"
	"time"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"

	"github.com/gin-gonic/gin"
)

type SupplierRevenue struct {
	SupplierID   string  `json:"supplierId"`
	SupplierName string  `json:"supplierName"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
}

// GetAdminReports aggregates the platform-wide figures for the admin
// reports page: gross merchandise volume, order status breakdown, month on
// month growth and the top suppliers by revenue.
func GetAdminReports(c *gin.Context) {
	orders := repositories.Orders.List(repositories.OrderFilter{})

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfMonth.AddDate(0, -1, 0)

	var gmv, monthRevenue, lastMonthRevenue float64
	statusCounts := map[string]int{}
	bySupplier := map[string]*SupplierRevenue{}

	for _, o := range orders {
		statusCounts[o.Status]++
		if o.Status == models.OrderCancelled {
			continue
		}
		gmv += o.Total

		if !o.CreatedAt.Before(firstOfMonth) {
			monthRevenue += o.Total
		} else if !o.CreatedAt.Before(firstOfLastMonth) {
			lastMonthRevenue += o.Total
		}

		entry, ok := bySupplier[o.SupplierID]
		if !ok {
			entry = &SupplierRevenue{SupplierID: o.SupplierID, SupplierName: o.SupplierName}
			bySupplier[o.SupplierID] = entry
		}
		entry.Orders++
		entry.Revenue += o.Total
	}

	topSuppliers := make([]SupplierRevenue, 0, len(bySupplier))
	for _, entry := range bySupplier {
		topSuppliers = append(topSuppliers, *entry)
	}
	sort.Slice(topSuppliers, func(i, j int) bool {
		return topSuppliers[i].Revenue > topSuppliers[j].Revenue
	})
	if len(topSuppliers) > 5 {
		topSuppliers = topSuppliers[:5]
	}

	avgOrderValue := 0.0
	if settled := len(orders) - statusCounts[models.OrderCancelled]; settled > 0 {
		avgOrderValue = gmv / float64(settled)
	}

	c.JSON(http.StatusOK, gin.H{
		"gmv":              gmv,
		"monthRevenue":     monthRevenue,
		"lastMonthRevenue": lastMonthRevenue,
		"monthGrowth":      growthPercentage(monthRevenue, lastMonthRevenue),
		"avgOrderValue":    avgOrderValue,
		"ordersByStatus":   statusCounts,
		"topSuppliers":     topSuppliers,
	})
}

func growthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
