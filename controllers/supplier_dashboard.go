package controllers

import (
	"net/http"
	"time"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecentOrder struct {
	OrderNumber string  `json:"orderNumber"`
	Buyer       string  `json:"buyer"`
	Product     string  `json:"product"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	Placed      string  `json:"placed"` // "Today", "Yesterday", "N days ago"
}

// supplierScope reads the supplier id from the token. Routes using it are
// guarded by RequireRole(supplier), so a missing scope is a token defect.
func supplierScope(c *gin.Context) (string, bool) {
	supplierID, exists := c.Get("supplierId")
	supplierStr, _ := supplierID.(string)
	if !exists || supplierStr == "" {
		utils.RespondWithError(c, http.StatusForbidden, "No supplier scope on this account")
		return "", false
	}
	return supplierStr, true
}

// GetSupplierDashboard builds the supplier home page overview
func GetSupplierDashboard(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	orders := repositories.Orders.List(repositories.OrderFilter{SupplierID: supplierID})

	var revenue float64
	pendingOrders := 0
	for _, o := range orders {
		if o.Status != models.OrderCancelled {
			revenue += o.Total
		}
		if o.Status == models.OrderPending {
			pendingOrders++
		}
	}

	unreadMessages := 0
	for _, thread := range repositories.Messages.Threads(supplierID) {
		unreadMessages += thread.UnreadCount
	}

	reviews := repositories.Reviews.ListBySupplier(supplierID, 0)
	avgRating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avgRating = float64(sum) / float64(len(reviews))
	}

	now := time.Now()
	recent := make([]RecentOrder, 0, 3)
	// orders are seeded oldest-first; walk backwards for the latest ones
	for i := len(orders) - 1; i >= 0 && len(recent) < 3; i-- {
		o := orders[i]
		recent = append(recent, RecentOrder{
			OrderNumber: o.OrderNumber,
			Buyer:       o.BuyerCompany,
			Product:     o.ProductName,
			Total:       o.Total,
			Status:      o.Status,
			Placed:      utils.RelativeDayLabel(o.CreatedAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":    len(orders),
		"pendingOrders":  pendingOrders,
		"totalRevenue":   revenue,
		"unreadMessages": unreadMessages,
		"averageRating":  avgRating,
		"reviewCount":    len(reviews),
		"recentOrders":   recent,
	})
}

// GetSupplierOrders lists the supplier's own orders with q and status
// filters.
func GetSupplierOrders(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, repositories.Orders.List(repositories.OrderFilter{
		SupplierID: supplierID,
		Query:      c.Query("q"),
		Status:     c.Query("status"),
	}))
}
