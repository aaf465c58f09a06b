package controllers

import (
	"net/http"

	"chinetonusine-backend/config"
	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"

	"github.com/gin-gonic/gin"
)

// GetDatabaseOverview reports per-collection record counts for the admin
// database page. Users come from Postgres; everything else from the
// in-memory repositories.
func GetDatabaseOverview(c *gin.Context) {
	var userCount int64
	config.DB.Model(&models.User{}).Count(&userCount)

	cardCount := 0
	for _, supplier := range repositories.Suppliers.List(repositories.SupplierFilter{}) {
		cardCount += len(config.Cards.GetSupplierCards(supplier.ID))
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": gin.H{
			"users":         userCount,
			"suppliers":     len(repositories.Suppliers.List(repositories.SupplierFilter{})),
			"orders":        len(repositories.Orders.List(repositories.OrderFilter{})),
			"documents":     len(repositories.Documents.List(repositories.DocumentFilter{})),
			"moderation":    len(repositories.Moderation.List("")),
			"alerts":        len(repositories.Alerts.List(false)),
			"businessCards": cardCount,
		},
	})
}
