package controllers

import (
	"net/http"

	"chinetonusine-backend/repositories"

	"github.com/gin-gonic/gin"
)

// GetSupplierCustomers lists the supplier's customer book, optionally
// filtered with ?q= on name, company and country.
func GetSupplierCustomers(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, repositories.Customers.ListBySupplier(supplierID, c.Query("q")))
}
