package controllers

import (
	"net/http"
	"strconv"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateSupplierStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active pending suspended"`
}

// GetAdminSuppliers lists suppliers with optional q, status, country,
// category and minRating filters.
func GetAdminSuppliers(c *gin.Context) {
	filter := repositories.SupplierFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Country:  c.Query("country"),
		Category: c.Query("category"),
	}
	if raw := c.Query("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "minRating must be between 0 and 5")
			return
		}
		filter.MinRating = minRating
	}

	c.JSON(http.StatusOK, repositories.Suppliers.List(filter))
}

// GetAdminSupplier retrieves one supplier by id
func GetAdminSupplier(c *gin.Context) {
	supplier, err := repositories.Suppliers.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// UpdateAdminSupplierStatus activates, suspends or re-queues a supplier
func UpdateAdminSupplierStatus(c *gin.Context) {
	var input UpdateSupplierStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	supplier, err := repositories.Suppliers.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	c.JSON(http.StatusOK, supplier)
}
