package controllers

import (
	"net/http"
	"strconv"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// GetAdminOrders lists every order on the platform, filtered by the query
// parameters q, status and minTotal.
func GetAdminOrders(c *gin.Context) {
	filter := repositories.OrderFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}
	if raw := c.Query("minTotal"); raw != "" {
		minTotal, err := strconv.ParseFloat(raw, 64)
		if err != nil || minTotal < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "minTotal must be a positive number")
			return
		}
		filter.MinTotal = minTotal
	}

	c.JSON(http.StatusOK, repositories.Orders.List(filter))
}

// GetAdminOrder retrieves one order by id
func GetAdminOrder(c *gin.Context) {
	order, err := repositories.Orders.Get(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateAdminOrderStatus moves an order to a new status
func UpdateAdminOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := repositories.Orders.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, order)
}
