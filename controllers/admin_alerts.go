package controllers

import (
	"net/http"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateAlertInput struct {
	Severity string `json:"severity" binding:"required,oneof=info warning critical"`
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// GetAdminAlerts lists platform alerts, newest first. Pass unread=true to
// only get unread ones.
func GetAdminAlerts(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	c.JSON(http.StatusOK, repositories.Alerts.List(unreadOnly))
}

// CreateAdminAlert manually raises a platform alert
func CreateAdminAlert(c *gin.Context) {
	var input CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	alert := repositories.Alerts.Add(input.Severity, input.Category, input.Title, input.Message, "manual")
	c.JSON(http.StatusCreated, alert)
}

// MarkAlertRead marks one alert as read
func MarkAlertRead(c *gin.Context) {
	alert, err := repositories.Alerts.MarkRead(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Alert not found")
		return
	}
	c.JSON(http.StatusOK, alert)
}

// MarkAllAlertsRead marks every alert as read
func MarkAllAlertsRead(c *gin.Context) {
	count := repositories.Alerts.MarkAllRead()
	c.JSON(http.StatusOK, gin.H{"marked": count})
}
