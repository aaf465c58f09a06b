package controllers

import (
	"net/http"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type ResolveModerationInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// GetModerationQueue lists reported content, optionally by status
func GetModerationQueue(c *gin.Context) {
	c.JSON(http.StatusOK, repositories.Moderation.List(c.Query("status")))
}

// ResolveModerationItem approves or rejects a reported item
func ResolveModerationItem(c *gin.Context) {
	var input ResolveModerationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := repositories.Moderation.Resolve(c.Param("id"), input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Moderation item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}
