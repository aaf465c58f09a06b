package controllers

import (
	"errors"
	"net/http"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReplyInput struct {
	Body string `json:"body" binding:"required"`
}

// ownsThread reports whether threadID belongs to the supplier's inbox.
func ownsThread(supplierID, threadID string) bool {
	for _, t := range repositories.Messages.Threads(supplierID) {
		if t.ID == threadID {
			return true
		}
	}
	return false
}

// GetSupplierThreads lists the supplier's message threads, most recently
// active first.
func GetSupplierThreads(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, repositories.Messages.Threads(supplierID))
}

// GetThreadMessages returns the messages of one thread and marks it read.
func GetThreadMessages(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	threadID := c.Param("id")
	if !ownsThread(supplierID, threadID) {
		utils.RespondWithError(c, http.StatusNotFound, "Thread not found")
		return
	}

	messages, err := repositories.Messages.ThreadMessages(threadID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Thread not found")
		return
	}
	if err := repositories.Messages.MarkThreadRead(threadID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not mark thread read")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ReplyToThread appends a supplier message to a thread
func ReplyToThread(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	var input ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	threadID := c.Param("id")
	if !ownsThread(supplierID, threadID) {
		utils.RespondWithError(c, http.StatusNotFound, "Thread not found")
		return
	}

	message, err := repositories.Messages.Reply(threadID, input.Body)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Thread not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not send reply")
		return
	}

	c.JSON(http.StatusCreated, message)
}
