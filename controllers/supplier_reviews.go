package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewReplyInput struct {
	Reply string `json:"reply" binding:"required"`
}

// GetSupplierReviews lists reviews left on the supplier, optionally
// filtered with ?minRating=.
func GetSupplierReviews(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	minRating := 0
	if raw := c.Query("minRating"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "minRating must be between 1 and 5")
			return
		}
		minRating = parsed
	}

	c.JSON(http.StatusOK, repositories.Reviews.ListBySupplier(supplierID, minRating))
}

// ReplyToReview records the supplier's public reply to a review.
func ReplyToReview(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	var input ReviewReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	reviewID := c.Param("id")
	owned := false
	for _, r := range repositories.Reviews.ListBySupplier(supplierID, 0) {
		if r.ID == reviewID {
			owned = true
			break
		}
	}
	if !owned {
		utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		return
	}

	review, err := repositories.Reviews.Reply(reviewID, input.Reply)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not save reply")
		return
	}

	c.JSON(http.StatusOK, review)
}
