package controllers

import (
	"net/http"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewDocumentInput struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
	Reason string `json:"reason"`
}

// GetAdminDocuments lists verification documents, filtered by status, type
// and supplierId.
func GetAdminDocuments(c *gin.Context) {
	filter := repositories.DocumentFilter{
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		SupplierID: c.Query("supplierId"),
	}
	c.JSON(http.StatusOK, repositories.Documents.List(filter))
}

// ReviewAdminDocument verifies or rejects a submitted document. Rejections
// must carry a reason for the supplier.
func ReviewAdminDocument(c *gin.Context) {
	var input ReviewDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Status == models.DocRejected && input.Reason == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "A reason is required when rejecting a document")
		return
	}
	if input.Status == models.DocVerified {
		input.Reason = ""
	}

	document, err := repositories.Documents.Review(c.Param("id"), input.Status, input.Reason)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, document)
}
