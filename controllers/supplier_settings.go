package controllers

import (
	"errors"
	"net/http"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Description  *string `json:"description"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website" binding:"omitempty,url"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// GetSupplierSettings returns the supplier's own profile record.
func GetSupplierSettings(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	supplier, err := repositories.Suppliers.Get(supplierID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// UpdateSupplierSettings patches the editable fields of the supplier's
// profile. Omitted fields keep their current value.
func UpdateSupplierSettings(c *gin.Context) {
	supplierID, ok := supplierScope(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	supplier, err := repositories.Suppliers.UpdateProfile(supplierID, repositories.SupplierProfilePatch{
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		Phone:        input.Phone,
		Website:      input.Website,
		LogoURL:      input.LogoURL,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not update profile")
		return
	}

	c.JSON(http.StatusOK, supplier)
}
