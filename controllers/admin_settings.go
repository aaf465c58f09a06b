package controllers

import (
	"net/http"

	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateSettingsInput struct {
	MaintenanceMode      *bool    `json:"maintenanceMode"`
	AutoApproveSuppliers *bool    `json:"autoApproveSuppliers"`
	CommissionRate       *float64 `json:"commissionRate" binding:"omitempty,gte=0,lte=1"`
	SupportEmail         *string  `json:"supportEmail" binding:"omitempty,email"`
	DefaultLanguage      *string  `json:"defaultLanguage" binding:"omitempty,oneof=fr en zh"`
}

// GetPlatformSettings returns the platform configuration
func GetPlatformSettings(c *gin.Context) {
	c.JSON(http.StatusOK, repositories.Settings.Get())
}

// UpdatePlatformSettings patches the platform configuration
func UpdatePlatformSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updated := repositories.Settings.Update(repositories.SettingsPatch{
		MaintenanceMode:      input.MaintenanceMode,
		AutoApproveSuppliers: input.AutoApproveSuppliers,
		CommissionRate:       input.CommissionRate,
		SupportEmail:         input.SupportEmail,
		DefaultLanguage:      input.DefaultLanguage,
	})

	c.JSON(http.StatusOK, updated)
}
