package controllers

import (
	"net/http"

	"chinetonusine-backend/cardtemplate"
	"chinetonusine-backend/config"
	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetSupplierProfile serves the public supplier page: profile, recent
// reviews and the default public business card when one exists. No auth.
func GetSupplierProfile(c *gin.Context) {
	supplier, err := repositories.Suppliers.Get(c.Param("id"))
	if err != nil || supplier.Status != models.SupplierActive {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	reviews := repositories.Reviews.ListBySupplier(supplier.ID, 0)
	if len(reviews) > 3 {
		reviews = reviews[:3]
	}

	response := gin.H{
		"supplier": supplier,
		"reviews":  reviews,
	}

	for _, card := range config.Cards.GetSupplierCards(supplier.ID) {
		if card.IsDefault && card.IsPublic {
			response["businessCard"] = card
			response["businessCardStyle"] = cardtemplate.Render(card.Data, 1)
			break
		}
	}

	c.JSON(http.StatusOK, response)
}
