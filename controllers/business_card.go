package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"chinetonusine-backend/cardstore"
	"chinetonusine-backend/cardtemplate"
	"chinetonusine-backend/config"
	"chinetonusine-backend/models"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCardInput defines the expected JSON structure for creating a card
type CreateCardInput struct {
	Name      string                  `json:"name" binding:"required"`
	Data      models.BusinessCardData `json:"data" binding:"required"`
	IsDefault bool                    `json:"isDefault"`
	IsPublic  bool                    `json:"isPublic"`
	Tags      []string                `json:"tags"`
}

// UpdateCardInput defines the expected JSON structure for a partial update
type UpdateCardInput struct {
	Name      *string                  `json:"name"`
	Data      *models.BusinessCardData `json:"data"`
	IsDefault *bool                    `json:"isDefault"`
	IsPublic  *bool                    `json:"isPublic"`
	Tags      *[]string                `json:"tags"`
}

type DuplicateCardInput struct {
	Name string `json:"name" binding:"required"`
}

// cardScope resolves which supplier's cards the caller may touch. Suppliers
// are locked to their own id; admins pick one with the supplierId query
// parameter.
func cardScope(c *gin.Context) (string, bool) {
	role, _ := c.Get("role")
	if role == models.RoleAdmin {
		supplierID := c.Query("supplierId")
		if supplierID == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "supplierId query parameter required")
			return "", false
		}
		return supplierID, true
	}

	supplierID, exists := c.Get("supplierId")
	supplierStr, _ := supplierID.(string)
	if !exists || supplierStr == "" {
		utils.RespondWithError(c, http.StatusForbidden, "No supplier scope on this account")
		return "", false
	}
	return supplierStr, true
}

// canTouchCard checks the caller owns the card (or is an admin).
func canTouchCard(c *gin.Context, card *models.SavedBusinessCard) bool {
	role, _ := c.Get("role")
	if role == models.RoleAdmin {
		return true
	}
	supplierID, _ := c.Get("supplierId")
	return supplierID == card.SupplierID
}

func validateCardData(data models.BusinessCardData) string {
	if !models.ValidTemplate(data.Template) {
		return "Unknown card template"
	}
	if !models.ValidSize(data.FontSize) || !models.ValidSize(data.LogoSize) {
		return "fontSize and logoSize must be small, medium or large"
	}
	for _, color := range []string{data.PrimaryColor, data.SecondaryColor, data.TextColor} {
		if color != "" && !utils.ValidateHexColor(color) {
			return "Colors must be hex values like #1e3a8a"
		}
	}
	return ""
}

// GetCards lists the scoped supplier's saved cards
func GetCards(c *gin.Context) {
	supplierID, ok := cardScope(c)
	if !ok {
		return
	}

	cards := config.Cards.GetSupplierCards(supplierID)
	if cards == nil {
		cards = []models.SavedBusinessCard{}
	}
	c.JSON(http.StatusOK, cards)
}

// GetCard retrieves a single card by id
func GetCard(c *gin.Context) {
	card, err := config.Cards.GetCard(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}
	if !canTouchCard(c, card) {
		utils.RespondWithError(c, http.StatusForbidden, "Card belongs to another supplier")
		return
	}
	c.JSON(http.StatusOK, card)
}

// CreateCard saves a new card for the scoped supplier
func CreateCard(c *gin.Context) {
	supplierID, ok := cardScope(c)
	if !ok {
		return
	}

	var input CreateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg := validateCardData(input.Data); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	card, err := config.Cards.SaveCard(cardstore.NewCard{
		Name:       input.Name,
		SupplierID: supplierID,
		Data:       input.Data,
		IsDefault:  input.IsDefault,
		IsPublic:   input.IsPublic,
		Tags:       input.Tags,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save card")
		return
	}

	c.JSON(http.StatusCreated, card)
}

// UpdateCard applies a partial update to an existing card
func UpdateCard(c *gin.Context) {
	card, err := config.Cards.GetCard(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}
	if !canTouchCard(c, card) {
		utils.RespondWithError(c, http.StatusForbidden, "Card belongs to another supplier")
		return
	}

	var input UpdateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Data != nil {
		if msg := validateCardData(*input.Data); msg != "" {
			utils.RespondWithError(c, http.StatusBadRequest, msg)
			return
		}
	}

	updated, err := config.Cards.UpdateCard(card.ID, cardstore.CardPatch{
		Name:      input.Name,
		Data:      input.Data,
		IsDefault: input.IsDefault,
		IsPublic:  input.IsPublic,
		Tags:      input.Tags,
	})
	if err != nil {
		if errors.Is(err, cardstore.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update card")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCard removes a card
func DeleteCard(c *gin.Context) {
	card, err := config.Cards.GetCard(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}
	if !canTouchCard(c, card) {
		utils.RespondWithError(c, http.StatusForbidden, "Card belongs to another supplier")
		return
	}

	removed, err := config.Cards.DeleteCard(card.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete card")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// DuplicateCard copies a card under a new name
func DuplicateCard(c *gin.Context) {
	card, err := config.Cards.GetCard(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}
	if !canTouchCard(c, card) {
		utils.RespondWithError(c, http.StatusForbidden, "Card belongs to another supplier")
		return
	}

	var input DuplicateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	duplicate, err := config.Cards.DuplicateCard(card.ID, input.Name)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to duplicate card")
		return
	}

	c.JSON(http.StatusCreated, duplicate)
}

// RegisterDownload bumps the card's download counter. The bump is
// best-effort: a storage failure is logged but still acknowledged.
func RegisterDownload(c *gin.Context) {
	registerCounter(c, config.Cards.IncrementDownloads, "downloads")
}

// RegisterShare bumps the card's share counter, same semantics as downloads.
func RegisterShare(c *gin.Context) {
	registerCounter(c, config.Cards.IncrementShares, "shares")
}

func registerCounter(c *gin.Context, bump func(string) error, counter string) {
	cardID := c.Param("id")
	if err := bump(cardID); err != nil {
		if errors.Is(err, cardstore.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Card not found")
			return
		}
		log.Printf("Failed to bump %s for card %s: %v", counter, cardID, err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Counted"})
}

// RenderCard returns the resolved visual style for a card
func RenderCard(c *gin.Context) {
	card, err := config.Cards.GetCard(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Card not found")
		return
	}
	if !canTouchCard(c, card) {
		utils.RespondWithError(c, http.StatusForbidden, "Card belongs to another supplier")
		return
	}

	scale := 1.0
	if raw := c.Query("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 || parsed > 10 {
			utils.RespondWithError(c, http.StatusBadRequest, "scale must be a number between 0 and 10")
			return
		}
		scale = parsed
	}

	c.JSON(http.StatusOK, cardtemplate.Render(card.Data, scale))
}
