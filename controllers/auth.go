package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"chinetonusine-backend/config"
	"chinetonusine-backend/models"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Role       string `json:"role" binding:"required,oneof=supplier influencer"`
	SupplierID string `json:"supplierId"`
	Language   string `json:"language" binding:"omitempty,oneof=fr en zh"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user account. Admin accounts are provisioned out of
// band, not through this endpoint.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Role == models.RoleSupplier && input.SupplierID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Supplier accounts require a supplierId")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Check if email already exists
	var existingUser models.User
	result := config.DB.Where("email = ?", email).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:      email,
		Password:   input.Password, // Hashed in BeforeCreate hook
		Name:       input.Name,
		Phone:      input.Phone,
		Role:       input.Role,
		SupplierID: input.SupplierID,
		Language:   input.Language,
		IsActive:   true,
	}
	if newUser.Language == "" {
		newUser.Language = "fr"
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role, newUser.SupplierID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	setTokenCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":         newUser.ID,
			"email":      newUser.Email,
			"name":       newUser.Name,
			"role":       newUser.Role,
			"supplierId": newUser.SupplierID,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account disabled")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role, user.SupplierID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	setTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"supplierId": user.SupplierID,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"supplierId": user.SupplierID,
			"language":   user.Language,
		},
		"permissions": gin.H{
			"canManageSuppliers":     user.HasPermission(models.PermManageSuppliers),
			"canModerateContent":     user.HasPermission(models.PermModerateContent),
			"canViewReports":         user.HasPermission(models.PermViewReports),
			"canEditSupplierProfile": user.CanEditSupplierProfile(user.SupplierID),
			"canManageBusinessCards": user.CanManageBusinessCards(user.SupplierID),
		},
	})
}

func setTokenCookie(c *gin.Context, token string) {
	maxAge := utils.TokenExpiryHours() * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)
}
