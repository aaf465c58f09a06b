package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"
	"chinetonusine-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateCollaborationInput struct {
	Status string `json:"status" binding:"required,oneof=active completed declined"`
}

// influencerScope reads the authenticated user id, which doubles as the
// influencer id for influencer accounts.
func influencerScope(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	idStr, _ := userID.(string)
	if !exists || idStr == "" {
		utils.RespondWithError(c, http.StatusForbidden, "No influencer scope on this account")
		return "", false
	}
	return idStr, true
}

// GetCollaborations lists the influencer's collaborations, optionally
// filtered with ?status=.
func GetCollaborations(c *gin.Context) {
	influencerID, ok := influencerScope(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status != "" && !models.ValidCollabStatus(status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown collaboration status")
		return
	}

	c.JSON(http.StatusOK, repositories.Collaborations.ListByInfluencer(influencerID, status))
}

// UpdateCollaborationStatus lets the influencer accept, decline or close
// one of their collaborations.
func UpdateCollaborationStatus(c *gin.Context) {
	influencerID, ok := influencerScope(c)
	if !ok {
		return
	}

	var input UpdateCollaborationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	collabID := c.Param("id")
	owned := false
	for _, collab := range repositories.Collaborations.ListByInfluencer(influencerID, "") {
		if collab.ID == collabID {
			owned = true
			break
		}
	}
	if !owned {
		utils.RespondWithError(c, http.StatusNotFound, "Collaboration not found")
		return
	}

	collab, err := repositories.Collaborations.UpdateStatus(collabID, input.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Collaboration not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not update collaboration")
		return
	}

	c.JSON(http.StatusOK, collab)
}

// GetReferral returns the influencer's referral code and performance.
func GetReferral(c *gin.Context) {
	influencerID, ok := influencerScope(c)
	if !ok {
		return
	}

	referral, err := repositories.Collaborations.ReferralFor(influencerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "No referral program for this account")
		return
	}

	c.JSON(http.StatusOK, referral)
}

// starLevel maps cumulative earnings to a loyalty tier.
func starLevel(earnings float64) string {
	switch {
	case earnings >= 5000:
		return "gold"
	case earnings >= 1000:
		return "silver"
	default:
		return "bronze"
	}
}

// GetStars returns the influencer's current star level with the earnings
// thresholds of each tier.
func GetStars(c *gin.Context) {
	influencerID, ok := influencerScope(c)
	if !ok {
		return
	}

	var total float64
	for _, collab := range repositories.Collaborations.ListByInfluencer(influencerID, "") {
		total += collab.Earnings
	}
	if referral, err := repositories.Collaborations.ReferralFor(influencerID); err == nil {
		total += referral.Earnings
	}

	c.JSON(http.StatusOK, gin.H{
		"level":    starLevel(total),
		"earnings": total,
		"tiers": []gin.H{
			{"level": "bronze", "minEarnings": 0},
			{"level": "silver", "minEarnings": 1000},
			{"level": "gold", "minEarnings": 5000},
		},
	})
}

// GetInfluencerStats aggregates earnings across collaborations and the
// referral program, with the resulting star level.
func GetInfluencerStats(c *gin.Context) {
	influencerID, ok := influencerScope(c)
	if !ok {
		return
	}

	collabs := repositories.Collaborations.ListByInfluencer(influencerID, "")

	var collabEarnings float64
	active := 0
	completed := 0
	for _, collab := range collabs {
		collabEarnings += collab.Earnings
		switch collab.Status {
		case models.CollabActive:
			active++
		case models.CollabCompleted:
			completed++
		}
	}

	var referralEarnings, pendingEarnings float64
	if referral, err := repositories.Collaborations.ReferralFor(influencerID); err == nil {
		referralEarnings = referral.Earnings
		pendingEarnings = referral.PendingEarnings
	}

	total := collabEarnings + referralEarnings
	c.JSON(http.StatusOK, gin.H{
		"totalCollaborations":     len(collabs),
		"activeCollaborations":    active,
		"completedCollaborations": completed,
		"collaborationEarnings":   collabEarnings,
		"referralEarnings":        referralEarnings,
		"pendingEarnings":         pendingEarnings,
		"totalEarnings":           total,
		"starLevel":               starLevel(total),
	})
}

// SearchSuppliers lets influencers browse active suppliers to pitch,
// with q, country and minRating filters.
func SearchSuppliers(c *gin.Context) {
	minRating := 0.0
	if raw := c.Query("minRating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "minRating must be between 0 and 5")
			return
		}
		minRating = parsed
	}

	c.JSON(http.StatusOK, repositories.Suppliers.List(repositories.SupplierFilter{
		Status:    models.SupplierActive,
		Query:     c.Query("q"),
		Country:   c.Query("country"),
		MinRating: minRating,
	}))
}
