package handlers

import (
	"net/http"

	"aerovoice/utils"

	"github.com/gin-gonic/gin"
)

type identifyRequest struct {
	VoiceSample string `json:"voice_sample"`
	TestPhone   string `json:"test_phone"`
}

// IdentifyHandler resolves a caller to a stored profile. The phone number
// stands in for the voice-identification pipeline.
func (h *DialogueHandler) IdentifyHandler(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid identify request", err.Error())
		return
	}

	p, err := h.Profiles.Identify(c.Request.Context(), req.TestPhone)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to identify caller", err.Error())
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, gin.H{"identified": false, "message": "New user - will collect details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"identified": true,
		"user_id":    p.UserID,
		"profile":    p,
		"message":    "Welcome back, " + p.Name + "! Your details are ready.",
	})
}

// GetProfileHandler returns a saved profile by user ID.
func (h *DialogueHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")
	p, err := h.Profiles.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", err.Error())
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"found": false, "message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "user_id": userID, "profile": p})
}
