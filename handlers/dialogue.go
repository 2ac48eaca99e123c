package handlers

import (
	"net/http"

	"aerovoice/models"
	"aerovoice/services/dialogue"
	"aerovoice/services/profile"
	"aerovoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DialogueHandler exposes the conversation engine over HTTP.
type DialogueHandler struct {
	Engine   dialogue.DialogueEngine
	Profiles profile.ProfileService
	Logger   *zap.Logger
}

func NewDialogueHandler(engine dialogue.DialogueEngine, profiles profile.ProfileService, logger *zap.Logger) *DialogueHandler {
	return &DialogueHandler{Engine: engine, Profiles: profiles, Logger: logger}
}

type processRequest struct {
	Input     string `json:"input"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

type stepContext struct {
	Step     models.Step                 `json:"step"`
	StepName string                      `json:"step_name"`
	Context  *models.ConversationContext `json:"context"`
}

type processResponse struct {
	*models.DialogueResult
	Context *stepContext `json:"context,omitempty"`
}

// ProcessHandler runs one utterance through the dialogue engine, creating the
// session on first contact and seeding it from an identified profile.
func (h *DialogueHandler) ProcessHandler(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid process request", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	var userProfile *models.UserProfile
	if req.UserID != "" {
		p, err := h.Profiles.GetByID(c.Request.Context(), req.UserID)
		if err != nil {
			h.Logger.Warn("Profile lookup failed", zap.String("userId", req.UserID), zap.Error(err))
		} else {
			userProfile = p
		}
	}

	result, err := h.Engine.ProcessInput(c.Request.Context(), req.SessionID, req.Input, userProfile)
	if err != nil {
		h.Logger.Error("Dialogue processing failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process input", err.Error())
		return
	}

	resp := processResponse{DialogueResult: result}
	if status, err := h.Engine.Status(c.Request.Context(), req.SessionID); err == nil && status.Active {
		resp.Context = &stepContext{
			Step:     status.Context.Step,
			StepName: status.Context.Step.String(),
			Context:  status.Context,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// StatusHandler reports whether a session exists and exposes its context.
// Unknown sessions are inactive, not errors.
func (h *DialogueHandler) StatusHandler(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")
	status, err := h.Engine.Status(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	if !status.Active {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active": true,
		"context": stepContext{
			Step:     status.Context.Step,
			StepName: status.Context.Step.String(),
			Context:  status.Context,
		},
	})
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

// ResetHandler destroys a session. Resetting an unknown session succeeds.
func (h *DialogueHandler) ResetHandler(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reset request", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}
	if err := h.Engine.Reset(c.Request.Context(), req.SessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset", "session_id": req.SessionID})
}

// SaveProfileHandler persists the current session's contact and preference
// slots as a reusable profile.
func (h *DialogueHandler) SaveProfileHandler(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid save-profile request", err.Error())
		return
	}

	status, err := h.Engine.Status(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	if !status.Active {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Session not found"})
		return
	}

	userID, err := h.Profiles.SaveFromContext(c.Request.Context(), status.Context)
	if err != nil {
		h.Logger.Error("Failed to save profile", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "saved",
		"user_id": userID,
		"message": "Profile saved for future bookings",
	})
}
