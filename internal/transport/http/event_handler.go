package handlers

import (
	"crypto/subtle"
	"net/http"

	"lifevibes/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

// EventHandler receives webhooks from the identity provider. There is no
// response channel back to a user; failures surface as 5xx so the provider
// redelivers.
type EventHandler struct {
	profileUC   *usecase.ProfileUseCase
	eventSecret string
}

func NewEventHandler(uc *usecase.ProfileUseCase, eventSecret string) *EventHandler {
	return &EventHandler{profileUC: uc, eventSecret: eventSecret}
}

// POST /api/v1/events/user-created
func (h *EventHandler) UserCreated(c *gin.Context) {
	secret := c.GetHeader("X-Event-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.eventSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid event secret"})
		return
	}

	var req struct {
		UserID      string `json:"userId" binding:"required"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profileUC.Bootstrap(c.Request.Context(), req.UserID, req.Email, req.DisplayName, req.PhotoURL); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
