package handlers

import (
	"net/http"

	"lifevibes/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC *usecase.MatchUseCase
}

func NewMatchHandler(uc *usecase.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUC: uc}
}

// POST /api/v1/match/calculate
func (h *MatchHandler) Calculate(c *gin.Context) {
	userID := c.GetString("userId")
	var req struct {
		TargetUserID string `json:"targetUserId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.matchUC.Calculate(c.Request.Context(), userID, req.TargetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
