package handlers

import (
	"net/http"

	"lifevibes/internal/application/usecase"
	"lifevibes/internal/infrastructure/ai"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	coachUC *usecase.CoachUseCase
}

func NewCoachHandler(uc *usecase.CoachUseCase) *CoachHandler {
	return &CoachHandler{coachUC: uc}
}

// POST /api/v1/coach/chat
func (h *CoachHandler) Chat(c *gin.Context) {
	userID := c.GetString("userId")
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.coachUC.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// POST /api/v1/avatar/manifesto
func (h *CoachHandler) GenerateManifesto(c *gin.Context) {
	userID := c.GetString("userId")
	var req struct {
		Usuario    string `json:"usuario" binding:"required"`
		Valores    string `json:"valores" binding:"required"`
		Proposito  string `json:"proposito" binding:"required"`
		Superpoder string `json:"superpoder" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	manifesto, err := h.coachUC.GenerateManifesto(c.Request.Context(), userID, ai.ManifestoInput{
		Usuario:    req.Usuario,
		Valores:    req.Valores,
		Proposito:  req.Proposito,
		Superpoder: req.Superpoder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"manifesto": manifesto})
}
