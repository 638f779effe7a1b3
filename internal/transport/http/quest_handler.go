package handlers

import (
	"net/http"

	"lifevibes/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuestHandler struct {
	questUC *usecase.QuestUseCase
}

func NewQuestHandler(uc *usecase.QuestUseCase) *QuestHandler {
	return &QuestHandler{questUC: uc}
}

// POST /api/v1/quests/daily
func (h *QuestHandler) AssignDaily(c *gin.Context) {
	userID := c.GetString("userId")

	quest, err := h.questUC.AssignDaily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questId": quest.ID,
		"quest": gin.H{
			"title":       quest.Title,
			"description": quest.Description,
			"phase":       quest.Phase,
			"xpReward":    quest.XPReward,
			"date":        quest.Date,
			"status":      quest.Status,
		},
	})
}

// POST /api/v1/quests/validate
func (h *QuestHandler) ValidateCompletion(c *gin.Context) {
	userID := c.GetString("userId")
	var req struct {
		QuestID string `json:"questId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	questID, err := uuid.Parse(req.QuestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quest id"})
		return
	}

	result, err := h.questUC.ValidateCompletion(c.Request.Context(), userID, questID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"xpAwarded": result.Amount,
		"leveledUp": result.LeveledUp,
		"newLevel":  result.NewLevel,
	})
}
