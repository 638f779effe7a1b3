package handlers

import (
	"time"

	"lifevibes/internal/infrastructure/security"
	"lifevibes/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	eventHandler *EventHandler,
	matchHandler *MatchHandler,
	questHandler *QuestHandler,
	coachHandler *CoachHandler,
	limiter *middleware.RateLimiter,
	tokens *security.TokenManager,
	frontendURL string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{frontendURL}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.POST("/events/user-created", eventHandler.UserCreated)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(tokens))
		{
			authed.POST("/match/calculate", matchHandler.Calculate)
			authed.POST("/quests/daily", questHandler.AssignDaily)
			authed.POST("/quests/validate", questHandler.ValidateCompletion)
			authed.POST("/coach/chat", limiter.Limit("coach_chat", 20, 1*time.Minute), coachHandler.Chat)
			authed.POST("/avatar/manifesto", limiter.Limit("manifesto", 5, 5*time.Minute), coachHandler.GenerateManifesto)
		}
	}

	return r
}
