package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/teams_slackbot/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	teamHandler *handler.TeamHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", healthHandler.Check)

	// Slack slash commands
	v1 := r.Group("/v1")
	v1.POST("/commands/teams/:command", teamHandler.HandleCommand)

	return r
}
