package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes, all public and read-only
	v1 := router.Group("/api/v1")
	{
		v1.GET("/proposals", handler.ListProposals)
		v1.GET("/proposals/:id", handler.GetProposal)
		v1.GET("/proposals/:id/votes", handler.GetProposalVotes)

		v1.GET("/checkpoint", handler.GetCheckpoint)
	}
}
