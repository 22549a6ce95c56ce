package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nyayasetu/classifier/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health, readiness, and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(tp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Classification endpoints
		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)            // POST /api/v1/classify
			classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch
		}

		// Feedback endpoint
		v1.POST("/feedback", handler.Feedback) // POST /api/v1/feedback

		// Taxonomy endpoint
		v1.GET("/domains", handler.ListDomains) // GET /api/v1/domains

		// Scenario pattern management endpoints
		patterns := v1.Group("/patterns")
		{
			patterns.GET("", handler.ListPatterns)         // GET /api/v1/patterns
			patterns.POST("", handler.CreatePattern)       // POST /api/v1/patterns
			patterns.PUT("/:id", handler.UpdatePattern)    // PUT /api/v1/patterns/:id
			patterns.DELETE("/:id", handler.DeletePattern) // DELETE /api/v1/patterns/:id
			patterns.POST("/match", handler.MatchPatterns) // POST /api/v1/patterns/match
		}

		// Statistics endpoint
		v1.GET("/stats", handler.GetStats) // GET /api/v1/stats

		// Classification history endpoints
		history := v1.Group("/history")
		{
			history.GET("", handler.ListHistory)              // GET /api/v1/history
			history.GET("/:complaint_id", handler.GetHistory) // GET /api/v1/history/:complaint_id
		}
	}
}
