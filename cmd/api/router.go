package api

import (
	"net/http"

	"meeting-notes-backend/internal/transcript/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, transcriptHandler *delivery.TranscriptHandler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Meeting Notes Summarizer API"})
	})

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Transcript routes
		transcripts := api.Group("/transcripts")
		{
			transcripts.POST("", transcriptHandler.CreateTranscript)
			transcripts.GET("", transcriptHandler.GetTranscripts)
			transcripts.GET("/:id", transcriptHandler.GetTranscriptByID)
			transcripts.POST("/:id/generate-summary", transcriptHandler.GenerateSummary)
			transcripts.PUT("/:id/summary", transcriptHandler.UpdateSummary)
			transcripts.POST("/:id/email", transcriptHandler.SendEmail)
			transcripts.GET("/:id/email-logs", transcriptHandler.GetEmailLogs)
			transcripts.DELETE("/:id", transcriptHandler.DeleteTranscript)
		}

		// Settings routes - runtime AI configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
