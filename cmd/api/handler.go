package api

import (
	"log"

	"meeting-notes-backend/internal/transcript/delivery"
	"meeting-notes-backend/internal/transcript/repository"
	"meeting-notes-backend/internal/transcript/usecase"
	"meeting-notes-backend/pkg/ai"
	"meeting-notes-backend/pkg/config"
	"meeting-notes-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	transcriptHandler *delivery.TranscriptHandler
	config            *config.Config
}

func NewHandler(transcriptUc usecase.TranscriptUsecase, transcriptRepo repository.TranscriptRepository, emailLogRepo repository.EmailLogRepository, cfg *config.Config) *Handler {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize the AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	summarizer, err := ai.NewSummarizerWithDynamicConfig(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
		transcriptUc.SetSummarizer(summarizer)
	}

	// SMTP sender for the email campaign orchestrator
	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	campaignUc := usecase.NewCampaignUsecase(transcriptRepo, emailLogRepo, sender)

	transcriptHandler := delivery.NewTranscriptHandler(transcriptUc, campaignUc)

	return &Handler{
		transcriptHandler: transcriptHandler,
		config:            cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware: fully open, any origin, any method, any header
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.transcriptHandler)

	return r.Run(addr)
}
