package main

import (
	"log"

	api "meeting-notes-backend/cmd/api"
	"meeting-notes-backend/internal/transcript/domain"
	"meeting-notes-backend/internal/transcript/repository"
	"meeting-notes-backend/internal/transcript/usecase"
	"meeting-notes-backend/pkg/config"
	"meeting-notes-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.Transcript{}, &domain.EmailLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	transcriptRepo := repository.NewTranscriptRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)

	// Initialize use cases
	transcriptUsecase := usecase.NewTranscriptUsecase(transcriptRepo, emailLogRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(transcriptUsecase, transcriptRepo, emailLogRepo, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
