package usecase

import (
	"context"

	"meeting-notes-backend/internal/transcript/domain"
	"meeting-notes-backend/pkg/ai"
)

// TranscriptUsecase handles transcript CRUD and summary generation
type TranscriptUsecase interface {
	CreateTranscript(title, originalText, customPrompt string) (*domain.Transcript, error)
	GetTranscripts() ([]*domain.Transcript, error)
	GetTranscriptByID(id string) (*domain.Transcript, error)
	GenerateSummary(ctx context.Context, id string) (string, error)
	UpdateEditedSummary(id, editedSummary string) error
	DeleteTranscript(id string) error
	GetEmailLogs(transcriptID string) ([]*domain.EmailLog, error)
	SetSummarizer(svc ai.Summarizer)
}

// CampaignUsecase fans a resolved summary out to a set of recipients and
// records one audit log per campaign
type CampaignUsecase interface {
	SendCampaign(transcriptID string, recipients []string, subject string) (*CampaignResult, error)
}

// CampaignResult carries the per-recipient outcome of one campaign back to the caller
type CampaignResult struct {
	Message      string
	Recipients   []string
	Subject      string
	SentEmails   []string
	FailedEmails []domain.FailedRecipient
}
