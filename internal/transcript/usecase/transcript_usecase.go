package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meeting-notes-backend/internal/transcript/domain"
	"meeting-notes-backend/internal/transcript/repository"
	"meeting-notes-backend/pkg/ai"

	"github.com/google/uuid"
)

// transcriptUsecase implements TranscriptUsecase
type transcriptUsecase struct {
	transcriptRepo repository.TranscriptRepository
	emailLogRepo   repository.EmailLogRepository
	summarizer     ai.Summarizer
}

// NewTranscriptUsecase creates a new instance of transcriptUsecase
func NewTranscriptUsecase(transcriptRepo repository.TranscriptRepository, emailLogRepo repository.EmailLogRepository) TranscriptUsecase {
	return &transcriptUsecase{
		transcriptRepo: transcriptRepo,
		emailLogRepo:   emailLogRepo,
	}
}

func (u *transcriptUsecase) SetSummarizer(svc ai.Summarizer) {
	u.summarizer = svc
}

func (u *transcriptUsecase) CreateTranscript(title, originalText, customPrompt string) (*domain.Transcript, error) {
	if customPrompt == "" {
		customPrompt = domain.DefaultCustomPrompt
	}

	transcript := &domain.Transcript{
		ID:           uuid.New().String(),
		Title:        title,
		OriginalText: originalText,
		CustomPrompt: customPrompt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.transcriptRepo.Create(transcript); err != nil {
		return nil, err
	}
	return transcript, nil
}

func (u *transcriptUsecase) GetTranscripts() ([]*domain.Transcript, error) {
	return u.transcriptRepo.FindAll()
}

func (u *transcriptUsecase) GetTranscriptByID(id string) (*domain.Transcript, error) {
	transcript, err := u.transcriptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return nil, domain.ErrTranscriptNotFound
	}
	return transcript, nil
}

// GenerateSummary runs the AI summarization and stores the result. Each call
// overwrites the previous generated summary; the edited summary is untouched.
func (u *transcriptUsecase) GenerateSummary(ctx context.Context, id string) (string, error) {
	if u.summarizer == nil {
		return "", errors.New("AI service not configured")
	}

	transcript, err := u.GetTranscriptByID(id)
	if err != nil {
		return "", err
	}

	summary, err := u.summarizer.Summarize(ctx, transcript.OriginalText, transcript.CustomPrompt)
	if err != nil {
		return "", fmt.Errorf("can't generate summary: %w", err)
	}

	if err := u.transcriptRepo.SetGeneratedSummary(id, summary, time.Now().UTC()); err != nil {
		return "", err
	}
	return summary, nil
}

func (u *transcriptUsecase) UpdateEditedSummary(id, editedSummary string) error {
	if _, err := u.GetTranscriptByID(id); err != nil {
		return err
	}
	return u.transcriptRepo.SetEditedSummary(id, editedSummary, time.Now().UTC())
}

func (u *transcriptUsecase) DeleteTranscript(id string) error {
	rows, err := u.transcriptRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTranscriptNotFound
	}
	return nil
}

// GetEmailLogs returns the audit trail for a transcript id. Logs outlive the
// transcript, so this works even after the transcript was deleted.
func (u *transcriptUsecase) GetEmailLogs(transcriptID string) ([]*domain.EmailLog, error) {
	return u.emailLogRepo.FindByTranscriptID(transcriptID)
}
