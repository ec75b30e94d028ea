package usecase

import (
	"fmt"
	"log"
	"time"

	"meeting-notes-backend/internal/transcript/domain"
	"meeting-notes-backend/internal/transcript/repository"
	"meeting-notes-backend/pkg/mailer"

	"github.com/google/uuid"
)

// DefaultSubject is used when the caller does not supply an email subject
const DefaultSubject = "Meeting Summary"

// campaignUsecase implements CampaignUsecase
type campaignUsecase struct {
	transcriptRepo repository.TranscriptRepository
	emailLogRepo   repository.EmailLogRepository
	sender         mailer.Sender
}

// NewCampaignUsecase creates a new instance of campaignUsecase
func NewCampaignUsecase(transcriptRepo repository.TranscriptRepository, emailLogRepo repository.EmailLogRepository, sender mailer.Sender) CampaignUsecase {
	return &campaignUsecase{
		transcriptRepo: transcriptRepo,
		emailLogRepo:   emailLogRepo,
		sender:         sender,
	}
}

// SendCampaign delivers the resolved summary to every recipient independently.
// A delivery failure for one recipient never aborts the remaining attempts.
// Exactly one EmailLog is written per campaign; failures before any delivery
// attempt (unknown transcript, no summary) write no log at all.
func (u *campaignUsecase) SendCampaign(transcriptID string, recipients []string, subject string) (*CampaignResult, error) {
	transcript, err := u.transcriptRepo.FindByID(transcriptID)
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return nil, domain.ErrTranscriptNotFound
	}

	summary := transcript.ResolvedSummary()
	if summary == "" {
		return nil, domain.ErrNoSummaryAvailable
	}

	if subject == "" {
		subject = DefaultSubject
	}
	body := fmt.Sprintf("Meeting Summary: %s\n\n%s\n\n---\nThis summary was generated by AI Meeting Notes Summarizer", transcript.Title, summary)

	sent := make([]string, 0, len(recipients))
	var failed []domain.FailedRecipient
	for _, recipient := range recipients {
		if err := u.sender.Send(recipient, subject, body); err != nil {
			failed = append(failed, domain.FailedRecipient{Email: recipient, Error: err.Error()})
			continue
		}
		sent = append(sent, recipient)
	}

	logEntry := &domain.EmailLog{
		ID:           uuid.New().String(),
		TranscriptID: transcriptID,
		Recipients:   recipients,
		Subject:      subject,
		SentAt:       time.Now().UTC(),
		Status:       classifyOutcome(len(sent), len(failed)),
		SentCount:    len(sent),
		FailedCount:  len(failed),
		FailedEmails: failed,
	}
	// Audit logging is best-effort: a log write failure never fails the campaign
	if err := u.emailLogRepo.Create(logEntry); err != nil {
		log.Printf("[Campaign] Failed to write email log for transcript %s: %v", transcriptID, err)
	}

	result := &CampaignResult{
		Recipients:   recipients,
		Subject:      subject,
		SentEmails:   sent,
		FailedEmails: failed,
	}
	if len(failed) > 0 {
		result.Message = fmt.Sprintf("Email sent to %d recipients, failed for %d", len(sent), len(failed))
	} else {
		result.Message = fmt.Sprintf("Email sent successfully to %d recipients", len(sent))
	}
	return result, nil
}

// classifyOutcome maps delivery counts to a campaign status:
// every recipient delivered is "sent", none is "failed", anything else "partial"
func classifyOutcome(sentCount, failedCount int) domain.EmailStatus {
	switch {
	case failedCount == 0:
		return domain.EmailStatusSent
	case sentCount == 0:
		return domain.EmailStatusFailed
	default:
		return domain.EmailStatusPartial
	}
}
