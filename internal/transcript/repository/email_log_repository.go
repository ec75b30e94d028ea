package repository

import (
	"meeting-notes-backend/internal/transcript/domain"

	"gorm.io/gorm"
)

// EmailLogRepository defines the interface for email audit records.
// Logs are append-only; there is no update or delete.
type EmailLogRepository interface {
	// Create inserts one audit record for a campaign
	Create(log *domain.EmailLog) error
	// FindByTranscriptID returns all logs referencing a transcript, newest first
	FindByTranscriptID(transcriptID string) ([]*domain.EmailLog, error)
}

// emailLogRepository implements EmailLogRepository using GORM
type emailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new GORM-based EmailLogRepository
func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(log *domain.EmailLog) error {
	return r.db.Create(log).Error
}

func (r *emailLogRepository) FindByTranscriptID(transcriptID string) ([]*domain.EmailLog, error) {
	var logs []*domain.EmailLog
	err := r.db.Where("transcript_id = ?", transcriptID).
		Order("sent_at DESC").Find(&logs).Error
	return logs, err
}
