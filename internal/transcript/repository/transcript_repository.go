package repository

import (
	"time"

	"meeting-notes-backend/internal/transcript/domain"

	"gorm.io/gorm"
)

// TranscriptRepository defines the interface for transcript persistence
type TranscriptRepository interface {
	// Create inserts a complete transcript record
	Create(transcript *domain.Transcript) error
	// FindByID returns the transcript or nil if it does not exist
	FindByID(id string) (*domain.Transcript, error)
	// FindAll returns all transcripts, newest first
	FindAll() ([]*domain.Transcript, error)
	// SetGeneratedSummary stores a freshly generated summary
	SetGeneratedSummary(id, summary string, at time.Time) error
	// SetEditedSummary stores a manually edited summary
	SetEditedSummary(id, summary string, at time.Time) error
	// Delete removes a transcript and reports how many rows were affected
	Delete(id string) (int64, error)
}

// transcriptRepository implements TranscriptRepository using GORM
type transcriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new GORM-based TranscriptRepository
func NewTranscriptRepository(db *gorm.DB) TranscriptRepository {
	return &transcriptRepository{db: db}
}

func (r *transcriptRepository) Create(transcript *domain.Transcript) error {
	return r.db.Create(transcript).Error
}

func (r *transcriptRepository) FindByID(id string) (*domain.Transcript, error) {
	var transcript domain.Transcript
	err := r.db.Where("id = ?", id).First(&transcript).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

func (r *transcriptRepository) FindAll() ([]*domain.Transcript, error) {
	var transcripts []*domain.Transcript
	err := r.db.Order("created_at DESC").Find(&transcripts).Error
	return transcripts, err
}

func (r *transcriptRepository) SetGeneratedSummary(id, summary string, at time.Time) error {
	return r.db.Model(&domain.Transcript{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"generated_summary": summary,
			"updated_at":        at,
		}).Error
}

func (r *transcriptRepository) SetEditedSummary(id, summary string, at time.Time) error {
	return r.db.Model(&domain.Transcript{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"edited_summary": summary,
			"updated_at":     at,
		}).Error
}

func (r *transcriptRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&domain.Transcript{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
