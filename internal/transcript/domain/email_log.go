package domain

import "time"

// EmailStatus represents the overall outcome of one email campaign
type EmailStatus string

const (
	// EmailStatusSent means every recipient was delivered to
	EmailStatusSent EmailStatus = "sent"
	// EmailStatusPartial means some recipients succeeded and some failed
	EmailStatusPartial EmailStatus = "partial"
	// EmailStatusFailed means no recipient was delivered to
	EmailStatusFailed EmailStatus = "failed"
)

// FailedRecipient records one delivery failure within a campaign
type FailedRecipient struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// EmailLog is an immutable audit record of one email campaign. It keeps a weak
// reference to the transcript: deleting the transcript leaves the log intact.
type EmailLog struct {
	ID           string            `json:"id" gorm:"primaryKey"`
	TranscriptID string            `json:"transcript_id" gorm:"index;not null"`
	Recipients   []string          `json:"recipients" gorm:"serializer:json"`
	Subject      string            `json:"subject"`
	SentAt       time.Time         `json:"sent_at"`
	Status       EmailStatus       `json:"status" gorm:"not null"`
	SentCount    int               `json:"sent_count"`
	FailedCount  int               `json:"failed_count"`
	FailedEmails []FailedRecipient `json:"failed_emails" gorm:"serializer:json"`
}

// TableName specifies the table name for GORM
func (EmailLog) TableName() string {
	return "email_logs"
}
