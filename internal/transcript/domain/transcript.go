package domain

import "time"

// DefaultCustomPrompt is used when a transcript is created without an instruction prompt
const DefaultCustomPrompt = "Summarize this meeting transcript in a clear, structured format with key points and action items."

// Transcript represents a stored meeting transcript plus its summaries
type Transcript struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"not null"`
	OriginalText     string     `json:"original_text" gorm:"type:text;not null"`
	CustomPrompt     string     `json:"custom_prompt" gorm:"type:text"`
	GeneratedSummary *string    `json:"generated_summary" gorm:"type:text"`
	EditedSummary    *string    `json:"edited_summary" gorm:"type:text"`
	CreatedAt        time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// ResolvedSummary returns the summary to send: the edited summary if present,
// otherwise the generated one. Empty string means no summary exists yet.
func (t *Transcript) ResolvedSummary() string {
	if t.EditedSummary != nil && *t.EditedSummary != "" {
		return *t.EditedSummary
	}
	if t.GeneratedSummary != nil && *t.GeneratedSummary != "" {
		return *t.GeneratedSummary
	}
	return ""
}
