package dto

// CreateTranscriptRequest represents the request body for creating a transcript
type CreateTranscriptRequest struct {
	Title        string `json:"title" binding:"required"`
	OriginalText string `json:"original_text" binding:"required"`
	CustomPrompt string `json:"custom_prompt"`
}

// UpdateSummaryRequest represents the request body for saving a manual edit
type UpdateSummaryRequest struct {
	EditedSummary string `json:"edited_summary" binding:"required"`
}

// SendEmailRequest represents the request body for emailing a summary
type SendEmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
	Subject    string   `json:"subject"`
}
