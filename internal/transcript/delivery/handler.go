package delivery

import (
	"errors"
	"net/http"

	"meeting-notes-backend/internal/transcript/domain"
	"meeting-notes-backend/internal/transcript/dto"
	"meeting-notes-backend/internal/transcript/usecase"

	"github.com/gin-gonic/gin"
)

// TranscriptHandler handles transcript-related HTTP requests
type TranscriptHandler struct {
	transcriptUsecase usecase.TranscriptUsecase
	campaignUsecase   usecase.CampaignUsecase
}

// NewTranscriptHandler creates a new TranscriptHandler
func NewTranscriptHandler(transcriptUsecase usecase.TranscriptUsecase, campaignUsecase usecase.CampaignUsecase) *TranscriptHandler {
	return &TranscriptHandler{
		transcriptUsecase: transcriptUsecase,
		campaignUsecase:   campaignUsecase,
	}
}

// CreateTranscript creates a new transcript
// POST /api/transcripts
func (h *TranscriptHandler) CreateTranscript(c *gin.Context) {
	var req dto.CreateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transcript, err := h.transcriptUsecase.CreateTranscript(req.Title, req.OriginalText, req.CustomPrompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transcript)
}

// GetTranscripts returns all transcripts, newest first
// GET /api/transcripts
func (h *TranscriptHandler) GetTranscripts(c *gin.Context) {
	transcripts, err := h.transcriptUsecase.GetTranscripts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if transcripts == nil {
		transcripts = []*domain.Transcript{}
	}

	c.JSON(http.StatusOK, gin.H{"transcripts": transcripts})
}

// GetTranscriptByID returns a specific transcript
// GET /api/transcripts/:id
func (h *TranscriptHandler) GetTranscriptByID(c *gin.Context) {
	transcript, err := h.transcriptUsecase.GetTranscriptByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transcript)
}

// GenerateSummary runs AI summarization for a transcript and stores the result
// POST /api/transcripts/:id/generate-summary
func (h *TranscriptHandler) GenerateSummary(c *gin.Context) {
	summary, err := h.transcriptUsecase.GenerateSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// UpdateSummary saves a manually edited summary
// PUT /api/transcripts/:id/summary
func (h *TranscriptHandler) UpdateSummary(c *gin.Context) {
	var req dto.UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.transcriptUsecase.UpdateEditedSummary(c.Param("id"), req.EditedSummary); err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary updated successfully"})
}

// SendEmail sends the resolved summary to a list of recipients
// POST /api/transcripts/:id/email
func (h *TranscriptHandler) SendEmail(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.campaignUsecase.SendCampaign(c.Param("id"), req.Recipients, req.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		if errors.Is(err, domain.ErrNoSummaryAvailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No summary available to send"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"message":     result.Message,
		"recipients":  result.Recipients,
		"subject":     result.Subject,
		"sent_emails": result.SentEmails,
	}
	if len(result.FailedEmails) > 0 {
		resp["failed_emails"] = result.FailedEmails
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTranscript deletes a transcript. Email logs referencing it are kept
// as an audit trail.
// DELETE /api/transcripts/:id
func (h *TranscriptHandler) DeleteTranscript(c *gin.Context) {
	if err := h.transcriptUsecase.DeleteTranscript(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transcript deleted successfully"})
}

// GetEmailLogs returns the email audit trail for a transcript id
// GET /api/transcripts/:id/email-logs
func (h *TranscriptHandler) GetEmailLogs(c *gin.Context) {
	logs, err := h.transcriptUsecase.GetEmailLogs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if logs == nil {
		logs = []*domain.EmailLog{}
	}

	c.JSON(http.StatusOK, gin.H{"email_logs": logs})
}
