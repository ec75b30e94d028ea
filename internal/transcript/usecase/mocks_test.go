package usecase

import (
	"context"
	"time"

	"meeting-notes-backend/internal/transcript/domain"

	"github.com/stretchr/testify/mock"
)

type mockTranscriptRepo struct{ mock.Mock }

func (m *mockTranscriptRepo) Create(transcript *domain.Transcript) error {
	args := m.Called(transcript)
	return args.Error(0)
}

func (m *mockTranscriptRepo) FindByID(id string) (*domain.Transcript, error) {
	args := m.Called(id)
	var transcript *domain.Transcript
	if v := args.Get(0); v != nil {
		transcript = v.(*domain.Transcript)
	}
	return transcript, args.Error(1)
}

func (m *mockTranscriptRepo) FindAll() ([]*domain.Transcript, error) {
	args := m.Called()
	var transcripts []*domain.Transcript
	if v := args.Get(0); v != nil {
		transcripts = v.([]*domain.Transcript)
	}
	return transcripts, args.Error(1)
}

func (m *mockTranscriptRepo) SetGeneratedSummary(id, summary string, at time.Time) error {
	args := m.Called(id, summary, at)
	return args.Error(0)
}

func (m *mockTranscriptRepo) SetEditedSummary(id, summary string, at time.Time) error {
	args := m.Called(id, summary, at)
	return args.Error(0)
}

func (m *mockTranscriptRepo) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type mockEmailLogRepo struct{ mock.Mock }

func (m *mockEmailLogRepo) Create(log *domain.EmailLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *mockEmailLogRepo) FindByTranscriptID(transcriptID string) ([]*domain.EmailLog, error) {
	args := m.Called(transcriptID)
	var logs []*domain.EmailLog
	if v := args.Get(0); v != nil {
		logs = v.([]*domain.EmailLog)
	}
	return logs, args.Error(1)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type mockSummarizer struct{ mock.Mock }

func (m *mockSummarizer) Summarize(ctx context.Context, text, prompt string) (string, error) {
	args := m.Called(ctx, text, prompt)
	return args.String(0), args.Error(1)
}
