package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	out string
	err error
}

func (s *stubSummarizer) Summarize(ctx context.Context, text, prompt string) (string, error) {
	return s.out, s.err
}

func Test_isConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "refused", err: fmt.Errorf("dial tcp 127.0.0.1:11434: connection refused"), want: true},
		{name: "no host", err: fmt.Errorf("no such host"), want: true},
		{name: "timeout", err: fmt.Errorf("request timeout"), want: true},
		{name: "api error", err: fmt.Errorf("model not found"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionError(tt.err))
		})
	}
}

func Test_isQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "429", err: fmt.Errorf("API returned 429"), want: true},
		{name: "quota", err: fmt.Errorf("quota exceeded for project"), want: true},
		{name: "exhausted", err: fmt.Errorf("RESOURCE_EXHAUSTED"), want: true},
		{name: "other", err: fmt.Errorf("bad request"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuotaError(tt.err))
		})
	}
}

func Test_Fallback_UsesOllamaFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": "from ollama", "done": true}`))
	}))
	defer srv.Close()

	f := NewFallbackService(&stubSummarizer{out: "from gemini"}, NewOllamaService(srv.URL, "llama3"))

	res, err := f.Summarize(context.Background(), "text", "prompt")

	require.Nil(t, err)
	assert.Equal(t, "from ollama", res)
}

func Test_Fallback_FallsBackToGemini(t *testing.T) {
	// A closed server yields a connection error from Ollama
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewFallbackService(&stubSummarizer{out: "from gemini"}, NewOllamaService(srv.URL, "llama3"))

	res, err := f.Summarize(context.Background(), "text", "prompt")

	require.Nil(t, err)
	assert.Equal(t, "from gemini", res)
}

func Test_Fallback_BothFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewFallbackService(&stubSummarizer{err: fmt.Errorf("bad key")}, NewOllamaService(srv.URL, "llama3"))

	_, err := f.Summarize(context.Background(), "text", "prompt")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "gemini summarization failed")
}

func Test_Fallback_NoProviders(t *testing.T) {
	f := NewFallbackService(nil, nil)

	_, err := f.Summarize(context.Background(), "text", "prompt")

	assert.NotNil(t, err)
}
