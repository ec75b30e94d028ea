package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Ollama_Summarize(t *testing.T) {
	var gotReq map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(`{"response": "the summary", "done": true}`))
	}))
	defer srv.Close()

	o := NewOllamaService(srv.URL, "llama3")

	res, err := o.Summarize(context.Background(), "meeting text", "keep it short")

	require.Nil(t, err)
	assert.Equal(t, "the summary", res)
	assert.Equal(t, "llama3", gotReq["model"])
	assert.Equal(t, false, gotReq["stream"])
	assert.Contains(t, gotReq["prompt"], "keep it short")
	assert.Contains(t, gotReq["prompt"], "meeting text")
}

func Test_Ollama_Summarize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer srv.Close()

	o := NewOllamaService(srv.URL, "nope")

	_, err := o.Summarize(context.Background(), "text", "prompt")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "ollama API error")
}

func Test_Ollama_Defaults(t *testing.T) {
	o := NewOllamaService("", "")
	assert.Equal(t, "http://localhost:11434", o.getBaseURL())
	assert.Equal(t, "llama3", o.getModel())
}
